package engine

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"sladrehank/internal/models"
	"sladrehank/internal/ssb"
)

// Axis codes of table 08517. The API contract fixes the flattening order:
// Tid is the outermost axis, then Kjonn, then Alder.
const (
	timeAxis   = "Tid"
	genderAxis = "Kjonn"
	ageAxis    = "Alder"
)

// genderLabels is the fixed remap for the sex axis. The API's own labels
// for this axis are deliberately ignored; unknown codes fall through to
// the raw code.
var genderLabels = map[string]string{
	"0": "both",
	"1": "male",
	"2": "female",
}

// Transform unpivots a json-stat2 dataset into the flat unemployment table.
//
// For every (time, gender, age) combination, in that nesting order, the
// flat position is t*G*A + g*A + a. Positions beyond the value array yield
// a missing count, not an error; non-numeric values coerce to missing.
// A year label that is not an integer aborts the transform.
func Transform(ds *ssb.Dataset) ([]models.Record, error) {
	if ds == nil {
		return nil, errors.New("nil dataset")
	}
	if ds.Dimension == nil {
		return nil, errors.New("dataset has no dimension object")
	}
	if ds.Value == nil {
		return nil, errors.New("dataset has no value array")
	}

	timeDim, ok := ds.Dimension[timeAxis]
	if !ok {
		return nil, fmt.Errorf("dataset missing %s axis", timeAxis)
	}
	genderDim, ok := ds.Dimension[genderAxis]
	if !ok {
		return nil, fmt.Errorf("dataset missing %s axis", genderAxis)
	}
	ageDim, ok := ds.Dimension[ageAxis]
	if !ok {
		return nil, fmt.Errorf("dataset missing %s axis", ageAxis)
	}

	timeCodes := orderedCodes(timeDim.Category.Index)
	genderCodes := orderedCodes(genderDim.Category.Index)
	ageCodes := orderedCodes(ageDim.Category.Index)

	numGenders := len(genderCodes)
	numAges := len(ageCodes)

	records := make([]models.Record, 0, len(timeCodes)*numGenders*numAges)

	for ti, timeCode := range timeCodes {
		yearLabel := labelFor(timeDim.Category, timeCode)
		year, err := strconv.Atoi(yearLabel)
		if err != nil {
			return nil, fmt.Errorf("year label %q is not an integer: %w", yearLabel, err)
		}

		for gi, genderCode := range genderCodes {
			gender := genderLabels[genderCode]
			if gender == "" {
				gender = genderCode
			}

			for ai, ageCode := range ageCodes {
				pos := ti*numGenders*numAges + gi*numAges + ai

				var count *float64
				if pos < len(ds.Value) {
					count = coerceCount(ds.Value[pos])
				}

				records = append(records, models.Record{
					Year:     year,
					Gender:   gender,
					AgeGroup: labelFor(ageDim.Category, ageCode),
					Count:    count,
				})
			}
		}
	}

	return records, nil
}

// orderedCodes returns the axis codes sorted by their flattening position.
// The index map carries the stride order; Go map iteration does not.
func orderedCodes(index map[string]int) []string {
	codes := make([]string, 0, len(index))
	for code := range index {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return index[codes[i]] < index[codes[j]]
	})
	return codes
}

// labelFor resolves the human-readable label for a code, falling back to
// the code itself when the table supplies none.
func labelFor(cat ssb.Category, code string) string {
	if label, ok := cat.Label[code]; ok && label != "" {
		return label
	}
	return code
}

// coerceCount converts a raw json-stat2 value entry to a count.
// Numbers pass through, numeric strings are parsed, everything else
// (null, markers like "..", unexpected types) becomes missing.
func coerceCount(v any) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
