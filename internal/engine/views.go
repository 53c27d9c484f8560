package engine

import (
	"fmt"
	"slices"

	"sladrehank/internal/models"
)

// Gender labels after the fixed remap in Transform.
const (
	GenderBoth   = "both"
	GenderMale   = "male"
	GenderFemale = "female"
)

// Age group labels as supplied by table 08517.
const (
	AgeTotal = "15-74 år"
	AgeYouth = "15-24 år"
	AgePrime = "25-54 år"
	AgeOlder = "55-74 år"
)

// Named dashboard views.
const (
	ViewOverall  = "overall"
	ViewGender   = "gender"
	ViewAge      = "age"
	ViewAgeMen   = "age-men"
	ViewAgeWomen = "age-women"
)

// breakdownAges are the age groups shown in comparison views; the 15-74
// total is excluded so it does not dwarf the individual groups.
var breakdownAges = []string{AgeYouth, AgePrime, AgeOlder}

// ViewNames lists all known views in dashboard order.
func ViewNames() []string {
	return []string{ViewOverall, ViewGender, ViewAge, ViewAgeMen, ViewAgeWomen}
}

// BuildView slices the full table into one named subset. Views are
// independent and read-only; an empty result is a valid view (the caller
// reports a warning), not an error. Only an unknown name is an error.
func BuildView(table []models.Record, name string) (models.View, error) {
	switch name {
	case ViewOverall:
		return models.View{
			Name:    name,
			Title:   "Total unemployment in Norway (age 15-74)",
			Columns: []string{"year", "count"},
			Records: filter(table, func(r models.Record) bool {
				return r.Gender == GenderBoth && r.AgeGroup == AgeTotal
			}),
		}, nil

	case ViewGender:
		return models.View{
			Name:    name,
			Title:   "Unemployment by gender (age 15-74)",
			SplitBy: "gender",
			Columns: []string{"year", "gender", "count"},
			Records: filter(table, func(r models.Record) bool {
				return (r.Gender == GenderMale || r.Gender == GenderFemale) && r.AgeGroup == AgeTotal
			}),
		}, nil

	case ViewAge:
		return models.View{
			Name:    name,
			Title:   "Unemployment by age group (both sexes)",
			SplitBy: "age_group",
			Columns: []string{"year", "age_group", "count"},
			Records: filter(table, func(r models.Record) bool {
				return r.Gender == GenderBoth && slices.Contains(breakdownAges, r.AgeGroup)
			}),
		}, nil

	case ViewAgeMen:
		return models.View{
			Name:    name,
			Title:   "Unemployment among men by age group",
			SplitBy: "age_group",
			Columns: []string{"year", "age_group", "count"},
			Records: filter(table, func(r models.Record) bool {
				return r.Gender == GenderMale && slices.Contains(breakdownAges, r.AgeGroup)
			}),
		}, nil

	case ViewAgeWomen:
		return models.View{
			Name:    name,
			Title:   "Unemployment among women by age group",
			SplitBy: "age_group",
			Columns: []string{"year", "age_group", "count"},
			Records: filter(table, func(r models.Record) bool {
				return r.Gender == GenderFemale && slices.Contains(breakdownAges, r.AgeGroup)
			}),
		}, nil

	default:
		return models.View{}, fmt.Errorf("unknown view %q", name)
	}
}

func filter(table []models.Record, pred func(models.Record) bool) []models.Record {
	out := make([]models.Record, 0)
	for _, r := range table {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
