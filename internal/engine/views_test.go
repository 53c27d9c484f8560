package engine

import (
	"testing"

	"sladrehank/internal/models"
)

// sampleTable builds a small but fully populated table: 2 years, all three
// genders, all four age groups.
func sampleTable() []models.Record {
	var table []models.Record
	counts := 0.0
	for _, year := range []int{2020, 2021} {
		for _, gender := range []string{GenderBoth, GenderMale, GenderFemale} {
			for _, age := range []string{AgeTotal, AgeYouth, AgePrime, AgeOlder} {
				counts += 10
				v := counts
				table = append(table, models.Record{Year: year, Gender: gender, AgeGroup: age, Count: &v})
			}
		}
	}
	return table
}

func TestBuildViewOverall(t *testing.T) {
	view, err := BuildView(sampleTable(), ViewOverall)
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}
	if len(view.Records) != 2 {
		t.Fatalf("expected 2 records (one per year), got %d", len(view.Records))
	}
	for _, r := range view.Records {
		if r.Gender != GenderBoth || r.AgeGroup != AgeTotal {
			t.Errorf("unexpected record in overall view: %+v", r)
		}
	}
	if view.SplitBy != "" {
		t.Errorf("overall view should not split, got %q", view.SplitBy)
	}
}

func TestBuildViewGender(t *testing.T) {
	view, err := BuildView(sampleTable(), ViewGender)
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}
	// 2 years x 2 genders, only the 15-74 total age group.
	if len(view.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(view.Records))
	}
	for _, r := range view.Records {
		if r.Gender == GenderBoth {
			t.Errorf("gender view must exclude the combined series: %+v", r)
		}
		if r.AgeGroup != AgeTotal {
			t.Errorf("gender view must only contain the total age group: %+v", r)
		}
	}
	if view.SplitBy != "gender" {
		t.Errorf("expected split by gender, got %q", view.SplitBy)
	}
}

func TestBuildViewAgeGroups(t *testing.T) {
	for name, wantGender := range map[string]string{
		ViewAge:      GenderBoth,
		ViewAgeMen:   GenderMale,
		ViewAgeWomen: GenderFemale,
	} {
		view, err := BuildView(sampleTable(), name)
		if err != nil {
			t.Fatalf("BuildView(%s) returned error: %v", name, err)
		}
		// 2 years x 3 breakdown age groups.
		if len(view.Records) != 6 {
			t.Errorf("%s: expected 6 records, got %d", name, len(view.Records))
		}
		for _, r := range view.Records {
			if r.Gender != wantGender {
				t.Errorf("%s: unexpected gender %q", name, r.Gender)
			}
			if r.AgeGroup == AgeTotal {
				t.Errorf("%s: breakdown views must exclude the 15-74 total", name)
			}
		}
	}
}

func TestBuildViewEmptySubsetIsNotAnError(t *testing.T) {
	// A table with no matching rows yields an empty, warnable view.
	table := []models.Record{
		{Year: 2020, Gender: GenderMale, AgeGroup: "80+", Count: f(5)},
	}
	view, err := BuildView(table, ViewOverall)
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}
	if !view.Empty() {
		t.Fatalf("expected empty view, got %d records", len(view.Records))
	}
}

func TestBuildViewUnknownName(t *testing.T) {
	if _, err := BuildView(sampleTable(), "quarterly"); err == nil {
		t.Fatal("expected error for unknown view name")
	}
}

func TestViewNamesAllBuildable(t *testing.T) {
	table := sampleTable()
	for _, name := range ViewNames() {
		if _, err := BuildView(table, name); err != nil {
			t.Errorf("BuildView(%s) returned error: %v", name, err)
		}
	}
}
