package matching

import (
	"testing"

	"github.com/shubhmangal/backend/internal/domain"
)

func intp(n int) *int { return &n }

func TestParseAgeBand(t *testing.T) {
	cases := []struct {
		band string
		min  int
		max  int
	}{
		{"26-30", 26, 30},
		{"18-25", 18, 25},
		{"40+", 40, 999},
		{"Any", 0, 999},
		{"", 0, 999},
		{"garbage", 0, 999},
		{"a-b", 0, 999},
	}
	for _, c := range cases {
		r := ParseAgeBand(c.band)
		if r.Min != c.min || r.Max != c.max {
			t.Errorf("ParseAgeBand(%q) = [%d,%d], want [%d,%d]", c.band, r.Min, r.Max, c.min, c.max)
		}
	}
}

func TestFilterIdentityWhenAllAny(t *testing.T) {
	candidates := []domain.Profile{
		{UID: "a", Gender: "Female", Age: intp(28), Location: "Kathmandu"},
		{UID: "b"}, // entirely blank profile still passes
		{UID: "c", Gender: "Male", Age: intp(45), Location: "Pokhara"},
	}
	prefs := domain.PreferenceSet{Gender: "Any", AgeBand: "Any", City: "Any"}

	got := Filter(candidates, prefs)
	if len(got) != len(candidates) {
		t.Fatalf("expected all %d candidates, got %d", len(candidates), len(got))
	}
	for i := range got {
		if got[i].UID != candidates[i].UID {
			t.Fatalf("order changed at %d: got %s want %s", i, got[i].UID, candidates[i].UID)
		}
	}
}

func TestFilterGender(t *testing.T) {
	candidates := []domain.Profile{
		{UID: "f", Gender: "Female"},
		{UID: "F", Gender: "FEMALE"},
		{UID: "m", Gender: "Male"},
		{UID: "none"},
	}
	got := Filter(candidates, domain.PreferenceSet{Gender: "Female"})
	if len(got) != 2 || got[0].UID != "f" || got[1].UID != "F" {
		t.Fatalf("unexpected gender filter result: %+v", got)
	}
}

func TestFilterAgeExcludesMissingAge(t *testing.T) {
	candidates := []domain.Profile{
		{UID: "young", Age: intp(22)},
		{UID: "in", Age: intp(33)},
		{UID: "missing"},
	}
	got := Filter(candidates, domain.PreferenceSet{AgeBand: "31-35"})
	if len(got) != 1 || got[0].UID != "in" {
		t.Fatalf("expected only 'in', got %+v", got)
	}

	// Missing age passes when the band is inactive.
	got = Filter(candidates, domain.PreferenceSet{AgeBand: "Any"})
	if len(got) != 3 {
		t.Fatalf("expected all candidates with Any band, got %d", len(got))
	}
}

func TestFilterAgeBoundsInclusive(t *testing.T) {
	candidates := []domain.Profile{
		{UID: "26", Age: intp(26)},
		{UID: "30", Age: intp(30)},
		{UID: "31", Age: intp(31)},
		{UID: "25", Age: intp(25)},
	}
	got := Filter(candidates, domain.PreferenceSet{AgeBand: "26-30"})
	if len(got) != 2 || got[0].UID != "26" || got[1].UID != "30" {
		t.Fatalf("expected inclusive bounds [26,30], got %+v", got)
	}
}

func TestFilterOpenEndedBand(t *testing.T) {
	candidates := []domain.Profile{
		{UID: "39", Age: intp(39)},
		{UID: "40", Age: intp(40)},
		{UID: "72", Age: intp(72)},
	}
	got := Filter(candidates, domain.PreferenceSet{AgeBand: "40+"})
	if len(got) != 2 || got[0].UID != "40" || got[1].UID != "72" {
		t.Fatalf("expected [40,72], got %+v", got)
	}
}

func TestFilterCitySubstring(t *testing.T) {
	candidates := []domain.Profile{
		{UID: "a", Location: "Lalitpur, Patan"},
		{UID: "b", Location: "lalitpur"},
		{UID: "c", Location: "Kathmandu"},
		{UID: "d"},
	}
	got := Filter(candidates, domain.PreferenceSet{City: "Lalitpur"})
	if len(got) != 2 || got[0].UID != "a" || got[1].UID != "b" {
		t.Fatalf("expected substring match for a and b, got %+v", got)
	}
}

func TestFilterIgnoresHobbies(t *testing.T) {
	candidates := []domain.Profile{
		{UID: "a", Hobbies: []string{"Reading"}},
		{UID: "b", Hobbies: []string{"Gaming"}},
		{UID: "c"},
	}
	prefs := domain.PreferenceSet{Hobbies: []string{"Yoga", "Hiking"}}
	got := Filter(candidates, prefs)
	if len(got) != 3 {
		t.Fatalf("hobby preferences must not filter; got %d of 3", len(got))
	}
}

func TestFilterScenarios(t *testing.T) {
	candidate := domain.Profile{
		UID:      "x",
		Gender:   "Female",
		Age:      intp(28),
		Location: "Kathmandu, Baneshwor",
	}

	// Matching preference set includes the candidate.
	got := Filter([]domain.Profile{candidate}, domain.PreferenceSet{
		Gender: "Female", AgeBand: "26-30", City: "Kathmandu",
	})
	if len(got) != 1 {
		t.Fatalf("expected candidate included, got %d", len(got))
	}

	// Gender mismatch excludes.
	got = Filter([]domain.Profile{candidate}, domain.PreferenceSet{
		Gender: "Male", AgeBand: "26-30", City: "Kathmandu",
	})
	if len(got) != 0 {
		t.Fatalf("expected gender mismatch to exclude, got %d", len(got))
	}

	// Missing age with an active band excludes.
	noAge := candidate
	noAge.Age = nil
	got = Filter([]domain.Profile{noAge}, domain.PreferenceSet{AgeBand: "31-35"})
	if len(got) != 0 {
		t.Fatalf("expected missing age to exclude, got %d", len(got))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, domain.PreferenceSet{Gender: "Female"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
