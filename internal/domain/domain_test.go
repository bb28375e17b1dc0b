package domain

import "testing"

func TestJoinFullName(t *testing.T) {
	cases := []struct {
		first, middle, last string
		want                string
	}{
		{"Sita", "Kumari", "Sharma", "Sita Kumari Sharma"},
		{"Sita", "", "Sharma", "Sita Sharma"},
		{"Sita", "  ", "Sharma", "Sita Sharma"},
		{" Sita ", "", " Sharma ", "Sita Sharma"},
		{"Sita", "", "", "Sita"},
		{"", "", "", ""},
	}
	for _, tc := range cases {
		if got := JoinFullName(tc.first, tc.middle, tc.last); got != tc.want {
			t.Errorf("JoinFullName(%q, %q, %q) = %q, want %q", tc.first, tc.middle, tc.last, got, tc.want)
		}
	}
}

func TestInterestID(t *testing.T) {
	if got := InterestID("a", "b"); got != "a_b" {
		t.Fatalf("InterestID(a, b) = %q", got)
	}
	if InterestID("a", "b") == InterestID("b", "a") {
		t.Fatalf("interest IDs must be directional")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []ProfileStatus{StatusPending, StatusApproved, StatusRejected, StatusMarried} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	for _, s := range []ProfileStatus{"", "frozen", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}
