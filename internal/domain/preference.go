package domain

// Any is the wildcard answer that deactivates a filter.
const Any = "Any"

// PreferenceSet is the filter criteria a user supplies through the guided
// questionnaire. It lives only for the duration of one browsing session.
// Hobbies are collected as preference metadata but never applied as a
// filter; see matching.Filter.
type PreferenceSet struct {
	Gender  string   `json:"gender"`
	AgeBand string   `json:"preferred_age"`
	City    string   `json:"city"`
	Hobbies []string `json:"hobbies"`
}
