package matching

// Question is one step of the guided preference questionnaire.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"question"`
	Options  []string `json:"options"`
	Multiple bool     `json:"multiple"`
}

// Allows reports whether answer is one of the question's options.
func (q Question) Allows(answer string) bool {
	for _, o := range q.Options {
		if o == answer {
			return true
		}
	}
	return false
}

// Questions is the fixed question script, asked strictly in order with one
// live question at a time. The hobbies step is the only multi-select and
// requires at least one selection before it advances.
var Questions = []Question{
	{
		ID:      "gender",
		Text:    "Preferred partner gender?",
		Options: []string{"Male", "Female", "Any"},
	},
	{
		ID:      "preferredAge",
		Text:    "Preferred age group?",
		Options: []string{"18-25", "26-30", "31-35", "36-40", "40+", "Any"},
	},
	{
		ID:      "city",
		Text:    "Which city do you prefer?",
		Options: []string{"Kathmandu", "Lalitpur", "Bhaktapur", "Any"},
	},
	{
		ID:   "hobbies",
		Text: "What hobbies interest you in a partner?",
		Options: []string{
			"Reading", "Traveling", "Sports", "Music", "Cooking",
			"Photography", "Gaming", "Art", "Dancing", "Yoga",
			"Hiking", "Movies", "Writing", "Gardening", "Fitness",
		},
		Multiple: true,
	},
}
