package domain

import (
	"strings"
	"time"
)

// ProfileStatus is the admin-controlled approval state of a profile.
type ProfileStatus string

const (
	StatusPending  ProfileStatus = "pending"
	StatusApproved ProfileStatus = "approved"
	StatusRejected ProfileStatus = "rejected"
	StatusMarried  ProfileStatus = "married"
)

// ValidStatus reports whether s is one of the known profile statuses.
func ValidStatus(s ProfileStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusMarried:
		return true
	}
	return false
}

// Profile is a user's matrimonial biodata record. UID equals the owning
// account's UID. Status starts at pending and is mutated only by an admin;
// the owner may resubmit fields while status is pending or rejected.
type Profile struct {
	UID            string        `json:"uid" db:"uid"`
	FirstName      string        `json:"first_name" db:"first_name"`
	MiddleName     string        `json:"middle_name" db:"middle_name"`
	LastName       string        `json:"last_name" db:"last_name"`
	FullName       string        `json:"full_name" db:"full_name"`
	Email          string        `json:"email" db:"email"`
	Mobile         string        `json:"mobile" db:"mobile"`
	Age            *int          `json:"age" db:"age"`
	Gender         string        `json:"gender" db:"gender"`
	Location       string        `json:"location" db:"location"`
	DetailLocation string        `json:"detail_location" db:"detail_location"`
	Hobbies        []string      `json:"hobbies" db:"-"`
	MustHave       string        `json:"must_have" db:"must_have"`
	BiharBahi      string        `json:"bihar_bahi" db:"bihar_bahi"`
	Caste          string        `json:"caste" db:"caste"`
	Intercaste     string        `json:"intercaste" db:"intercaste"`
	PhotoURL       string        `json:"photo_url" db:"photo_url"`
	PhotoThumbURL  string        `json:"photo_thumb_url" db:"photo_thumb_url"`
	Status         ProfileStatus `json:"status" db:"status"`
	Notes          []ProfileNote `json:"admin_notes,omitempty" db:"-"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// ProfileNote is an append-only admin annotation on a profile.
type ProfileNote struct {
	Text      string    `json:"text" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// JoinFullName builds the display name from the non-empty name parts.
func JoinFullName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
