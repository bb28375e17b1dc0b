package domain

import (
	"fmt"
	"time"
)

// InterestStatus is the lifecycle state of a directional interest record.
type InterestStatus string

const (
	InterestInterested InterestStatus = "interested"
	InterestAccepted   InterestStatus = "accepted"
	InterestRejected   InterestStatus = "rejected"
)

// Interest is a directional expression of interest from ExpresserUID toward
// TargetUID. Its ID is a pure function of the ordered pair, so re-expressing
// interest updates the existing record instead of duplicating it. (A→B) and
// (B→A) are distinct records.
type Interest struct {
	ID           string         `json:"id" db:"id"`
	ExpresserUID string         `json:"expresser_uid" db:"expresser_uid"`
	TargetUID    string         `json:"target_uid" db:"target_uid"`
	Status       InterestStatus `json:"status" db:"status"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	LastViewedAt time.Time      `json:"last_viewed_at" db:"last_viewed_at"`
	AcceptedAt   *time.Time     `json:"accepted_at,omitempty" db:"accepted_at"`
	RejectedAt   *time.Time     `json:"rejected_at,omitempty" db:"rejected_at"`
}

// InterestID derives the deterministic record ID for an ordered pair.
func InterestID(expresserUID, targetUID string) string {
	return fmt.Sprintf("%s_%s", expresserUID, targetUID)
}

// AcceptedPair links two resolved profiles through an accepted interest,
// surfaced to admins for introduction arrangement.
type AcceptedPair struct {
	InterestID string     `json:"interest_id"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	Expresser  *Profile   `json:"expresser"`
	Target     *Profile   `json:"target"`
}
