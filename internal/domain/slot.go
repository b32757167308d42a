package domain

import "time"

type SlotStatus string

const (
	SlotStatusFree          SlotStatus = "free"
	SlotStatusPendingReview SlotStatus = "pending_review"
	SlotStatusBooked        SlotStatus = "booked"
)

// TakenStatuses are the statuses in which a slot has an owner.
var TakenStatuses = []SlotStatus{SlotStatusPendingReview, SlotStatusBooked}

type Slot struct {
	ID        int64      `json:"id"`
	StartTime time.Time  `json:"start_time"`
	Status    SlotStatus `json:"status"`
	UserID    *int64     `json:"user_id,omitempty"`
	ProofRef  *string    `json:"proof_ref,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SlotTimeLayout is the admin input format, interpreted in the current year.
const SlotTimeLayout = "02.01 15:04"

func (s *Slot) FormatStart() string {
	return s.StartTime.Format(SlotTimeLayout)
}
