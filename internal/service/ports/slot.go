package ports

import (
	"context"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, startTime time.Time) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetFreeByStartTime(ctx context.Context, startTime time.Time) (*domain.Slot, error)
	ListFree(ctx context.Context) ([]*domain.Slot, error)
	ListAll(ctx context.Context) ([]*domain.Slot, error)
	// Reserve moves a free slot to pending_review for the given user.
	// Returns domain.ErrSlotUnavailable if the slot is missing or not free.
	Reserve(ctx context.Context, id, userID int64) error
	// AttachProof stores the proof reference on a slot the user holds in
	// pending_review. Returns domain.ErrSlotUnavailable if the claim was lost.
	AttachProof(ctx context.Context, id, userID int64, proofRef string) error
	// Confirm moves a pending_review slot owned by the user to booked.
	Confirm(ctx context.Context, id, userID int64) error
	// Release resets a pending_review slot to free, clearing owner and proof.
	// ErrSlotNotPending if the slot was already approved or released.
	Release(ctx context.Context, id int64) error
	// ReleaseIfHeld resets the slot only while the user still holds it in
	// pending_review. A no-op (nil) otherwise.
	ReleaseIfHeld(ctx context.Context, id, userID int64) error
	// ReleaseExpired frees pending_review slots claimed longer than ttl ago
	// and returns them.
	ReleaseExpired(ctx context.Context, ttl time.Duration) ([]*domain.Slot, error)
}
