package ports

import (
	"context"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
)

type BookingNotifier interface {
	// NotifyProofSubmitted forwards the payment proof to the admin for review.
	// A failure is reported back to the submitting user.
	NotifyProofSubmitted(ctx context.Context, user *domain.User, slot *domain.Slot, proofRef string) error
	// NotifyBookingApproved tells the user the booking is confirmed. A failure
	// is surfaced to the admin; the booking stays committed either way.
	NotifyBookingApproved(ctx context.Context, userID int64, slot *domain.Slot) error
	// NotifyBookingRejected tells the user the booking was rejected. Best-effort.
	NotifyBookingRejected(ctx context.Context, userID int64, slot *domain.Slot)
}
