package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/mkorchagin/ConsultBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService owns the slot state machine:
//
//	free -> pending_review -> booked   (approve)
//	pending_review -> free             (reject, reset, claim expiry)
//
// All status transitions go through conditional repository updates, so a slot
// can be claimed by at most one user regardless of interleaving.
type BookingService struct {
	slotRepo ports.SlotRepo
	userRepo ports.UserRepo
	sessions ports.SessionStore
	notifier ports.BookingNotifier
	claimTTL time.Duration
	logger   logger.Logger
}

func NewBookingService(
	slotRepo ports.SlotRepo,
	userRepo ports.UserRepo,
	sessions ports.SessionStore,
	notifier ports.BookingNotifier,
	claimTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		slotRepo: slotRepo,
		userRepo: userRepo,
		sessions: sessions,
		notifier: notifier,
		claimTTL: claimTTL,
		logger:   logger,
	}
}

// AddSlot creates a free slot from admin input in DD.MM HH:MM format.
func (s *BookingService) AddSlot(ctx context.Context, raw string) (*domain.Slot, error) {
	startTime, err := ParseSlotTime(raw, time.Now())
	if err != nil {
		return nil, err
	}

	return s.CreateSlotAt(ctx, startTime)
}

func (s *BookingService) CreateSlotAt(ctx context.Context, startTime time.Time) (*domain.Slot, error) {
	slot, err := s.slotRepo.Create(ctx, startTime)
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("slot created",
		logger.Int64("slot_id", slot.ID),
		logger.String("start_time", slot.FormatStart()),
	)

	return slot, nil
}

func (s *BookingService) ListFree(ctx context.Context) ([]*domain.Slot, error) {
	return s.slotRepo.ListFree(ctx)
}

func (s *BookingService) Schedule(ctx context.Context) ([]*domain.Slot, error) {
	return s.slotRepo.ListAll(ctx)
}

// Claim atomically reserves a free slot for the user and moves the
// conversation into the payment-pending stage. The conditional update closes
// the window in which two users could both be told the slot is theirs.
func (s *BookingService) Claim(ctx context.Context, slotID, userID int64) (*domain.Slot, error) {
	if err := s.slotRepo.Reserve(ctx, slotID, userID); err != nil {
		return nil, err
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get claimed slot: %w", err)
	}

	s.sessions.SetAwaitingProof(userID, slotID)

	s.logger.Info("slot claimed",
		logger.Int64("slot_id", slotID),
		logger.Int64("user_id", userID),
	)

	return slot, nil
}

// ClaimAt is the calendar-picker entry point. A raw date/time is first
// resolved to a canonical slot record (created if absent), then claimed
// through the same path as a direct pick.
func (s *BookingService) ClaimAt(ctx context.Context, userID int64, startTime time.Time) (*domain.Slot, error) {
	// first contact may happen through the picker, before any /start
	if err := s.userRepo.Upsert(ctx, &domain.User{ID: userID, CreatedAt: time.Now().UTC()}); err != nil {
		return nil, fmt.Errorf("register picker user: %w", err)
	}

	slot, err := s.slotRepo.GetFreeByStartTime(ctx, startTime)
	if errors.Is(err, domain.ErrSlotNotFound) {
		slot, err = s.CreateSlotAt(ctx, startTime)
	}
	if err != nil {
		return nil, err
	}

	return s.Claim(ctx, slot.ID, userID)
}

// SubmitProof attaches the payment proof to the user's claimed slot and
// forwards it to the admin. The session is cleared whether or not the admin
// could be reached; delivery failure is reported to the caller, not retried.
func (s *BookingService) SubmitProof(ctx context.Context, userID int64, proofRef string) (*domain.Slot, error) {
	sess, ok := s.sessions.Get(userID)
	if !ok || sess.Stage != domain.StageAwaitingProof {
		return nil, domain.ErrNoActiveBooking
	}

	if err := s.slotRepo.AttachProof(ctx, sess.SlotID, userID, proofRef); err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			s.sessions.Clear(userID)
		}
		return nil, err
	}

	s.sessions.Clear(userID)

	slot, err := s.slotRepo.GetByID(ctx, sess.SlotID)
	if err != nil {
		return nil, fmt.Errorf("get slot after proof: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user for review: %w", err)
	}

	s.logger.Info("proof submitted",
		logger.Int64("slot_id", slot.ID),
		logger.Int64("user_id", userID),
	)

	if err := s.notifier.NotifyProofSubmitted(ctx, user, slot, proofRef); err != nil {
		s.logger.Error("failed to forward proof to admin",
			logger.Int64("slot_id", slot.ID),
			logger.String("error", err.Error()),
		)
		return slot, fmt.Errorf("%w: %v", domain.ErrNotifyFailed, err)
	}

	return slot, nil
}

// Approve finalizes a pending booking. A delivery failure on the confirmation
// notice is surfaced to the caller as ErrNotifyFailed; the slot stays booked.
func (s *BookingService) Approve(ctx context.Context, slotID, userID int64) error {
	if err := s.slotRepo.Confirm(ctx, slotID, userID); err != nil {
		return err
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return fmt.Errorf("get approved slot: %w", err)
	}

	s.logger.Info("booking approved",
		logger.Int64("slot_id", slotID),
		logger.Int64("user_id", userID),
	)

	if err := s.notifier.NotifyBookingApproved(ctx, userID, slot); err != nil {
		s.logger.Error("failed to notify user about approval",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", domain.ErrNotifyFailed, err)
	}

	return nil
}

// Reject resets the slot to free, making it bookable again. The rejection
// notice is best-effort.
func (s *BookingService) Reject(ctx context.Context, slotID, userID int64) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}

	if err := s.slotRepo.Release(ctx, slotID); err != nil {
		return err
	}

	s.logger.Info("booking rejected",
		logger.Int64("slot_id", slotID),
		logger.Int64("user_id", userID),
	)

	go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), userID, slot)

	return nil
}

// Reset clears the user's conversation state and releases their claimed slot
// if they still hold one.
func (s *BookingService) Reset(ctx context.Context, userID int64) error {
	sess, ok := s.sessions.Get(userID)
	s.sessions.Clear(userID)

	if !ok || sess.Stage != domain.StageAwaitingProof {
		return nil
	}

	if err := s.slotRepo.ReleaseIfHeld(ctx, sess.SlotID, userID); err != nil {
		return fmt.Errorf("release on reset: %w", err)
	}

	return nil
}

// ReleaseExpired frees claims that sat in pending_review longer than the
// configured TTL. Called by the scheduler.
func (s *BookingService) ReleaseExpired(ctx context.Context) ([]*domain.Slot, error) {
	released, err := s.slotRepo.ReleaseExpired(ctx, s.claimTTL)
	if err != nil {
		return nil, fmt.Errorf("release expired: %w", err)
	}

	if len(released) > 0 {
		s.logger.Info("expired claims released",
			logger.Int("count", len(released)),
		)
	}

	return released, nil
}
