package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/mkorchagin/ConsultBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockSlotRepo, *mocks.MockUserRepo, *mocks.MockSessionStore, *mocks.MockBookingNotifier) {
	t.Helper()
	slotRepo := mocks.NewMockSlotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	sessions := mocks.NewMockSessionStore(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(slotRepo, userRepo, sessions, notifier, 30*time.Minute, log)
	return svc, slotRepo, userRepo, sessions, notifier
}

func TestBookingService_AddSlot_Success(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	created := &domain.Slot{ID: 1, Status: domain.SlotStatusFree}
	slotRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)

	slot, err := svc.AddSlot(context.Background(), "25.12 14:00")

	require.NoError(t, err)
	assert.Equal(t, int64(1), slot.ID)
}

func TestBookingService_AddSlot_BadFormat(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.AddSlot(context.Background(), "tomorrow at noon")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_AddSlot_ImpossibleDate(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.AddSlot(context.Background(), "31.02 10:00")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Claim_Success(t *testing.T) {
	svc, slotRepo, _, sessions, _ := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusPendingReview, UserID: ptrInt64(100)}

	slotRepo.EXPECT().Reserve(mock.Anything, int64(5), int64(100)).Return(nil)
	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	sessions.EXPECT().SetAwaitingProof(int64(100), int64(5)).Return()

	got, err := svc.Claim(context.Background(), 5, 100)

	require.NoError(t, err)
	assert.Equal(t, domain.SlotStatusPendingReview, got.Status)
}

func TestBookingService_Claim_Unavailable(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	slotRepo.EXPECT().Reserve(mock.Anything, int64(5), int64(100)).Return(domain.ErrSlotUnavailable)

	_, err := svc.Claim(context.Background(), 5, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

// Only one of two claimants may win: the repository reserve is conditional,
// so the loser gets ErrSlotUnavailable instead of a second confirmation.
func TestBookingService_Claim_SecondClaimantLoses(t *testing.T) {
	svc, slotRepo, _, sessions, _ := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusPendingReview, UserID: ptrInt64(100)}

	slotRepo.EXPECT().Reserve(mock.Anything, int64(5), int64(100)).Return(nil)
	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	sessions.EXPECT().SetAwaitingProof(int64(100), int64(5)).Return()
	slotRepo.EXPECT().Reserve(mock.Anything, int64(5), int64(200)).Return(domain.ErrSlotUnavailable)

	_, err := svc.Claim(context.Background(), 5, 100)
	require.NoError(t, err)

	_, err = svc.Claim(context.Background(), 5, 200)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_ClaimAt_ExistingSlot(t *testing.T) {
	svc, slotRepo, userRepo, sessions, _ := newBookingService(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	slot := &domain.Slot{ID: 7, StartTime: start, Status: domain.SlotStatusFree}

	userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	slotRepo.EXPECT().GetFreeByStartTime(mock.Anything, start).Return(slot, nil)
	slotRepo.EXPECT().Reserve(mock.Anything, int64(7), int64(100)).Return(nil)
	slotRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(slot, nil)
	sessions.EXPECT().SetAwaitingProof(int64(100), int64(7)).Return()

	got, err := svc.ClaimAt(context.Background(), 100, start)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestBookingService_ClaimAt_CreatesMissingSlot(t *testing.T) {
	svc, slotRepo, userRepo, sessions, _ := newBookingService(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	created := &domain.Slot{ID: 8, StartTime: start, Status: domain.SlotStatusFree}

	userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	slotRepo.EXPECT().GetFreeByStartTime(mock.Anything, start).Return(nil, domain.ErrSlotNotFound)
	slotRepo.EXPECT().Create(mock.Anything, start).Return(created, nil)
	slotRepo.EXPECT().Reserve(mock.Anything, int64(8), int64(100)).Return(nil)
	slotRepo.EXPECT().GetByID(mock.Anything, int64(8)).Return(created, nil)
	sessions.EXPECT().SetAwaitingProof(int64(100), int64(8)).Return()

	got, err := svc.ClaimAt(context.Background(), 100, start)

	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)
}

func TestBookingService_ClaimAt_SlotAlreadyTaken(t *testing.T) {
	svc, slotRepo, userRepo, _, _ := newBookingService(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	slot := &domain.Slot{ID: 7, StartTime: start, Status: domain.SlotStatusFree}

	userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	slotRepo.EXPECT().GetFreeByStartTime(mock.Anything, start).Return(slot, nil)
	slotRepo.EXPECT().Reserve(mock.Anything, int64(7), int64(100)).Return(domain.ErrSlotUnavailable)

	_, err := svc.ClaimAt(context.Background(), 100, start)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_SubmitProof_Success(t *testing.T) {
	svc, slotRepo, userRepo, sessions, notifier := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusPendingReview, UserID: ptrInt64(100)}
	user := &domain.User{ID: 100, Username: "alice"}

	sessions.EXPECT().Get(int64(100)).Return(domain.Session{Stage: domain.StageAwaitingProof, SlotID: 5}, true)
	slotRepo.EXPECT().AttachProof(mock.Anything, int64(5), int64(100), "file123").Return(nil)
	sessions.EXPECT().Clear(int64(100)).Return()
	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(user, nil)
	notifier.EXPECT().NotifyProofSubmitted(mock.Anything, user, slot, "file123").Return(nil)

	got, err := svc.SubmitProof(context.Background(), 100, "file123")

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestBookingService_SubmitProof_NoActiveBooking(t *testing.T) {
	svc, _, _, sessions, _ := newBookingService(t)

	sessions.EXPECT().Get(int64(100)).Return(domain.Session{}, false)

	_, err := svc.SubmitProof(context.Background(), 100, "file123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoActiveBooking)
}

func TestBookingService_SubmitProof_ClaimLostClearsSession(t *testing.T) {
	svc, slotRepo, _, sessions, _ := newBookingService(t)

	sessions.EXPECT().Get(int64(100)).Return(domain.Session{Stage: domain.StageAwaitingProof, SlotID: 5}, true)
	slotRepo.EXPECT().AttachProof(mock.Anything, int64(5), int64(100), "file123").Return(domain.ErrSlotUnavailable)
	sessions.EXPECT().Clear(int64(100)).Return()

	_, err := svc.SubmitProof(context.Background(), 100, "file123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_SubmitProof_NotifyFailed(t *testing.T) {
	svc, slotRepo, userRepo, sessions, notifier := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusPendingReview, UserID: ptrInt64(100)}
	user := &domain.User{ID: 100}

	sessions.EXPECT().Get(int64(100)).Return(domain.Session{Stage: domain.StageAwaitingProof, SlotID: 5}, true)
	slotRepo.EXPECT().AttachProof(mock.Anything, int64(5), int64(100), "file123").Return(nil)
	sessions.EXPECT().Clear(int64(100)).Return()
	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(user, nil)
	notifier.EXPECT().NotifyProofSubmitted(mock.Anything, user, slot, "file123").Return(errors.New("telegram down"))

	got, err := svc.SubmitProof(context.Background(), 100, "file123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotifyFailed)
	assert.NotNil(t, got) // proof is persisted even when the admin is unreachable
}

func TestBookingService_Approve_Success(t *testing.T) {
	svc, slotRepo, _, _, notifier := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusBooked, UserID: ptrInt64(100)}

	slotRepo.EXPECT().Confirm(mock.Anything, int64(5), int64(100)).Return(nil)
	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, int64(100), slot).Return(nil)

	err := svc.Approve(context.Background(), 5, 100)

	require.NoError(t, err)
}

func TestBookingService_Approve_SlotNotFound(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	slotRepo.EXPECT().Confirm(mock.Anything, int64(5), int64(100)).Return(domain.ErrSlotNotFound)

	err := svc.Approve(context.Background(), 5, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBookingService_Approve_AlreadyProcessed(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	slotRepo.EXPECT().Confirm(mock.Anything, int64(5), int64(100)).Return(domain.ErrSlotNotPending)

	err := svc.Approve(context.Background(), 5, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotPending)
}

func TestBookingService_Approve_NotifyFailedStaysBooked(t *testing.T) {
	svc, slotRepo, _, _, notifier := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusBooked, UserID: ptrInt64(100)}

	slotRepo.EXPECT().Confirm(mock.Anything, int64(5), int64(100)).Return(nil)
	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, int64(100), slot).Return(errors.New("telegram down"))

	err := svc.Approve(context.Background(), 5, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotifyFailed)
}

func TestBookingService_Reject_Success(t *testing.T) {
	svc, slotRepo, _, _, notifier := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusPendingReview, UserID: ptrInt64(100)}

	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	slotRepo.EXPECT().Release(mock.Anything, int64(5)).Return(nil)
	notifier.EXPECT().NotifyBookingRejected(mock.Anything, int64(100), slot).Return()

	err := svc.Reject(context.Background(), 5, 100)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

// A stale reject callback arriving after the claim was approved must not free
// the booked slot; it surfaces as "already processed" instead.
func TestBookingService_Reject_AlreadyApproved(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	slot := &domain.Slot{ID: 5, Status: domain.SlotStatusBooked, UserID: ptrInt64(100)}

	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(slot, nil)
	slotRepo.EXPECT().Release(mock.Anything, int64(5)).Return(domain.ErrSlotNotPending)

	err := svc.Reject(context.Background(), 5, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotPending)
}

func TestBookingService_Reject_SlotNotFound(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	slotRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(nil, domain.ErrSlotNotFound)

	err := svc.Reject(context.Background(), 5, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBookingService_Reset_ReleasesHeldSlot(t *testing.T) {
	svc, slotRepo, _, sessions, _ := newBookingService(t)

	sessions.EXPECT().Get(int64(100)).Return(domain.Session{Stage: domain.StageAwaitingProof, SlotID: 5}, true)
	sessions.EXPECT().Clear(int64(100)).Return()
	slotRepo.EXPECT().ReleaseIfHeld(mock.Anything, int64(5), int64(100)).Return(nil)

	err := svc.Reset(context.Background(), 100)

	require.NoError(t, err)
}

func TestBookingService_Reset_Idle(t *testing.T) {
	svc, _, _, sessions, _ := newBookingService(t)

	sessions.EXPECT().Get(int64(100)).Return(domain.Session{}, false)
	sessions.EXPECT().Clear(int64(100)).Return()

	err := svc.Reset(context.Background(), 100)

	require.NoError(t, err)
}

func TestBookingService_ReleaseExpired_Success(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	released := []*domain.Slot{
		{ID: 1, Status: domain.SlotStatusFree},
		{ID: 2, Status: domain.SlotStatusFree},
	}
	slotRepo.EXPECT().ReleaseExpired(mock.Anything, 30*time.Minute).Return(released, nil)

	result, err := svc.ReleaseExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBookingService_ReleaseExpired_RepoError(t *testing.T) {
	svc, slotRepo, _, _, _ := newBookingService(t)

	slotRepo.EXPECT().ReleaseExpired(mock.Anything, 30*time.Minute).Return(nil, errors.New("db error"))

	_, err := svc.ReleaseExpired(context.Background())

	require.Error(t, err)
}

func ptrInt64(v int64) *int64 { return &v }
