package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type BookingSvc interface {
	ListFree(ctx context.Context) ([]*domain.Slot, error)
	Schedule(ctx context.Context) ([]*domain.Slot, error)
	AddSlot(ctx context.Context, raw string) (*domain.Slot, error)
	Claim(ctx context.Context, slotID, userID int64) (*domain.Slot, error)
	SubmitProof(ctx context.Context, userID int64, proofRef string) (*domain.Slot, error)
	Approve(ctx context.Context, slotID, userID int64) error
	Reject(ctx context.Context, slotID, userID int64) error
	Reset(ctx context.Context, userID int64) error
}

type UserSvc interface {
	Ensure(ctx context.Context, id int64, username, fullName string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type SessionStore interface {
	Get(userID int64) (domain.Session, bool)
	SetAwaitingSlotTime(userID int64)
	Clear(userID int64)
}

// AdminGate decides whether an actor may manage slots and review bookings.
type AdminGate func(userID int64) bool

// Bot is the Telegram front end. It translates updates into service calls and
// renders the results; all booking decisions live in the service layer.
type Bot struct {
	api      *tgbotapi.BotAPI
	booking  BookingSvc
	users    UserSvc
	sessions SessionStore
	isAdmin  AdminGate
	logger   logger.Logger
}

func New(
	api *tgbotapi.BotAPI,
	booking BookingSvc,
	users UserSvc,
	sessions SessionStore,
	isAdmin AdminGate,
	logger logger.Logger,
) *Bot {
	return &Bot{
		api:      api,
		booking:  booking,
		users:    users,
		sessions: sessions,
		isAdmin:  isAdmin,
		logger:   logger,
	}
}

// Run polls Telegram until the context is cancelled. Updates are handled to
// completion one at a time.
func (b *Bot) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	updates := b.api.GetUpdatesChan(cfg)

	b.logger.Info("telegram bot started",
		logger.String("username", b.api.Self.UserName),
	)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic in update handler",
				logger.Any("panic", r),
			)
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error("failed to send message",
			logger.String("error", err.Error()),
		)
	}
}

func (b *Bot) answerCallback(id, text string, alert bool) {
	cb := tgbotapi.NewCallback(id, text)
	cb.ShowAlert = alert
	if _, err := b.api.Request(cb); err != nil {
		b.logger.Error("failed to answer callback",
			logger.String("error", err.Error()),
		)
	}
}
