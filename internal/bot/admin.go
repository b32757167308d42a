package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/mkorchagin/ConsultBooker/internal/notification"
	"github.com/wb-go/wbf/logger"
)

func parseDecisionCallback(data string) (slotID, userID int64, approve, ok bool) {
	return notification.ParseDecision(data)
}

func (b *Bot) handleAddSlotStart(cb *tgbotapi.CallbackQuery) {
	if !b.isAdmin(cb.From.ID) {
		b.answerCallback(cb.ID, "", false)
		return
	}

	b.sessions.SetAwaitingSlotTime(cb.From.ID)
	b.send(tgbotapi.NewMessage(cb.Message.Chat.ID, "Введите дату и время (ДД.ММ ЧЧ:ММ):"))
	b.answerCallback(cb.ID, "", false)
}

// handleAddSlotInput parses the entered date/time. Malformed input re-prompts
// and keeps the stage.
func (b *Bot) handleAddSlotInput(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		return
	}

	slot, err := b.booking.AddSlot(ctx, msg.Text)
	switch {
	case errors.Is(err, domain.ErrValidation):
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ Неверный формат. Используйте ДД.ММ ЧЧ:ММ (например, 25.12 14:00)"))
		return
	case err != nil:
		b.logger.Error("add slot failed",
			logger.String("error", err.Error()),
		)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Не удалось добавить слот, попробуйте позже."))
		return
	}

	b.sessions.Clear(msg.From.ID)
	b.send(tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("✅ Слот добавлен: %s", slot.FormatStart())))
}

func (b *Bot) handleViewSchedule(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if !b.isAdmin(cb.From.ID) {
		b.answerCallback(cb.ID, "", false)
		return
	}

	slots, err := b.booking.Schedule(ctx)
	if err != nil {
		b.logger.Error("schedule failed",
			logger.String("error", err.Error()),
		)
		b.answerCallback(cb.ID, "Что-то пошло не так, попробуйте позже.", true)
		return
	}

	if len(slots) == 0 {
		b.send(tgbotapi.NewMessage(cb.Message.Chat.ID, "📅 Расписание пусто."))
		b.answerCallback(cb.ID, "", false)
		return
	}

	var sb strings.Builder
	sb.WriteString("📅 Расписание:\n\n")
	for _, s := range slots {
		sb.WriteString(fmt.Sprintf("%s — %s%s\n",
			s.FormatStart(), scheduleStatus(s.Status), b.slotOwner(ctx, s)))
	}

	b.send(tgbotapi.NewMessage(cb.Message.Chat.ID, sb.String()))
	b.answerCallback(cb.ID, "", false)
}

// slotOwner renders who holds a taken slot. Lookup failures degrade to the
// bare user id rather than hiding the line.
func (b *Bot) slotOwner(ctx context.Context, s *domain.Slot) string {
	if s.UserID == nil {
		return ""
	}

	user, err := b.users.GetByID(ctx, *s.UserID)
	if err != nil || user.Username == "" {
		return fmt.Sprintf(" (ID: %d)", *s.UserID)
	}

	return fmt.Sprintf(" (@%s)", user.Username)
}

func scheduleStatus(status domain.SlotStatus) string {
	switch status {
	case domain.SlotStatusBooked:
		return "🔴 Занят"
	case domain.SlotStatusPendingReview:
		return "🟡 Ожидает подтверждения"
	default:
		return "🟢 Свободен"
	}
}

// handleDecision applies the admin's approve/reject and records it on the
// proof card. Decision errors are surfaced back to the admin; a failed user
// notice after approval does not undo the booking.
func (b *Bot) handleDecision(ctx context.Context, cb *tgbotapi.CallbackQuery, slotID, userID int64, approve bool) {
	if !b.isAdmin(cb.From.ID) {
		b.answerCallback(cb.ID, "", false)
		return
	}

	var err error
	verdict := "❌ ОТКЛОНЕНО"
	if approve {
		verdict = "✅ ПОДТВЕРЖДЕНО"
		err = b.booking.Approve(ctx, slotID, userID)
	} else {
		err = b.booking.Reject(ctx, slotID, userID)
	}

	switch {
	case errors.Is(err, domain.ErrSlotNotFound):
		b.answerCallback(cb.ID, "Слот не найден.", true)
		return
	case errors.Is(err, domain.ErrSlotNotPending):
		b.answerCallback(cb.ID, "Заявка уже обработана.", true)
		return
	case errors.Is(err, domain.ErrNotifyFailed):
		// decision is committed, only the user notice failed
		b.send(tgbotapi.NewMessage(cb.Message.Chat.ID,
			fmt.Sprintf("Не удалось уведомить пользователя %d", userID)))
	case err != nil:
		b.logger.Error("decision failed",
			logger.Int64("slot_id", slotID),
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
		b.answerCallback(cb.ID, "Что-то пошло не так, попробуйте позже.", true)
		return
	}

	edit := tgbotapi.NewEditMessageCaption(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		fmt.Sprintf("%s\n\n%s", cb.Message.Caption, verdict),
	)
	b.send(edit)
	b.answerCallback(cb.ID, "", false)
}
