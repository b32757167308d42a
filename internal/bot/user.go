package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const welcomePhotoURL = "https://placehold.co/800x500/FF5733/ffffff.png?text=Добро+пожаловать!"

const welcomeCaption = "Добро пожаловать! Я консультирую только ОНЛАЙН.\n" +
	"Платформа: Google Meet\n" +
	"Стоимость: 5000₽\n" +
	"Чтобы записаться, нажмите кнопку ниже."

const aboutText = `👤 Обо мне

Я — профессиональный консультант с многолетним опытом работы.

📍 Работаю только онлайн через Google Meet.
💰 Стоимость консультации: 5000₽

По всем вопросам пишите в личные сообщения.`

const faqText = `❓ Часто задаваемые вопросы

1. Как проходит консультация?
Онлайн через Google Meet, ссылка приходит после подтверждения записи.

2. Как оплатить?
После выбора времени вы получите реквизиты. Отправьте скриншот оплаты — и запись уйдёт на подтверждение.

3. Можно ли перенести запись?
Да, свяжитесь со мной минимум за 24 часа до консультации.`

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	sess, ok := b.sessions.Get(msg.From.ID)
	if !ok {
		return
	}

	switch sess.Stage {
	case domain.StageAwaitingSlotTime:
		b.handleAddSlotInput(ctx, msg)
	case domain.StageAwaitingProof:
		b.handleProofInput(ctx, msg)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		if _, err := b.users.Ensure(ctx, msg.From.ID, msg.From.UserName, fullName(msg.From)); err != nil {
			b.logger.Error("failed to register user",
				logger.Int64("user_id", msg.From.ID),
				logger.String("error", err.Error()),
			)
			b.send(tgbotapi.NewMessage(msg.Chat.ID, "Что-то пошло не так, попробуйте позже."))
			return
		}
		b.sendWelcome(msg.Chat.ID)
	case "admin":
		if !b.isAdmin(msg.From.ID) {
			return
		}
		reply := tgbotapi.NewMessage(msg.Chat.ID, "🔧 Панель администратора")
		reply.ReplyMarkup = adminMenuKeyboard()
		b.send(reply)
	}
}

func (b *Bot) sendWelcome(chatID int64) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(welcomePhotoURL))
	photo.Caption = welcomeCaption
	photo.ReplyMarkup = mainMenuKeyboard()
	b.send(photo)
}

// handleProofInput is the only stage with input-type validation: anything but
// a photo keeps the stage and re-prompts.
func (b *Bot) handleProofInput(ctx context.Context, msg *tgbotapi.Message) {
	if len(msg.Photo) == 0 {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Пожалуйста, отправьте изображение (скриншот оплаты)."))
		return
	}

	// The last entry is the largest resolution.
	proofRef := msg.Photo[len(msg.Photo)-1].FileID

	_, err := b.booking.SubmitProof(ctx, msg.From.ID, proofRef)
	switch {
	case errors.Is(err, domain.ErrSlotUnavailable):
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Ошибка: этот слот больше недоступен."))
	case errors.Is(err, domain.ErrNoActiveBooking):
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Нет активной заявки. Начните с выбора слота."))
	case errors.Is(err, domain.ErrNotifyFailed):
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Ошибка при отправке админу. Попробуйте позже."))
	case err != nil:
		b.logger.Error("submit proof failed",
			logger.Int64("user_id", msg.From.ID),
			logger.String("error", err.Error()),
		)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "Что-то пошло не так, попробуйте позже."))
	default:
		reply := tgbotapi.NewMessage(msg.Chat.ID, "✅ Скриншот получен! Ожидайте подтверждения от администратора.")
		reply.ReplyMarkup = backToMenuKeyboard()
		b.send(reply)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		return
	}

	if slotID, userID, approve, ok := parseDecisionCallback(cb.Data); ok {
		b.handleDecision(ctx, cb, slotID, userID, approve)
		return
	}

	switch {
	case cb.Data == callbackMainMenu:
		if err := b.booking.Reset(ctx, cb.From.ID); err != nil {
			b.logger.Error("reset failed",
				logger.Int64("user_id", cb.From.ID),
				logger.String("error", err.Error()),
			)
		}
		b.sendWelcome(cb.Message.Chat.ID)
		b.answerCallback(cb.ID, "", false)

	case cb.Data == callbackBook:
		b.handleBookRequest(ctx, cb)

	case cb.Data == callbackAboutMe:
		reply := tgbotapi.NewMessage(cb.Message.Chat.ID, aboutText)
		reply.ReplyMarkup = backToMenuKeyboard()
		b.send(reply)
		b.answerCallback(cb.ID, "", false)

	case cb.Data == callbackFAQ:
		reply := tgbotapi.NewMessage(cb.Message.Chat.ID, faqText)
		reply.ReplyMarkup = backToMenuKeyboard()
		b.send(reply)
		b.answerCallback(cb.ID, "", false)

	case strings.HasPrefix(cb.Data, callbackSlotPrefix):
		b.handleSlotPick(ctx, cb)

	case cb.Data == callbackAddSlot:
		b.handleAddSlotStart(cb)

	case cb.Data == callbackViewSchedule:
		b.handleViewSchedule(ctx, cb)
	}
}

func (b *Bot) handleBookRequest(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	slots, err := b.booking.ListFree(ctx)
	if err != nil {
		b.logger.Error("list free slots failed",
			logger.String("error", err.Error()),
		)
		b.answerCallback(cb.ID, "Что-то пошло не так, попробуйте позже.", true)
		return
	}

	if len(slots) == 0 {
		b.answerCallback(cb.ID, "Нет доступных слотов.", true)
		return
	}

	reply := tgbotapi.NewMessage(cb.Message.Chat.ID, "Выберите удобное время:")
	reply.ReplyMarkup = slotsKeyboard(slots)
	b.send(reply)
	b.answerCallback(cb.ID, "", false)
}

func (b *Bot) handleSlotPick(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	slotID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, callbackSlotPrefix), 10, 64)
	if err != nil {
		b.answerCallback(cb.ID, "", false)
		return
	}

	slot, err := b.booking.Claim(ctx, slotID, cb.From.ID)
	switch {
	case errors.Is(err, domain.ErrSlotUnavailable):
		b.answerCallback(cb.ID, "Слот уже занят.", true)
		return
	case err != nil:
		b.logger.Error("claim failed",
			logger.Int64("slot_id", slotID),
			logger.Int64("user_id", cb.From.ID),
			logger.String("error", err.Error()),
		)
		b.answerCallback(cb.ID, "Что-то пошло не так, попробуйте позже.", true)
		return
	}

	edit := tgbotapi.NewEditMessageText(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		fmt.Sprintf(
			"Вы выбрали: %s.\n"+
				"Оплатите по ссылке: [Ссылка на оплату].\n"+
				"Отправьте скриншот оплаты для подтверждения.",
			slot.FormatStart(),
		),
	)
	b.send(edit)
	b.answerCallback(cb.ID, "", false)
}

func fullName(u *tgbotapi.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
