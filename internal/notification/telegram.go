package notification

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Callback payloads of the admin review card. The bot package parses these
// back with ParseDecision.
const (
	approveCallbackPrefix = "approve_"
	rejectCallbackPrefix  = "reject_"
)

func ApproveCallback(slotID, userID int64) string {
	return fmt.Sprintf("%s%d_%d", approveCallbackPrefix, slotID, userID)
}

func RejectCallback(slotID, userID int64) string {
	return fmt.Sprintf("%s%d_%d", rejectCallbackPrefix, slotID, userID)
}

// ParseDecision extracts a review decision from callback data. ok is false
// for unrelated payloads.
func ParseDecision(data string) (slotID, userID int64, approve, ok bool) {
	switch {
	case strings.HasPrefix(data, approveCallbackPrefix):
		approve = true
		data = strings.TrimPrefix(data, approveCallbackPrefix)
	case strings.HasPrefix(data, rejectCallbackPrefix):
		data = strings.TrimPrefix(data, rejectCallbackPrefix)
	default:
		return 0, 0, false, false
	}

	parts := strings.Split(data, "_")
	if len(parts) != 2 {
		return 0, 0, false, false
	}

	slotID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false, false
	}
	userID, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false, false
	}

	return slotID, userID, approve, true
}

type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, adminChatID int64, logger logger.Logger) *TelegramNotifier {
	if bot == nil {
		logger.Warn("telegram bot is not configured, notifications disabled")
	}
	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}
}

// NotifyProofSubmitted sends the payment screenshot to the admin with an
// approve/reject keyboard. The error is propagated: the user is told when the
// admin could not be reached.
func (n *TelegramNotifier) NotifyProofSubmitted(ctx context.Context, user *domain.User, slot *domain.Slot, proofRef string) error {
	if n.bot == nil {
		return fmt.Errorf("telegram notifications disabled")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	caption := fmt.Sprintf(
		"🆕 Новая заявка на бронирование!\n"+
			"Пользователь: @%s (ID: %d)\n"+
			"Слот: %s\n"+
			"Подтвердить?",
		user.Username, user.ID, slot.FormatStart(),
	)

	photo := tgbotapi.NewPhoto(n.adminChatID, tgbotapi.FileID(proofRef))
	photo.Caption = caption
	photo.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Подтвердить", ApproveCallback(slot.ID, user.ID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отклонить", RejectCallback(slot.ID, user.ID)),
		),
	)

	if _, err := n.bot.Send(photo); err != nil {
		return fmt.Errorf("send proof to admin: %w", err)
	}

	return nil
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, userID int64, slot *domain.Slot) error {
	if n.bot == nil {
		return fmt.Errorf("telegram notifications disabled")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	text := fmt.Sprintf(
		"✅ Ваша запись на %s подтверждена! Ждём вас здесь: [Ссылка на встречу]",
		slot.FormatStart(),
	)

	if _, err := n.bot.Send(tgbotapi.NewMessage(userID, text)); err != nil {
		return fmt.Errorf("send approval notice: %w", err)
	}

	return nil
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, userID int64, slot *domain.Slot) {
	if n.bot == nil {
		n.logger.Debug("rejection notice skipped (bot disabled)",
			logger.Int64("user_id", userID),
		)
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}

	text := fmt.Sprintf(
		"❌ Ваша заявка на %s отклонена. Свяжитесь с администратором, если это ошибка.",
		slot.FormatStart(),
	)

	if _, err := n.bot.Send(tgbotapi.NewMessage(userID, text)); err != nil {
		n.logger.Error("failed to send rejection notice",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
}
