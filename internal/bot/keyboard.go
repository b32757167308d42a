package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mkorchagin/ConsultBooker/internal/domain"
)

const (
	callbackMainMenu     = "main_menu"
	callbackBook         = "book_consultation"
	callbackAboutMe      = "about_me"
	callbackFAQ          = "faq"
	callbackAddSlot      = "add_slot"
	callbackViewSchedule = "view_schedule"
	callbackSlotPrefix   = "slot_"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Записаться на консультацию", callbackBook),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 Обо мне", callbackAboutMe),
			tgbotapi.NewInlineKeyboardButtonData("❓ FAQ", callbackFAQ),
		),
	)
}

func backToMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Главное меню", callbackMainMenu),
		),
	)
}

// slotsKeyboard lays free slots out two per row, labelled DD.MM HH:MM.
func slotsKeyboard(slots []*domain.Slot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, s := range slots {
		btn := tgbotapi.NewInlineKeyboardButtonData(
			s.FormatStart(),
			fmt.Sprintf("%s%d", callbackSlotPrefix, s.ID),
		)
		row = append(row, btn)
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить слот", callbackAddSlot),
			tgbotapi.NewInlineKeyboardButtonData("👀 Расписание", callbackViewSchedule),
		),
	)
}
