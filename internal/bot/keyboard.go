package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"guesschar/internal/game"
)

// answerKeyboard builds the inline keyboard attached to every admitted
// question. One button per row, matching the fixed answer set.
func answerKeyboard() tgbotapi.InlineKeyboardMarkup {
	answers := []game.Answer{
		game.AnswerYes,
		game.AnswerNo,
		game.AnswerDontKnow,
		game.AnswerPartially,
		game.AnswerGuessed,
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(a.Label(), a.CallbackData()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
