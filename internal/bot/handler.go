package bot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"guesschar/internal/admin"
	"guesschar/internal/game"
)

// Handler routes inbound Telegram updates to the game manager. Every
// error it detects is terminal for the current event only: it renders a
// user-facing message and the loop moves on.
type Handler struct {
	api      API
	games    *game.Manager
	resolver *admin.Resolver
	log      zerolog.Logger
}

func New(api API, games *game.Manager, resolver *admin.Resolver, log zerolog.Logger) *Handler {
	return &Handler{api: api, games: games, resolver: resolver, log: log}
}

// HandleUpdate classifies one inbound update and dispatches it.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	}
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	private := msg.Chat.IsPrivate()
	if msg.IsCommand() {
		h.handleCommand(ctx, msg, private)
		return
	}
	if private {
		h.handleSubjectInput(msg)
		return
	}
	h.handleGroupText(msg)
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message, private bool) {
	switch msg.Command() {
	case "start", "help":
		if private {
			h.reply(msg.Chat.ID, privateHelpText)
		} else {
			h.reply(msg.Chat.ID, groupHelpText)
		}
	case "startgame":
		if private {
			h.reply(msg.Chat.ID, privateHelpText)
			return
		}
		h.handleStartGame(msg)
	case "endgame":
		if private {
			h.reply(msg.Chat.ID, noGameText)
			return
		}
		h.handleEndGame(ctx, msg)
	case "status":
		if private {
			h.reply(msg.Chat.ID, noGameText)
			return
		}
		h.handleStatus(msg)
	case "mygame":
		if !private {
			h.reply(msg.Chat.ID, myGameInGroupText)
			return
		}
		h.handleMyGame(msg)
	}
}

func (h *Handler) handleStartGame(msg *tgbotapi.Message) {
	s, err := h.games.StartGame(msg.Chat.ID, msg.From.ID, msg.From.UserName)
	if err != nil {
		h.reply(msg.Chat.ID, gameInProgressText)
		return
	}
	h.log.Info().Str("session", s.ID).Int64("chat", s.ChatID).Int64("host", s.HostID).Msg("game started")
	h.reply(msg.Chat.ID, fmt.Sprintf(gameStartedFmt, displayName(s.HostID, s.HostName)))
}

func (h *Handler) handleEndGame(ctx context.Context, msg *tgbotapi.Message) {
	chatID, actorID := msg.Chat.ID, msg.From.ID

	s, ok := h.games.Get(chatID)
	if !ok {
		h.reply(chatID, noGameText)
		return
	}

	// Resolve privilege before EndGame takes the registry lock; the
	// lookup is a network round trip.
	privileged := false
	if s.HostID != actorID {
		privileged = h.resolver.IsPrivileged(ctx, chatID, actorID)
	}

	final, err := h.games.EndGame(chatID, actorID, privileged)
	switch {
	case errors.Is(err, game.ErrNoGame):
		h.reply(chatID, noGameText)
	case errors.Is(err, game.ErrNotAllowed):
		h.reply(chatID, endNotAllowedText)
	case err == nil:
		h.log.Info().Str("session", final.ID).Int64("chat", chatID).Int64("actor", actorID).Msg("game ended")
		switch {
		case final.Subject == "":
			h.reply(chatID, stoppedBeforeSubjectText)
		case final.WinnerName != "":
			h.reply(chatID, fmt.Sprintf(gameOverWinnerFmt, final.WinnerName, final.Subject))
		default:
			h.reply(chatID, fmt.Sprintf(gameOverFmt, final.Subject))
		}
	}
}

func (h *Handler) handleStatus(msg *tgbotapi.Message) {
	s, ok := h.games.Get(msg.Chat.ID)
	if !ok {
		h.reply(msg.Chat.ID, noGameText)
		return
	}
	host := displayName(s.HostID, s.HostName)
	switch s.State {
	case game.StateAwaitingSubject:
		h.reply(msg.Chat.ID, fmt.Sprintf(statusAwaitingFmt, host))
	case game.StateActive:
		h.reply(msg.Chat.ID, fmt.Sprintf(statusActiveFmt, host))
	}
}

func (h *Handler) handleMyGame(msg *tgbotapi.Message) {
	s, err := h.games.ArmSubjectEntry(msg.From.ID)
	if err != nil {
		h.reply(msg.Chat.ID, noHostedGameText)
		return
	}
	h.log.Info().Str("session", s.ID).Int64("chat", s.ChatID).Msg("subject entry armed")
	h.reply(msg.Chat.ID, sendSubjectText)
}

// handleSubjectInput consumes private free text while the sender is mid
// subject entry. Other private chatter is ignored.
func (h *Handler) handleSubjectInput(msg *tgbotapi.Message) {
	userID := msg.From.ID
	if _, ok := h.games.FindByHost(userID, func(s game.Session) bool {
		return s.State == game.StateAwaitingSubject && s.EntryArmed
	}); !ok {
		return
	}

	s, err := h.games.CommitSubject(userID, msg.Text)
	if errors.Is(err, game.ErrEmptySubject) {
		h.reply(msg.Chat.ID, emptySubjectText)
		return
	}
	if err != nil {
		h.reply(msg.Chat.ID, commitFailedText)
		return
	}

	h.log.Info().Str("session", s.ID).Int64("chat", s.ChatID).Msg("subject committed")
	h.reply(msg.Chat.ID, fmt.Sprintf(subjectSavedFmt, s.Subject))

	// Best effort: the subject is already committed even if the group
	// cannot be reached.
	if err := h.send(tgbotapi.NewMessage(s.ChatID, subjectChosenText)); err != nil {
		h.reply(msg.Chat.ID, fmt.Sprintf(notifyFailedFmt, err))
	}
}

func (h *Handler) handleGroupText(msg *tgbotapi.Message) {
	s, ok := h.games.Get(msg.Chat.ID)
	if !ok || s.State != game.StateActive {
		return
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	if !game.IsQuestion(text) {
		return
	}

	asker := displayName(msg.From.ID, msg.From.UserName)
	out := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf(questionFmt, asker, text))
	out.ParseMode = tgbotapi.ModeHTML
	out.ReplyMarkup = answerKeyboard()
	if _, err := h.api.Send(out); err != nil {
		// Markup can be rejected; the question still gets echoed.
		h.log.Warn().Err(err).Int64("chat", msg.Chat.ID).Msg("question send with markup failed")
		h.reply(msg.Chat.ID, fmt.Sprintf(questionFmt, asker, text))
	}
}

func (h *Handler) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.Message.Chat == nil {
		h.ack(cq.ID, "")
		return
	}
	answer, ok := game.ParseAnswerData(cq.Data)
	if !ok {
		h.ack(cq.ID, "")
		return
	}

	chatID := cq.Message.Chat.ID
	s, found := h.games.Get(chatID)
	if !found || s.State != game.StateActive {
		h.ack(cq.ID, "")
		return
	}
	if s.HostID != cq.From.ID {
		h.ack(cq.ID, hostOnlyAnswerText)
		return
	}

	if answer == game.AnswerGuessed {
		h.concludeGuessed(cq, s)
		return
	}

	// Editing drops the inline keyboard along with appending the answer.
	updated := fmt.Sprintf(answerFmt, cq.Message.Text, answer.Label())
	if err := h.editMessage(chatID, cq.Message.MessageID, updated); err != nil {
		h.log.Warn().Err(err).Int64("chat", chatID).Msg("answer render failed")
	}
	h.ack(cq.ID, "")
}

func (h *Handler) concludeGuessed(cq *tgbotapi.CallbackQuery, s game.Session) {
	winner := displayName(cq.From.ID, cq.From.UserName)
	final, err := h.games.ConcludeGuessed(s.ChatID, cq.From.ID, winner)
	if err != nil {
		h.ack(cq.ID, "")
		return
	}

	h.log.Info().Str("session", final.ID).Int64("chat", final.ChatID).Msg("subject guessed")
	updated := fmt.Sprintf(guessedEditFmt, cq.Message.Text, final.Subject)
	if err := h.editMessage(final.ChatID, cq.Message.MessageID, updated); err != nil {
		h.log.Warn().Err(err).Int64("chat", final.ChatID).Msg("guess render failed")
	}
	h.reply(final.ChatID, fmt.Sprintf(guessedAnnounceFmt, winner, final.Subject))
	h.ack(cq.ID, "")
}

func (h *Handler) editMessage(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := h.api.Send(edit)
	return err
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if err := h.send(msg); err != nil {
		h.log.Warn().Err(err).Int64("chat", chatID).Msg("send failed")
	}
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	_, err := h.api.Send(c)
	return err
}

func (h *Handler) ack(callbackID, text string) {
	if _, err := h.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.log.Warn().Err(err).Msg("callback ack failed")
	}
}

func displayName(id int64, username string) string {
	if username != "" {
		return "@" + username
	}
	return fmt.Sprintf("ID %d", id)
}
