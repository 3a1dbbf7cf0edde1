package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"guesschar/internal/admin"
)

// API is the slice of the Telegram client the handlers need. Keeping it
// narrow lets tests run against a fake; *tgbotapi.BotAPI satisfies it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// Lookup adapts the Telegram getChatMember call to admin.MemberLookup.
type Lookup struct {
	api API
}

func NewLookup(api API) *Lookup {
	return &Lookup{api: api}
}

func (l *Lookup) GetRole(ctx context.Context, chatID, userID int64) (admin.Role, error) {
	member, err := l.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return admin.RoleUnknown, err
	}
	return admin.ParseRole(member.Status), nil
}
