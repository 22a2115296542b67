package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AllowedChat drops updates from chats other than chatID. A zero chatID
// lets every chat through.
func AllowedChat(chatID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if chatID == 0 || updateChatID(update) == chatID {
			return ctx.Next(update)
		}

		return nil
	}
}

func updateChatID(update telego.Update) int64 {
	if update.Message == nil {
		return 0
	}

	return update.Message.Chat.ID
}
