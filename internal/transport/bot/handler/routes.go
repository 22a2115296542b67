package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"league_table/internal/transport/bot/middleware"
)

// RegisterRoutes wires the commands. allowedChatID limits the bot to one
// chat; zero leaves it open.
func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChatID int64) {
	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AllowedChat(allowedChatID))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStart, th.CommandEqual("help"))
	group.HandleMessage(h.OnTable, th.CommandEqual("table"))
}
