package handler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"league_table/internal/domain"
	"league_table/internal/domain/value"
	"league_table/internal/view"
	"league_table/pkg/logx"
)

var errMissingInput = errors.New("no team rows after the command")

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, StartMessage)
}

// OnTable ranks the rows sent after "/table [asc|desc]" and replies with
// the table and the breakdown of its first team.
func (h *Handler) OnTable(ctx *th.Context, msg telego.Message) error {
	log := logger(ctx).With(slog.Int64(logx.FieldChatID, msg.Chat.ID), slog.String(logx.FieldCommand, "table"))

	reply, err := h.table(ctx, msg.Text)
	if err != nil {
		if message := userMessage(err); message != "" {
			log.Info("table request rejected", logx.Error(err))
			return h.send(ctx, msg.Chat.ID, message)
		}

		log.Error("table request failed", logx.Error(err))

		return h.send(ctx, msg.Chat.ID, TableFailed)
	}

	return h.sendHTML(ctx, msg.Chat.ID, reply)
}

func (h *Handler) table(ctx context.Context, text string) (string, error) {
	order, input, err := ParseTableCommand(text)
	if err != nil {
		return "", err
	}

	result, err := h.svc.Render(ctx, input, order, "")
	if err != nil {
		return "", fmt.Errorf("svc.Render: %w", err)
	}

	if len(result.Teams) == 0 {
		return TableEmpty, nil
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>Sorted table</b> (%s)\n", result.Order))
	sb.WriteString("<pre>" + html.EscapeString(view.Table(result.Teams)) + "</pre>\n")

	if result.Breakdown != nil {
		sb.WriteString("<pre>" + html.EscapeString(view.Breakdown(*result.Breakdown)) + "</pre>")
	}

	return sb.String(), nil
}

// ParseTableCommand splits "/table [order]\nrow\nrow..." into the sort
// order and the rows. A missing order means Descending.
func ParseTableCommand(text string) (value.SortOrder, string, error) {
	command, input, _ := strings.Cut(text, "\n")

	fields := strings.Fields(command)

	var arg string
	if len(fields) > 1 {
		arg = fields[1]
	}

	order, err := value.ParseSortOrder(arg)
	if err != nil {
		return "", "", fmt.Errorf("value.ParseSortOrder: %w", err)
	}

	if strings.TrimSpace(input) == "" {
		return "", "", errMissingInput
	}

	return order, input, nil
}

func userMessage(err error) string {
	if errors.Is(err, errMissingInput) {
		return TableMissingInput
	}

	if domain.IsUserError(err) {
		return domain.UserMessage(err)
	}

	return ""
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
