package server

import (
	"context"

	"league_table/internal/domain/entity"
	"league_table/internal/domain/value"
	"league_table/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type leagueService interface {
	Render(ctx context.Context, input string, order value.SortOrder, selected string) (entity.View, error)
}

// Server объединяет HTTP-сервера, отвечающие за конкретные поверхности:
// JSON API таблицы и HTML-страницу.
type Server struct {
	LeagueServer
	PageServer
}

func NewServer(
	leagueServer LeagueServer,
	pageServer PageServer,
) Server {
	return Server{
		LeagueServer: leagueServer,
		PageServer:   pageServer,
	}
}
