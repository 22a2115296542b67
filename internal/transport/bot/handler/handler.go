package handler

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

type Handler struct {
	svc leagueService
}

func New(svc leagueService) *Handler {
	return &Handler{
		svc: svc,
	}
}
