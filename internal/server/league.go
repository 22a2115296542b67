package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"league_table/internal/domain/value"
	"league_table/pkg/httpx/reply"
	"league_table/pkg/httpx/req"
	"league_table/pkg/logx"
	"league_table/pkg/rest"
)

type LeagueServer struct {
	leagueService leagueService
}

func NewLeagueServer(leagueService leagueService) LeagueServer {
	return LeagueServer{
		leagueService: leagueService,
	}
}

func (s LeagueServer) postV1LeagueTable(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.LeagueTableRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	order, err := value.ParseSortOrder(request.Order)
	if err != nil {
		return fmt.Errorf("value.ParseSortOrder: %w", err)
	}

	view, err := s.leagueService.Render(ctx, request.Input, order, request.Team)
	if err != nil {
		return fmt.Errorf("leagueService.Render: %w", err)
	}

	logger(ctx).Info("league table rendered",
		logx.Stringer(logx.FieldSortOrder, view.Order),
		slog.Int(logx.FieldTeams, len(view.Teams)),
		slog.String(logx.FieldSelectedTeam, view.Selected),
	)

	reply.JSON(ctx, w, http.StatusOK, newRESTLeagueTable(view))

	return nil
}
