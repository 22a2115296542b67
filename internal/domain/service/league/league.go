package league

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"league_table/internal/domain"
	"league_table/internal/domain/entity"
	"league_table/internal/domain/service/parser"
	"league_table/internal/domain/service/ranking"
	"league_table/internal/domain/value"
	"league_table/pkg/contextx"
	"league_table/pkg/logx"
)

const (
	defaultCacheTTL        = 5 * time.Minute
	defaultCacheCleanup    = 10 * time.Minute
	defaultCacheMaxEntries = 1024
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Service runs the league pipeline: parse, check the size limit, rank and
// build the chart of the selected team. Ranked tables are memoized per
// input and order; nothing else is kept between calls.
type Service struct {
	tables     *cache.Cache
	maxEntries int
}

func NewService() *Service {
	return &Service{
		tables:     cache.New(defaultCacheTTL, defaultCacheCleanup),
		maxEntries: defaultCacheMaxEntries,
	}
}

// WithCache replaces the result cache expiration settings.
func (s *Service) WithCache(ttl, cleanup time.Duration) *Service {
	s.tables = cache.New(ttl, cleanup)
	return s
}

// WithCacheLimit caps the number of memoized tables. Once full, new tables
// are ranked but not stored until entries expire.
func (s *Service) WithCacheLimit(maxEntries int) *Service {
	s.maxEntries = maxEntries
	return s
}

// CachedTables returns the number of memoized tables, expired ones not yet
// cleaned up included.
func (s *Service) CachedTables() int {
	return s.tables.ItemCount()
}

// Render produces the full view for one submission. An empty selected name
// picks the first team of the ranked table.
func (s *Service) Render(
	ctx context.Context,
	input string,
	order value.SortOrder,
	selected string,
) (entity.View, error) {
	teams, err := s.Table(ctx, input, order)
	if err != nil {
		rendersTotal.WithLabelValues(order.String(), resultError).Inc()
		return entity.View{}, fmt.Errorf("table: %w", err)
	}

	view := entity.View{
		Order: order,
		Teams: teams,
		Names: lo.Map(teams, func(team entity.Team, _ int) string { return team.Name }),
	}

	if len(teams) > 0 {
		name := lo.Ternary(selected == "", teams[0].Name, selected)

		team, ok := FindByName(teams, name)
		if !ok {
			rendersTotal.WithLabelValues(order.String(), resultError).Inc()
			return entity.View{}, domain.NewTeamNotFoundError(name)
		}

		breakdown := NewBreakdown(team)
		view.Selected = team.Name
		view.Breakdown = &breakdown
	} else if selected != "" {
		rendersTotal.WithLabelValues(order.String(), resultError).Inc()
		return entity.View{}, domain.NewTeamNotFoundError(selected)
	}

	rendersTotal.WithLabelValues(order.String(), resultOK).Inc()

	return view, nil
}

// Table parses input and ranks it. Inputs over entity.MaxTeams teams are
// rejected before any sorting.
func (s *Service) Table(ctx context.Context, input string, order value.SortOrder) ([]entity.Team, error) {
	key := cacheKey(input, order)

	if cached, ok := s.tables.Get(key); ok {
		cacheHitsTotal.Inc()
		return slices.Clone(cached.([]entity.Team)), nil //nolint:forcetypeassert
	}

	teams, err := parser.Parse(input)
	if err != nil {
		logger(ctx).Info("league input rejected", logx.Error(err))
		return nil, fmt.Errorf("parser.Parse: %w", err)
	}

	if len(teams) > entity.MaxTeams {
		logger(ctx).Info("league input rejected", slog.Int(logx.FieldTeams, len(teams)))
		return nil, domain.NewLimitExceededError(len(teams))
	}

	teamsPerRender.Observe(float64(len(teams)))

	ranked := ranking.Rank(teams, order)

	if s.tables.ItemCount() < s.maxEntries {
		s.tables.Set(key, slices.Clone(ranked), cache.DefaultExpiration)
	}

	logger(ctx).Debug("league ranked",
		logx.Stringer(logx.FieldSortOrder, order),
		slog.Int(logx.FieldTeams, len(ranked)),
	)

	return ranked, nil
}

func cacheKey(input string, order value.SortOrder) string {
	return order.String() + "\x00" + input
}
