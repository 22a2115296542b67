package server

import (
	"github.com/samber/lo"

	"league_table/internal/domain/entity"
	"league_table/pkg/lox"
	"league_table/pkg/rest"
)

func newRESTLeagueTable(view entity.View) rest.LeagueTable {
	table := rest.LeagueTable{
		Order:    view.Order.String(),
		Teams:    lox.Map(view.Teams, newRESTTeam),
		Names:    lo.Ternary(view.Names == nil, []string{}, view.Names),
		Selected: view.Selected,
	}

	if view.Breakdown != nil {
		chart := newRESTChart(*view.Breakdown)
		table.Chart = &chart
	}

	return table
}

func newRESTTeam(team entity.Team) rest.Team {
	return rest.Team{
		Rank:   team.Rank,
		Name:   team.Name,
		Played: team.Played,
		Won:    team.Won,
		Drawn:  team.Drawn,
		Lost:   team.Lost,
		Points: team.Points,
	}
}

func newRESTChart(breakdown entity.Breakdown) rest.Chart {
	return rest.Chart{
		Team:   breakdown.Team,
		Played: breakdown.Played,
		Slices: lox.Map(breakdown.Slices, func(slice entity.Slice) rest.ChartSlice {
			return rest.ChartSlice{
				Label:      slice.Label,
				Count:      slice.Count,
				Percent:    slice.Percent,
				Color:      slice.Color,
				Emphasized: slice.Emphasized,
			}
		}),
	}
}
