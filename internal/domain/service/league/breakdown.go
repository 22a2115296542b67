package league

import "league_table/internal/domain/entity"

const (
	colorWon   = "#4CAF50"
	colorDrawn = "#FFC107"
	colorLost  = "#F44336"
)

// NewBreakdown splits a team's games into won, drawn and lost shares.
// Won is always the emphasized slice.
func NewBreakdown(team entity.Team) entity.Breakdown {
	return entity.Breakdown{
		Team:   team.Name,
		Played: team.Played,
		Slices: []entity.Slice{
			newSlice(entity.SliceWon, team.Won, team.Played, colorWon, true),
			newSlice(entity.SliceDrawn, team.Drawn, team.Played, colorDrawn, false),
			newSlice(entity.SliceLost, team.Lost, team.Played, colorLost, false),
		},
	}
}

func newSlice(label string, count, played int, color string, emphasized bool) entity.Slice {
	var percent float64

	if played != 0 {
		percent = float64(count) * 100 / float64(played) //nolint:mnd
	}

	return entity.Slice{
		Label:      label,
		Count:      count,
		Percent:    percent,
		Color:      color,
		Emphasized: emphasized,
	}
}

// FindByName returns the first team called name. Duplicate names resolve
// to the earliest one in the slice.
func FindByName(teams []entity.Team, name string) (entity.Team, bool) {
	for _, team := range teams {
		if team.Name == name {
			return team, true
		}
	}

	return entity.Team{}, false
}
