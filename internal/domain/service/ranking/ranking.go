// Package ranking orders teams by points and assigns their ranks.
//
// Two orderings exist and each keeps its own physical direction:
// Ascending returns the lowest-scoring team first but still gives rank 1
// to the highest-scoring one, Descending returns the leader first.
package ranking

import (
	"slices"

	"league_table/internal/domain/entity"
	"league_table/internal/domain/value"
)

// Rank sorts a copy of teams in the given order and assigns positional 1-based
// ranks. The input slice is left untouched.
func Rank(teams []entity.Team, order value.SortOrder) []entity.Team {
	if order == value.SortOrderAscending {
		sorted := SortAscending(teams)

		for i := range sorted {
			sorted[i].Rank = len(sorted) - i
		}

		return sorted
	}

	sorted := SortDescending(teams)

	for i := range sorted {
		sorted[i].Rank = i + 1
	}

	return sorted
}

// SortAscending is a recursive pivot partition sort. The first team is the
// pivot; teams with points <= pivot go below it, the rest above it, each
// side keeping its relative order before being sorted the same way.
func SortAscending(teams []entity.Team) []entity.Team {
	if len(teams) <= 1 {
		return slices.Clone(teams)
	}

	pivot := teams[0]

	var lower, upper []entity.Team

	for _, team := range teams[1:] {
		if team.Points <= pivot.Points {
			lower = append(lower, team)
		} else {
			upper = append(upper, team)
		}
	}

	sorted := make([]entity.Team, 0, len(teams))
	sorted = append(sorted, SortAscending(lower)...)
	sorted = append(sorted, pivot)

	return append(sorted, SortAscending(upper)...)
}

// SortDescending is an exchange sort: every pass walks adjacent pairs and
// swaps those where the earlier team has strictly fewer points, so equal
// teams keep their input order.
func SortDescending(teams []entity.Team) []entity.Team {
	sorted := slices.Clone(teams)
	n := len(sorted)

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if sorted[j].Points < sorted[j+1].Points {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}

	return sorted
}
