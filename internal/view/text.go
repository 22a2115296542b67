// Package view renders a league view as plain aligned text, for chat and
// terminal output.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"league_table/internal/domain/entity"
)

var tableHeader = []string{"Rank", "Team", "P", "W", "D", "L", "Pts"} //nolint:gochecknoglobals

// Table formats teams as an aligned table in the given order. The team
// column is left aligned, numbers are right aligned.
func Table(teams []entity.Team) string {
	rows := make([][]string, 0, len(teams)+1)
	rows = append(rows, tableHeader)

	for _, team := range teams {
		rows = append(rows, []string{
			strconv.Itoa(team.Rank),
			team.Name,
			strconv.Itoa(team.Played),
			strconv.Itoa(team.Won),
			strconv.Itoa(team.Drawn),
			strconv.Itoa(team.Lost),
			strconv.Itoa(team.Points),
		})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len([]rune(cell)))
		}
	}

	var sb strings.Builder

	for _, row := range rows {
		cells := make([]string, len(row))

		for i, cell := range row {
			pad := strings.Repeat(" ", widths[i]-len([]rune(cell)))
			if i == 1 {
				cells[i] = cell + pad
			} else {
				cells[i] = pad + cell
			}
		}

		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Breakdown formats a team's won/drawn/lost split, marking the emphasized
// slice with an asterisk.
func Breakdown(breakdown entity.Breakdown) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Statistics for %s (%d played)\n", breakdown.Team, breakdown.Played))

	for _, slice := range breakdown.Slices {
		marker := " "
		if slice.Emphasized {
			marker = "*"
		}

		sb.WriteString(fmt.Sprintf("%s %-5s %3d  %5.1f%%\n", marker, slice.Label, slice.Count, slice.Percent))
	}

	return sb.String()
}
