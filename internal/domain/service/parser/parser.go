package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"league_table/internal/domain"
	"league_table/internal/domain/entity"
	"league_table/internal/domain/service/points"
)

const (
	fieldSeparator = ","
	fieldCount     = 4
)

var statFields = [...]string{"won", "drawn", "lost"} //nolint:gochecknoglobals

var errEmptyName = errors.New("team name is empty")

// Parse reads one team per line in the form "name, won, drawn, lost".
// Fields beyond the fourth are ignored. Any bad line, a blank one included,
// fails the whole input; no partial result is returned.
func Parse(text string) ([]entity.Team, error) {
	teams := make([]entity.Team, 0)

	for i, line := range splitLines(text) {
		team, err := parseLine(line)
		if err != nil {
			return nil, domain.NewMalformedInputError(i+1, err)
		}

		teams = append(teams, team)
	}

	return teams, nil
}

// NewTeam builds a team with its derived points and games played.
func NewTeam(name string, won, drawn, lost int) entity.Team {
	return entity.Team{
		Name:   name,
		Won:    won,
		Drawn:  drawn,
		Lost:   lost,
		Played: points.Played(won, drawn, lost),
		Points: points.Calculate(won, drawn),
	}
}

func parseLine(line string) (entity.Team, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < fieldCount {
		return entity.Team{}, fmt.Errorf(
			"expected %d fields (name, won, drawn, lost), got %d: missing %s",
			fieldCount, len(fields), strings.Join(missingFields(len(fields)), ", "),
		)
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return entity.Team{}, errEmptyName
	}

	var stats [len(statFields)]int

	for i, field := range statFields {
		raw := strings.TrimSpace(fields[i+1])

		n, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Team{}, fmt.Errorf("%s: invalid integer %q", field, raw)
		}

		stats[i] = n
	}

	return NewTeam(name, stats[0], stats[1], stats[2]), nil
}

// splitLines breaks text at any Unicode line boundary, CRLF counting as
// one. A single line break at the very end does not start another line.
func splitLines(text string) []string {
	var (
		lines []string
		start int
	)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size

		if !isLineBreak(r) {
			continue
		}

		lines = append(lines, text[start:i-size])

		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}

		start = i
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}

	return false
}

func missingFields(got int) []string {
	return statFields[got-1:]
}
