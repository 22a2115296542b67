package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"league_table/internal/domain/entity"
	"league_table/pkg/errcodes"
)

// MalformedInputPrefix starts every message shown to a user whose input
// could not be parsed.
const MalformedInputPrefix = "Error parsing input: "

// NewMalformedInputError rejects a whole submission because of one bad line.
// The description names the line and the offending field or value.
func NewMalformedInputError(line int, cause error) error {
	description := fmt.Sprintf("line %d: %v", line, cause)

	return failure.NewInvalidArgumentError(
		"malformed input: "+description,
		failure.WithCode(errcodes.MalformedInput),
		failure.WithDescription(description),
	)
}

// NewLimitExceededError rejects a submission with more than entity.MaxTeams teams.
func NewLimitExceededError(count int) error {
	return failure.NewUnprocessableEntityError(
		fmt.Sprintf("%d teams submitted, limit is %d", count, entity.MaxTeams),
		failure.WithCode(errcodes.LimitExceeded),
		failure.WithDescription(fmt.Sprintf(
			"Maximum input limit is %d teams. Please reduce the input data.", entity.MaxTeams,
		)),
	)
}

// NewTeamNotFoundError reports a selection that is not in the ranked table.
func NewTeamNotFoundError(name string) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("team %q not found", name),
		failure.WithCode(errcodes.TeamNotFound),
		failure.WithDescription(fmt.Sprintf("Team %q is not in the table", name)),
	)
}

// UserMessage turns a pipeline error into the single line shown to users.
// Errors without a description are not meant for users and yield "".
func UserMessage(err error) string {
	description := failure.Description(err)
	if description == "" {
		return ""
	}

	if failure.HasCode(err, errcodes.MalformedInput) {
		return MalformedInputPrefix + description
	}

	return description
}

// IsUserError reports whether err came from bad input rather than a fault
// of the service itself.
func IsUserError(err error) bool {
	return failure.IsInvalidArgumentError(err) ||
		failure.IsUnprocessableEntityError(err) ||
		failure.IsNotFoundError(err)
}
