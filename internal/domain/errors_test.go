package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"league_table/internal/domain"
	"league_table/pkg/errcodes"
)

func TestErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		err         error
		code        failure.ErrorCode
		userMessage string
		userError   bool
	}{
		{
			name:        "Malformed input",
			err:         domain.NewMalformedInputError(2, errors.New(`won: invalid integer "x"`)),
			code:        errcodes.MalformedInput,
			userMessage: `Error parsing input: line 2: won: invalid integer "x"`,
			userError:   true,
		},
		{
			name:        "Limit exceeded",
			err:         domain.NewLimitExceededError(21),
			code:        errcodes.LimitExceeded,
			userMessage: "Maximum input limit is 20 teams. Please reduce the input data.",
			userError:   true,
		},
		{
			name:        "Team not found",
			err:         domain.NewTeamNotFoundError("Leeds"),
			code:        errcodes.TeamNotFound,
			userMessage: `Team "Leeds" is not in the table`,
			userError:   true,
		},
		{
			name:        "Wrapped limit exceeded",
			err:         fmt.Errorf("league.Render: %w", domain.NewLimitExceededError(30)),
			code:        errcodes.LimitExceeded,
			userMessage: "Maximum input limit is 20 teams. Please reduce the input data.",
			userError:   true,
		},
		{
			name: "Plain error",
			err:  errors.New("boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.code, failure.Code(tc.err))
			rq.Equal(tc.userMessage, domain.UserMessage(tc.err))
			rq.Equal(tc.userError, domain.IsUserError(tc.err))
		})
	}
}
