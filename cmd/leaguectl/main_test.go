package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const records = "Liverpool,12,3,1\nChelsea,10,5,2\nArsenal,9,6,2\n"

func TestRun(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		args     []string
		stdin    string
		code     int
		stdout   string
		stderrIn string
	}{
		{
			name:  "Descending by default",
			stdin: records,
			stdout: "" +
				"Rank  Team        P   W  D  L  Pts\n" +
				"   1  Liverpool  16  12  3  1   39\n" +
				"   2  Chelsea    17  10  5  2   35\n" +
				"   3  Arsenal    17   9  6  2   33\n",
		},
		{
			name:  "Ascending with breakdown",
			args:  []string{"-order", "Ascending", "-team", "Chelsea"},
			stdin: records,
			stdout: "" +
				"Rank  Team        P   W  D  L  Pts\n" +
				"   3  Arsenal    17   9  6  2   33\n" +
				"   2  Chelsea    17  10  5  2   35\n" +
				"   1  Liverpool  16  12  3  1   39\n" +
				"\n" +
				"Statistics for Chelsea (17 played)\n" +
				"* Won    10   58.8%\n" +
				"  Drawn   5   29.4%\n" +
				"  Lost    2   11.8%\n",
		},
		{
			name:     "Malformed input",
			stdin:    "Liverpool,12,x,1",
			code:     1,
			stderrIn: "Error parsing input: line 1",
		},
		{
			name:     "Unknown team",
			args:     []string{"-team", "Everton"},
			stdin:    records,
			code:     1,
			stderrIn: `Team "Everton" is not in the table`,
		},
		{
			name:     "Invalid order",
			args:     []string{"-order", "sideways"},
			stdin:    records,
			code:     1,
			stderrIn: "sideways",
		},
		{
			name: "Unknown flag",
			args: []string{"-x"},
			code: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), tc.args, strings.NewReader(tc.stdin), &stdout, &stderr)

			rq.Equal(tc.code, code, stderr.String())
			rq.Equal(tc.stdout, stdout.String())
			rq.Contains(stderr.String(), tc.stderrIn)
		})
	}
}

func TestRunFromFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "league.csv")
	rq.NoError(os.WriteFile(path, []byte(records), 0o600))

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-f", path}, strings.NewReader(""), &stdout, &stderr)

	rq.Zero(code, stderr.String())
	rq.Contains(stdout.String(), "Liverpool")
}
