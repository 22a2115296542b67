// Command leaguectl ranks a league table offline. Records are read from
// stdin or from the file given with -f.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"league_table/internal/domain"
	"league_table/internal/domain/service/league"
	"league_table/internal/domain/value"
	"league_table/internal/view"
	"league_table/pkg/contextx"
	"league_table/pkg/logx"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("leaguectl", flag.ContinueOnError)
	flags.SetOutput(stderr)

	file := flags.String("f", "", "read records from `file` instead of stdin")
	order := flags.String("order", value.SortOrderDescending.String(), "sort order: Ascending or Descending")
	team := flags.String("team", "", "print the won/drawn/lost breakdown of `name`")
	verbose := flags.Bool("v", false, "log pipeline steps to stderr")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	ctx = contextx.WithLogger(ctx, logx.New(stderr, level))

	if err := rank(ctx, stdin, stdout, *file, *order, *team); err != nil {
		if msg := domain.UserMessage(err); msg != "" {
			fmt.Fprintln(stderr, msg)
		} else {
			fmt.Fprintln(stderr, err)
		}

		return 1
	}

	return 0
}

func rank(ctx context.Context, stdin io.Reader, stdout io.Writer, file, order, team string) error {
	sortOrder, err := value.ParseSortOrder(order)
	if err != nil {
		return fmt.Errorf("value.ParseSortOrder: %w", err)
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("os.Open: %w", err)
		}
		defer f.Close()

		stdin = f
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	result, err := league.NewService().Render(ctx, string(input), sortOrder, team)
	if err != nil {
		return fmt.Errorf("league.Render: %w", err)
	}

	fmt.Fprint(stdout, view.Table(result.Teams))

	if team != "" && result.Breakdown != nil {
		fmt.Fprint(stdout, "\n"+view.Breakdown(*result.Breakdown))
	}

	return nil
}
