package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type runner interface {
	Run(ctx context.Context) error
}

// Background запускает долгоживущий компонент (например, Telegram-бота),
// который сам следит за отменой ctx.
type Background struct {
	Name string
}

func (b Background) Run(ctx context.Context, g *errgroup.Group, r runner) {
	g.Go(func() error {
		logger(ctx).Info("background module started", slog.String("module", b.Name))

		if err := r.Run(ctx); err != nil {
			return fmt.Errorf("%s.Run: %w", b.Name, err)
		}

		return nil
	})
}
