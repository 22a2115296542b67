package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"league_table/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
}

// Run запускает probe-сервер в g. Возвращённый сервер позволяет отметить
// приложение готовым, когда остальные модули запущены.
func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) probe.Server {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})

	return probeServer
}
