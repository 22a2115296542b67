package league

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

//nolint:gochecknoglobals
var (
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "league",
		Name:      "renders_total",
		Help:      "League renders by sort order and outcome.",
	}, []string{"order", "result"})

	teamsPerRender = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "league",
		Name:      "teams",
		Help:      "Teams per successfully parsed league.",
		Buckets:   prometheus.LinearBuckets(0, 5, 5), //nolint:mnd
	})

	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "league",
		Name:      "cache_hits_total",
		Help:      "Ranked tables served from the result cache.",
	})
)
