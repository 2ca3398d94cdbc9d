// Package metrics holds the Prometheus collectors of the simulation API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "investsim"

// Label values.
const (
	KindCDBBasic            = "cdb_basic"
	KindCDBWithIPO          = "cdb_with_ipo"
	KindCDBWithIPOInflation = "cdb_with_ipo_inflation"
	ReasonValidation        = "validation"
	ReasonNonFinite         = "non_finite"
	CacheHit                = "hit"
	CacheMiss               = "miss"
)

// SimulationRequests counts simulations received, by kind.
var SimulationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "simulation",
	Name:      "requests_total",
	Help:      "Total simulation requests by kind.",
}, []string{"kind"})

// SimulationRejections counts simulations that produced no result.
var SimulationRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "simulation",
	Name:      "rejections_total",
	Help:      "Total rejected simulations by kind and reason.",
}, []string{"kind", "reason"})

// RateLimited counts requests refused by the rate limiter.
var RateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "rate_limited_total",
	Help:      "Total requests refused by the rate limiter.",
})

// MarketCacheLookups counts CDI history cache lookups by result.
var MarketCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "market",
	Name:      "cache_lookups_total",
	Help:      "CDI history cache lookups by result (hit, miss).",
}, []string{"result"})
