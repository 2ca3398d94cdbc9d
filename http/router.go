package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AllowedOrigins []string
	MetricsEnabled bool
	RequestTimeout time.Duration
}

// NewRouter mounts the simulation, market and article routes. Routes under /api go
// through the rate limiter; /health and /metrics do not.
func NewRouter(
	cfg RouterConfig,
	simulation *SimulationHandler,
	market *MarketHandler,
	articles *ArticleHandler,
	limiter *RateLimiter,
	logger *slog.Logger,
) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	httpLog := logger.With("module", "http")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(httpLog))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, httpLog, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(RateLimitMiddleware(limiter, httpLog))
		}

		r.Route("/simulation", func(r chi.Router) {
			r.Post("/cdb-basic", simulation.CalculateCDBBasic)
			r.Post("/cdb-ipo", simulation.CalculateCDBWithIPO)
			r.Post("/cdb-ipo-inflation", simulation.CalculateCDBWithIPOInflation)
			r.Post("/helpers/years-to-days", simulation.YearsToDays)
			r.Post("/helpers/months-to-days", simulation.MonthsToDays)
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/quotes", market.MainQuotes)
			r.Get("/currencies", market.CurrencyQuotes)
			r.Get("/indices", market.StockIndices)
			r.Get("/chart/{symbol}", market.ChartData)
			r.Get("/rates/cdi", market.CurrentCDIRate)
			r.Get("/rates/cdi/history", market.CDIHistory)
			r.Get("/rates/selic", market.CurrentSelicRate)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articles.List)
			r.Get("/recent", articles.Recent)
			r.Get("/{slug}", articles.BySlug)
		})
	})

	return r
}
