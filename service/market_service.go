package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"investsim/domain"
	"investsim/metrics"
	"investsim/repository"
)

const dateLayout = "2006-01-02"

// MarketConfig holds the simulated reference rates.
type MarketConfig struct {
	CDIRate    float64
	SelicRate  float64
	HistoryTTL time.Duration
}

// MarketService serves mock CDI and Selic rates. Generated CDI histories are
// cached per day so that repeated requests see the same series.
type MarketService struct {
	cfg    MarketConfig
	cache  repository.CacheRepository
	logger *slog.Logger

	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewMarketService(cfg MarketConfig, cache repository.CacheRepository, logger *slog.Logger) *MarketService {
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = DefaultHistoryTTL
	}
	return &MarketService{
		cfg:    cfg,
		cache:  cache,
		logger: logger.With("module", "market"),
		now:    time.Now,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (s *MarketService) today() string {
	return s.now().UTC().Format(dateLayout)
}

// CurrentCDIRate returns today's simulated CDI rate.
func (s *MarketService) CurrentCDIRate(_ context.Context) domain.CDIRate {
	return domain.CDIRate{Date: s.today(), Rate: s.cfg.CDIRate}
}

// CurrentSelicRate returns today's simulated Selic rate.
func (s *MarketService) CurrentSelicRate(_ context.Context) domain.SelicRate {
	return domain.SelicRate{Date: s.today(), Rate: s.cfg.SelicRate}
}

// CDIHistory returns days daily CDI rates ending today, oldest first.
func (s *MarketService) CDIHistory(ctx context.Context, days int) ([]domain.CDIRate, error) {
	if days < 1 || days > MaxCDIHistoryDays {
		return nil, fmt.Errorf("days %d not in [1, %d]: %w", days, MaxCDIHistoryDays, ErrInvalidHistoryDays)
	}

	now := s.now().UTC()
	key := fmt.Sprintf("cdi:history:%s:%d", now.Format(dateLayout), days)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var history []domain.CDIRate
		if err := json.Unmarshal([]byte(cached), &history); err == nil {
			metrics.MarketCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
			return history, nil
		}
		s.logger.Warn("discarding unreadable cached history", "key", key)
	}
	metrics.MarketCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()

	history := s.generateHistory(now, days)

	// El caché no es crítico: si falla, se sirve la serie recién generada.
	if payload, err := json.Marshal(history); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.cfg.HistoryTTL); err != nil {
			s.logger.Warn("failed to cache CDI history", "key", key, "error", err)
		}
	}

	return history, nil
}

func (s *MarketService) generateHistory(now time.Time, days int) []domain.CDIRate {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]domain.CDIRate, 0, days)
	for i := days - 1; i >= 0; i-- {
		variation := (s.rng.Float64() - 0.5) * CDIHistoryVariation
		rate := math.Max(0, s.cfg.CDIRate+variation)

		history = append(history, domain.CDIRate{
			Date: now.AddDate(0, 0, -i).Format(dateLayout),
			Rate: decimal.NewFromFloat(rate).Round(2).InexactFloat64(),
		})
	}
	return history
}
