package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"investsim/domain"
)

const DefaultChartPeriod = "1D"

// chartPeriod gives the number of points of a chart and the time of point i.
type chartPeriod struct {
	points int
	at     func(now time.Time, i int) time.Time
}

var chartPeriods = map[string]chartPeriod{
	"1D": {24, func(now time.Time, i int) time.Time { return now.Add(-time.Duration(24-i) * time.Hour) }},
	"1W": {7, func(now time.Time, i int) time.Time { return now.AddDate(0, 0, -(7 - i)) }},
	"1M": {30, func(now time.Time, i int) time.Time { return now.AddDate(0, 0, -(30 - i)) }},
	"1Y": {12, func(now time.Time, i int) time.Time { return now.AddDate(0, -(12 - i), 0) }},
}

// Precio de referencia de los gráficos; símbolos desconocidos parten de 100.
var chartBasePrices = map[string]float64{
	"USDBRL": 5.85,
	"IBOV":   125430,
	"BTCBRL": 485000,
}

const (
	defaultChartBasePrice = 100.0
	chartVariation        = 0.05
	maxChartVolume        = 1_000_000
)

func (s *MarketService) lastUpdate() string {
	return s.now().UTC().Format(time.RFC3339)
}

// MainQuotes returns the headline quotes shown on the market ticker.
func (s *MarketService) MainQuotes(_ context.Context) []domain.MarketQuote {
	ts := s.lastUpdate()
	return []domain.MarketQuote{
		{Symbol: "USDBRL", Name: "Dólar Americano", Price: 5.85, Change: 0.12, ChangePercent: 2.09, LastUpdate: ts, Currency: "BRL"},
		{Symbol: "EURBRL", Name: "Euro", Price: 6.32, Change: -0.08, ChangePercent: -1.25, LastUpdate: ts, Currency: "BRL"},
		{Symbol: "BTCBRL", Name: "Bitcoin", Price: 485000, Change: 15420, ChangePercent: 3.28, LastUpdate: ts, Currency: "BRL"},
	}
}

// CurrencyQuotes returns currency quotes with their bid and ask prices.
func (s *MarketService) CurrencyQuotes(_ context.Context) []domain.CurrencyQuote {
	ts := s.lastUpdate()
	quote := func(symbol, name string, price, change, pct, bid, ask float64) domain.CurrencyQuote {
		return domain.CurrencyQuote{
			MarketQuote: domain.MarketQuote{
				Symbol: symbol, Name: name, Price: price, Change: change,
				ChangePercent: pct, LastUpdate: ts, Currency: "BRL",
			},
			BidPrice: bid,
			AskPrice: ask,
		}
	}
	return []domain.CurrencyQuote{
		quote("USDBRL", "Dólar Americano", 5.85, 0.12, 2.09, 5.84, 5.86),
		quote("EURBRL", "Euro", 6.32, -0.08, -1.25, 6.31, 6.33),
		quote("GBPBRL", "Libra Esterlina", 7.42, 0.25, 3.50, 7.41, 7.43),
	}
}

// StockIndices returns the B3 indices.
func (s *MarketService) StockIndices(_ context.Context) []domain.StockIndex {
	ts := s.lastUpdate()
	return []domain.StockIndex{
		{Name: "Ibovespa", Code: "IBOV", Value: 125430.85, Change: 1250.20, ChangePercent: 1.01, LastUpdate: ts},
		{Name: "IFIX", Code: "IFIX", Value: 3215.67, Change: -15.30, ChangePercent: -0.47, LastUpdate: ts},
		{Name: "SMLL", Code: "SMLL", Value: 4580.92, Change: 89.45, ChangePercent: 1.99, LastUpdate: ts},
	}
}

// ChartData generates a mock price series for symbol. An empty period means
// DefaultChartPeriod.
func (s *MarketService) ChartData(_ context.Context, symbol, period string) (domain.ChartData, error) {
	if period == "" {
		period = DefaultChartPeriod
	}
	p, ok := chartPeriods[period]
	if !ok {
		return domain.ChartData{}, fmt.Errorf("period %q: %w", period, ErrInvalidChartPeriod)
	}

	base, ok := chartBasePrices[strings.ToUpper(symbol)]
	if !ok {
		base = defaultChartBasePrice
	}

	now := s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	// La dispersión crece con el índice del punto.
	data := make([]domain.ChartDataPoint, 0, p.points)
	for i := 0; i < p.points; i++ {
		variation := (s.rng.Float64() - 0.5) * chartVariation
		value := base * (1 + variation*float64(i)*0.1)

		data = append(data, domain.ChartDataPoint{
			Timestamp: p.at(now, i).Format(time.RFC3339),
			Value:     decimal.NewFromFloat(value).Round(2).InexactFloat64(),
			Volume:    s.rng.Int64N(maxChartVolume),
		})
	}

	return domain.ChartData{Symbol: symbol, Period: period, Data: data}, nil
}
