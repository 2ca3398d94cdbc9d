package service

import "time"

const (
	MaxInitialAmount     = 10_000_000.0 // R$ 10 millones
	MinIPOGrowthRate     = -100.0       // % anual
	MinInflationRate     = -50.0        // % anual
	MaxInflationRate     = 50.0         // % anual
	DaysPerYear          = 365
	DaysPerMonth         = 30
	DefaultCDIHistoryLen = 30
	MaxCDIHistoryDays    = 365

	// Variación máxima (en puntos) del CDI simulado alrededor de la tasa actual
	CDIHistoryVariation = 0.2

	DefaultHistoryTTL = 24 * time.Hour
)

// Tramos regresivos del impuesto a la renta, por días de permanencia.
// El límite superior de cada tramo es inclusivo.
var taxBrackets = []struct {
	MaxDays int
	Rate    float64
}{
	{180, 0.225},
	{360, 0.20},
	{720, 0.175},
}

const longTermTaxRate = 0.15

const (
	DefaultRecentArticles = 5
	wordsPerMinute        = 200
)
