package service

import (
	"fmt"
	"math"

	"investsim/domain"
)

// TaxRate returns the income tax rate for an investment held for period days.
func TaxRate(period int) float64 {
	for _, b := range taxBrackets {
		if period <= b.MaxDays {
			return b.Rate
		}
	}
	return longTermTaxRate
}

// CalculateCDBBasic validates the input and compounds it daily over period days.
func CalculateCDBBasic(input domain.CDBBasicInput) (domain.CDBBasicResult, error) {
	if errs := ValidateCDBBasicInput(input); len(errs) > 0 {
		return domain.CDBBasicResult{}, &ValidationError{Messages: errs}
	}

	result := cdbBasic(input)
	if err := checkFinite(
		field{"finalAmount", result.FinalAmount},
		field{"tax", result.Tax},
		field{"netYield", result.NetYield},
	); err != nil {
		return domain.CDBBasicResult{}, err
	}
	return result, nil
}

// CalculateCDBWithIPO adds an equity leg, grown annually, to the CDB leg.
func CalculateCDBWithIPO(input domain.CDBWithIPOInput) (domain.CDBWithIPOResult, error) {
	if errs := ValidateCDBWithIPOInput(input); len(errs) > 0 {
		return domain.CDBWithIPOResult{}, &ValidationError{Messages: errs}
	}

	result := cdbWithIPO(input)
	if err := checkFinite(
		field{"finalAmount", result.FinalAmount},
		field{"tax", result.Tax},
		field{"netYield", result.NetYield},
		field{"ipoFinalValue", result.IPOFinalValue},
		field{"totalReturn", result.TotalReturn},
	); err != nil {
		return domain.CDBWithIPOResult{}, err
	}
	return result, nil
}

// CalculateCDBWithIPOInflation deflates the combined initial capital by the
// inflation accumulated over the period and reports the real return.
func CalculateCDBWithIPOInflation(input domain.CDBWithIPOInflationInput) (domain.CDBWithIPOInflationResult, error) {
	if errs := ValidateCDBWithIPOInflationInput(input); len(errs) > 0 {
		return domain.CDBWithIPOInflationResult{}, &ValidationError{Messages: errs}
	}

	result := cdbWithIPOInflation(input)
	if err := checkFinite(
		field{"finalAmount", result.FinalAmount},
		field{"tax", result.Tax},
		field{"netYield", result.NetYield},
		field{"ipoFinalValue", result.IPOFinalValue},
		field{"totalReturn", result.TotalReturn},
		field{"realReturn", result.RealReturn},
		field{"realYield", result.RealYield},
		field{"purchasingPowerLoss", result.PurchasingPowerLoss},
	); err != nil {
		return domain.CDBWithIPOInflationResult{}, err
	}
	return result, nil
}

func cdbBasic(input domain.CDBBasicInput) domain.CDBBasicResult {
	// Tasa efectiva anual: % del CDI aplicado sobre el CDI
	effectiveRate := (input.Rate * input.CDBRate / 100) / 100
	dailyRate := effectiveRate / DaysPerYear
	finalAmount := input.InitialAmount * math.Pow(1+dailyRate, float64(input.Period))

	grossReturn := finalAmount - input.InitialAmount
	taxRate := TaxRate(input.Period)
	// Sin piso en cero: una pérdida genera impuesto negativo.
	tax := grossReturn * taxRate
	netReturn := grossReturn - tax

	return domain.CDBBasicResult{
		InitialAmount: input.InitialAmount,
		FinalAmount:   finalAmount,
		GrossReturn:   grossReturn,
		Tax:           tax,
		NetReturn:     netReturn,
		NetYield:      netReturn / input.InitialAmount * 100,
		TaxRate:       taxRate,
		Period:        input.Period,
	}
}

func cdbWithIPO(input domain.CDBWithIPOInput) domain.CDBWithIPOResult {
	cdb := cdbBasic(input.CDBBasicInput)

	years := float64(input.Period) / DaysPerYear
	ipoInitialValue := input.IPOShares * input.IPOPrice
	ipoFinalValue := ipoInitialValue * math.Pow(1+*input.IPOGrowthRate/100, years)

	totalPortfolioValue := cdb.FinalAmount + ipoFinalValue
	totalInitialValue := cdb.InitialAmount + ipoInitialValue

	return domain.CDBWithIPOResult{
		CDBBasicResult:      cdb,
		IPOInitialValue:     ipoInitialValue,
		IPOFinalValue:       ipoFinalValue,
		IPOReturn:           ipoFinalValue - ipoInitialValue,
		TotalPortfolioValue: totalPortfolioValue,
		TotalReturn:         totalPortfolioValue - totalInitialValue,
	}
}

func cdbWithIPOInflation(input domain.CDBWithIPOInflationInput) domain.CDBWithIPOInflationResult {
	portfolio := cdbWithIPO(input.CDBWithIPOInput)
	inflationRate := *input.InflationRate

	years := float64(input.Period) / DaysPerYear
	inflationFactor := math.Pow(1+inflationRate/100, years)
	combinedInitial := portfolio.InitialAmount + portfolio.IPOInitialValue
	adjustedInitialValue := combinedInitial * inflationFactor

	realReturn := portfolio.TotalPortfolioValue - adjustedInitialValue

	return domain.CDBWithIPOInflationResult{
		CDBWithIPOResult:    portfolio,
		InflationRate:       inflationRate,
		RealReturn:          realReturn,
		RealYield:           realReturn / combinedInitial * 100,
		PurchasingPowerLoss: adjustedInitialValue - combinedInitial,
	}
}

type field struct {
	name  string
	value float64
}

func checkFinite(fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s: %w", f.name, ErrNonFiniteResult)
		}
	}
	return nil
}

// YearsToDays converts a period in years to whole days.
func YearsToDays(years float64) (int, error) {
	if !(years > 0) {
		return 0, fmt.Errorf("years %v: %w", years, ErrNonPositivePeriod)
	}
	return int(math.Round(years * DaysPerYear)), nil
}

// MonthsToDays converts a period in months to whole days, using 30-day months.
func MonthsToDays(months float64) (int, error) {
	if !(months > 0) {
		return 0, fmt.Errorf("months %v: %w", months, ErrNonPositivePeriod)
	}
	return int(math.Round(months * DaysPerMonth)), nil
}
