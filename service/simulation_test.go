package service

import (
	"errors"
	"math"
	"testing"

	"investsim/domain"
)

const tolerance = 1e-9

func assertClose(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance*math.Max(1, math.Abs(expected)) {
		t.Errorf("%s: expected %.10f, got %.10f", name, expected, actual)
	}
}

func basicInput() domain.CDBBasicInput {
	return domain.CDBBasicInput{
		InitialAmount: 10000,
		Rate:          13.75,
		Period:        360,
		CDBRate:       110,
	}
}

func ipoInput(period int) domain.CDBWithIPOInput {
	in := basicInput()
	in.Period = period
	return domain.CDBWithIPOInput{
		CDBBasicInput: in,
		IPOShares:     100,
		IPOPrice:      10,
		IPOGrowthRate: domain.Float(20),
	}
}

func TestTaxRate_Brackets(t *testing.T) {
	tests := []struct {
		period int
		want   float64
	}{
		{1, 0.225},
		{180, 0.225},
		{181, 0.20},
		{360, 0.20},
		{361, 0.175},
		{720, 0.175},
		{721, 0.15},
		{3650, 0.15},
	}

	for _, tt := range tests {
		if got := TaxRate(tt.period); got != tt.want {
			t.Errorf("TaxRate(%d) = %v, want %v", tt.period, got, tt.want)
		}
	}
}

func TestCalculateCDBBasic_Example(t *testing.T) {
	result, err := CalculateCDBBasic(basicInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	effectiveRate := 13.75 * 110 / 100 / 100
	assertClose(t, "effectiveRate", 0.15125, effectiveRate)

	finalAmount := 10000 * math.Pow(1+effectiveRate/365, 360)
	gross := finalAmount - 10000
	tax := gross * 0.20

	assertClose(t, "finalAmount", finalAmount, result.FinalAmount)
	assertClose(t, "grossReturn", gross, result.GrossReturn)
	assertClose(t, "tax", tax, result.Tax)
	assertClose(t, "netReturn", gross-tax, result.NetReturn)
	assertClose(t, "netYield", (gross-tax)/10000*100, result.NetYield)

	if result.TaxRate != 0.20 {
		t.Errorf("expected tax rate 0.20, got %v", result.TaxRate)
	}
	if result.Period != 360 || result.InitialAmount != 10000 {
		t.Errorf("expected input echoed, got period=%d initial=%v", result.Period, result.InitialAmount)
	}
}

func TestCalculateCDBBasic_MonotonicGrowth(t *testing.T) {
	for _, period := range []int{1, 30, 180, 365, 1000, 3650} {
		in := basicInput()
		in.Period = period

		result, err := CalculateCDBBasic(in)
		if err != nil {
			t.Fatalf("period %d: unexpected error: %v", period, err)
		}
		if result.FinalAmount < in.InitialAmount {
			t.Errorf("period %d: final %v below initial %v", period, result.FinalAmount, in.InitialAmount)
		}
		if result.Tax < 0 {
			t.Errorf("period %d: expected non-negative tax, got %v", period, result.Tax)
		}
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	inflation := domain.CDBWithIPOInflationInput{
		CDBWithIPOInput: ipoInput(730),
		InflationRate:   domain.Float(4.5),
	}

	tests := []struct {
		name string
		run  func() (any, error)
	}{
		{"cdb", func() (any, error) { return CalculateCDBBasic(basicInput()) }},
		{"cdb-ipo", func() (any, error) { return CalculateCDBWithIPO(ipoInput(547)) }},
		{"cdb-ipo-inflation", func() (any, error) { return CalculateCDBWithIPOInflation(inflation) }},
	}

	for _, tt := range tests {
		first, err := tt.run()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		second, err := tt.run()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if first != second {
			t.Errorf("%s: expected identical results, got %+v and %+v", tt.name, first, second)
		}
	}
}

func TestCalculateCDBBasic_AllZeroRejected(t *testing.T) {
	_, err := CalculateCDBBasic(domain.CDBBasicInput{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Messages) != 4 {
		t.Errorf("expected 4 messages, got %d: %v", len(verr.Messages), verr.Messages)
	}
}

func TestCalculateCDBBasic_NonFinite(t *testing.T) {
	in := domain.CDBBasicInput{
		InitialAmount: 1000,
		Rate:          1e300,
		Period:        10,
		CDBRate:       1e300,
	}

	_, err := CalculateCDBBasic(in)
	if !errors.Is(err, ErrNonFiniteResult) {
		t.Errorf("expected ErrNonFiniteResult, got %v", err)
	}
}

func TestCalculateCDBWithIPO_Example(t *testing.T) {
	result, err := CalculateCDBWithIPO(ipoInput(365))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, "ipoInitialValue", 1000, result.IPOInitialValue)
	assertClose(t, "ipoFinalValue", 1200, result.IPOFinalValue)
	assertClose(t, "ipoReturn", 200, result.IPOReturn)
}

func TestCalculateCDBWithIPO_AdditiveComposition(t *testing.T) {
	for _, period := range []int{30, 200, 365, 500, 1000} {
		in := ipoInput(period)

		cdb, err := CalculateCDBBasic(in.CDBBasicInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result, err := CalculateCDBWithIPO(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.CDBBasicResult != cdb {
			t.Errorf("period %d: CDB leg changed by IPO composition", period)
		}
		if result.TotalPortfolioValue != cdb.FinalAmount+result.IPOFinalValue {
			t.Errorf("period %d: total %v != %v + %v",
				period, result.TotalPortfolioValue, cdb.FinalAmount, result.IPOFinalValue)
		}
		assertClose(t, "totalReturn",
			result.TotalPortfolioValue-(in.InitialAmount+result.IPOInitialValue), result.TotalReturn)
	}
}

func TestCalculateCDBWithIPO_FractionalYears(t *testing.T) {
	result, err := CalculateCDBWithIPO(ipoInput(180))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, "ipoFinalValue", 1000*math.Pow(1.2, 180.0/365), result.IPOFinalValue)
}

func TestCalculateCDBWithIPO_TotalLoss(t *testing.T) {
	in := ipoInput(365)
	in.IPOGrowthRate = domain.Float(-100)

	result, err := CalculateCDBWithIPO(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IPOFinalValue != 0 {
		t.Errorf("expected IPO wiped out, got %v", result.IPOFinalValue)
	}
	assertClose(t, "ipoReturn", -1000, result.IPOReturn)
}

func TestCalculateCDBWithIPOInflation_Identities(t *testing.T) {
	for _, inflation := range []float64{-10, 0, 4.5, 50} {
		in := domain.CDBWithIPOInflationInput{
			CDBWithIPOInput: ipoInput(730),
			InflationRate:   domain.Float(inflation),
		}

		result, err := CalculateCDBWithIPOInflation(in)
		if err != nil {
			t.Fatalf("inflation %v: unexpected error: %v", inflation, err)
		}

		combined := in.InitialAmount + result.IPOInitialValue
		adjusted := combined * math.Pow(1+inflation/100, 2)

		assertClose(t, "purchasingPowerLoss", adjusted-combined, result.PurchasingPowerLoss)
		assertClose(t, "realReturn", result.TotalPortfolioValue-adjusted, result.RealReturn)
		assertClose(t, "realYield", result.RealReturn/combined*100, result.RealYield)

		if result.InflationRate != inflation {
			t.Errorf("expected inflation rate echoed, got %v", result.InflationRate)
		}
	}
}

func TestCalculateCDBWithIPOInflation_ZeroInflation(t *testing.T) {
	in := domain.CDBWithIPOInflationInput{
		CDBWithIPOInput: ipoInput(365),
		InflationRate:   domain.Float(0),
	}

	result, err := CalculateCDBWithIPOInflation(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PurchasingPowerLoss != 0 {
		t.Errorf("expected no purchasing power loss, got %v", result.PurchasingPowerLoss)
	}
	assertClose(t, "realReturn", result.TotalReturn, result.RealReturn)
}

func TestCalculateCDBWithIPOInflation_Rejected(t *testing.T) {
	in := domain.CDBWithIPOInflationInput{CDBWithIPOInput: ipoInput(365)}

	_, err := CalculateCDBWithIPOInflation(in)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Messages) != 1 || verr.Messages[0] != msgInflationMissing {
		t.Errorf("expected only the missing inflation message, got %v", verr.Messages)
	}
}

func TestNegativeReturn_TaxCredit(t *testing.T) {
	// Sin validación: verifica que el impuesto conserve el signo de la pérdida.
	in := domain.CDBBasicInput{InitialAmount: 1000, Rate: -10, Period: 365, CDBRate: 100}

	result := cdbBasic(in)
	if result.GrossReturn >= 0 {
		t.Fatalf("expected negative gross return, got %v", result.GrossReturn)
	}
	if result.Tax >= 0 {
		t.Errorf("expected negative tax for a loss, got %v", result.Tax)
	}
	assertClose(t, "tax", result.GrossReturn*0.175, result.Tax)
}

func TestYearsToDays(t *testing.T) {
	tests := []struct {
		years float64
		want  int
	}{
		{1, 365},
		{2, 730},
		{0.5, 183},
		{1.5, 548},
	}

	for _, tt := range tests {
		got, err := YearsToDays(tt.years)
		if err != nil {
			t.Fatalf("YearsToDays(%v): unexpected error: %v", tt.years, err)
		}
		if got != tt.want {
			t.Errorf("YearsToDays(%v) = %d, want %d", tt.years, got, tt.want)
		}
	}

	for _, bad := range []float64{0, -1, math.NaN()} {
		if _, err := YearsToDays(bad); !errors.Is(err, ErrNonPositivePeriod) {
			t.Errorf("YearsToDays(%v): expected ErrNonPositivePeriod, got %v", bad, err)
		}
	}
}

func TestMonthsToDays(t *testing.T) {
	tests := []struct {
		months float64
		want   int
	}{
		{1, 30},
		{12, 360},
		{0.5, 15},
		{1.25, 38},
	}

	for _, tt := range tests {
		got, err := MonthsToDays(tt.months)
		if err != nil {
			t.Fatalf("MonthsToDays(%v): unexpected error: %v", tt.months, err)
		}
		if got != tt.want {
			t.Errorf("MonthsToDays(%v) = %d, want %d", tt.months, got, tt.want)
		}
	}

	if _, err := MonthsToDays(0); !errors.Is(err, ErrNonPositivePeriod) {
		t.Errorf("expected ErrNonPositivePeriod, got %v", err)
	}
}
