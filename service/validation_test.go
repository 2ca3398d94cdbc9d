package service

import (
	"math"
	"reflect"
	"testing"

	"investsim/domain"
)

func TestValidateCDBBasicInput_Valid(t *testing.T) {
	if errs := ValidateCDBBasicInput(basicInput()); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateCDBBasicInput_AllZero(t *testing.T) {
	errs := ValidateCDBBasicInput(domain.CDBBasicInput{})

	want := []string{msgInitialAmount, msgRate, msgPeriod, msgCDBRate}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("expected %v, got %v", want, errs)
	}
}

func TestValidateCDBBasicInput_MaxAmount(t *testing.T) {
	in := basicInput()
	in.InitialAmount = MaxInitialAmount
	if errs := ValidateCDBBasicInput(in); len(errs) != 0 {
		t.Errorf("expected upper bound to be inclusive, got %v", errs)
	}

	in.InitialAmount = MaxInitialAmount + 0.01
	errs := ValidateCDBBasicInput(in)
	if len(errs) != 1 || errs[0] != msgMaxInitialAmount {
		t.Errorf("expected max amount message, got %v", errs)
	}
}

func TestValidateCDBBasicInput_NaN(t *testing.T) {
	in := basicInput()
	in.InitialAmount = math.NaN()
	in.Rate = math.NaN()

	errs := ValidateCDBBasicInput(in)
	// NaN solo infringe las reglas de mínimo, una vez por campo.
	want := []string{msgInitialAmount, msgRate}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("expected %v, got %v", want, errs)
	}
}

func TestValidateCDBWithIPOInput_CollectsEverything(t *testing.T) {
	in := domain.CDBWithIPOInput{
		CDBBasicInput: domain.CDBBasicInput{InitialAmount: 20_000_000, Rate: -1, Period: 0, CDBRate: 0},
		IPOShares:     0,
		IPOPrice:      -5,
		IPOGrowthRate: domain.Float(-100.5),
	}

	errs := ValidateCDBWithIPOInput(in)

	want := []string{
		msgRate, msgPeriod, msgCDBRate, msgMaxInitialAmount,
		msgIPOShares, msgIPOPrice, msgIPOGrowthRate,
	}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("expected %v, got %v", want, errs)
	}
}

func TestValidateCDBWithIPOInput_GrowthRate(t *testing.T) {
	tests := []struct {
		name  string
		rate  *float64
		valid bool
	}{
		{"missing", nil, false},
		{"zero", domain.Float(0), true},
		{"lower bound", domain.Float(-100), true},
		{"below bound", domain.Float(-100.01), false},
		{"negative", domain.Float(-35), true},
		{"large", domain.Float(500), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ipoInput(365)
			in.IPOGrowthRate = tt.rate

			errs := ValidateCDBWithIPOInput(in)
			if tt.valid && len(errs) != 0 {
				t.Errorf("expected valid, got %v", errs)
			}
			if !tt.valid && (len(errs) != 1 || errs[0] != msgIPOGrowthRate) {
				t.Errorf("expected growth rate message, got %v", errs)
			}
		})
	}
}

func TestValidateCDBWithIPOInflationInput_Range(t *testing.T) {
	tests := []struct {
		name string
		rate *float64
		want []string
	}{
		{"missing", nil, []string{msgInflationMissing}},
		{"lower bound", domain.Float(-50), []string{}},
		{"upper bound", domain.Float(50), []string{}},
		{"zero", domain.Float(0), []string{}},
		{"too low", domain.Float(-50.1), []string{msgInflationRange}},
		{"too high", domain.Float(51), []string{msgInflationRange}},
		{"not a number", domain.Float(math.NaN()), []string{msgInflationRange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.CDBWithIPOInflationInput{
				CDBWithIPOInput: ipoInput(365),
				InflationRate:   tt.rate,
			}

			errs := ValidateCDBWithIPOInflationInput(in)
			if !reflect.DeepEqual(errs, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, errs)
			}
		})
	}
}

func TestValidateCDBWithIPOInflationInput_Completeness(t *testing.T) {
	in := domain.CDBWithIPOInflationInput{
		CDBWithIPOInput: domain.CDBWithIPOInput{},
		InflationRate:   domain.Float(80),
	}

	// 4 reglas del CDB + 3 del IPO + rango de inflación
	if errs := ValidateCDBWithIPOInflationInput(in); len(errs) != 8 {
		t.Errorf("expected 8 messages, got %d: %v", len(errs), errs)
	}
}
