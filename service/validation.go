package service

import "investsim/domain"

const (
	msgInitialAmount    = "Valor inicial deve ser maior que zero"
	msgRate             = "Taxa CDI deve ser maior que zero"
	msgPeriod           = "Período deve ser maior que zero"
	msgCDBRate          = "Percentual do CDI deve ser maior que zero"
	msgMaxInitialAmount = "Valor inicial não pode ser superior a R$ 10.000.000"
	msgIPOShares        = "Quantidade de ações deve ser maior que zero"
	msgIPOPrice         = "Preço da ação deve ser maior que zero"
	msgIPOGrowthRate    = "Taxa de crescimento do IPO deve ser maior que -100%"
	msgInflationMissing = "Taxa de inflação é obrigatória"
	msgInflationRange   = "Taxa de inflação deve estar entre -50% e 50%"
)

type rule struct {
	ok      bool
	message string
}

// collect evaluates every rule and keeps the messages of the failing ones, in order.
func collect(rules ...rule) []string {
	errs := []string{}
	for _, r := range rules {
		if !r.ok {
			errs = append(errs, r.message)
		}
	}
	return errs
}

// Las reglas de mínimo se escriben en positivo para que NaN no las pase.

// ValidateCDBBasicInput returns the violations of the CDB fields, empty when valid.
func ValidateCDBBasicInput(input domain.CDBBasicInput) []string {
	return collect(
		rule{input.InitialAmount > 0, msgInitialAmount},
		rule{input.Rate > 0, msgRate},
		rule{input.Period > 0, msgPeriod},
		rule{input.CDBRate > 0, msgCDBRate},
		rule{!(input.InitialAmount > MaxInitialAmount), msgMaxInitialAmount},
	)
}

// ValidateCDBWithIPOInput adds the IPO rules to the CDB ones.
func ValidateCDBWithIPOInput(input domain.CDBWithIPOInput) []string {
	errs := ValidateCDBBasicInput(input.CDBBasicInput)
	return append(errs, collect(
		rule{input.IPOShares > 0, msgIPOShares},
		rule{input.IPOPrice > 0, msgIPOPrice},
		rule{input.IPOGrowthRate != nil && *input.IPOGrowthRate >= MinIPOGrowthRate, msgIPOGrowthRate},
	)...)
}

// ValidateCDBWithIPOInflationInput adds the inflation rules to the CDB and IPO ones.
// A missing inflation rate reports only that it is required.
func ValidateCDBWithIPOInflationInput(input domain.CDBWithIPOInflationInput) []string {
	errs := ValidateCDBWithIPOInput(input.CDBWithIPOInput)
	rate := input.InflationRate
	return append(errs, collect(
		rule{rate != nil, msgInflationMissing},
		rule{rate == nil || (*rate >= MinInflationRate && *rate <= MaxInflationRate), msgInflationRange},
	)...)
}
