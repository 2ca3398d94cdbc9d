package domain

type CDBBasicInput struct {
	InitialAmount float64 `json:"initialAmount"`
	Rate          float64 `json:"rate"`    // CDI anual en %, ej. 13.75
	Period        int     `json:"period"`  // días
	CDBRate       float64 `json:"cdbRate"` // % del CDI, ej. 110
}

type CDBBasicResult struct {
	InitialAmount float64 `json:"initialAmount"`
	FinalAmount   float64 `json:"finalAmount"`
	GrossReturn   float64 `json:"grossReturn"`
	Tax           float64 `json:"tax"`
	NetReturn     float64 `json:"netReturn"`
	NetYield      float64 `json:"netYield"`
	TaxRate       float64 `json:"taxRate"`
	Period        int     `json:"period"`
}

type CDBWithIPOInput struct {
	CDBBasicInput
	IPOShares float64 `json:"ipoShares"`
	IPOPrice  float64 `json:"ipoPrice"`

	// Puntero porque 0 es un valor válido y la ausencia debe detectarse.
	IPOGrowthRate *float64 `json:"ipoGrowthRate"`
}

type CDBWithIPOResult struct {
	CDBBasicResult
	IPOInitialValue     float64 `json:"ipoInitialValue"`
	IPOFinalValue       float64 `json:"ipoFinalValue"`
	IPOReturn           float64 `json:"ipoReturn"`
	TotalPortfolioValue float64 `json:"totalPortfolioValue"`
	TotalReturn         float64 `json:"totalReturn"`
}

type CDBWithIPOInflationInput struct {
	CDBWithIPOInput
	InflationRate *float64 `json:"inflationRate"`
}

type CDBWithIPOInflationResult struct {
	CDBWithIPOResult
	InflationRate       float64 `json:"inflationRate"`
	RealReturn          float64 `json:"realReturn"`
	RealYield           float64 `json:"realYield"`
	PurchasingPowerLoss float64 `json:"purchasingPowerLoss"`
}

// Float returns a pointer to v, for building inputs with optional rates.
func Float(v float64) *float64 {
	return &v
}
