package domain

type CDIRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type SelicRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type PeriodConversion struct {
	Days int `json:"days"`
}

type MarketQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	LastUpdate    string  `json:"lastUpdate"`
	Currency      string  `json:"currency"`
}

type CurrencyQuote struct {
	MarketQuote
	BidPrice float64 `json:"bidPrice"`
	AskPrice float64 `json:"askPrice"`
}

type StockIndex struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	LastUpdate    string  `json:"lastUpdate"`
}

type ChartDataPoint struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
	Volume    int64   `json:"volume"`
}

type ChartData struct {
	Symbol string           `json:"symbol"`
	Period string           `json:"period"` // 1D, 1W, 1M o 1Y
	Data   []ChartDataPoint `json:"data"`
}
