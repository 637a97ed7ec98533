package gamma

// Raw payloads from the Gamma API. The `outcomes`, `outcomePrices` and
// `clobTokenIds` fields arrive as JSON-encoded strings and need a second
// decode pass during standardization.

// MarketGroupResponse is the raw event payload from GET /events/slug/{slug}.
type MarketGroupResponse struct {
	Slug      string           `json:"slug"`
	Title     string           `json:"title"`
	Active    bool             `json:"active"`
	Closed    bool             `json:"closed"`
	Volume    float64          `json:"volume"`
	Liquidity float64          `json:"liquidity"`
	Markets   []MarketResponse `json:"markets"`
}

// MarketResponse is one raw market inside an event payload.
type MarketResponse struct {
	Question       string  `json:"question"`
	ConditionID    string  `json:"conditionId"`
	Slug           string  `json:"slug"`
	Outcomes       string  `json:"outcomes"`
	OutcomePrices  string  `json:"outcomePrices"`
	ClobTokenIDs   string  `json:"clobTokenIds"`
	Active         bool    `json:"active"`
	Closed         bool    `json:"closed"`
	VolumeNum      float64 `json:"volumeNum"`
	Volume24h      float64 `json:"volume24hr"`
	Volume1w       float64 `json:"volume1wk"`
	Volume1m       float64 `json:"volume1mo"`
	Volume1y       float64 `json:"volume1yr"`
	LiquidityNum   float64 `json:"liquidityNum"`
	Competitive    float64 `json:"competitive"`
	LastTradePrice float64 `json:"lastTradePrice"`
	BestBid        float64 `json:"bestBid"`
	BestAsk        float64 `json:"bestAsk"`
	UpdatedAt      string  `json:"updatedAt"`
}
