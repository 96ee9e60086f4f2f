package domain

// Balances is the rendered value of an amount in each supported
// denomination. Fields are strings because rendering precision is part of
// the contract: 2 fraction digits for fiat (half up), 8 for BTC (half even,
// trailing zeros stripped). See the valuation package for the conversion.
type Balances struct {
	USD string `json:"usd"`
	EUR string `json:"eur"`
	BTC string `json:"btc"`
}

// EmptyBalances is the rendered value of a zero quantity
var EmptyBalances = Balances{USD: "0", EUR: "0", BTC: "0"}
