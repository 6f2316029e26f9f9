package models

// PriceQuote is the USD price of one ETH at fetch time.
type PriceQuote struct {
	Value float64
}
