package sdk

import (
	"net/url"

	"github.com/shopspring/decimal"
)

// Ticker is the last 24 hours of price activity of one pair
type Ticker struct {
	Pair              string          `json:"pair"`
	PairNormalized    string          `json:"pairNormalized"`
	Timestamp         Timestamp       `json:"timestamp"`
	Last              decimal.Decimal `json:"last"`
	High              decimal.Decimal `json:"high"`
	Low               decimal.Decimal `json:"low"`
	Bid               decimal.Decimal `json:"bid"`
	Ask               decimal.Decimal `json:"ask"`
	Open              decimal.Decimal `json:"open"`
	Volume            decimal.Decimal `json:"volume"`
	Average           decimal.Decimal `json:"average"`
	Daily             decimal.Decimal `json:"daily"`
	DailyPercent      decimal.Decimal `json:"dailyPercent"`
	NumeratorSymbol   string          `json:"numeratorSymbol"`
	DenominatorSymbol string          `json:"denominatorSymbol"`
}

// GetTicker fetches the ticker rows, either of a single pair or of every
// listed pair when pairSymbol is empty.
func (b *Btcturk) GetTicker(pairSymbol string) ([]Ticker, error) {
	query := url.Values{}
	if pairSymbol != "" {
		query.Set("pairSymbol", pairSymbol)
	}

	data, e := b.doRequest(endpointTicker, query, nil)
	if e != nil {
		return nil, e
	}

	tickers := []Ticker{}
	if e := decodeData(data, &tickers); e != nil {
		return nil, e
	}
	return tickers, nil
}
