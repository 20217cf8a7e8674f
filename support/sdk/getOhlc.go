package sdk

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tulparex/btcturk/api"
)

// Ohlc is one daily candle of a pair
type Ohlc struct {
	Pair                  string          `json:"pair"`
	Time                  Timestamp       `json:"time"`
	Open                  decimal.Decimal `json:"open"`
	High                  decimal.Decimal `json:"high"`
	Low                   decimal.Decimal `json:"low"`
	Close                 decimal.Decimal `json:"close"`
	Volume                decimal.Decimal `json:"volume"`
	Total                 decimal.Decimal `json:"total"`
	Average               decimal.Decimal `json:"average"`
	DailyChangeAmount     decimal.Decimal `json:"dailyChangeAmount"`
	DailyChangePercentage decimal.Decimal `json:"dailyChangePercentage"`
}

// GetOhlc fetches the daily candles of one pair, oldest first. A last of 0
// leaves the number of days to the server.
func (b *Btcturk) GetOhlc(pairSymbol string, last int32) ([]Ohlc, error) {
	if pairSymbol == "" {
		return nil, api.MakeInvalidRequestParameterError("pairSymbol cannot be empty", "", nil)
	}
	if last < 0 {
		return nil, api.MakeInvalidRequestParameterError("last cannot be negative", "", nil)
	}

	query := url.Values{}
	query.Set("pairSymbol", pairSymbol)
	if last > 0 {
		query.Set("last", strconv.FormatInt(int64(last), 10))
	}

	data, e := b.doRequest(endpointOhlc, query, nil)
	if e != nil {
		return nil, e
	}

	candles := []Ohlc{}
	if e := decodeData(data, &candles); e != nil {
		return nil, e
	}
	return candles, nil
}
