package sdk

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tulparex/btcturk/api"
)

// Trade is one public trade of a pair
type Trade struct {
	Pair           string          `json:"pair"`
	PairNormalized string          `json:"pairNormalized"`
	Numerator      string          `json:"numerator"`
	Denominator    string          `json:"denominator"`
	Date           Timestamp       `json:"date"`
	TID            string          `json:"tid"`
	Price          decimal.Decimal `json:"price"`
	Amount         decimal.Decimal `json:"amount"`
}

// GetTrades fetches the most recent public trades of one pair, newest first.
// A last of 0 leaves the count at the server's default of 50, the documented
// maximum is 1000.
func (b *Btcturk) GetTrades(pairSymbol string, last int32) ([]Trade, error) {
	if pairSymbol == "" {
		return nil, api.MakeInvalidRequestParameterError("pairSymbol cannot be empty", "", nil)
	}
	if last < 0 || last > 1000 {
		return nil, api.MakeInvalidRequestParameterError("last must be between 0 and 1000", "", nil)
	}

	query := url.Values{}
	query.Set("pairSymbol", pairSymbol)
	if last > 0 {
		query.Set("last", strconv.FormatInt(int64(last), 10))
	}

	data, e := b.doRequest(endpointTrades, query, nil)
	if e != nil {
		return nil, e
	}

	trades := []Trade{}
	if e := decodeData(data, &trades); e != nil {
		return nil, e
	}
	return trades, nil
}
