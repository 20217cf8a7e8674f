package sdk

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tulparex/btcturk/api"
)

// PriceLevel is one row of the order book, a price and the amount resting at it
type PriceLevel struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
}

// UnmarshalJSON is the json.Unmarshaler impl. The exchange encodes each level
// as a two-element array of decimal strings.
func (l *PriceLevel) UnmarshalJSON(b []byte) error {
	var tuple []decimal.Decimal
	if e := json.Unmarshal(b, &tuple); e != nil {
		return e
	}
	if len(tuple) != 2 {
		return fmt.Errorf("expected a [price, amount] tuple, got %d elements", len(tuple))
	}

	l.Price = tuple[0]
	l.Amount = tuple[1]
	return nil
}

// OrderBook is the resting orders of one pair at a single instant. Bids are
// sorted from the highest price down, asks from the lowest price up.
type OrderBook struct {
	Timestamp Timestamp    `json:"timestamp"`
	Bids      []PriceLevel `json:"bids"`
	Asks      []PriceLevel `json:"asks"`
}

// GetOrderBook fetches the order book of one pair. A limit of 0 leaves the
// depth at the server's default of 100 rows per side, the documented maximum
// is 1000.
func (b *Btcturk) GetOrderBook(pairSymbol string, limit int32) (*OrderBook, error) {
	if pairSymbol == "" {
		return nil, api.MakeInvalidRequestParameterError("pairSymbol cannot be empty", "", nil)
	}
	if limit < 0 || limit > 1000 {
		return nil, api.MakeInvalidRequestParameterError("limit must be between 0 and 1000", "", nil)
	}

	query := url.Values{}
	query.Set("pairSymbol", pairSymbol)
	if limit > 0 {
		query.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	data, e := b.doRequest(endpointOrderBook, query, nil)
	if e != nil {
		return nil, e
	}

	orderBook := OrderBook{}
	if e := decodeData(data, &orderBook); e != nil {
		return nil, e
	}
	return &orderBook, nil
}
