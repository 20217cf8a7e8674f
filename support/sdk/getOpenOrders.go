package sdk

import (
	"net/url"

	"github.com/shopspring/decimal"
)

// Order is the exchange's record of one account order, as returned by the
// open and all order queries
type Order struct {
	ID                   int64           `json:"id"`
	Price                decimal.Decimal `json:"price"`
	Amount               decimal.Decimal `json:"amount"`
	Quantity             decimal.Decimal `json:"quantity"`
	StopPrice            decimal.Decimal `json:"stopPrice"`
	PairSymbol           string          `json:"pairSymbol"`
	PairSymbolNormalized string          `json:"pairSymbolNormalized"`
	Type                 string          `json:"type"`
	Method               string          `json:"method"`
	OrderClientID        string          `json:"orderClientId"`
	Time                 Timestamp       `json:"time"`
	UpdateTime           Timestamp       `json:"updateTime"`
	Status               string          `json:"status"`
	LeftAmount           decimal.Decimal `json:"leftAmount"`
}

// OpenOrders groups the account's resting orders by side, asks are sells and
// bids are buys
type OpenOrders struct {
	Asks []Order `json:"asks"`
	Bids []Order `json:"bids"`
}

// GetOpenOrders fetches the account's resting orders, optionally narrowed to
// one pair symbol.
func (b *Btcturk) GetOpenOrders(pairSymbol string) (*OpenOrders, error) {
	query := url.Values{}
	if pairSymbol != "" {
		query.Set("pairSymbol", pairSymbol)
	}

	data, e := b.doRequest(endpointOpenOrders, query, nil)
	if e != nil {
		return nil, e
	}

	orders := OpenOrders{}
	if e := decodeData(data, &orders); e != nil {
		return nil, e
	}
	return &orders, nil
}
