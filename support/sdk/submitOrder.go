package sdk

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tulparex/btcturk/api"
)

// These are the values accepted in the orderType and orderMethod fields
const (
	OrderTypeBuy  = "buy"
	OrderTypeSell = "sell"

	OrderMethodMarket     = "market"
	OrderMethodLimit      = "limit"
	OrderMethodStopLimit  = "stopLimit"
	OrderMethodStopMarket = "stopMarket"
)

// NewOrderRequest is the JSON body of an order submission. The decimal fields
// marshal as quoted strings at full precision, there is no client-side
// rounding to the pair's scale. The price fields are pointers so that an
// unset price stays out of the body entirely.
type NewOrderRequest struct {
	Quantity         decimal.Decimal  `json:"quantity"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	StopPrice        *decimal.Decimal `json:"stopPrice,omitempty"`
	NewOrderClientID string           `json:"newOrderClientId"`
	OrderMethod      string           `json:"orderMethod"`
	OrderType        string           `json:"orderType"`
	PairSymbol       string           `json:"pairSymbol"`
}

// NewOrder is the exchange's record of a freshly submitted order
type NewOrder struct {
	ID                   int64           `json:"id"`
	Datetime             Timestamp       `json:"datetime"`
	Type                 string          `json:"type"`
	Method               string          `json:"method"`
	Price                decimal.Decimal `json:"price"`
	StopPrice            decimal.Decimal `json:"stopPrice"`
	Quantity             decimal.Decimal `json:"quantity"`
	PairSymbol           string          `json:"pairSymbol"`
	PairSymbolNormalized string          `json:"pairSymbolNormalized"`
	NewOrderClientID     string          `json:"newOrderClientId"`
}

// SubmitMarketOrder submits an order that executes immediately at the best
// available price. The quantity of a buy is denominated in the quote asset,
// the quantity of a sell in the base asset. Pass an empty newOrderClientID to
// have one generated.
func (b *Btcturk) SubmitMarketOrder(orderType string, pairSymbol string, quantity decimal.Decimal, newOrderClientID string) (*NewOrder, error) {
	return b.SubmitOrder(&NewOrderRequest{
		Quantity:         quantity,
		NewOrderClientID: newOrderClientID,
		OrderMethod:      OrderMethodMarket,
		OrderType:        orderType,
		PairSymbol:       pairSymbol,
	})
}

// SubmitLimitOrder submits an order that rests on the book at the given
// price. Pass an empty newOrderClientID to have one generated.
func (b *Btcturk) SubmitLimitOrder(orderType string, pairSymbol string, quantity decimal.Decimal, price decimal.Decimal, newOrderClientID string) (*NewOrder, error) {
	return b.SubmitOrder(&NewOrderRequest{
		Quantity:         quantity,
		Price:            &price,
		NewOrderClientID: newOrderClientID,
		OrderMethod:      OrderMethodLimit,
		OrderType:        orderType,
		PairSymbol:       pairSymbol,
	})
}

// SubmitStopOrder submits an order that activates when the market crosses the
// stop price. The orderMethod picks what happens on activation: stopLimit
// rests at price, stopMarket executes immediately. The price is sent in both
// cases. Pass an empty newOrderClientID to have one generated.
func (b *Btcturk) SubmitStopOrder(orderMethod string, orderType string, pairSymbol string, quantity decimal.Decimal, price decimal.Decimal, stopPrice decimal.Decimal, newOrderClientID string) (*NewOrder, error) {
	if orderMethod != OrderMethodStopLimit && orderMethod != OrderMethodStopMarket {
		return nil, api.MakeInvalidRequestParameterError(fmt.Sprintf("orderMethod must be %s or %s", OrderMethodStopLimit, OrderMethodStopMarket), "", nil)
	}

	return b.SubmitOrder(&NewOrderRequest{
		Quantity:         quantity,
		Price:            &price,
		StopPrice:        &stopPrice,
		NewOrderClientID: newOrderClientID,
		OrderMethod:      orderMethod,
		OrderType:        orderType,
		PairSymbol:       pairSymbol,
	})
}

// SubmitOrder submits a fully specified order request. Most callers want one
// of the typed helpers instead. The request is validated before any network
// call and is not mutated, a missing NewOrderClientID is filled with a fresh
// uuid on the wire only.
func (b *Btcturk) SubmitOrder(req *NewOrderRequest) (*NewOrder, error) {
	if e := validateNewOrderRequest(req); e != nil {
		return nil, e
	}

	body := *req
	if body.NewOrderClientID == "" {
		body.NewOrderClientID = uuid.New().String()
	}

	data, e := b.doRequest(endpointSubmitOrder, nil, &body)
	if e != nil {
		return nil, e
	}

	newOrder := NewOrder{}
	if e := decodeData(data, &newOrder); e != nil {
		return nil, e
	}
	return &newOrder, nil
}

// validateNewOrderRequest fails fast on requests the exchange would reject
func validateNewOrderRequest(req *NewOrderRequest) error {
	if req.PairSymbol == "" {
		return api.MakeInvalidRequestParameterError("pairSymbol cannot be empty", "", nil)
	}
	if req.OrderType != OrderTypeBuy && req.OrderType != OrderTypeSell {
		return api.MakeInvalidRequestParameterError(fmt.Sprintf("orderType must be %s or %s", OrderTypeBuy, OrderTypeSell), "", nil)
	}
	if req.Quantity.Sign() <= 0 {
		return api.MakeInvalidRequestParameterError("quantity must be greater than zero", "", nil)
	}

	switch req.OrderMethod {
	case OrderMethodMarket:
		if req.Price != nil {
			return api.MakeInvalidRequestParameterError("a market order cannot carry a price", "", nil)
		}
		if req.StopPrice != nil {
			return api.MakeInvalidRequestParameterError("a market order cannot carry a stopPrice", "", nil)
		}
	case OrderMethodLimit:
		if req.Price == nil || req.Price.Sign() <= 0 {
			return api.MakeInvalidRequestParameterError("a limit order requires a price greater than zero", "", nil)
		}
		if req.StopPrice != nil {
			return api.MakeInvalidRequestParameterError("a limit order cannot carry a stopPrice", "", nil)
		}
	case OrderMethodStopLimit:
		if req.Price == nil || req.Price.Sign() <= 0 {
			return api.MakeInvalidRequestParameterError("a stopLimit order requires a price greater than zero", "", nil)
		}
		if req.StopPrice == nil || req.StopPrice.Sign() <= 0 {
			return api.MakeInvalidRequestParameterError("a stopLimit order requires a stopPrice greater than zero", "", nil)
		}
	case OrderMethodStopMarket:
		if req.StopPrice == nil || req.StopPrice.Sign() <= 0 {
			return api.MakeInvalidRequestParameterError("a stopMarket order requires a stopPrice greater than zero", "", nil)
		}
		if req.Price != nil && req.Price.Sign() < 0 {
			return api.MakeInvalidRequestParameterError("price cannot be negative", "", nil)
		}
	default:
		return api.MakeInvalidRequestParameterError(fmt.Sprintf("orderMethod must be one of %s, %s, %s, %s", OrderMethodMarket, OrderMethodLimit, OrderMethodStopLimit, OrderMethodStopMarket), "", nil)
	}
	return nil
}
