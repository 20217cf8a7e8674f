package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderAction is the action of buy / sell
type OrderAction bool

// OrderActionBuy and OrderActionSell are the two actions
const (
	OrderActionBuy  OrderAction = false
	OrderActionSell OrderAction = true
)

// IsBuy returns true for buy actions
func (a OrderAction) IsBuy() bool {
	return a == OrderActionBuy
}

// IsSell returns true for sell actions
func (a OrderAction) IsSell() bool {
	return a == OrderActionSell
}

// String is the stringer function
func (a OrderAction) String() string {
	if a == OrderActionBuy {
		return "buy"
	}
	return "sell"
}

// OrderActionFromString converts from the strings used by the exchange
func OrderActionFromString(s string) OrderAction {
	lower := strings.ToLower(s)
	return OrderAction(lower == "sell" || lower == "ask")
}

// OrderType represents a type of an order: market, limit, stopLimit, stopMarket
type OrderType int8

// These are the available order types
const (
	OrderTypeMarket     OrderType = 0
	OrderTypeLimit      OrderType = 1
	OrderTypeStopLimit  OrderType = 2
	OrderTypeStopMarket OrderType = 3
)

// IsMarket returns true for market orders
func (o OrderType) IsMarket() bool {
	return o == OrderTypeMarket
}

// IsLimit returns true for limit orders
func (o OrderType) IsLimit() bool {
	return o == OrderTypeLimit
}

// IsStop returns true for the two stop variants
func (o OrderType) IsStop() bool {
	return o == OrderTypeStopLimit || o == OrderTypeStopMarket
}

// HasPrice returns true for order types that carry a limit price
func (o OrderType) HasPrice() bool {
	return o == OrderTypeLimit || o == OrderTypeStopLimit
}

var orderTypeMap = map[OrderType]string{
	OrderTypeMarket:     "market",
	OrderTypeLimit:      "limit",
	OrderTypeStopLimit:  "stopLimit",
	OrderTypeStopMarket: "stopMarket",
}

// String is the stringer function
func (o OrderType) String() string {
	s, ok := orderTypeMap[o]
	if !ok {
		return fmt.Sprintf("error, unrecognized order type (%d)", int8(o))
	}
	return s
}

// OrderTypeFromString converts from the strings used by the exchange
func OrderTypeFromString(s string) (OrderType, error) {
	for t, name := range orderTypeMap {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return OrderTypeMarket, fmt.Errorf("unrecognized order type string: %s", s)
}

// Order represents an order on the exchange
type Order struct {
	Pair        *TradingPair
	OrderAction OrderAction
	OrderType   OrderType
	Price       decimal.Decimal
	StopPrice   decimal.Decimal
	Volume      decimal.Decimal
	Timestamp   *Timestamp
}

// String is the stringer function
func (o Order) String() string {
	tsString := "<nil>"
	if o.Timestamp != nil {
		tsString = fmt.Sprintf("%d", o.Timestamp.AsInt64())
	}

	if o.OrderType.IsStop() {
		return fmt.Sprintf("Order[pair=%s, action=%s, type=%s, price=%s, stopPrice=%s, vol=%s, ts=%s]",
			o.Pair,
			o.OrderAction,
			o.OrderType,
			o.Price.String(),
			o.StopPrice.String(),
			o.Volume.String(),
			tsString,
		)
	}
	return fmt.Sprintf("Order[pair=%s, action=%s, type=%s, price=%s, vol=%s, ts=%s]",
		o.Pair,
		o.OrderAction,
		o.OrderType,
		o.Price.String(),
		o.Volume.String(),
		tsString,
	)
}

// OrderBook encapsulates the asks and the bids of a trading pair
type OrderBook struct {
	pair *TradingPair
	asks []Order
	bids []Order
}

// Pair returns trading pair of the OrderBook
func (o OrderBook) Pair() *TradingPair {
	return o.pair
}

// Asks returns the asks of the OrderBook, sorted from cheapest to most expensive
func (o OrderBook) Asks() []Order {
	return o.asks
}

// Bids returns the bids of the OrderBook, sorted from most expensive to cheapest
func (o OrderBook) Bids() []Order {
	return o.bids
}

// MakeOrderBook creates a new OrderBook from the asks and the bids
func MakeOrderBook(pair *TradingPair, asks []Order, bids []Order) *OrderBook {
	return &OrderBook{
		pair: pair,
		asks: asks,
		bids: bids,
	}
}

// TransactionID is typed for the concept of a transaction ID of an order
type TransactionID string

// String is the stringer function
func (t *TransactionID) String() string {
	return string(*t)
}

// MakeTransactionID is a factory method for convenience
func MakeTransactionID(s string) *TransactionID {
	t := TransactionID(s)
	return &t
}

// OpenOrder represents an open order on the trading account
type OpenOrder struct {
	Order
	ID            string
	ClientOrderID string
	Status        string
	StartTime     *Timestamp
	UpdateTime    *Timestamp
	VolumeLeft    decimal.Decimal
}

// String is the stringer function
func (o OpenOrder) String() string {
	return fmt.Sprintf("OpenOrder[order=%s, id=%s, status=%s, volumeLeft=%s]",
		o.Order,
		o.ID,
		o.Status,
		o.VolumeLeft.String(),
	)
}

// CancelOrderResult is the result of a CancelOrder call
type CancelOrderResult int8

// These are the available types
const (
	CancelResultCancelSuccessful CancelOrderResult = 0
	CancelResultPending          CancelOrderResult = 1
	CancelResultFailed           CancelOrderResult = 2
)

// String is the stringer function
func (r CancelOrderResult) String() string {
	if r == CancelResultCancelSuccessful {
		return "cancelled"
	} else if r == CancelResultPending {
		return "pending"
	} else if r == CancelResultFailed {
		return "failed"
	}
	return "error, unrecognized CancelOrderResult"
}

// Trade represents a completed trade on the exchange
type Trade struct {
	Order
	TransactionID *TransactionID
	Cost          decimal.Decimal
	Fee           decimal.Decimal
	Tax           decimal.Decimal
}

// String is the stringer function
func (t Trade) String() string {
	return fmt.Sprintf("Trade[txid: %s, ts: %s, pair: %s, action: %s, type: %s, price: %s, volume: %s, cost: %s, fee: %s, tax: %s]",
		t.TransactionID,
		t.Timestamp,
		t.Pair,
		t.OrderAction,
		t.OrderType,
		t.Price.String(),
		t.Volume.String(),
		t.Cost.String(),
		t.Fee.String(),
		t.Tax.String(),
	)
}

// TradesByTsID implements sort.Interface for []Trade ordered by timestamp, then by transaction id
type TradesByTsID []Trade

// Len impl.
func (t TradesByTsID) Len() int {
	return len(t)
}

// Swap impl.
func (t TradesByTsID) Swap(i int, j int) {
	t[i], t[j] = t[j], t[i]
}

// Less impl.
func (t TradesByTsID) Less(i int, j int) bool {
	tsI := tsOrZero(t[i])
	tsJ := tsOrZero(t[j])
	if tsI != tsJ {
		return tsI < tsJ
	}
	return txIDOrEmpty(t[i]) < txIDOrEmpty(t[j])
}

func tsOrZero(t Trade) int64 {
	if t.Timestamp == nil {
		return 0
	}
	return t.Timestamp.AsInt64()
}

func txIDOrEmpty(t Trade) string {
	if t.TransactionID == nil {
		return ""
	}
	return t.TransactionID.String()
}
