package api

import (
	"github.com/shopspring/decimal"

	"github.com/tulparex/btcturk/model"
)

// Account allows you to access key account functions
type Account interface {
	GetAccountBalances(assetList []model.Asset) (map[model.Asset]model.Balance, error)
}

// Ticker encapsulates all the data for a given Trading Pair
type Ticker struct {
	AskPrice     decimal.Decimal
	BidPrice     decimal.Decimal
	LastPrice    decimal.Decimal
	DailyPercent decimal.Decimal
}

// TradesResult is the result of a GetTrades call
type TradesResult struct {
	Cursor interface{}
	Trades []model.Trade
}

// TradeHistoryResult is the result of a GetTradeHistory call
type TradeHistoryResult struct {
	Trades []model.Trade
}

// TickerAPI is the interface we use as a generic API for getting ticker data from the exchange
type TickerAPI interface {
	GetTickerPrice(pairs []model.TradingPair) (map[model.TradingPair]Ticker, error)
}

// TradeAPI is the interface we use as a generic API for trading on the exchange
type TradeAPI interface {
	GetAssetConverter() model.AssetConverterInterface

	GetOrderBook(pair *model.TradingPair, maxCount int32) (*model.OrderBook, error)

	GetTrades(pair *model.TradingPair, maybeCursor interface{}) (*TradesResult, error)

	GetTradeHistory(maybeCursorStart interface{}, maybeCursorEnd interface{}) (*TradeHistoryResult, error)

	GetOpenOrders(pair *model.TradingPair) (map[model.TradingPair][]model.OpenOrder, error)

	AddOrder(order *model.Order) (*model.TransactionID, error)

	CancelOrder(txID *model.TransactionID) (model.CancelOrderResult, error)
}

// Exchange is the interface we use as a generic API for the exchange
type Exchange interface {
	Account
	TickerAPI
	TradeAPI
}
