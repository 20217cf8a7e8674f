package plugins

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tulparex/btcturk/api"
	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/sdk"
)

// ensure that btcturkExchange conforms to the Exchange interface
var _ api.Exchange = &btcturkExchange{}

// btcturkExchange is the implementation of the generic exchange interface on
// top of the REST client
type btcturkExchange struct {
	sdkClient      *sdk.Btcturk
	assetConverter model.AssetConverterInterface
}

// MakeBtcturkExchange is a factory method to make the exchange from a client
func MakeBtcturkExchange(sdkClient *sdk.Btcturk) api.Exchange {
	return &btcturkExchange{
		sdkClient:      sdkClient,
		assetConverter: model.Display,
	}
}

// GetAssetConverter impl.
func (b *btcturkExchange) GetAssetConverter() model.AssetConverterInterface {
	return b.assetConverter
}

// GetAccountBalances impl.
func (b *btcturkExchange) GetAccountBalances(assetList []model.Asset) (map[model.Asset]model.Balance, error) {
	assetStrings := []string{}
	for _, a := range assetList {
		s, e := b.assetConverter.ToString(a)
		if e != nil {
			return nil, fmt.Errorf("could not convert asset %s to its symbol: %s", string(a), e)
		}
		assetStrings = append(assetStrings, s)
	}

	balances, e := b.sdkClient.GetAccountBalances(assetStrings)
	if e != nil {
		return nil, fmt.Errorf("could not load account balances: %s", e)
	}

	m := map[model.Asset]model.Balance{}
	for _, bal := range balances {
		asset, e := b.assetConverter.FromString(bal.Asset)
		if e != nil {
			// the account can hold assets the converter does not know about
			asset = model.Asset(strings.ToUpper(bal.Asset))
		}
		m[asset] = model.Balance{
			Asset:     asset,
			AssetName: bal.AssetName,
			Total:     bal.Balance,
			Locked:    bal.Locked,
			Free:      bal.Free,
		}
	}
	return m, nil
}

// GetTickerPrice impl.
func (b *btcturkExchange) GetTickerPrice(pairs []model.TradingPair) (map[model.TradingPair]api.Ticker, error) {
	pairsMap, e := model.TradingPairs2Strings(b.assetConverter, "", pairs)
	if e != nil {
		return nil, e
	}

	// a single pair can be narrowed server-side, multiple pairs need the full listing
	pairSymbol := ""
	if len(pairs) == 1 {
		pairSymbol = pairsMap[pairs[0]]
	}
	tickers, e := b.sdkClient.GetTicker(pairSymbol)
	if e != nil {
		return nil, fmt.Errorf("could not load ticker data: %s", e)
	}

	rowsBySymbol := map[string]sdk.Ticker{}
	for _, t := range tickers {
		rowsBySymbol[t.Pair] = t
	}

	priceResult := map[model.TradingPair]api.Ticker{}
	for _, p := range pairs {
		row, ok := rowsBySymbol[pairsMap[p]]
		if !ok {
			return nil, fmt.Errorf("exchange did not return ticker data for pair %s", pairsMap[p])
		}
		priceResult[p] = api.Ticker{
			AskPrice:     row.Ask,
			BidPrice:     row.Bid,
			LastPrice:    row.Last,
			DailyPercent: row.DailyPercent,
		}
	}
	return priceResult, nil
}

// GetOrderBook impl.
func (b *btcturkExchange) GetOrderBook(pair *model.TradingPair, maxCount int32) (*model.OrderBook, error) {
	pairStr, e := pair.ToString(b.assetConverter, "")
	if e != nil {
		return nil, e
	}

	book, e := b.sdkClient.GetOrderBook(pairStr, maxCount)
	if e != nil {
		return nil, fmt.Errorf("could not load order book for %s: %s", pairStr, e)
	}

	ts := model.MakeTimestamp(book.Timestamp.AsInt64())
	asks := readPriceLevels(book.Asks, pair, model.OrderActionSell, ts)
	bids := readPriceLevels(book.Bids, pair, model.OrderActionBuy, ts)
	return model.MakeOrderBook(pair, asks, bids), nil
}

func readPriceLevels(levels []sdk.PriceLevel, pair *model.TradingPair, orderAction model.OrderAction, ts *model.Timestamp) []model.Order {
	orders := []model.Order{}
	for _, level := range levels {
		orders = append(orders, model.Order{
			Pair:        pair,
			OrderAction: orderAction,
			OrderType:   model.OrderTypeLimit,
			Price:       level.Price,
			Volume:      level.Amount,
			Timestamp:   ts,
		})
	}
	return orders
}

// GetTrades impl. The exchange paginates the public trade feed by a count of
// most recent entries rather than an opaque cursor, so maybeCursor is that
// count and the returned cursor is always nil.
func (b *btcturkExchange) GetTrades(pair *model.TradingPair, maybeCursor interface{}) (*api.TradesResult, error) {
	pairStr, e := pair.ToString(b.assetConverter, "")
	if e != nil {
		return nil, e
	}

	last, e := asTradeCount(maybeCursor)
	if e != nil {
		return nil, e
	}

	trades, e := b.sdkClient.GetTrades(pairStr, last)
	if e != nil {
		return nil, fmt.Errorf("could not load trades for %s: %s", pairStr, e)
	}

	result := &api.TradesResult{
		Cursor: nil,
		Trades: []model.Trade{},
	}
	for _, t := range trades {
		result.Trades = append(result.Trades, model.Trade{
			Order: model.Order{
				Pair: pair,
				// the public feed does not carry the taker side or the order type
				Price:     t.Price,
				Volume:    t.Amount,
				Timestamp: model.MakeTimestamp(t.Date.AsInt64()),
			},
			TransactionID: model.MakeTransactionID(t.TID),
			Cost:          t.Price.Mul(t.Amount),
		})
	}

	sort.Sort(model.TradesByTsID(result.Trades))
	return result, nil
}

func asTradeCount(maybeCursor interface{}) (int32, error) {
	switch v := maybeCursor.(type) {
	case nil:
		return 0, nil
	case int:
		return int32(v), nil
	case int32:
		return v, nil
	case int64:
		return int32(v), nil
	default:
		return 0, fmt.Errorf("unsupported trade cursor type %T, expecting a count of recent trades", maybeCursor)
	}
}

// GetTradeHistory impl. Cursors are unix millisecond timestamps bounding the
// date range of the account's trades.
func (b *btcturkExchange) GetTradeHistory(maybeCursorStart interface{}, maybeCursorEnd interface{}) (*api.TradeHistoryResult, error) {
	startDate, e := asMillisCursor(maybeCursorStart)
	if e != nil {
		return nil, e
	}
	endDate, e := asMillisCursor(maybeCursorEnd)
	if e != nil {
		return nil, e
	}

	userTrades, e := b.sdkClient.GetTradeTransactions(sdk.TradeTransactionsOptions{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if e != nil {
		return nil, fmt.Errorf("could not load the account's trade history: %s", e)
	}

	result := &api.TradeHistoryResult{Trades: []model.Trade{}}
	for _, t := range userTrades {
		pair := &model.TradingPair{
			Base:  model.Asset(strings.ToUpper(t.NumeratorSymbol)),
			Quote: model.Asset(strings.ToUpper(t.DenominatorSymbol)),
		}
		result.Trades = append(result.Trades, model.Trade{
			Order: model.Order{
				Pair:        pair,
				OrderAction: model.OrderActionFromString(t.OrderType),
				Price:       t.Price,
				Volume:      t.Amount,
				Timestamp:   model.MakeTimestamp(t.Timestamp.AsInt64()),
			},
			TransactionID: model.MakeTransactionID(strconv.FormatInt(t.ID, 10)),
			Cost:          t.Price.Mul(t.Amount),
			Fee:           t.Fee,
			Tax:           t.Tax,
		})
	}

	sort.Sort(model.TradesByTsID(result.Trades))
	return result, nil
}

func asMillisCursor(maybeCursor interface{}) (*int64, error) {
	switch v := maybeCursor.(type) {
	case nil:
		return nil, nil
	case int64:
		return &v, nil
	case int:
		millis := int64(v)
		return &millis, nil
	case *model.Timestamp:
		millis := v.AsInt64()
		return &millis, nil
	default:
		return nil, fmt.Errorf("unsupported trade history cursor type %T, expecting a unix millisecond timestamp", maybeCursor)
	}
}

// GetOpenOrders impl.
func (b *btcturkExchange) GetOpenOrders(pair *model.TradingPair) (map[model.TradingPair][]model.OpenOrder, error) {
	pairSymbol := ""
	if pair != nil {
		s, e := pair.ToString(b.assetConverter, "")
		if e != nil {
			return nil, e
		}
		pairSymbol = s
	}

	openOrders, e := b.sdkClient.GetOpenOrders(pairSymbol)
	if e != nil {
		return nil, fmt.Errorf("could not load open orders: %s", e)
	}

	m := map[model.TradingPair][]model.OpenOrder{}
	for _, o := range openOrders.Asks {
		if e := appendOpenOrder(m, o, b.assetConverter); e != nil {
			return nil, e
		}
	}
	for _, o := range openOrders.Bids {
		if e := appendOpenOrder(m, o, b.assetConverter); e != nil {
			return nil, e
		}
	}
	return m, nil
}

func appendOpenOrder(m map[model.TradingPair][]model.OpenOrder, o sdk.Order, converter model.AssetConverterInterface) error {
	pair, e := model.TradingPairFromString(converter, o.PairSymbolNormalized)
	if e != nil {
		return fmt.Errorf("could not parse the trading pair of open order %d: %s", o.ID, e)
	}

	orderType, e := model.OrderTypeFromString(o.Method)
	if e != nil {
		return fmt.Errorf("could not parse the method of open order %d: %s", o.ID, e)
	}

	m[*pair] = append(m[*pair], model.OpenOrder{
		Order: model.Order{
			Pair:        pair,
			OrderAction: model.OrderActionFromString(o.Type),
			OrderType:   orderType,
			Price:       o.Price,
			StopPrice:   o.StopPrice,
			Volume:      o.Quantity,
			Timestamp:   model.MakeTimestamp(o.Time.AsInt64()),
		},
		ID:            strconv.FormatInt(o.ID, 10),
		ClientOrderID: o.OrderClientID,
		Status:        o.Status,
		StartTime:     model.MakeTimestamp(o.Time.AsInt64()),
		UpdateTime:    model.MakeTimestamp(o.UpdateTime.AsInt64()),
		VolumeLeft:    o.LeftAmount,
	})
	return nil
}

// AddOrder impl.
func (b *btcturkExchange) AddOrder(order *model.Order) (*model.TransactionID, error) {
	pairStr, e := order.Pair.ToString(b.assetConverter, "")
	if e != nil {
		return nil, e
	}

	req := &sdk.NewOrderRequest{
		Quantity:    order.Volume,
		OrderMethod: order.OrderType.String(),
		OrderType:   order.OrderAction.String(),
		PairSymbol:  pairStr,
	}
	if order.OrderType.HasPrice() {
		price := order.Price
		req.Price = &price
	}
	if order.OrderType.IsStop() {
		stopPrice := order.StopPrice
		req.StopPrice = &stopPrice
	}

	resp, e := b.sdkClient.SubmitOrder(req)
	if e != nil {
		return nil, fmt.Errorf("could not submit order for %s: %s", pairStr, e)
	}
	return model.MakeTransactionID(strconv.FormatInt(resp.ID, 10)), nil
}

// CancelOrder impl.
func (b *btcturkExchange) CancelOrder(txID *model.TransactionID) (model.CancelOrderResult, error) {
	orderID, e := strconv.ParseInt(txID.String(), 10, 64)
	if e != nil {
		return model.CancelResultFailed, fmt.Errorf("could not parse transaction id %s as an order id: %s", txID.String(), e)
	}

	if e := b.sdkClient.CancelOrder(orderID); e != nil {
		return model.CancelResultFailed, e
	}
	return model.CancelResultCancelSuccessful, nil
}
