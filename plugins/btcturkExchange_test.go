package plugins

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tulparex/btcturk/api"
	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/sdk"
)

const testAPIKey = "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d"
const testAPISecret = "c2VjcmV0LWtleS1ieXRlcy0xMjM0NTY3ODkwYWJjZGVm"

func makeTestExchange(t *testing.T, handler http.HandlerFunc) (api.Exchange, *httptest.Server) {
	server := httptest.NewServer(handler)
	client, e := sdk.MakeBtcturkWithParams(testAPIKey, testAPISecret, server.URL, time.Second)
	if e != nil {
		server.Close()
		t.Fatalf("could not make the client: %s", e)
	}
	return MakeBtcturkExchange(client), server
}

func TestBtcturkExchangeGetTickerPrice(t *testing.T) {
	var gotPairSymbol string
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		gotPairSymbol = r.URL.Query().Get("pairSymbol")
		fmt.Fprint(w, `{
			"success": true,
			"message": null,
			"code": 0,
			"data": [
				{
					"pair": "BTCTRY",
					"pairNormalized": "BTC_TRY",
					"timestamp": 1645091654418,
					"last": 430000.5,
					"high": 435000,
					"low": 425000,
					"bid": 429999,
					"ask": 430001,
					"open": 428000,
					"volume": 512.33,
					"average": 429500,
					"daily": 2000.5,
					"dailyPercent": 0.47,
					"numeratorSymbol": "BTC",
					"denominatorSymbol": "TRY"
				}
			]
		}`)
	})
	defer server.Close()

	pair := model.TradingPair{Base: model.BTC, Quote: model.TRY}
	prices, e := exchange.GetTickerPrice([]model.TradingPair{pair})

	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, "BTCTRY", gotPairSymbol)
	if !assert.Equal(t, 1, len(prices)) {
		return
	}
	ticker := prices[pair]
	assert.True(t, ticker.AskPrice.Equal(decimal.RequireFromString("430001")))
	assert.True(t, ticker.BidPrice.Equal(decimal.RequireFromString("429999")))
	assert.True(t, ticker.LastPrice.Equal(decimal.RequireFromString("430000.5")))
	assert.True(t, ticker.DailyPercent.Equal(decimal.RequireFromString("0.47")))
}

func TestBtcturkExchangeGetTickerPriceMissingPair(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"message":null,"code":0,"data":[]}`)
	})
	defer server.Close()

	_, e := exchange.GetTickerPrice([]model.TradingPair{{Base: model.BTC, Quote: model.TRY}})

	if !assert.Error(t, e) {
		return
	}
	assert.Contains(t, e.Error(), "did not return ticker data for pair BTCTRY")
}

func TestBtcturkExchangeGetOrderBook(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BTCTRY", r.URL.Query().Get("pairSymbol"))
		fmt.Fprint(w, `{
			"success": true,
			"message": null,
			"code": 0,
			"data": {
				"timestamp": 1645091654418,
				"bids": [["429999", "0.5"], ["429998", "1.25"]],
				"asks": [["430001", "0.75"]]
			}
		}`)
	})
	defer server.Close()

	pair := model.TradingPair{Base: model.BTC, Quote: model.TRY}
	book, e := exchange.GetOrderBook(&pair, 100)

	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, pair, *book.Pair())
	if !assert.Equal(t, 2, len(book.Bids())) || !assert.Equal(t, 1, len(book.Asks())) {
		return
	}

	bestBid := book.Bids()[0]
	assert.True(t, bestBid.OrderAction.IsBuy())
	assert.Equal(t, model.OrderTypeLimit, bestBid.OrderType)
	assert.True(t, bestBid.Price.Equal(decimal.RequireFromString("429999")))
	assert.True(t, bestBid.Volume.Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, int64(1645091654418), bestBid.Timestamp.AsInt64())

	bestAsk := book.Asks()[0]
	assert.True(t, bestAsk.OrderAction.IsSell())
	assert.True(t, bestAsk.Price.Equal(decimal.RequireFromString("430001")))
}

func TestBtcturkExchangeGetTrades(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BTCTRY", r.URL.Query().Get("pairSymbol"))
		assert.Equal(t, "2", r.URL.Query().Get("last"))
		// the feed returns newest first
		fmt.Fprint(w, `{
			"success": true,
			"message": null,
			"code": 0,
			"data": [
				{"pair":"BTCTRY","pairNormalized":"BTC_TRY","numerator":"BTC","denominator":"TRY","date":1645091654418,"tid":"637545167266", "price":"430000.5","amount":"0.25"},
				{"pair":"BTCTRY","pairNormalized":"BTC_TRY","numerator":"BTC","denominator":"TRY","date":1645091650000,"tid":"637545167265","price":"429999","amount":"1.5"}
			]
		}`)
	})
	defer server.Close()

	pair := model.TradingPair{Base: model.BTC, Quote: model.TRY}
	result, e := exchange.GetTrades(&pair, 2)

	if !assert.NoError(t, e) {
		return
	}
	assert.Nil(t, result.Cursor)
	if !assert.Equal(t, 2, len(result.Trades)) {
		return
	}
	// trades come back sorted in ascending time order
	assert.Equal(t, int64(1645091650000), result.Trades[0].Timestamp.AsInt64())
	assert.Equal(t, "637545167265", result.Trades[0].TransactionID.String())
	assert.Equal(t, int64(1645091654418), result.Trades[1].Timestamp.AsInt64())
	assert.True(t, result.Trades[1].Cost.Equal(decimal.RequireFromString("107500.125")))
}

func TestBtcturkExchangeGetTradesRejectsBadCursor(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {})
	defer server.Close()

	pair := model.TradingPair{Base: model.BTC, Quote: model.TRY}
	_, e := exchange.GetTrades(&pair, "not-a-count")

	if !assert.Error(t, e) {
		return
	}
	assert.Contains(t, e.Error(), "unsupported trade cursor type")
}

func TestBtcturkExchangeGetTradeHistory(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1640995200000", r.URL.Query().Get("startDate"))
		assert.Equal(t, "1645091654418", r.URL.Query().Get("endDate"))
		fmt.Fprint(w, `{
			"success": true,
			"message": null,
			"code": 0,
			"data": [
				{"price":"430000","numeratorSymbol":"BTC","denominatorSymbol":"TRY","orderType":"sell","orderId":9932534,"id":637545167266,"timestamp":1645091654418,"amount":"-0.25","fee":"-96.75","tax":"-17.41"},
				{"price":"428000","numeratorSymbol":"ETH","denominatorSymbol":"TRY","orderType":"buy","orderId":9932500,"id":637545167200,"timestamp":1645091650000,"amount":"1.5","fee":"-57.78","tax":"-10.40"}
			]
		}`)
	})
	defer server.Close()

	result, e := exchange.GetTradeHistory(int64(1640995200000), int64(1645091654418))

	if !assert.NoError(t, e) {
		return
	}
	if !assert.Equal(t, 2, len(result.Trades)) {
		return
	}

	first := result.Trades[0]
	assert.Equal(t, "ETHTRY", first.Pair.String())
	assert.True(t, first.OrderAction.IsBuy())
	assert.Equal(t, "637545167200", first.TransactionID.String())

	second := result.Trades[1]
	assert.Equal(t, "BTCTRY", second.Pair.String())
	assert.True(t, second.OrderAction.IsSell())
	assert.True(t, second.Fee.Equal(decimal.RequireFromString("-96.75")))
	assert.True(t, second.Tax.Equal(decimal.RequireFromString("-17.41")))
}

func TestBtcturkExchangeGetOpenOrders(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"success": true,
			"message": null,
			"code": 0,
			"data": {
				"asks": [
					{"id":9932534,"price":"431000","amount":"0.25","quantity":"0.25","stopPrice":"0","pairSymbol":"BTCTRY","pairSymbolNormalized":"BTC_TRY","type":"sell","method":"limit","orderClientId":"2a8f7615-b142-4f0a-9a1e-7e4c1bd0c3a7","time":1645091654418,"updateTime":1645091654418,"status":"Untouched","leftAmount":"0.25"}
				],
				"bids": [
					{"id":9932535,"price":"425000","amount":"0.5","quantity":"0.5","stopPrice":"0","pairSymbol":"BTCTRY","pairSymbolNormalized":"BTC_TRY","type":"buy","method":"stopLimit","orderClientId":"55bbfb51-3f04-4b6b-bb80-50c7b4d1d3f0","time":1645091000000,"updateTime":1645091600000,"status":"Partial","leftAmount":"0.2"}
				]
			}
		}`)
	})
	defer server.Close()

	pair := model.TradingPair{Base: model.BTC, Quote: model.TRY}
	openOrders, e := exchange.GetOpenOrders(&pair)

	if !assert.NoError(t, e) {
		return
	}
	orders := openOrders[pair]
	if !assert.Equal(t, 2, len(orders)) {
		return
	}

	ask := orders[0]
	assert.Equal(t, "9932534", ask.ID)
	assert.Equal(t, "2a8f7615-b142-4f0a-9a1e-7e4c1bd0c3a7", ask.ClientOrderID)
	assert.True(t, ask.OrderAction.IsSell())
	assert.Equal(t, model.OrderTypeLimit, ask.OrderType)
	assert.Equal(t, "Untouched", ask.Status)

	bid := orders[1]
	assert.True(t, bid.OrderAction.IsBuy())
	assert.Equal(t, model.OrderTypeStopLimit, bid.OrderType)
	assert.True(t, bid.VolumeLeft.Equal(decimal.RequireFromString("0.2")))
	assert.Equal(t, int64(1645091600000), bid.UpdateTime.AsInt64())
}

func TestBtcturkExchangeGetAccountBalances(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"success": true,
			"message": null,
			"code": 0,
			"data": [
				{"asset":"TRY","assetname":"Türk Lirası","balance":"103158.9412490031968651","locked":"0","free":"103158.9412490031968651","orderFund":"0","requestFund":"0","precision":2},
				{"asset":"BTC","assetname":"Bitcoin","balance":"1.5","locked":"0.25","free":"1.25","orderFund":"0","requestFund":"0","precision":8}
			]
		}`)
	})
	defer server.Close()

	balances, e := exchange.GetAccountBalances(nil)

	if !assert.NoError(t, e) {
		return
	}
	if !assert.Equal(t, 2, len(balances)) {
		return
	}

	try := balances[model.TRY]
	assert.Equal(t, "Türk Lirası", try.AssetName)
	assert.True(t, try.Total.Equal(decimal.RequireFromString("103158.9412490031968651")))

	btc := balances[model.BTC]
	assert.True(t, btc.Locked.Equal(decimal.RequireFromString("0.25")))
	assert.True(t, btc.Free.Equal(decimal.RequireFromString("1.25")))
}

func TestBtcturkExchangeAddOrder(t *testing.T) {
	var gotBody []byte
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = ioutil.ReadAll(r.Body)
		fmt.Fprint(w, `{
			"success": true,
			"message": "SUCCESS",
			"code": 0,
			"data": {"id":9932534,"datetime":1645091654418,"type":"buy","method":"limit","price":"429000.5","stopPrice":"0","quantity":"0.25","pairSymbol":"BTCTRY","pairSymbolNormalized":"BTC_TRY","newOrderClientId":"2a8f7615-b142-4f0a-9a1e-7e4c1bd0c3a7"}
		}`)
	})
	defer server.Close()

	pair := model.TradingPair{Base: model.BTC, Quote: model.TRY}
	txID, e := exchange.AddOrder(&model.Order{
		Pair:        &pair,
		OrderAction: model.OrderActionBuy,
		OrderType:   model.OrderTypeLimit,
		Price:       decimal.RequireFromString("429000.5"),
		Volume:      decimal.RequireFromString("0.25"),
	})

	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, "9932534", txID.String())

	bodyMap := map[string]interface{}{}
	if !assert.NoError(t, json.Unmarshal(gotBody, &bodyMap)) {
		return
	}
	assert.Equal(t, "limit", bodyMap["orderMethod"])
	assert.Equal(t, "buy", bodyMap["orderType"])
	assert.Equal(t, "BTCTRY", bodyMap["pairSymbol"])
	assert.Equal(t, "429000.5", bodyMap["price"])
	assert.Equal(t, "0.25", bodyMap["quantity"])
	_, hasStopPrice := bodyMap["stopPrice"]
	assert.False(t, hasStopPrice)
}

func TestBtcturkExchangeCancelOrder(t *testing.T) {
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		fmt.Fprint(w, `{"success":true,"message":"SUCCESS","code":0,"data":null}`)
	})
	defer server.Close()

	result, e := exchange.CancelOrder(model.MakeTransactionID("9932534"))

	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, model.CancelResultCancelSuccessful, result)
}

func TestBtcturkExchangeCancelOrderBadID(t *testing.T) {
	called := false
	exchange, server := makeTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer server.Close()

	result, e := exchange.CancelOrder(model.MakeTransactionID("not-numeric"))

	if !assert.Error(t, e) {
		return
	}
	assert.Equal(t, model.CancelResultFailed, result)
	assert.False(t, called)
}
