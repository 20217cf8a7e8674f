package sdk

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const exchangeInfoResponse = `{
	"success": true,
	"message": null,
	"code": 0,
	"data": {
		"timeZone": "UTC",
		"serverTime": 1645091654418,
		"symbols": [
			{
				"id": 1,
				"name": "BTCTRY",
				"nameNormalized": "BTC_TRY",
				"status": "TRADING",
				"numerator": "BTC",
				"denominator": "TRY",
				"numeratorScale": 8,
				"denominatorScale": 2,
				"hasFraction": false,
				"filters": [
					{
						"filterType": "PRICE_FILTER",
						"minPrice": "0.0000000000001",
						"maxPrice": "10000000",
						"tickSize": "10",
						"minExchangeValue": "99.91",
						"minAmount": null,
						"maxAmount": null
					}
				],
				"orderMethods": ["MARKET", "LIMIT", "STOP_MARKET", "STOP_LIMIT"],
				"displayFormat": "#,###",
				"commissionFromNumerator": false,
				"order": 1000,
				"priceRounding": false
			},
			{
				"id": 4,
				"name": "ETHTRY",
				"nameNormalized": "ETH_TRY",
				"status": "TRADING",
				"numerator": "ETH",
				"denominator": "TRY",
				"numeratorScale": 8,
				"denominatorScale": 2,
				"hasFraction": false,
				"filters": [
					{
						"filterType": "PRICE_FILTER",
						"minPrice": "0.0000000000001",
						"maxPrice": "10000000",
						"tickSize": "1",
						"minExchangeValue": "99.91",
						"minAmount": null,
						"maxAmount": null
					}
				],
				"orderMethods": ["MARKET", "LIMIT", "STOP_MARKET", "STOP_LIMIT"],
				"displayFormat": "#,###",
				"commissionFromNumerator": false,
				"order": 1001,
				"priceRounding": false
			}
		]
	}
}`

func TestGetExchangeInfo(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, exchangeInfoResponse)
	}))
	defer server.Close()

	client, e := MakeBtcturkWithParams("", "", server.URL, time.Second)
	if !assert.NoError(t, e) {
		return
	}

	symbols, e := client.GetExchangeInfo(nil)

	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, "/api/v2/server/exchangeinfo", gotPath)
	if !assert.Equal(t, 2, len(symbols)) {
		return
	}

	btc := symbols[0]
	assert.Equal(t, int64(1), btc.ID)
	assert.Equal(t, "BTCTRY", btc.Name)
	assert.Equal(t, "BTC_TRY", btc.NameNormalized)
	assert.Equal(t, "TRADING", btc.Status)
	assert.Equal(t, "BTC", btc.Numerator)
	assert.Equal(t, "TRY", btc.Denominator)
	assert.Equal(t, int32(8), btc.NumeratorScale)
	assert.Equal(t, int32(2), btc.DenominatorScale)
	assert.Equal(t, []string{"MARKET", "LIMIT", "STOP_MARKET", "STOP_LIMIT"}, btc.OrderMethods)

	filters, e := btc.ParseFilters()
	if !assert.NoError(t, e) {
		return
	}
	if !assert.Equal(t, 1, len(filters)) {
		return
	}
	assert.Equal(t, "PRICE_FILTER", filters[0].FilterType)
	assert.Equal(t, "0.0000000000001", filters[0].MinPrice)
	assert.Equal(t, "10000000", filters[0].MaxPrice)
	assert.Equal(t, "10", filters[0].TickSize)
	assert.Equal(t, "99.91", filters[0].MinExchangeValue)
	// null filter values decode to the zero value
	assert.Equal(t, "", filters[0].MinAmount)
	assert.Equal(t, "", filters[0].MaxAmount)
}

func TestGetExchangeInfoFiltersBySymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the symbol filter is applied client-side, never sent upstream
		assert.Equal(t, 0, len(r.URL.Query()))
		fmt.Fprint(w, exchangeInfoResponse)
	}))
	defer server.Close()

	client, e := MakeBtcturkWithParams("", "", server.URL, time.Second)
	if !assert.NoError(t, e) {
		return
	}

	symbols, e := client.GetExchangeInfo([]string{"ETHTRY"})
	if !assert.NoError(t, e) {
		return
	}
	if !assert.Equal(t, 1, len(symbols)) {
		return
	}
	assert.Equal(t, "ETHTRY", symbols[0].Name)

	// the normalized spelling matches too
	symbols, e = client.GetExchangeInfo([]string{"BTC_TRY"})
	if !assert.NoError(t, e) {
		return
	}
	if !assert.Equal(t, 1, len(symbols)) {
		return
	}
	assert.Equal(t, "BTCTRY", symbols[0].Name)
}
