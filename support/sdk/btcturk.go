package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tulparex/btcturk/api"
	"github.com/tulparex/btcturk/support/networking"
)

// ProductionBaseURL is the base URL of the live API
const ProductionBaseURL = "https://api.btcturk.com"

// endpoint describes one operation of the REST API
type endpoint struct {
	verb    string
	path    string
	private bool
}

// the catalog of supported endpoints
var (
	endpointServerTime         = endpoint{verb: "GET", path: "/api/v2/server/time"}
	endpointExchangeInfo       = endpoint{verb: "GET", path: "/api/v2/server/exchangeinfo"}
	endpointTicker             = endpoint{verb: "GET", path: "/api/v2/ticker"}
	endpointOhlc               = endpoint{verb: "GET", path: "/api/v2/ohlc"}
	endpointOrderBook          = endpoint{verb: "GET", path: "/api/v2/orderbook"}
	endpointTrades             = endpoint{verb: "GET", path: "/api/v2/trades"}
	endpointBalances           = endpoint{verb: "GET", path: "/api/v1/users/balances", private: true}
	endpointTradeTransactions  = endpoint{verb: "GET", path: "/api/v1/users/transactions/trade", private: true}
	endpointCryptoTransactions = endpoint{verb: "GET", path: "/api/v1/users/transactions/crypto", private: true}
	endpointFiatTransactions   = endpoint{verb: "GET", path: "/api/v1/users/transactions/fiat", private: true}
	endpointOpenOrders         = endpoint{verb: "GET", path: "/api/v1/openOrders", private: true}
	endpointAllOrders          = endpoint{verb: "GET", path: "/api/v1/allOrders", private: true}
	endpointSubmitOrder        = endpoint{verb: "POST", path: "/api/v1/order", private: true}
	endpointCancelOrder        = endpoint{verb: "DELETE", path: "/api/v1/order", private: true}
)

// Timestamp is a moment encoded by the exchange as a unix timestamp,
// milliseconds on most endpoints. The exchange emits these sometimes as plain
// integers and sometimes with a trailing fractional part so decoding
// tolerates both.
type Timestamp int64

// UnmarshalJSON is the json.Unmarshaler impl.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*t = 0
		return nil
	}

	f, e := strconv.ParseFloat(s, 64)
	if e != nil {
		return fmt.Errorf("could not parse timestamp '%s': %s", s, e)
	}
	*t = Timestamp(int64(f))
	return nil
}

// AsInt64 returns the underlying value
func (t Timestamp) AsInt64() int64 {
	return int64(t)
}

// Btcturk is a client for the exchange's REST API. Every method performs
// exactly one HTTP request, there are no retries, and returns either a typed
// result or an *api.Error. A client constructed without credentials can only
// call the public endpoints.
type Btcturk struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string

	// stampFn returns the millisecond stamp embedded in the auth headers,
	// overridable in tests
	stampFn func() int64
}

// MakeBtcturk is a factory method for the Btcturk client against the
// production API with the default request timeout. Pass empty strings for
// both credentials to restrict the client to the public endpoints.
func MakeBtcturk(apiKey string, apiSecret string) (*Btcturk, error) {
	return MakeBtcturkWithParams(apiKey, apiSecret, ProductionBaseURL, networking.DefaultTimeout)
}

// MakeBtcturkWithParams is a factory method for the Btcturk client against a
// custom base URL with a custom request timeout. A non-positive timeout falls
// back to the default, there is no way to disable the timeout altogether.
func MakeBtcturkWithParams(apiKey string, apiSecret string, baseURL string, timeout time.Duration) (*Btcturk, error) {
	if (apiKey == "") != (apiSecret == "") {
		return nil, api.MakeInvalidRequestParameterError("apiKey and apiSecret must be provided together or not at all", "", nil)
	}
	if baseURL == "" {
		return nil, api.MakeInvalidRequestParameterError("baseURL cannot be empty", "", nil)
	}

	return &Btcturk{
		httpClient: networking.NewHTTPClient(timeout),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		stampFn:    stampNow,
	}, nil
}

// stampNow returns the current time as second-resolution milliseconds, the
// stamp format expected by the exchange
func stampNow() int64 {
	return time.Now().Unix() * 1000
}

// HasCredentials returns true when the client holds an api key and secret
func (b *Btcturk) HasCredentials() bool {
	return b.apiKey != "" && b.apiSecret != ""
}

// authHeaders computes the three authentication headers for one request
func (b *Btcturk) authHeaders() (map[string]string, error) {
	stamp := b.stampFn()
	signature, e := Sign(b.apiKey, b.apiSecret, stamp)
	if e != nil {
		return nil, e
	}

	return map[string]string{
		headerAPIKey:    b.apiKey,
		headerStamp:     strconv.FormatInt(stamp, 10),
		headerSignature: signature,
	}, nil
}

// doRequest performs one HTTP request against an enveloped endpoint and
// returns the envelope's data payload
func (b *Btcturk) doRequest(ep endpoint, query url.Values, requestBody interface{}) (json.RawMessage, error) {
	statusCode, responseBody, e := b.roundTrip(ep, query, requestBody)
	if e != nil {
		return nil, e
	}
	return validateResponse(statusCode, responseBody)
}

// doBareRequest is doRequest for the endpoints that reply without the envelope wrapper
func (b *Btcturk) doBareRequest(ep endpoint, query url.Values) ([]byte, error) {
	statusCode, responseBody, e := b.roundTrip(ep, query, nil)
	if e != nil {
		return nil, e
	}
	return validateBareResponse(statusCode, responseBody)
}

// roundTrip builds the URL, headers, and body for one request and executes it.
// Private endpoints fail here, before any network activity, when the client
// has no credentials.
func (b *Btcturk) roundTrip(ep endpoint, query url.Values, requestBody interface{}) (int, []byte, error) {
	headers := map[string]string{headerContentType: "application/json"}
	if ep.private {
		if !b.HasCredentials() {
			return 0, nil, api.MakeInvalidRequestParameterError(fmt.Sprintf("endpoint %s %s requires credentials but the client has none", ep.verb, ep.path), "", nil)
		}

		authHeaders, e := b.authHeaders()
		if e != nil {
			return 0, nil, e
		}
		for k, v := range authHeaders {
			headers[k] = v
		}
	}

	reqURL := b.baseURL + ep.path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	data := ""
	if requestBody != nil {
		bodyBytes, e := json.Marshal(requestBody)
		if e != nil {
			return 0, nil, api.MakeInvalidRequestParameterError(fmt.Sprintf("could not serialize the request body: %s", e), "", nil)
		}
		data = string(bodyBytes)
	}

	statusCode, responseBody, e := networking.RawRequest(b.httpClient, ep.verb, reqURL, data, headers)
	if e != nil {
		return 0, nil, api.MakeTransportError(e)
	}
	return statusCode, responseBody, nil
}
