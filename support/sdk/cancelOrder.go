package sdk

import (
	"net/url"
	"strconv"

	"github.com/tulparex/btcturk/api"
)

// cancelOrderRequest mirrors the id into the body, the server expects it in
// the query string and the body both
type cancelOrderRequest struct {
	ID int64 `json:"id"`
}

// CancelOrder cancels the resting order with the given id. A nil error means
// the exchange accepted the cancellation.
func (b *Btcturk) CancelOrder(orderID int64) error {
	if orderID <= 0 {
		return api.MakeInvalidRequestParameterError("orderID must be a positive order id", "", nil)
	}

	query := url.Values{}
	query.Set("id", strconv.FormatInt(orderID, 10))

	_, e := b.doRequest(endpointCancelOrder, query, cancelOrderRequest{ID: orderID})
	return e
}
