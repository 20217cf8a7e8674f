package sdk

import (
	"net/url"
	"strconv"

	"github.com/tulparex/btcturk/api"
)

// AllOrdersOptions narrows GetAllOrders. PairSymbol is required, zero-valued
// optional fields are omitted from the request entirely.
type AllOrdersOptions struct {
	// PairSymbol is the pair to query, e.g. "BTCTRY"
	PairSymbol string
	// OrderID restricts the result to this order and the ones placed after
	// it. The id sent on the wire is OrderID-1 because the endpoint is
	// exclusive of the given id.
	OrderID *int64
	// StartDate and EndDate bound the history, millis since epoch
	StartDate *int64
	EndDate   *int64
	// Page selects a result page, the first page is 1
	Page *int32
	// Limit caps the number of rows, the documented maximum is 1000
	Limit *int32
}

// GetAllOrders fetches the account's order history of one pair, oldest first.
func (b *Btcturk) GetAllOrders(opts AllOrdersOptions) ([]Order, error) {
	if opts.PairSymbol == "" {
		return nil, api.MakeInvalidRequestParameterError("pairSymbol cannot be empty", "", nil)
	}
	if opts.Page != nil && *opts.Page < 1 {
		return nil, api.MakeInvalidRequestParameterError("page must be 1 or greater", "", nil)
	}
	if opts.Limit != nil && (*opts.Limit < 1 || *opts.Limit > 1000) {
		return nil, api.MakeInvalidRequestParameterError("limit must be between 1 and 1000", "", nil)
	}

	query := url.Values{}
	query.Set("pairSymbol", opts.PairSymbol)
	if opts.OrderID != nil {
		wireID := *opts.OrderID
		if wireID > 0 {
			wireID--
		}
		query.Set("orderId", strconv.FormatInt(wireID, 10))
	}
	addDateRange(query, opts.StartDate, opts.EndDate)
	if opts.Page != nil {
		query.Set("page", strconv.FormatInt(int64(*opts.Page), 10))
	}
	if opts.Limit != nil {
		query.Set("limit", strconv.FormatInt(int64(*opts.Limit), 10))
	}

	data, e := b.doRequest(endpointAllOrders, query, nil)
	if e != nil {
		return nil, e
	}

	orders := []Order{}
	if e := decodeData(data, &orders); e != nil {
		return nil, e
	}
	return orders, nil
}
