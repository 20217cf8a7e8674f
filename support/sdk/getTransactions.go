package sdk

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// UserTrade is one fill from the account's trade history. The amount is
// negative for sells.
type UserTrade struct {
	Price             decimal.Decimal `json:"price"`
	NumeratorSymbol   string          `json:"numeratorSymbol"`
	DenominatorSymbol string          `json:"denominatorSymbol"`
	OrderType         string          `json:"orderType"`
	OrderID           int64           `json:"orderId"`
	ID                int64           `json:"id"`
	Timestamp         Timestamp       `json:"timestamp"`
	Amount            decimal.Decimal `json:"amount"`
	Fee               decimal.Decimal `json:"fee"`
	Tax               decimal.Decimal `json:"tax"`
}

// AssetTransaction is one deposit or withdrawal from the account's history
type AssetTransaction struct {
	BalanceType    string          `json:"balanceType"`
	CurrencySymbol string          `json:"currencySymbol"`
	ID             int64           `json:"id"`
	Timestamp      Timestamp       `json:"timestamp"`
	Funds          decimal.Decimal `json:"funds"`
	OrderFund      decimal.Decimal `json:"orderFund"`
	Fee            decimal.Decimal `json:"fee"`
	Tax            decimal.Decimal `json:"tax"`
}

// TradeTransactionsOptions narrows GetTradeTransactions. Zero-valued fields
// are omitted from the request entirely, leaving the bounds to the server.
type TradeTransactionsOptions struct {
	// Types filters by trade side, "buy" and/or "sell"
	Types []string
	// Symbols filters by asset code, e.g. "BTC"
	Symbols []string
	// StartDate and EndDate bound the history, millis since epoch
	StartDate *int64
	EndDate   *int64
}

// CryptoTransactionsOptions narrows GetCryptoTransactions. Zero-valued
// fields are omitted from the request entirely.
type CryptoTransactionsOptions struct {
	// Types filters by direction, "deposit" and/or "withdrawal"
	Types []string
	// Symbols filters by asset code, e.g. "BTC"
	Symbols []string
	// StartDate and EndDate bound the history, millis since epoch
	StartDate *int64
	EndDate   *int64
}

// FiatTransactionsOptions narrows GetFiatTransactions. Zero-valued fields
// are omitted from the request entirely.
type FiatTransactionsOptions struct {
	// BalanceTypes filters by direction, "deposit" and/or "withdrawal"
	BalanceTypes []string
	// CurrencySymbols filters by currency code, e.g. "TRY"
	CurrencySymbols []string
	// StartDate and EndDate bound the history, millis since epoch
	StartDate *int64
	EndDate   *int64
}

// GetTradeTransactions fetches the account's trade history, newest first
func (b *Btcturk) GetTradeTransactions(opts TradeTransactionsOptions) ([]UserTrade, error) {
	query := url.Values{}
	addEach(query, "type", opts.Types)
	addEach(query, "symbol", opts.Symbols)
	addDateRange(query, opts.StartDate, opts.EndDate)

	data, e := b.doRequest(endpointTradeTransactions, query, nil)
	if e != nil {
		return nil, e
	}

	trades := []UserTrade{}
	if e := decodeData(data, &trades); e != nil {
		return nil, e
	}
	return trades, nil
}

// GetCryptoTransactions fetches the account's crypto deposit and withdrawal
// history, newest first
func (b *Btcturk) GetCryptoTransactions(opts CryptoTransactionsOptions) ([]AssetTransaction, error) {
	query := url.Values{}
	addEach(query, "type", opts.Types)
	addEach(query, "symbol", opts.Symbols)
	addDateRange(query, opts.StartDate, opts.EndDate)

	data, e := b.doRequest(endpointCryptoTransactions, query, nil)
	if e != nil {
		return nil, e
	}

	transactions := []AssetTransaction{}
	if e := decodeData(data, &transactions); e != nil {
		return nil, e
	}
	return transactions, nil
}

// GetFiatTransactions fetches the account's fiat deposit and withdrawal
// history, newest first
func (b *Btcturk) GetFiatTransactions(opts FiatTransactionsOptions) ([]AssetTransaction, error) {
	query := url.Values{}
	addEach(query, "balanceTypes", opts.BalanceTypes)
	addEach(query, "currencySymbols", opts.CurrencySymbols)
	addDateRange(query, opts.StartDate, opts.EndDate)

	data, e := b.doRequest(endpointFiatTransactions, query, nil)
	if e != nil {
		return nil, e
	}

	transactions := []AssetTransaction{}
	if e := decodeData(data, &transactions); e != nil {
		return nil, e
	}
	return transactions, nil
}

// addEach appends one query parameter per value, the encoding the exchange
// expects for list filters
func addEach(query url.Values, key string, values []string) {
	for _, value := range values {
		query.Add(key, value)
	}
}

// addDateRange appends the startDate and endDate bounds that were set
func addDateRange(query url.Values, startDate *int64, endDate *int64) {
	if startDate != nil {
		query.Set("startDate", strconv.FormatInt(*startDate, 10))
	}
	if endDate != nil {
		query.Set("endDate", strconv.FormatInt(*endDate, 10))
	}
}
