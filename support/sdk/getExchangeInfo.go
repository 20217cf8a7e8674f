package sdk

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// SymbolFilter is one trading rule of a symbol. The exchange encodes the
// bounds as decimal strings and omits the ones that do not apply.
type SymbolFilter struct {
	FilterType       string `mapstructure:"filterType"`
	MinPrice         string `mapstructure:"minPrice"`
	MaxPrice         string `mapstructure:"maxPrice"`
	TickSize         string `mapstructure:"tickSize"`
	MinExchangeValue string `mapstructure:"minExchangeValue"`
	MinAmount        string `mapstructure:"minAmount"`
	MaxAmount        string `mapstructure:"maxAmount"`
}

// SymbolInfo describes one listed pair and its trading rules
type SymbolInfo struct {
	ID                      int64                    `json:"id"`
	Name                    string                   `json:"name"`
	NameNormalized          string                   `json:"nameNormalized"`
	Status                  string                   `json:"status"`
	Numerator               string                   `json:"numerator"`
	Denominator             string                   `json:"denominator"`
	NumeratorScale          int32                    `json:"numeratorScale"`
	DenominatorScale        int32                    `json:"denominatorScale"`
	HasFraction             bool                     `json:"hasFraction"`
	Filters                 []map[string]interface{} `json:"filters"`
	OrderMethods            []string                 `json:"orderMethods"`
	DisplayFormat           string                   `json:"displayFormat"`
	CommissionFromNumerator bool                     `json:"commissionFromNumerator"`
	Order                   int64                    `json:"order"`
	PriceRounding           bool                     `json:"priceRounding"`
}

// ParseFilters decodes the loosely typed filter list of the symbol
func (s *SymbolInfo) ParseFilters() ([]SymbolFilter, error) {
	filters := []SymbolFilter{}
	for _, raw := range s.Filters {
		var filter SymbolFilter
		e := mapstructure.Decode(raw, &filter)
		if e != nil {
			return nil, fmt.Errorf("could not decode a filter of symbol %s: %s", s.Name, e)
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

// exchangeInfoData is the data payload of the exchange info endpoint
type exchangeInfoData struct {
	TimeZone   string       `json:"timeZone"`
	ServerTime Timestamp    `json:"serverTime"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// GetExchangeInfo fetches the symbol catalog. A non-empty symbolList narrows
// the result to the named pair symbols, the filtering happens client-side
// because the endpoint takes no parameters.
func (b *Btcturk) GetExchangeInfo(symbolList []string) ([]SymbolInfo, error) {
	data, e := b.doRequest(endpointExchangeInfo, nil, nil)
	if e != nil {
		return nil, e
	}

	info := exchangeInfoData{}
	if e := decodeData(data, &info); e != nil {
		return nil, e
	}

	if len(symbolList) == 0 {
		return info.Symbols, nil
	}

	wanted := map[string]bool{}
	for _, symbol := range symbolList {
		wanted[symbol] = true
	}

	symbols := []SymbolInfo{}
	for _, symbol := range info.Symbols {
		if wanted[symbol.Name] || wanted[symbol.NameNormalized] {
			symbols = append(symbols, symbol)
		}
	}
	return symbols, nil
}
