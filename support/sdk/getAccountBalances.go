package sdk

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AssetBalance is the holding of one asset on the trading account
type AssetBalance struct {
	Asset       string          `json:"asset"`
	AssetName   string          `json:"assetname"`
	Balance     decimal.Decimal `json:"balance"`
	Locked      decimal.Decimal `json:"locked"`
	Free        decimal.Decimal `json:"free"`
	OrderFund   decimal.Decimal `json:"orderFund"`
	RequestFund decimal.Decimal `json:"requestFund"`
	Precision   int32           `json:"precision"`
}

// GetAccountBalances fetches the balance of every asset on the account. A
// non-empty assetList narrows the result client-side, case-insensitively,
// because the endpoint takes no parameters.
func (b *Btcturk) GetAccountBalances(assetList []string) ([]AssetBalance, error) {
	data, e := b.doRequest(endpointBalances, nil, nil)
	if e != nil {
		return nil, e
	}

	balances := []AssetBalance{}
	if e := decodeData(data, &balances); e != nil {
		return nil, e
	}

	if len(assetList) == 0 {
		return balances, nil
	}

	wanted := map[string]bool{}
	for _, asset := range assetList {
		wanted[strings.ToUpper(asset)] = true
	}

	filtered := []AssetBalance{}
	for _, balance := range balances {
		if wanted[strings.ToUpper(balance.Asset)] {
			filtered = append(filtered, balance)
		}
	}
	return filtered, nil
}
