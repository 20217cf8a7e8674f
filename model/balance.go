package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balance is the holding of a single asset on the trading account
type Balance struct {
	Asset     Asset
	AssetName string
	Total     decimal.Decimal
	Locked    decimal.Decimal
	Free      decimal.Decimal
}

// String is the stringer function
func (b Balance) String() string {
	return fmt.Sprintf("Balance[asset=%s, total=%s, locked=%s, free=%s]",
		b.Asset,
		b.Total.String(),
		b.Locked.String(),
		b.Free.String(),
	)
}
