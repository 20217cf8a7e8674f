package model

import (
	"fmt"
	"strings"
)

// TradingPair lists an ordered pair of assets. The base asset is priced in
// units of the quote asset, so BTC/TRY has base BTC and quote TRY.
type TradingPair struct {
	// Base is the base asset of the trading pair
	Base Asset
	// Quote is the quote asset of the trading pair
	Quote Asset
}

// String is the stringer function, it returns the compact pair symbol used by
// the exchange, e.g. "BTCTRY"
func (p TradingPair) String() string {
	s, e := p.ToString(Display, "")
	if e != nil {
		return fmt.Sprintf("<error converting trading pair: %s>", e)
	}
	return s
}

// Normalized returns the underscore-delimited pair symbol, e.g. "BTC_TRY"
func (p TradingPair) Normalized() string {
	s, e := p.ToString(Display, "_")
	if e != nil {
		return fmt.Sprintf("<error converting trading pair: %s>", e)
	}
	return s
}

// ToString converts the trading pair to a string using the passed in assetConverter
func (p TradingPair) ToString(c AssetConverterInterface, delim string) (string, error) {
	base, e := c.ToString(p.Base)
	if e != nil {
		return "", e
	}

	quote, e := c.ToString(p.Quote)
	if e != nil {
		return "", e
	}

	return base + delim + quote, nil
}

// TradingPairFromString makes a TradingPair out of either the compact symbol
// ("BTCTRY") or the normalized symbol ("BTC_TRY"). Asset codes have varying
// lengths so parsing the compact form tries every split and keeps the one
// where both sides are recognized by the converter.
func TradingPairFromString(c AssetConverterInterface, symbol string) (*TradingPair, error) {
	if strings.Contains(symbol, "_") {
		parts := strings.SplitN(symbol, "_", 2)
		base, e := c.FromString(parts[0])
		if e != nil {
			return nil, fmt.Errorf("could not convert base asset of pair '%s': %s", symbol, e)
		}

		quote, e := c.FromString(parts[1])
		if e != nil {
			return nil, fmt.Errorf("could not convert quote asset of pair '%s': %s", symbol, e)
		}

		return &TradingPair{Base: base, Quote: quote}, nil
	}

	for i := 2; i < len(symbol); i++ {
		base, e := c.FromString(symbol[:i])
		if e != nil {
			continue
		}

		quote, e := c.FromString(symbol[i:])
		if e != nil {
			continue
		}

		return &TradingPair{Base: base, Quote: quote}, nil
	}
	return nil, fmt.Errorf("could not convert pair symbol to a trading pair: %s", symbol)
}

// TradingPairs2Strings converts the trading pairs to an array of strings
func TradingPairs2Strings(c AssetConverterInterface, delim string, pairs []TradingPair) (map[TradingPair]string, error) {
	m := map[TradingPair]string{}
	for _, p := range pairs {
		pairString, e := p.ToString(c, delim)
		if e != nil {
			return nil, fmt.Errorf("could not convert trading pair to string: %s", e)
		}
		m[p] = pairString
	}
	return m, nil
}
