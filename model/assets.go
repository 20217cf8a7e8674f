package model

import (
	"fmt"
	"log"
)

// Asset is typed and enlists the asset codes currently supported
type Asset string

// this is the list of assets understood by the built-in converters
const (
	BTC  Asset = "BTC"
	ETH  Asset = "ETH"
	XRP  Asset = "XRP"
	LTC  Asset = "LTC"
	XLM  Asset = "XLM"
	EOS  Asset = "EOS"
	NEO  Asset = "NEO"
	DASH Asset = "DASH"
	DOGE Asset = "DOGE"
	ADA  Asset = "ADA"
	LINK Asset = "LINK"
	ATOM Asset = "ATOM"
	XTZ  Asset = "XTZ"
	DOT  Asset = "DOT"
	AVAX Asset = "AVAX"
	TRX  Asset = "TRX"
	USDT Asset = "USDT"
	USDC Asset = "USDC"
	TRY  Asset = "TRY"
	USD  Asset = "USD"
	EUR  Asset = "EUR"
)

// AssetConverterInterface is the interface which allows the creation of asset converters with overridable methods
type AssetConverterInterface interface {
	ToString(a Asset) (string, error)
	FromString(s string) (Asset, error)
	MustFromString(s string) Asset
}

// AssetConverter converts to and from the asset type, it is specific to an exchange
type AssetConverter struct {
	asset2String map[Asset]string
	string2Asset map[string]Asset
}

// ensure AssetConverter implements AssetConverterInterface
var _ AssetConverterInterface = &AssetConverter{}

// makeAssetConverter is a factory method for AssetConverter
func makeAssetConverter(asset2String map[Asset]string) *AssetConverter {
	string2Asset := map[string]Asset{}
	for a, s := range asset2String {
		string2Asset[s] = a
	}

	return &AssetConverter{
		asset2String: asset2String,
		string2Asset: string2Asset,
	}
}

// ToString converts an asset to a string
func (c AssetConverter) ToString(a Asset) (string, error) {
	s, ok := c.asset2String[a]
	if !ok {
		return fmt.Sprintf("missing[%s]", string(a)), nil
	}
	return s, nil
}

// FromString converts from a string to an asset
func (c AssetConverter) FromString(s string) (Asset, error) {
	a, ok := c.string2Asset[s]
	if !ok {
		return "", fmt.Errorf("asset converter could not recognize string: %s", s)
	}
	return a, nil
}

// MustFromString converts from a string to an asset, failing on errors
func (c AssetConverter) MustFromString(s string) Asset {
	a, e := c.FromString(s)
	if e != nil {
		log.Fatal(e)
	}
	return a
}

// Display is the asset converter for display purposes. The exchange lists
// assets under these same plain codes, so this is also the converter used on
// the wire.
var Display = makeAssetConverter(map[Asset]string{
	BTC:  string(BTC),
	ETH:  string(ETH),
	XRP:  string(XRP),
	LTC:  string(LTC),
	XLM:  string(XLM),
	EOS:  string(EOS),
	NEO:  string(NEO),
	DASH: string(DASH),
	DOGE: string(DOGE),
	ADA:  string(ADA),
	LINK: string(LINK),
	ATOM: string(ATOM),
	XTZ:  string(XTZ),
	DOT:  string(DOT),
	AVAX: string(AVAX),
	TRX:  string(TRX),
	USDT: string(USDT),
	USDC: string(USDC),
	TRY:  string(TRY),
	USD:  string(USD),
	EUR:  string(EUR),
})
