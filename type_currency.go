package assetbook

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FiatCurrency is the closed set of fiat currencies the book can report in.
type FiatCurrency string

const (
	MXN FiatCurrency = "MXN"
	USD FiatCurrency = "USD"
)

// ParseFiatCurrency parses a currency token. The token is normalized first:
// uppercased with all whitespace removed.
func ParseFiatCurrency(s string) (FiatCurrency, error) {
	switch normalToken(s) {
	case "MXN":
		return MXN, nil
	case "USD":
		return USD, nil
	default:
		return "", fmt.Errorf("unknown fiat currency %q", s)
	}
}

// normalToken uppercases s and strips all whitespace.
func normalToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

func (c FiatCurrency) String() string { return string(c) }

// currency returns the full currency definition from the go-money registry.
func (c FiatCurrency) currency() *money.Currency {
	// the Money constructor is the one place that never returns a nil currency
	return money.New(0, string(c)).Currency()
}

// FormatMinor renders an amount of minor currency units (2 implied decimals
// for both MXN and USD) for display.
func (c FiatCurrency) FormatMinor(amount Units) string {
	if v, ok := amount.Uint64(); ok && v <= math.MaxInt64 {
		return money.New(int64(v), string(c)).Display()
	}
	// beyond int64 the go-money formatter cannot carry the value; fall back
	// to an exact decimal rendering.
	cur := c.currency()
	d := decimal.NewFromBigInt(amount.Big(), -int32(cur.Fraction))
	return d.String() + " " + cur.Code
}
