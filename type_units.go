package assetbook

import (
	"bytes"
	"fmt"
	"math/big"

	"lukechampine.com/uint128"
)

// Units is an unsigned 128-bit integer quantity: an amount of an asset's
// smallest indivisible unit (satoshis, wei, ...) or of a fiat currency's
// minor unit. 128 bits because wei quantities overflow uint64 on ordinary
// ether balances.
type Units struct{ v uint128.Uint128 }

// U builds Units from an unsigned integer.
func U[T uint | uint32 | uint64](value T) Units {
	return Units{uint128.From64(uint64(value))}
}

// UnitsFromBig builds Units from a big integer, failing if it does not fit
// the unsigned 128-bit domain.
func UnitsFromBig(i *big.Int) (Units, error) {
	if i.Sign() < 0 || i.BitLen() > 128 {
		return Units{}, fmt.Errorf("quantity %s does not fit 128 bits: %w", i, ErrOverflow)
	}
	return Units{uint128.FromBig(i)}, nil
}

// ParseUnits parses a quantity from its decimal string form.
func ParseUnits(s string) (Units, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Units{}, fmt.Errorf("invalid quantity %q", s)
	}
	u, err := UnitsFromBig(i)
	if err != nil {
		return Units{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return u, nil
}

func (u Units) IsZero() bool       { return u.v.IsZero() }
func (u Units) Equal(o Units) bool { return u.v.Equals(o.v) }
func (u Units) Big() *big.Int      { return u.v.Big() }
func (u Units) String() string     { return u.v.String() }

// Uint64 narrows the quantity to uint64, reporting whether it fits.
func (u Units) Uint64() (uint64, bool) {
	if u.v.Hi != 0 {
		return 0, false
	}
	return u.v.Lo, true
}

// MarshalJSON encodes the quantity as a JSON number.
func (u Units) MarshalJSON() ([]byte, error) {
	return []byte(u.v.String()), nil
}

// UnmarshalJSON accepts both number and string encodings: quantities beyond
// 2^53 are not safe as JSON numbers in every producer.
func (u *Units) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	parsed, err := ParseUnits(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
