package assetbook

import (
	"fmt"
	"math/big"
)

// Proportional returns floor(amount*numerator/denominator) in the 128-bit
// domain. The multiply is carried in a big integer, wide enough for the
// 256-bit product of two 128-bit operands, so the intermediate value can
// never overflow; narrowing the quotient back to 128 bits is checked and
// fails with ErrOverflow.
//
// Every asset-class pricing rule goes through this single primitive.
func Proportional(amount, numerator, denominator Units) (Units, error) {
	if denominator.IsZero() {
		return Units{}, fmt.Errorf("proportional %s*%s: zero denominator", amount, numerator)
	}
	p := new(big.Int).Mul(amount.Big(), numerator.Big())
	p.Quo(p, denominator.Big())
	r, err := UnitsFromBig(p)
	if err != nil {
		return Units{}, fmt.Errorf("proportional %s*%s/%s: %w", amount, numerator, denominator, ErrOverflow)
	}
	return r, nil
}
