package assetbook

import (
	"fmt"
	"strings"
)

// TransactionKind is a typed tag identifying a settlement method.
type TransactionKind string

// KindFiatCash is a settlement paid in fiat cash. It is currently the only
// kind.
const KindFiatCash TransactionKind = "fiat_cash"

// Transaction is the closed set of settlement methods a Buy (or Sell) can
// carry.
type Transaction interface {
	Kind() TransactionKind
}

// FiatCash is a fiat payment of an integer amount of minor currency units.
type FiatCash struct {
	Amount   Units
	Currency FiatCurrency
}

func (FiatCash) Kind() TransactionKind { return KindFiatCash }

// Buy is the purchase that established an asset's cost basis.
type Buy struct {
	Transaction Transaction
	SettledAt   EpochMillis
}

// NewBuy builds a Buy for the given settlement kind. The kind tag is
// case-insensitive.
func NewBuy(settledAt EpochMillis, kind string, amount Units, currency FiatCurrency) (Buy, error) {
	switch TransactionKind(strings.ToLower(kind)) {
	case KindFiatCash:
		return Buy{
			Transaction: FiatCash{Amount: amount, Currency: currency},
			SettledAt:   settledAt,
		}, nil
	default:
		return Buy{}, fmt.Errorf("unknown transaction kind %q", kind)
	}
}

// EntranceAmount returns the cost basis in the reporting currency.
//
// There is no FX conversion: a purchase settled in another currency is a
// defined failure, not a silent pass-through of the foreign amount.
func (b Buy) EntranceAmount(reporting FiatCurrency) (Units, error) {
	switch tx := b.Transaction.(type) {
	case FiatCash:
		if tx.Currency != reporting {
			return Units{}, fmt.Errorf("entrance amount in %s from a %s purchase: %w", reporting, tx.Currency, ErrCurrencyMismatch)
		}
		return tx.Amount, nil
	default:
		return Units{}, fmt.Errorf("entrance amount for %q settlement: %w", tx.Kind(), ErrUnsupported)
	}
}

// Sell is the disposal counterpart of Buy. It is modeled for completeness;
// no operation produces one yet.
type Sell struct {
	Transaction Transaction
	SettledAt   EpochMillis
}
