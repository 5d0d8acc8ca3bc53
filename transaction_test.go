package assetbook

import (
	"errors"
	"testing"
)

func TestNewBuy(t *testing.T) {
	buy, err := NewBuy(0, "Fiat_Cash", U(uint64(250_000)), MXN)
	if err != nil {
		t.Fatalf("NewBuy() error = %v", err)
	}
	if buy.Transaction.Kind() != KindFiatCash {
		t.Errorf("Kind() = %q, want %q", buy.Transaction.Kind(), KindFiatCash)
	}

	if _, err := NewBuy(0, "barter", U(uint64(1)), MXN); err == nil {
		t.Fatal("NewBuy() with unknown kind should fail")
	}
}

func TestBuy_EntranceAmount(t *testing.T) {
	buy, err := NewBuy(0, string(KindFiatCash), U(uint64(250_000)), MXN)
	if err != nil {
		t.Fatalf("NewBuy() error = %v", err)
	}

	amount, err := buy.EntranceAmount(MXN)
	if err != nil {
		t.Fatalf("EntranceAmount() error = %v", err)
	}
	if want := U(uint64(250_000)); !amount.Equal(want) {
		t.Errorf("EntranceAmount() = %s, want %s", amount, want)
	}

	// no FX conversion exists; asking in another currency is a defined failure.
	if _, err := buy.EntranceAmount(USD); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("EntranceAmount() error = %v, want ErrCurrencyMismatch", err)
	}
}
