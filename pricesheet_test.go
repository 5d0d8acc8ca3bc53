package assetbook

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodePriceSheet(t *testing.T) {
	doc := `{"gold_gram_24k": 1200, "btc": 1000000, "doge_4_decimals": 8000}`
	sheet, err := DecodePriceSheet(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodePriceSheet() error = %v", err)
	}

	if sheet.Gold24K == nil || *sheet.Gold24K != 1200 {
		t.Errorf("Gold24K = %v, want 1200", sheet.Gold24K)
	}
	if sheet.BTC == nil || *sheet.BTC != 1_000_000 {
		t.Errorf("BTC = %v, want 1000000", sheet.BTC)
	}
	// absent fields stay unknown and only fail when a pricing rule needs them.
	if sheet.ETH != nil {
		t.Errorf("ETH = %v, want nil", sheet.ETH)
	}
	if _, err := sheet.eth(); !errors.Is(err, ErrPriceUnavailable) {
		t.Errorf("eth() error = %v, want ErrPriceUnavailable", err)
	}
	if sheet.CreatedAt == 0 {
		t.Error("CreatedAt should be stamped")
	}
}

func TestDecodePriceSheet_Malformed(t *testing.T) {
	for _, doc := range []string{
		`{"btc": -5}`,     // prices are non-negative integers
		`{"btc": "much"}`, // not a number
		`not json`,
	} {
		if _, err := DecodePriceSheet(strings.NewReader(doc)); err == nil {
			t.Errorf("DecodePriceSheet(%q) should fail", doc)
		}
	}
}
