package assetbook

import (
	"errors"
	"strings"
	"testing"
)

const holdingsDoc = `{
  "funds": [{"name": "liberty", "location": "cold storage"}, {"name": "legacy"}],
  "assets": [
    {
      "fund": {"name": "liberty"},
      "asset_type": {"type": "bitcoin", "data": {"address": "bc1q...", "sats": 50000000}},
      "buy": {"settled_at": "2021-02-14",
              "transaction": {"fiat_cash": {"amount": 250000, "currency": "mxn"}}}
    },
    {
      "fund": {"name": "liberty"},
      "asset_type": {"type": "ethereum", "data": {"wei": "2000000000000000000"}}
    },
    {
      "fund": {"name": "legacy"},
      "asset_type": {"type": "gold",
                     "data": {"presentation": "centenario", "weight": "37", "purity": 9000, "note": "familia"}},
      "buy": {"settled_at": "2019-06-01",
              "transaction": {"fiat_cash": {"amount": 40000, "currency": " MXN "}}}
    },
    {
      "fund": {"name": "legacy"},
      "asset_type": {"type": "real_state", "data": {"name": "casa azul", "deed_date": "2010-01-01"}}
    }
  ]
}`

func TestImportHoldings(t *testing.T) {
	book := newTestBook(fullSheet())
	if err := ImportHoldings(strings.NewReader(holdingsDoc), book); err != nil {
		t.Fatalf("ImportHoldings() error = %v", err)
	}

	if got := len(book.Funds()); got != 2 {
		t.Fatalf("Funds() length = %d, want 2", got)
	}
	liberty, err := book.Fund("liberty")
	if err != nil {
		t.Fatalf("Fund(liberty) error = %v", err)
	}
	if liberty.Location != "cold storage" {
		t.Errorf("liberty location = %q, want cold storage", liberty.Location)
	}
	assets := book.Assets()
	if len(assets) != 4 {
		t.Fatalf("Assets() length = %d, want 4", len(assets))
	}

	// first asset: bitcoin with an attached buy, currency token normalized.
	btc, ok := assets[0].Type().(Bitcoin)
	if !ok {
		t.Fatalf("assets[0] is %T, want Bitcoin", assets[0].Type())
	}
	if !btc.Sats.Equal(U(uint64(50_000_000))) {
		t.Errorf("sats = %s, want 50000000", btc.Sats)
	}
	buy, ok := assets[0].Buy()
	if !ok {
		t.Fatal("assets[0] should have a buy")
	}
	want, _ := ParseSettledAt("2021-02-14")
	if buy.SettledAt != want {
		t.Errorf("SettledAt = %s, want %s", buy.SettledAt, want)
	}
	amount, err := buy.EntranceAmount(MXN)
	if err != nil {
		t.Fatalf("EntranceAmount() error = %v", err)
	}
	if !amount.Equal(U(uint64(250_000))) {
		t.Errorf("EntranceAmount() = %s, want 250000", amount)
	}

	// second asset: large wei quantity read from a string, no buy.
	eth, ok := assets[1].Type().(Ethereum)
	if !ok {
		t.Fatalf("assets[1] is %T, want Ethereum", assets[1].Type())
	}
	if eth.Wei.String() != "2000000000000000000" {
		t.Errorf("wei = %s, want 2000000000000000000", eth.Wei)
	}
	if _, ok := assets[1].Buy(); ok {
		t.Error("assets[1] should have no buy")
	}

	// gold fields survive the typed decode.
	gold, ok := assets[2].Type().(Gold)
	if !ok {
		t.Fatalf("assets[2] is %T, want Gold", assets[2].Type())
	}
	if gold.Purity != 9000 || gold.Weight != "37" || gold.Note != "familia" {
		t.Errorf("gold = %+v, want purity 9000 weight 37 note familia", gold)
	}

	if assets[3].Fund().Name != "legacy" {
		t.Errorf("assets[3] fund = %q, want legacy", assets[3].Fund().Name)
	}
}

func TestImportHoldings_Failures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "duplicate fund",
			doc:  `{"funds": [{"name": "liberty"}, {"name": "liberty"}]}`,
			want: ErrDuplicateFund,
		},
		{
			name: "unknown fund reference",
			doc: `{"funds": [], "assets": [
				{"fund": {"name": "ghost"}, "asset_type": {"type": "bitcoin", "data": {"sats": 1}}}]}`,
			want: ErrUnknownFund,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ImportHoldings(strings.NewReader(tc.doc), newTestBook(fullSheet()))
			if !errors.Is(err, tc.want) {
				t.Errorf("ImportHoldings() error = %v, want %v", err, tc.want)
			}
		})
	}

	malformed := []string{
		`{"funds": [{"name": "f"}], "assets": [
			{"fund": {"name": "f"}, "asset_type": {"type": "tulips", "data": {}}}]}`,
		`{"funds": [{"name": "f"}], "assets": [
			{"fund": {"name": "f"}, "asset_type": {"type": "bitcoin", "data": {"sats": 1}},
			 "buy": {"settled_at": "14/02/2021", "transaction": {"fiat_cash": {"amount": 1, "currency": "MXN"}}}}]}`,
		`{"funds": [{"name": "f"}], "assets": [
			{"fund": {"name": "f"}, "asset_type": {"type": "bitcoin", "data": {"sats": 1}},
			 "buy": {"settled_at": "2021-02-14", "transaction": {"fiat_cash": {"amount": 1, "currency": "EUR"}}}}]}`,
		`{"funds": [{"name": "f"}], "assets": [
			{"fund": {"name": "f"}, "asset_type": {"type": "bitcoin", "data": {"sats": 1}},
			 "buy": {"settled_at": "2021-02-14", "transaction": {}}}]}`,
	}
	for _, doc := range malformed {
		if err := ImportHoldings(strings.NewReader(doc), newTestBook(fullSheet())); err == nil {
			t.Errorf("ImportHoldings(%q) should fail", doc)
		}
	}
}
