package assetbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// this file handles the holdings import format: a single human readable JSON
// document declaring the owner's funds and assets.

// ImportHoldings reads a holdings document into the book.
//
// The document is a single JSON object:
//
//	{
//	  "funds":  [{"name": "liberty"}],
//	  "assets": [{
//	    "fund": {"name": "liberty"},
//	    "asset_type": {"type": "bitcoin", "data": {"sats": 50000000}},
//	    "buy": {"settled_at": "2021-02-14",
//	            "transaction": {"fiat_cash": {"amount": 250000, "currency": "MXN"}}}
//	  }]
//	}
//
// "buy" is optional. settled_at carries a date only; it is pinned to 13:00
// UTC of that day. Any malformed record aborts the import.
func ImportHoldings(r io.Reader, book *Book) error {
	// the readable version of the format can be summarized by a few types.
	type jfund struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	type jfiatCash struct {
		Amount   Units  `json:"amount"`
		Currency string `json:"currency"`
	}
	type jbuy struct {
		SettledAt   string `json:"settled_at"`
		Transaction struct {
			FiatCash *jfiatCash `json:"fiat_cash"`
		} `json:"transaction"`
	}
	type jasset struct {
		Fund      jfund `json:"fund"`
		AssetType struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"asset_type"`
		Buy *jbuy `json:"buy"`
	}
	var doc struct {
		Funds  []jfund  `json:"funds"`
		Assets []jasset `json:"assets"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("cannot parse holdings document: %w", err)
	}

	for _, jf := range doc.Funds {
		if _, err := book.CreateFund(jf.Name, jf.Location); err != nil {
			return err
		}
	}

	for i, ja := range doc.Assets {
		t, err := ParseAssetType(ja.AssetType.Type, ja.AssetType.Data)
		if err != nil {
			return fmt.Errorf("asset #%d: %w", i, err)
		}
		asset, err := book.CreateAsset(ja.Fund.Name, t)
		if err != nil {
			return fmt.Errorf("asset #%d: %w", i, err)
		}
		if ja.Buy == nil {
			continue
		}
		settledAt, err := ParseSettledAt(ja.Buy.SettledAt)
		if err != nil {
			return fmt.Errorf("asset #%d: %w", i, err)
		}
		cash := ja.Buy.Transaction.FiatCash
		if cash == nil {
			return fmt.Errorf("asset #%d: buy without a fiat_cash transaction", i)
		}
		currency, err := ParseFiatCurrency(cash.Currency)
		if err != nil {
			return fmt.Errorf("asset #%d: %w", i, err)
		}
		if err := asset.Purchase(settledAt, cash.Amount, currency); err != nil {
			return fmt.Errorf("asset #%d: %w", i, err)
		}
	}
	return nil
}
