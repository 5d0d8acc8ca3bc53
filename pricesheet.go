package assetbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// PriceSheet is a point-in-time sheet of reference unit prices, all in minor
// currency units (2 implied decimals). It is loaded once at startup and never
// mutated within a session.
//
// A nil field is a price that is not known yet. That is fine at load time;
// a pricing rule that needs the missing field fails with ErrPriceUnavailable.
type PriceSheet struct {
	Gold24K       *uint64 // price of one gram of 24k (9999) gold
	Gold21K       *uint64 // price of one gram of 21k (9000) gold
	BTC           *uint64 // price of one whole bitcoin
	Doge4Decimals *uint64 // price of 10,000 dogecoin
	LTC           *uint64 // price of one whole litecoin
	ETH           *uint64 // price of one whole ether
	CreatedAt     EpochMillis
}

// DecodePriceSheet reads a price sheet document and stamps it with the
// current wall-clock time.
func DecodePriceSheet(r io.Reader) (*PriceSheet, error) {
	// to parse the document, we use a dedicated local struct with tag annotations.
	var js struct {
		Gold24K       *uint64 `json:"gold_gram_24k"`
		Gold21K       *uint64 `json:"gold_gram_21k"`
		BTC           *uint64 `json:"btc"`
		Doge4Decimals *uint64 `json:"doge_4_decimals"`
		LTC           *uint64 `json:"ltc"`
		ETH           *uint64 `json:"eth"`
	}
	if err := json.NewDecoder(r).Decode(&js); err != nil {
		return nil, fmt.Errorf("cannot parse price sheet: %w", err)
	}
	return &PriceSheet{
		Gold24K:       js.Gold24K,
		Gold21K:       js.Gold21K,
		BTC:           js.BTC,
		Doge4Decimals: js.Doge4Decimals,
		LTC:           js.LTC,
		ETH:           js.ETH,
		CreatedAt:     Now(),
	}, nil
}

// price returns the value of one sheet field, failing when it was never loaded.
func (s *PriceSheet) price(field string, v *uint64) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("%s: %w", field, ErrPriceUnavailable)
	}
	return *v, nil
}

func (s *PriceSheet) gold24k() (uint64, error) { return s.price("gold_gram_24k", s.Gold24K) }
func (s *PriceSheet) gold21k() (uint64, error) { return s.price("gold_gram_21k", s.Gold21K) }
func (s *PriceSheet) btc() (uint64, error)     { return s.price("btc", s.BTC) }
func (s *PriceSheet) doge() (uint64, error)    { return s.price("doge_4_decimals", s.Doge4Decimals) }
func (s *PriceSheet) ltc() (uint64, error)     { return s.price("ltc", s.LTC) }
func (s *PriceSheet) eth() (uint64, error)     { return s.price("eth", s.ETH) }
