package assetbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetClass is the typed tag identifying one of the supported asset classes.
type AssetClass string

// Asset class tags as they appear in the holdings document.
const (
	ClassGold      AssetClass = "gold"
	ClassBitcoin   AssetClass = "bitcoin"
	ClassLitecoin  AssetClass = "litecoin"
	ClassEthereum  AssetClass = "ethereum"
	ClassDogecoin  AssetClass = "dogecoin"
	ClassRealState AssetClass = "real_state"
)

// Smallest-unit scales. The price sheet quotes bitcoin, litecoin and ether
// per whole coin, and dogecoin per 10,000 coins (dogecoin has 8 decimals,
// hence the 10^10 scale for a per-10,000 quote).
var (
	satsPerBitcoin  = U(uint64(100_000_000))
	litsPerLitecoin = U(uint64(100_000_000))
	weiPerEther     = U(uint64(1_000_000_000_000_000_000))
	dogsPerDogeLot  = U(uint64(10_000_000_000))

	oneGram = U(uint64(1))
)

// AssetType is the closed set of asset class variants. Each variant carries
// its class-specific quantity data and knows how to price itself against a
// price sheet; adding a class means implementing this interface, so pricing
// and display stay exhaustive at compile time.
type AssetType interface {
	Class() AssetClass
	// Label is the short human-readable asset class label, e.g. "BTC".
	Label() string
	// Price values the whole position held in this asset against the sheet,
	// in minor units of cur, stamped at.
	Price(sheet *PriceSheet, cur FiatCurrency, at EpochMillis) (MarketSnapshot, error)
}

// Gold is physical gold, weighted in whole grams.
type Gold struct {
	Presentation string // presentation label, e.g. "centenario"
	Weight       string // decimal gram weight; whole grams only
	Purity       uint16 // basis points: 9999 is 24k, 9000 is 21k; 0 when unknown
	Note         string
}

// Bitcoin is a bitcoin position, counted in satoshis.
type Bitcoin struct {
	Address string
	Sats    Units
}

// Litecoin is a litecoin position, counted in litoshis.
type Litecoin struct {
	Address string
	Lits    Units
}

// Ethereum is an ether position, counted in wei.
type Ethereum struct {
	Address string
	Wei     Units
}

// Dogecoin is a dogecoin position, counted in the smallest dogecoin unit.
type Dogecoin struct {
	Address string
	Dogs    Units
}

// RealState is a real estate holding.
type RealState struct {
	Name     string
	DeedDate string
}

func (Gold) Class() AssetClass      { return ClassGold }
func (Bitcoin) Class() AssetClass   { return ClassBitcoin }
func (Litecoin) Class() AssetClass  { return ClassLitecoin }
func (Ethereum) Class() AssetClass  { return ClassEthereum }
func (Dogecoin) Class() AssetClass  { return ClassDogecoin }
func (RealState) Class() AssetClass { return ClassRealState }

func (Gold) Label() string      { return "GOLD" }
func (Bitcoin) Label() string   { return "BTC" }
func (Litecoin) Label() string  { return "LTC" }
func (Ethereum) Label() string  { return "ETH" }
func (Dogecoin) Label() string  { return "DOGE" }
func (RealState) Label() string { return "REAL_STATE" }

// Price values the position as unit * quantity / scale, per PriceSheet.BTC.
func (t Bitcoin) Price(sheet *PriceSheet, cur FiatCurrency, at EpochMillis) (MarketSnapshot, error) {
	unit, err := sheet.btc()
	if err != nil {
		return MarketSnapshot{}, err
	}
	return proportionalSnapshot(t, at, cur, unit, t.Sats, satsPerBitcoin)
}

func (t Litecoin) Price(sheet *PriceSheet, cur FiatCurrency, at EpochMillis) (MarketSnapshot, error) {
	unit, err := sheet.ltc()
	if err != nil {
		return MarketSnapshot{}, err
	}
	return proportionalSnapshot(t, at, cur, unit, t.Lits, litsPerLitecoin)
}

func (t Ethereum) Price(sheet *PriceSheet, cur FiatCurrency, at EpochMillis) (MarketSnapshot, error) {
	unit, err := sheet.eth()
	if err != nil {
		return MarketSnapshot{}, err
	}
	return proportionalSnapshot(t, at, cur, unit, t.Wei, weiPerEther)
}

func (t Dogecoin) Price(sheet *PriceSheet, cur FiatCurrency, at EpochMillis) (MarketSnapshot, error) {
	unit, err := sheet.doge()
	if err != nil {
		return MarketSnapshot{}, err
	}
	return proportionalSnapshot(t, at, cur, unit, t.Dogs, dogsPerDogeLot)
}

// Price values the gold position by its gram weight. The weight must be a
// whole number of grams, and only 9999 and 9000 purities have a reference
// price; anything else is a defined failure, never a silent default.
func (t Gold) Price(sheet *PriceSheet, cur FiatCurrency, at EpochMillis) (MarketSnapshot, error) {
	if t.Weight == "" {
		return MarketSnapshot{}, fmt.Errorf("gold %q: missing weight", t.Presentation)
	}
	w, err := decimal.NewFromString(t.Weight)
	if err != nil {
		return MarketSnapshot{}, fmt.Errorf("gold %q: invalid weight %q: %w", t.Presentation, t.Weight, err)
	}
	if w.IsNegative() {
		return MarketSnapshot{}, fmt.Errorf("gold %q: negative weight %q", t.Presentation, t.Weight)
	}
	if !w.IsInteger() {
		return MarketSnapshot{}, fmt.Errorf("gold %q: fractional gram weight %q: %w", t.Presentation, t.Weight, ErrUnsupported)
	}

	var unit uint64
	switch t.Purity {
	case 9999:
		unit, err = sheet.gold24k()
	case 9000:
		unit, err = sheet.gold21k()
	default:
		return MarketSnapshot{}, fmt.Errorf("gold %q: purity %d: %w", t.Presentation, t.Purity, ErrUnsupported)
	}
	if err != nil {
		return MarketSnapshot{}, err
	}

	grams, err := UnitsFromBig(w.BigInt())
	if err != nil {
		return MarketSnapshot{}, fmt.Errorf("gold %q: weight %q: %w", t.Presentation, t.Weight, err)
	}
	return proportionalSnapshot(t, at, cur, unit, grams, oneGram)
}

// Price returns a placeholder valuation: there is no live pricing source for
// real estate. The snapshot is tagged so callers can tell it apart from a
// real quote and must not treat it as authoritative.
func (t RealState) Price(_ *PriceSheet, cur FiatCurrency, at EpochMillis) (MarketSnapshot, error) {
	return MarketSnapshot{
		Timestamp: at,
		Label:     t.Label(),
		Source:    "placeholder",
		Currency:  cur,
		Median:    0,
	}, nil
}

// proportionalSnapshot derives the median valuation unit*quantity/scale and
// stamps the snapshot. The snapshot median is a uint64, so a position worth
// more than the 64-bit minor-unit domain is a reported overflow.
func proportionalSnapshot(t AssetType, at EpochMillis, cur FiatCurrency, unit uint64, quantity, scale Units) (MarketSnapshot, error) {
	v, err := Proportional(U(unit), quantity, scale)
	if err != nil {
		return MarketSnapshot{}, fmt.Errorf("pricing %s: %w", t.Label(), err)
	}
	median, ok := v.Uint64()
	if !ok {
		return MarketSnapshot{}, fmt.Errorf("pricing %s: median %s: %w", t.Label(), v, ErrOverflow)
	}
	return MarketSnapshot{
		Timestamp: at,
		Label:     t.Label(),
		Currency:  cur,
		Median:    median,
	}, nil
}

// ParseAssetType decodes one typed asset from its tag and data document.
// The tag is case-insensitive; an unknown tag is a fatal load error.
func ParseAssetType(tag string, data json.RawMessage) (AssetType, error) {
	switch AssetClass(strings.ToLower(tag)) {
	case ClassBitcoin:
		var js struct {
			Address string `json:"address"`
			Sats    Units  `json:"sats"`
		}
		if err := json.Unmarshal(data, &js); err != nil {
			return nil, fmt.Errorf("bitcoin data: %w", err)
		}
		return Bitcoin{Address: js.Address, Sats: js.Sats}, nil
	case ClassLitecoin:
		var js struct {
			Address string `json:"address"`
			Lits    Units  `json:"lits"`
		}
		if err := json.Unmarshal(data, &js); err != nil {
			return nil, fmt.Errorf("litecoin data: %w", err)
		}
		return Litecoin{Address: js.Address, Lits: js.Lits}, nil
	case ClassEthereum:
		var js struct {
			Address string `json:"address"`
			Wei     Units  `json:"wei"`
		}
		if err := json.Unmarshal(data, &js); err != nil {
			return nil, fmt.Errorf("ethereum data: %w", err)
		}
		return Ethereum{Address: js.Address, Wei: js.Wei}, nil
	case ClassDogecoin:
		var js struct {
			Address string `json:"address"`
			Dogs    Units  `json:"dogs"`
		}
		if err := json.Unmarshal(data, &js); err != nil {
			return nil, fmt.Errorf("dogecoin data: %w", err)
		}
		return Dogecoin{Address: js.Address, Dogs: js.Dogs}, nil
	case ClassGold:
		var js struct {
			Presentation string `json:"presentation"`
			Weight       string `json:"weight"`
			Purity       uint16 `json:"purity"`
			Note         string `json:"note"`
		}
		if err := json.Unmarshal(data, &js); err != nil {
			return nil, fmt.Errorf("gold data: %w", err)
		}
		return Gold{Presentation: js.Presentation, Weight: js.Weight, Purity: js.Purity, Note: js.Note}, nil
	case ClassRealState:
		var js struct {
			Name     string `json:"name"`
			DeedDate string `json:"deed_date"`
		}
		if err := json.Unmarshal(data, &js); err != nil {
			return nil, fmt.Errorf("real_state data: %w", err)
		}
		return RealState{Name: js.Name, DeedDate: js.DeedDate}, nil
	default:
		return nil, fmt.Errorf("unknown asset type %q", tag)
	}
}
