package assetbook

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Fund is a named grouping of assets inside a book.
type Fund struct {
	Name     string
	Location string
}

// Book is the portfolio aggregate. It owns the funds, the assets and the id
// counter; nothing else is allowed to mutate them. A book is single-threaded:
// every operation runs to completion before returning.
type Book struct {
	owner       Owner
	settings    OwnerSettings
	nextAssetID AssetID
	funds       map[string]Fund
	assets      []*Asset
	sheet       *PriceSheet
	latest      map[AssetID]MarketSnapshot
}

// NewBook creates an empty book for the owner, valued against the given price
// sheet.
func NewBook(owner Owner, settings OwnerSettings, sheet *PriceSheet) *Book {
	return &Book{
		owner:    owner,
		settings: settings,
		funds:    make(map[string]Fund),
		assets:   make([]*Asset, 0),
		sheet:    sheet,
		latest:   make(map[AssetID]MarketSnapshot),
	}
}

func (b *Book) Owner() Owner            { return b.owner }
func (b *Book) Settings() OwnerSettings { return b.settings }
func (b *Book) PriceSheet() *PriceSheet { return b.sheet }

// CreateFund declares a new fund. Fund names are unique within a book; the
// location is free-form ("cold storage", a city, an exchange name).
func (b *Book) CreateFund(name, location string) (Fund, error) {
	if _, ok := b.funds[name]; ok {
		return Fund{}, fmt.Errorf("fund %q: %w", name, ErrDuplicateFund)
	}
	f := Fund{Name: name, Location: location}
	b.funds[name] = f
	return f, nil
}

// Fund returns the fund declared under this name.
func (b *Book) Fund(name string) (Fund, error) {
	f, ok := b.funds[name]
	if !ok {
		return Fund{}, fmt.Errorf("fund %q: %w", name, ErrUnknownFund)
	}
	return f, nil
}

// Funds returns the declared funds sorted by name.
func (b *Book) Funds() []Fund {
	return slices.SortedFunc(maps.Values(b.funds), func(a, c Fund) int {
		return strings.Compare(a.Name, c.Name)
	})
}

// CreateAsset adds a typed asset under an existing fund and assigns it the
// next id. Ids start at 0, strictly increase, and are never reused.
func (b *Book) CreateAsset(fundName string, t AssetType) (*Asset, error) {
	fund, err := b.Fund(fundName)
	if err != nil {
		return nil, err
	}
	a := newAsset(b.nextAssetID, fund, t, b.settings)
	b.nextAssetID++
	b.assets = append(b.assets, a)
	return a, nil
}

// Assets returns the assets in creation order.
func (b *Book) Assets() []*Asset { return slices.Clone(b.assets) }

// Asset returns the asset with this id, or nil.
func (b *Book) Asset(id AssetID) *Asset {
	for _, a := range b.assets {
		if a.id == id {
			return a
		}
	}
	return nil
}

// LatestPrice returns the snapshot recorded for this asset by the last
// RefreshMarket.
func (b *Book) LatestPrice(id AssetID) (MarketSnapshot, bool) {
	s, ok := b.latest[id]
	return s, ok
}

// LatestPrices returns a copy of the id to latest-snapshot mapping.
func (b *Book) LatestPrices() map[AssetID]MarketSnapshot {
	return maps.Clone(b.latest)
}

// RefreshMarket recomputes the market snapshot of every asset against the
// book's price sheet.
//
// An asset that cannot be priced (price sheet gap, unsupported purity, ...)
// does not abort the refresh: the remaining assets are still processed, the
// failures are joined into the returned error, and the previous snapshot of
// the failing asset is left in place. Snapshots are replaced whole, never
// mutated in place.
func (b *Book) RefreshMarket() error {
	var errs []error
	for _, a := range b.assets {
		snap, err := a.MarketPrice(b.sheet)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		b.latest[a.id] = snap
	}
	return errors.Join(errs...)
}

// EvaluateAll evaluates every asset in creation order against the book's
// price sheet, reporting in the given currency. Assets that fail (no
// purchase, unpriceable, currency mismatch) are skipped and reported in the
// joined error; rows for the other assets are still returned.
func (b *Book) EvaluateAll(reporting FiatCurrency) ([]AssetEvaluation, error) {
	rows := make([]AssetEvaluation, 0, len(b.assets))
	var errs []error
	for _, a := range b.assets {
		row, err := a.Evaluate(b.sheet, reporting)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, errors.Join(errs...)
}
