package assetbook

import "fmt"

// AssetID identifies an asset within a Book. IDs are assigned by the book,
// strictly increasing from 0, and never reused.
type AssetID uint32

// Asset is one tracked holding: a typed asset-class position owned by a fund,
// with at most one purchase.
type Asset struct {
	id        AssetID
	fund      Fund
	assetType AssetType
	buy       *Buy
	sell      *Sell
	settings  OwnerSettings
}

func newAsset(id AssetID, fund Fund, t AssetType, settings OwnerSettings) *Asset {
	return &Asset{id: id, fund: fund, assetType: t, settings: settings}
}

func (a *Asset) ID() AssetID     { return a.id }
func (a *Asset) Fund() Fund      { return a.fund }
func (a *Asset) Type() AssetType { return a.assetType }

// Buy returns a copy of the asset's purchase record, if any.
func (a *Asset) Buy() (Buy, bool) {
	if a.buy == nil {
		return Buy{}, false
	}
	return *a.buy, true
}

// Purchase attaches the fiat-cash purchase that established the cost basis.
// An asset has at most one purchase; attaching a second one fails.
//
// A settlement in the future is accepted here and shows up as a negative
// elapsed time in Evaluate.
func (a *Asset) Purchase(settledAt EpochMillis, amount Units, currency FiatCurrency) error {
	if a.buy != nil {
		return fmt.Errorf("asset %d: %w", a.id, ErrAlreadyPurchased)
	}
	buy, err := NewBuy(settledAt, string(KindFiatCash), amount, currency)
	if err != nil {
		return fmt.Errorf("asset %d: %w", a.id, err)
	}
	a.buy = &buy
	return nil
}

// MarketPrice values the asset against the sheet in the owner's reporting
// currency. The snapshot is stamped with the current wall-clock time.
func (a *Asset) MarketPrice(sheet *PriceSheet) (MarketSnapshot, error) {
	snap, err := a.assetType.Price(sheet, a.settings.Currency, Now())
	if err != nil {
		return MarketSnapshot{}, fmt.Errorf("asset %d: %w", a.id, err)
	}
	return snap, nil
}

// Evaluate compares the asset's cost basis against its current valuation in
// the reporting currency. "now" is sampled once and used for both the elapsed
// time and the snapshot timestamp. The asset itself is left untouched.
func (a *Asset) Evaluate(sheet *PriceSheet, reporting FiatCurrency) (AssetEvaluation, error) {
	if a.buy == nil {
		return AssetEvaluation{}, fmt.Errorf("asset %d: %w", a.id, ErrNoPurchase)
	}
	entrance, err := a.buy.EntranceAmount(reporting)
	if err != nil {
		return AssetEvaluation{}, fmt.Errorf("asset %d: %w", a.id, err)
	}
	now := Now()
	snap, err := a.assetType.Price(sheet, reporting, now)
	if err != nil {
		return AssetEvaluation{}, fmt.Errorf("asset %d: %w", a.id, err)
	}
	return AssetEvaluation{
		AssetID:   a.id,
		ElapsedMS: a.buy.SettledAt.Elapsed(now),
		Label:     a.assetType.Label(),
		Entrance:  entrance,
		Current:   U(snap.Median),
		Currency:  reporting,
	}, nil
}
