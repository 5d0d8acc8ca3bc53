package assetbook

// MarketSnapshot is the computed point-in-time valuation of one asset's
// position. It is produced fresh on every pricing call and never mutated.
//
// Top/Bottom and the market/source labels are reserved for future
// multi-source aggregation; the price-sheet pricing path leaves them unset.
type MarketSnapshot struct {
	Timestamp EpochMillis
	Label     string // asset class label, e.g. "BTC"
	Source    string
	Currency  FiatCurrency
	Market    string
	Top       *uint64
	Bottom    *uint64
	Median    uint64 // position valuation in minor currency units
}

// MarshalJSON implements the json.Marshaler interface for MarketSnapshot,
// keeping a stable field order in the market file.
func (s MarketSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("timestamp", int64(s.Timestamp))
	w.Append("asset_type", s.Label)
	w.Optional("source", s.Source)
	w.Append("currency", s.Currency)
	w.Optional("market", s.Market)
	if s.Top != nil {
		w.Append("top", *s.Top)
	}
	if s.Bottom != nil {
		w.Append("bottom", *s.Bottom)
	}
	w.Append("median", s.Median)
	return w.MarshalJSON()
}

// AssetEvaluation is a report row comparing an asset's cost basis to its
// current valuation. It is computed, never persisted as authoritative state.
type AssetEvaluation struct {
	AssetID   AssetID
	ElapsedMS int64 // milliseconds since settlement; negative for future-dated buys
	Label     string
	Entrance  Units // cost basis, minor currency units
	Current   Units // current valuation, minor currency units
	Currency  FiatCurrency
}
