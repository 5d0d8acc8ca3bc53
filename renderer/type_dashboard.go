package renderer

// Dashboard is the data behind the dashboard report.
type Dashboard struct {
	Owner    string
	Currency string // reporting currency code
	Rows     []Row
	Skipped  int // assets that could not be evaluated
}

// Row is one evaluated asset.
type Row struct {
	ID       uint32
	Type     string // asset class label
	Fund     string
	Held     string // time elapsed since purchase, human readable
	Entrance string // cost basis, formatted
	Current  string // current valuation, formatted
}
