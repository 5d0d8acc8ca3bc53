package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/mxruben/assetbook"
	"github.com/mxruben/assetbook/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct{}

func (*dashboardCmd) Name() string { return "dashboard" }
func (*dashboardCmd) Synopsis() string {
	return "imports the holdings and prints a cost-basis vs. now evaluation per asset"
}
func (*dashboardCmd) Usage() string {
	return `abk dashboard

  Loads the holdings and price sheet documents, refreshes the market snapshot
  of every asset, and prints one evaluation row per asset: how long it has
  been held, what it cost and what it is worth now.
`
}

func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.RefreshMarket(); err != nil {
		// partial refresh: report and keep going with what was priced
		log.Printf("warning, some assets could not be priced: %v", err)
	}
	rows, err := book.EvaluateAll(book.Settings().Currency)
	if err != nil {
		log.Printf("warning, some assets could not be evaluated: %v", err)
	}
	fmt.Print(renderer.RenderDashboard(dashboard(book, rows)))
	return subcommands.ExitSuccess
}

// dashboard converts evaluation rows to their rendered form.
func dashboard(book *assetbook.Book, rows []assetbook.AssetEvaluation) *renderer.Dashboard {
	d := &renderer.Dashboard{
		Owner:    book.Owner().Name,
		Currency: book.Settings().Currency.String(),
		Skipped:  len(book.Assets()) - len(rows),
	}
	for _, row := range rows {
		fund := ""
		if a := book.Asset(row.AssetID); a != nil {
			fund = a.Fund().Name
		}
		d.Rows = append(d.Rows, renderer.Row{
			ID:       uint32(row.AssetID),
			Type:     row.Label,
			Fund:     fund,
			Held:     heldFor(row.ElapsedMS),
			Entrance: row.Currency.FormatMinor(row.Entrance),
			Current:  row.Currency.FormatMinor(row.Current),
		})
	}
	return d
}

// heldFor renders elapsed milliseconds as whole days.
func heldFor(ms int64) string {
	return fmt.Sprintf("%dd", ms/(24*60*60*1000))
}
