package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/mxruben/assetbook"
)

// refreshCmd holds the flags for the 'refresh' subcommand.
type refreshCmd struct {
	outputFile string
}

func (*refreshCmd) Name() string { return "refresh" }
func (*refreshCmd) Synopsis() string {
	return "recomputes every asset's market snapshot and writes the market file"
}
func (*refreshCmd) Usage() string {
	return `abk refresh [-o <file>]

  Loads the holdings and price sheet documents, recomputes the market
  snapshot of every asset, and writes the snapshots to the market file
  (JSONL format, one snapshot per line, in asset id order).
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write snapshots to this file instead of the default market file")
}

func (c *refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.RefreshMarket(); err != nil {
		log.Printf("warning, some assets could not be priced: %v", err)
	}

	filename := c.outputFile
	if filename == "" {
		filename = *marketFile
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening market file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := assetbook.EncodeSnapshots(out, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing market file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote %d snapshots to %s\n", len(book.LatestPrices()), filename)
	return subcommands.ExitSuccess
}
