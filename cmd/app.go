// Package cmd implements the CLI application to manage an asset book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/mxruben/assetbook"
)

// Register the subcommands.
// A main package calls Register() and lets the commander execute the selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&refreshCmd{}, "market")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings-file", "files/dev/user.json", "Path to the holdings document")
var pricesFile = flag.String("prices-file", "files/dev/naive_price_mxn.json", "Path to the price sheet document")
var marketFile = flag.String("market-file", "files/dev/market.json", "Path to the market snapshots file (JSONL format)")
var ownerName = flag.String("owner", "TEST", "Owner name")
var envName = flag.String("env", "dev", "Environment (dev, prod)")
var currencyName = flag.String("currency", "MXN", "Reporting fiat currency (MXN, USD)")

// OpenBook loads the price sheet and the holdings document into a fresh book.
func OpenBook() (*assetbook.Book, error) {
	env, err := assetbook.ParseAppEnv(*envName)
	if err != nil {
		return nil, err
	}
	currency, err := assetbook.ParseFiatCurrency(*currencyName)
	if err != nil {
		return nil, err
	}

	sheet, err := openPriceSheet()
	if err != nil {
		return nil, err
	}

	owner := assetbook.Owner{Name: *ownerName, Env: env}
	book := assetbook.NewBook(owner, assetbook.OwnerSettings{Currency: currency}, sheet)

	f, err := os.Open(*holdingsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings document %q: %w", *holdingsFile, err)
	}
	defer f.Close()
	if err := assetbook.ImportHoldings(f, book); err != nil {
		return nil, fmt.Errorf("cannot import holdings from %q: %w", *holdingsFile, err)
	}
	return book, nil
}

func openPriceSheet() (*assetbook.PriceSheet, error) {
	f, err := os.Open(*pricesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, price sheet does not exist, using an empty sheet instead")
		return &assetbook.PriceSheet{CreatedAt: assetbook.Now()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open price sheet %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return assetbook.DecodePriceSheet(f)
}
