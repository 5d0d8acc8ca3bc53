package assetbook

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
)

// This file contains code to persist computed market snapshots in a way that
// is still human-readable and git-friendly: a JSONL stream, one snapshot per
// line, in asset id order so successive runs diff cleanly.

// EncodeSnapshots writes the book's latest market snapshots to w.
func EncodeSnapshots(w io.Writer, book *Book) error {
	ids := slices.Sorted(maps.Keys(book.latest))
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		snap := book.latest[id]
		var ow jsonObjectWriter
		ow.Append("asset", id)
		ow.EmbedFrom(snap)
		line, err := ow.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode snapshot for asset %d: %w", id, err)
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
