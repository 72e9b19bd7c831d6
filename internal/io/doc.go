// Package ioutils writes artwork selections to files.
//
// This package contains functions for:
//   - Encoding artworks as JSON or CSV records
//   - Writing files atomically
//   - Directory creation
//
// # Exporting a selection
//
//	rows, _ := gatherer.Gather(ctx, 250)
//	err := ioutils.Export(ctx, "selection.csv", rows)
//
// The format follows the file extension: .csv writes CSV with a header row,
// anything else writes an indented JSON array.
package ioutils
