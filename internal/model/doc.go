// Package model defines the core data structures used throughout
// the artic-table application.
//
// # Artwork
//
// Artwork is one record from the upstream listing, identified by its
// upstream-assigned ID:
//
//	a := model.Artwork{ID: 27992, Title: "A Sunday on La Grande Jatte — 1884"}
//	fmt.Println(a.Cells()) // display values in column order
//
// # Page
//
// Page groups the artworks of one upstream page with the total record count
// reported by the upstream:
//
//	page := model.NewPage(4, 12, 40, artworks)
//	fmt.Println(page.Len(), page.Total) // 4 40
//
// # Selection
//
// Selection is an ordered list of artworks keyed by ID:
//
//	var sel model.Selection
//	sel.Toggle(a)       // selected
//	sel.Contains(a.ID)  // true
//	sel.Replace(bulk)   // bulk selection replaces everything
package model
