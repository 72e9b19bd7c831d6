// Package artic reads the public artwork listing API and implements the two
// operations the table needs on top of it.
//
// # Listing Client
//
// Client builds listing URLs and decodes pages:
//
//	c := artic.NewClient(httpClient, artic.DefaultBaseURL, model.Fields())
//	page, err := c.FetchPage(ctx, 1, 12)
//	// GET https://api.artic.edu/api/v1/artworks?fields=...&limit=12&page=1
//
// # Page Loader
//
// PageLoader fetches one display page at the table's page size:
//
//	loader := artic.NewPageLoader(c, artic.DefaultPageSize)
//	page, err := loader.LoadPage(ctx, 4)
//
// # Bulk Gatherer
//
// Gatherer acquires the first n records across as many pages as needed,
// either one display page at a time (StrategySequential) or as a single
// concurrent wave of 100-record pages (StrategyWave):
//
//	g := artic.NewGatherer(c, artic.DefaultGatherConfig(), nil)
//	rows, err := g.Gather(ctx, 25)
//
// Both strategies return an upstream-ordered prefix. When a request fails the
// records gathered before the failed page come back alongside the error.
//
// # Listing Format
//
// The upstream answers with
//
//	{"data": [{"id": 1, "title": "...", ...}], "pagination": {"total": 40, ...}}
//
// and any field other than id may be null.
package artic
