// Package server exposes the artwork table over HTTP.
//
// The server owns one table.Store. Every request either reads its state or
// dispatches an event into it and answers with the resulting state, so a web
// page (or curl) can drive the same table the TUI shows:
//
//	GET    /health                  liveness
//	GET    /api/state               current table state
//	POST   /api/page                {"page": 2}
//	POST   /api/selection/toggle    {"id": 27992}
//	DELETE /api/selection           clear selection
//	POST   /api/bulk                {"count": "25"}
//	POST   /api/popover/toggle      open or close the bulk popover
//	GET    /metrics                 Prometheus metrics
package server
