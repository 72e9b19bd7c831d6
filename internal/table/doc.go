// Package table holds the display state of the artwork table and the rules
// that change it.
//
// State is a plain value. Every change goes through Reduce, a pure function
// from (State, Event) to a new State plus an optional Effect. Effects are the
// requests the state asks for (load a page, gather n rows); whoever drives
// the table performs them and feeds the outcome back as another Event:
//
//	s, eff := table.New(12).Init()             // loading page 1
//	// perform eff (LoadPage{Page: 1}) ...
//	s, _ = table.Reduce(s, table.PageLoaded{Page: page, Err: err})
//
// The Bubble Tea UI drives Reduce from its Update loop. Store does the same
// for callers without an event loop, such as the HTTP surface.
package table
