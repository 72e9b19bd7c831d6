package table

import "github.com/handiism/artic-table/internal/model"

// Event is something that happened to the table: user input from the
// display surface or the outcome of an Effect.
type Event interface {
	event()
}

// PageChanged asks for the given 1-based page.
type PageChanged struct {
	Page int
}

// PageLoaded carries the outcome of a LoadPage effect.
type PageLoaded struct {
	Page     int
	Artworks []model.Artwork
	Total    int
	Err      error
}

// RowToggled flips the selection of one artwork.
type RowToggled struct {
	Artwork model.Artwork
}

// SelectionChanged replaces the selection with what the display surface reports.
type SelectionChanged struct {
	Selected []model.Artwork
}

// SelectionCleared empties the selection.
type SelectionCleared struct{}

// BulkInputChanged carries the new text of the bulk input.
type BulkInputChanged struct {
	Text string
}

// PopoverToggled shows or hides the bulk popover.
type PopoverToggled struct{}

// PopoverClosed hides the bulk popover.
type PopoverClosed struct{}

// BulkSubmitted asks for the bulk input to be applied.
type BulkSubmitted struct{}

// BulkGathered carries the outcome of a Gather effect. Artworks holds
// whatever was gathered even when Err is set.
type BulkGathered struct {
	Artworks []model.Artwork
	Err      error
}

func (PageChanged) event()      {}
func (PageLoaded) event()       {}
func (RowToggled) event()       {}
func (SelectionChanged) event() {}
func (SelectionCleared) event() {}
func (BulkInputChanged) event() {}
func (PopoverToggled) event()   {}
func (PopoverClosed) event()    {}
func (BulkSubmitted) event()    {}
func (BulkGathered) event()     {}

// Effect is work the state asks its driver to perform.
type Effect interface {
	effect()
}

// LoadPage asks for one page to be loaded and reported as PageLoaded.
type LoadPage struct {
	Page int
}

// Gather asks for the first Count records to be gathered and reported as
// BulkGathered.
type Gather struct {
	Count int
}

func (LoadPage) effect() {}
func (Gather) effect()   {}
