package table

import "github.com/handiism/artic-table/internal/model"

// State is the set of display state cells of the table.
type State struct {
	// Rows are the artworks of the displayed page.
	Rows []model.Artwork

	// Loading is true while a page load is outstanding.
	Loading bool

	// Page is the current 1-based page index.
	Page int

	// PageSize is the fixed number of rows per page.
	PageSize int

	// Total is the upstream record count from the latest successful load.
	Total int

	// Selection holds the chosen artworks across pages.
	Selection model.Selection

	// BulkInput is the raw text of the bulk selection input.
	BulkInput string

	// PopoverOpen is true while the bulk selection popover is shown.
	PopoverOpen bool

	// Gathering is true while a bulk gather is outstanding.
	Gathering bool
}

// New returns the initial state: page 1, loading, nothing selected.
func New(pageSize int) State {
	if pageSize <= 0 {
		pageSize = 12
	}
	return State{
		Loading:  true,
		Page:     1,
		PageSize: pageSize,
	}
}

// Init returns the state together with the effect that loads its page.
func (s State) Init() (State, Effect) {
	s.Loading = true
	return s, LoadPage{Page: s.Page}
}

// FirstRow returns the 0-based offset of the first row of the current page.
func (s State) FirstRow() int {
	return (s.Page - 1) * s.PageSize
}

// PageCount returns the number of pages needed to show Total rows.
func (s State) PageCount() int {
	if s.PageSize <= 0 || s.Total <= 0 {
		return 0
	}
	return (s.Total + s.PageSize - 1) / s.PageSize
}

// HasNext reports whether a later page exists according to Total.
func (s State) HasNext() bool {
	return s.Page < s.PageCount()
}

// HasPrev reports whether an earlier page exists.
func (s State) HasPrev() bool {
	return s.Page > 1
}

// IsSelected reports whether the artwork with the given ID is selected.
func (s State) IsSelected(id int) bool {
	return s.Selection.Contains(id)
}
