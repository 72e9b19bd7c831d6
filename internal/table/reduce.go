package table

import (
	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/model"
)

// Reduce applies one event to the state and returns the new state and the
// effect to perform next, if any. It never mutates s.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case PageChanged:
		if ev.Page < 1 {
			return s, nil
		}
		s.Page = ev.Page
		s.Loading = true
		return s, LoadPage{Page: ev.Page}

	case PageLoaded:
		// The last response to arrive wins, whatever page it was for.
		s.Loading = false
		if ev.Err != nil {
			s.Rows = nil
			return s, nil
		}
		s.Rows = ev.Artworks
		s.Total = ev.Total
		return s, nil

	case RowToggled:
		sel := s.Selection.Clone()
		sel.Toggle(ev.Artwork)
		s.Selection = sel
		return s, nil

	case SelectionChanged:
		s.Selection = model.NewSelection(ev.Selected)
		return s, nil

	case SelectionCleared:
		s.Selection = model.Selection{}
		return s, nil

	case BulkInputChanged:
		s.BulkInput = ev.Text
		return s, nil

	case PopoverToggled:
		s.PopoverOpen = !s.PopoverOpen
		return s, nil

	case PopoverClosed:
		s.PopoverOpen = false
		return s, nil

	case BulkSubmitted:
		n, ok := artic.ParseCount(s.BulkInput)
		if !ok {
			return s, nil
		}
		s.Gathering = true
		return s, Gather{Count: n}

	case BulkGathered:
		s.Selection = model.NewSelection(ev.Artworks)
		s.BulkInput = ""
		s.PopoverOpen = false
		s.Gathering = false
		return s, nil
	}

	return s, nil
}
