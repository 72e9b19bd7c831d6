package table

import (
	"errors"
	"reflect"
	"testing"

	"github.com/handiism/artic-table/internal/model"
)

func artworks(from, to int) []model.Artwork {
	var out []model.Artwork
	for id := from; id <= to; id++ {
		out = append(out, model.Artwork{ID: id})
	}
	return out
}

func loaded(t *testing.T) State {
	t.Helper()
	s, _ := New(12).Init()
	s, _ = Reduce(s, PageLoaded{Page: 1, Artworks: artworks(1, 12), Total: 40})
	return s
}

func TestInit(t *testing.T) {
	s, eff := New(12).Init()
	if !s.Loading || s.Page != 1 {
		t.Errorf("initial state = %+v, want loading page 1", s)
	}
	if eff != (LoadPage{Page: 1}) {
		t.Errorf("effect = %#v, want LoadPage{1}", eff)
	}
}

func TestReduce_PageChanged(t *testing.T) {
	s := loaded(t)

	next, eff := Reduce(s, PageChanged{Page: 4})
	if next.Page != 4 || !next.Loading {
		t.Errorf("state = page %d loading %v, want page 4 loading", next.Page, next.Loading)
	}
	if eff != (LoadPage{Page: 4}) {
		t.Errorf("effect = %#v, want LoadPage{4}", eff)
	}
	if next.FirstRow() != 36 {
		t.Errorf("FirstRow() = %d, want 36", next.FirstRow())
	}

	same, eff := Reduce(s, PageChanged{Page: 0})
	if eff != nil || !reflect.DeepEqual(same, s) {
		t.Error("PageChanged{0} should be ignored")
	}
}

func TestReduce_PageLoaded(t *testing.T) {
	tests := []struct {
		name      string
		event     PageLoaded
		wantRows  int
		wantTotal int
	}{
		{"full page", PageLoaded{Page: 2, Artworks: artworks(13, 24), Total: 40}, 12, 40},
		{"last page", PageLoaded{Page: 4, Artworks: artworks(37, 40), Total: 40}, 4, 40},
		{"failure keeps total", PageLoaded{Page: 2, Err: errors.New("boom")}, 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := Reduce(loaded(t), PageChanged{Page: tt.event.Page})
			s, eff := Reduce(s, tt.event)
			if eff != nil {
				t.Errorf("unexpected effect %#v", eff)
			}
			if s.Loading {
				t.Error("Loading should be cleared")
			}
			if len(s.Rows) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(s.Rows), tt.wantRows)
			}
			if s.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", s.Total, tt.wantTotal)
			}
		})
	}
}

func TestReduce_LastResponseWins(t *testing.T) {
	s := loaded(t)
	s, _ = Reduce(s, PageChanged{Page: 2})
	s, _ = Reduce(s, PageChanged{Page: 3})

	s, _ = Reduce(s, PageLoaded{Page: 3, Artworks: artworks(25, 36), Total: 40})
	s, _ = Reduce(s, PageLoaded{Page: 2, Artworks: artworks(13, 24), Total: 40})

	if s.Rows[0].ID != 13 {
		t.Errorf("first row = %d, want 13 from the later response", s.Rows[0].ID)
	}
	if s.Page != 3 {
		t.Errorf("Page = %d, want 3", s.Page)
	}
}

func TestReduce_BulkInvalidInputIsNoop(t *testing.T) {
	for _, input := range []string{"0", "-5", "abc", ""} {
		t.Run(input, func(t *testing.T) {
			s := loaded(t)
			s, _ = Reduce(s, RowToggled{Artwork: model.Artwork{ID: 3}})
			s, _ = Reduce(s, PopoverToggled{})
			s, _ = Reduce(s, BulkInputChanged{Text: input})

			next, eff := Reduce(s, BulkSubmitted{})
			if eff != nil {
				t.Errorf("effect = %#v, want none", eff)
			}
			if !reflect.DeepEqual(next, s) {
				t.Errorf("state changed: %+v", next)
			}
		})
	}
}

func TestReduce_BulkGather(t *testing.T) {
	s := loaded(t)
	s, _ = Reduce(s, RowToggled{Artwork: model.Artwork{ID: 99}})
	s, _ = Reduce(s, PopoverToggled{})
	s, _ = Reduce(s, BulkInputChanged{Text: "25"})

	s, eff := Reduce(s, BulkSubmitted{})
	if eff != (Gather{Count: 25}) {
		t.Fatalf("effect = %#v, want Gather{25}", eff)
	}
	if !s.Gathering {
		t.Error("Gathering should be set")
	}

	s, eff = Reduce(s, BulkGathered{Artworks: artworks(1, 25)})
	if eff != nil {
		t.Errorf("unexpected effect %#v", eff)
	}
	if got := s.Selection.IDs(); !reflect.DeepEqual(got, artworksIDs(1, 25)) {
		t.Errorf("selection = %v", got)
	}
	if s.IsSelected(99) {
		t.Error("bulk gather should replace the previous selection")
	}
	if s.BulkInput != "" || s.PopoverOpen || s.Gathering {
		t.Errorf("post-conditions not met: input %q popover %v gathering %v", s.BulkInput, s.PopoverOpen, s.Gathering)
	}
}

func TestReduce_BulkGatherFailureKeepsPartial(t *testing.T) {
	s := loaded(t)
	s, _ = Reduce(s, PopoverToggled{})
	s, _ = Reduce(s, BulkInputChanged{Text: "30"})
	s, _ = Reduce(s, BulkSubmitted{})

	s, _ = Reduce(s, BulkGathered{Artworks: artworks(1, 24), Err: errors.New("page 3: HTTP 502")})
	if s.Selection.Len() != 24 {
		t.Errorf("selection = %d, want the 24 gathered rows", s.Selection.Len())
	}
	if s.PopoverOpen || s.BulkInput != "" {
		t.Error("popover should close and input clear on failure too")
	}
}

func TestReduce_RowToggledIsPure(t *testing.T) {
	s := loaded(t)
	s, _ = Reduce(s, RowToggled{Artwork: s.Rows[0]})

	next, _ := Reduce(s, RowToggled{Artwork: s.Rows[1]})
	if s.Selection.Len() != 1 {
		t.Errorf("input state mutated: selection = %v", s.Selection.IDs())
	}
	if got := next.Selection.IDs(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("selection = %v, want [1 2]", got)
	}

	// Same ID on another page deselects.
	next, _ = Reduce(next, RowToggled{Artwork: model.Artwork{ID: 1, Title: "refetched"}})
	if got := next.Selection.IDs(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("selection = %v, want [2]", got)
	}
}

func TestReduce_SelectionSurvivesPageChange(t *testing.T) {
	s := loaded(t)
	s, _ = Reduce(s, RowToggled{Artwork: s.Rows[5]})
	s, _ = Reduce(s, PageChanged{Page: 2})
	s, _ = Reduce(s, PageLoaded{Page: 2, Artworks: artworks(13, 24), Total: 40})

	if !s.IsSelected(6) {
		t.Error("selection should survive page changes")
	}
}

func TestReduce_SelectionChangedAndCleared(t *testing.T) {
	s := loaded(t)
	s, _ = Reduce(s, SelectionChanged{Selected: []model.Artwork{{ID: 4}, {ID: 2}, {ID: 4}}})
	if got := s.Selection.IDs(); !reflect.DeepEqual(got, []int{4, 2}) {
		t.Errorf("selection = %v, want [4 2]", got)
	}

	s, _ = Reduce(s, SelectionCleared{})
	if s.Selection.Len() != 0 {
		t.Error("selection should be empty")
	}
}

func TestReduce_Popover(t *testing.T) {
	s := loaded(t)
	s, _ = Reduce(s, PopoverToggled{})
	if !s.PopoverOpen {
		t.Error("popover should open")
	}
	s, _ = Reduce(s, PopoverToggled{})
	if s.PopoverOpen {
		t.Error("popover should close")
	}
	s, _ = Reduce(s, PopoverToggled{})
	s, _ = Reduce(s, PopoverClosed{})
	if s.PopoverOpen {
		t.Error("PopoverClosed should close")
	}
}

func TestState_Paging(t *testing.T) {
	s := loaded(t)
	if s.PageCount() != 4 {
		t.Errorf("PageCount() = %d, want 4", s.PageCount())
	}
	if s.HasPrev() || !s.HasNext() {
		t.Error("page 1 of 4 has next but no prev")
	}
	s.Page = 4
	if !s.HasPrev() || s.HasNext() {
		t.Error("page 4 of 4 has prev but no next")
	}
	if (State{}).PageCount() != 0 {
		t.Error("empty state has no pages")
	}
}

func artworksIDs(from, to int) []int {
	var out []int
	for id := from; id <= to; id++ {
		out = append(out, id)
	}
	return out
}
