package model

// Selection is an order-preserving list of artworks keyed by ID.
//
// Membership is decided by Artwork.ID, never by value identity, so the same
// record fetched again on a later page is recognized as already selected.
// The zero value is an empty selection ready to use.
//
// Example:
//
//	var sel Selection
//	sel.Toggle(a)     // adds a
//	sel.Toggle(a)     // removes a
//	sel.Replace(rows) // drops everything, keeps rows in order, first ID wins
type Selection struct {
	items []Artwork
	index map[int]int
}

// NewSelection builds a selection from artworks, dropping repeated IDs.
func NewSelection(artworks []Artwork) Selection {
	var s Selection
	s.Replace(artworks)
	return s
}

// Len returns the number of selected artworks.
func (s *Selection) Len() int {
	return len(s.items)
}

// Contains reports whether an artwork with the given ID is selected.
func (s *Selection) Contains(id int) bool {
	_, ok := s.index[id]
	return ok
}

// Items returns a copy of the selected artworks in selection order.
func (s *Selection) Items() []Artwork {
	out := make([]Artwork, len(s.items))
	copy(out, s.items)
	return out
}

// IDs returns the selected IDs in selection order.
func (s *Selection) IDs() []int {
	ids := make([]int, len(s.items))
	for i, a := range s.items {
		ids[i] = a.ID
	}
	return ids
}

// Add appends the artwork unless its ID is already selected.
// It returns true if the selection changed.
func (s *Selection) Add(a Artwork) bool {
	if s.Contains(a.ID) {
		return false
	}
	if s.index == nil {
		s.index = make(map[int]int)
	}
	s.index[a.ID] = len(s.items)
	s.items = append(s.items, a)
	return true
}

// Remove drops the artwork with the given ID.
// It returns true if the selection changed.
func (s *Selection) Remove(id int) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.reindex()
	return true
}

// Toggle selects the artwork if it is not selected and deselects it otherwise.
// It returns the new membership of the artwork.
func (s *Selection) Toggle(a Artwork) bool {
	if s.Remove(a.ID) {
		return false
	}
	s.Add(a)
	return true
}

// Replace discards the current selection and selects artworks in order.
// When an ID repeats, the first occurrence is kept.
func (s *Selection) Replace(artworks []Artwork) {
	s.items = make([]Artwork, 0, len(artworks))
	s.index = make(map[int]int, len(artworks))
	for _, a := range artworks {
		s.Add(a)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.items = nil
	s.index = nil
}

// Clone returns an independent copy of the selection.
func (s *Selection) Clone() Selection {
	return NewSelection(s.items)
}

func (s *Selection) reindex() {
	s.index = make(map[int]int, len(s.items))
	for i, a := range s.items {
		s.index[a.ID] = i
	}
}
