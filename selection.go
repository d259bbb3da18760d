package sceneedit

import "slices"

// Selection is an ordered set of thing UIDs. Insertion order is selection
// order and a UID appears at most once.
type Selection struct {
	uids  []string
	index map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{index: make(map[string]struct{})}
}

// Add appends uid unless it is already selected. Reports whether it was added.
func (s *Selection) Add(uid string) bool {
	if _, ok := s.index[uid]; ok {
		return false
	}
	s.index[uid] = struct{}{}
	s.uids = append(s.uids, uid)
	return true
}

// Remove drops uid, keeping the order of the rest. Reports whether it was present.
func (s *Selection) Remove(uid string) bool {
	if _, ok := s.index[uid]; !ok {
		return false
	}
	delete(s.index, uid)
	if i := slices.Index(s.uids, uid); i >= 0 {
		s.uids = slices.Delete(s.uids, i, i+1)
	}
	return true
}

// Contains reports whether uid is selected.
func (s *Selection) Contains(uid string) bool {
	_, ok := s.index[uid]
	return ok
}

// Clear empties the selection.
func (s *Selection) Clear() {
	clear(s.index)
	s.uids = s.uids[:0]
}

// Len returns the number of selected UIDs.
func (s *Selection) Len() int {
	return len(s.uids)
}

// UIDs returns a copy of the selected UIDs in selection order.
func (s *Selection) UIDs() []string {
	return slices.Clone(s.uids)
}

// equal reports whether the selection holds exactly uids in the same order.
func (s *Selection) equal(uids []string) bool {
	return slices.Equal(s.uids, uids)
}
