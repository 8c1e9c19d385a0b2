package pack

import "sort"

// FreeRect is a rectangle of currently-packable space within a page's
// printable area. FreeRects are transient: they exist only for the
// duration of a single Pack call.
type FreeRect = Rect

// freeRectStore is the mutable working set a Guillotine or MaxRects driver
// splits and prunes as it places items on one page. One store is created
// per Pack call and reset in place for each new page.
type freeRectStore struct {
	rects []FreeRect
}

func newFreeRectStore(printable Rect) *freeRectStore {
	return &freeRectStore{rects: []FreeRect{printable}}
}

// reset discards all free rects and starts a fresh page with a single
// free rect equal to the printable area.
func (s *freeRectStore) reset(printable Rect) {
	s.rects = s.rects[:0]
	s.rects = append(s.rects, printable)
}

// sortByAreaDesc reorders the store by descending area, stably. The
// reference implementation always reorders this way after a split so that
// a linear best-fit scan finds large candidates early; ordering affects
// determinism for equal-score ties but never correctness.
func (s *freeRectStore) sortByAreaDesc() {
	sort.SliceStable(s.rects, func(i, j int) bool {
		a, b := s.rects[i], s.rects[j]
		return a.W*a.H > b.W*b.H
	})
}

// splitGuillotine removes the host rect at index idx and, given the
// placed footprint (rw, rh) anchored at the host's origin, inserts up to
// two children: a right strip the height of the placement, and a bottom
// strip the full width of the host. Only the host is split; every other
// free rect is left untouched. This is the "short-axis, used-region
// split" variant, not canonical guillotine splitting.
func (s *freeRectStore) splitGuillotine(idx int, rw, rh float64) {
	host := s.rects[idx]
	s.removeAt(idx)

	if host.W > rw {
		s.rects = append(s.rects, FreeRect{X: host.X + rw, Y: host.Y, W: host.W - rw, H: rh})
	}
	if host.H > rh {
		s.rects = append(s.rects, FreeRect{X: host.X, Y: host.Y + rh, W: host.W, H: host.H - rh})
	}
}

// splitMaxRects removes the host rect at index idx and, given the placed
// footprint (rw, rh) anchored at the host's origin, inserts up to two
// candidate children: a right strip spanning the host's full height, and
// a bottom strip spanning the host's full width. Each candidate is kept
// only if it is not strictly contained in an existing free rect; the
// store is then pruned of every rect strictly contained in another. This
// is the "split host only, then prune" variant — not full MaxRects
// rectangle subdivision of every overlapped free rect.
func (s *freeRectStore) splitMaxRects(idx int, rw, rh float64) {
	host := s.rects[idx]
	s.removeAt(idx)

	if host.W > rw {
		right := FreeRect{X: host.X + rw, Y: host.Y, W: host.W - rw, H: host.H}
		if !s.strictlyContainedInAny(right) {
			s.rects = append(s.rects, right)
		}
	}
	if host.H > rh {
		bottom := FreeRect{X: host.X, Y: host.Y + rh, W: host.W, H: host.H - rh}
		if !s.strictlyContainedInAny(bottom) {
			s.rects = append(s.rects, bottom)
		}
	}
	s.prune()
}

func (s *freeRectStore) strictlyContainedInAny(r FreeRect) bool {
	for _, other := range s.rects {
		if strictlyContains(other, r) {
			return true
		}
	}
	return false
}

// prune removes every free rect that is non-strictly contained in some
// other distinct free rect in the store. Only distinct rectangles are
// compared against each other, so a rect is never pruned against itself
// or against an exact duplicate of itself.
func (s *freeRectStore) prune() {
	kept := make([]FreeRect, 0, len(s.rects))
	for i, a := range s.rects {
		contained := false
		for j, b := range s.rects {
			if i != j && a != b && containsRect(b, a) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	s.rects = kept
}

func (s *freeRectStore) removeAt(idx int) {
	s.rects = append(s.rects[:idx], s.rects[idx+1:]...)
}
