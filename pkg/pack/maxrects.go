package pack

import "math"

// maxRectsDriver places items using best-short-side-fit: among every free
// rect the padded footprint fits, it picks the one that wastes the least
// of its shorter leftover dimension, breaking ties by the longer leftover
// and finally by store index. After each split the store is re-sorted by
// area, descending.
type maxRectsDriver struct{}

func (maxRectsDriver) pack(sorted []PhotoInput, config PageConfig, printable Rect) ([]Placement, error) {
	store := newFreeRectStore(printable)
	placements := make([]Placement, 0, len(sorted))
	currentPage := 0

	for _, in := range sorted {
		rw, rh := paddedDims(in, config.Spacing)
		if rw > printable.W || rh > printable.H {
			continue
		}

		idx := bestShortSideFit(store.rects, rw, rh)
		if idx < 0 {
			if !config.MultiPage {
				continue
			}
			currentPage++
			store.reset(printable)
			idx = bestShortSideFit(store.rects, rw, rh)
			if idx < 0 {
				continue
			}
		}

		host := store.rects[idx]
		placements = append(placements, emitPlacement(in, host.X, host.Y, currentPage))
		store.splitMaxRects(idx, rw, rh)
		store.sortByAreaDesc()
	}

	return placements, nil
}

// bestShortSideFit returns the index of the free rect that minimizes
// short_side_fit = min(width-rw, height-rh), breaking ties by long_side_fit
// = max(width-rw, height-rh), and further ties by the lowest index. It
// returns -1 if no rect fits.
func bestShortSideFit(rects []FreeRect, rw, rh float64) int {
	bestIdx := -1
	bestShort := math.Inf(1)
	bestLong := math.Inf(1)

	for i, r := range rects {
		if rw > r.W || rh > r.H {
			continue
		}
		short := math.Min(r.W-rw, r.H-rh)
		long := math.Max(r.W-rw, r.H-rh)

		if short < bestShort || (short == bestShort && long < bestLong) {
			bestIdx = i
			bestShort = short
			bestLong = long
		}
	}
	return bestIdx
}
