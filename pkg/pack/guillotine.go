package pack

// guillotineDriver places items into the free rect store by scanning for
// the first rect (in current, area-descending order) that the padded
// footprint fits, then splitting only that host rect and re-sorting the
// remainder by area, descending.
type guillotineDriver struct{}

func (guillotineDriver) pack(sorted []PhotoInput, config PageConfig, printable Rect) ([]Placement, error) {
	store := newFreeRectStore(printable)
	placements := make([]Placement, 0, len(sorted))
	currentPage := 0

	for _, in := range sorted {
		rw, rh := paddedDims(in, config.Spacing)
		if rw > printable.W || rh > printable.H {
			continue
		}

		idx := firstFit(store.rects, rw, rh)
		if idx < 0 {
			if !config.MultiPage {
				continue
			}
			currentPage++
			store.reset(printable)
			idx = firstFit(store.rects, rw, rh)
			if idx < 0 {
				continue
			}
		}

		host := store.rects[idx]
		placements = append(placements, emitPlacement(in, host.X, host.Y, currentPage))
		store.splitGuillotine(idx, rw, rh)
		store.sortByAreaDesc()
	}

	return placements, nil
}

// firstFit scans rects in order and returns the index of the first one the
// padded footprint (rw, rh) fits, or -1 if none does.
func firstFit(rects []FreeRect, rw, rh float64) int {
	for i, r := range rects {
		if rw <= r.W && rh <= r.H {
			return i
		}
	}
	return -1
}

func paddedDims(in PhotoInput, spacing float64) (rw, rh float64) {
	w, h := effectiveDims(in.Size, in.Rotation)
	return w + spacing, h + spacing
}

func emitPlacement(in PhotoInput, x, y float64, pageIndex int) Placement {
	ew, eh := effectiveDims(in.Size, in.Rotation)
	return Placement{
		ID:              in.ID,
		Payload:         in.Payload,
		Size:            in.Size,
		Rotation:        in.Rotation,
		X:               x,
		Y:               y,
		EffectiveWidth:  ew,
		EffectiveHeight: eh,
		PageIndex:       pageIndex,
	}
}
