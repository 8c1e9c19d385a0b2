package pack

// shelfDriver is a strict left-to-right, top-to-bottom sweep: it never
// re-sorts or re-scans free space, tracking only a cursor and the height
// of the shelf currently being filled.
type shelfDriver struct{}

func (shelfDriver) pack(sorted []PhotoInput, config PageConfig, printable Rect) ([]Placement, error) {
	placements := make([]Placement, 0, len(sorted))

	right := printable.X + printable.W
	bottom := printable.Y + printable.H

	currentPage := 0
	cursorX, cursorY := printable.X, printable.Y
	shelfHeight := 0.0

	for _, in := range sorted {
		rw, rh := paddedDims(in, config.Spacing)

		if rw > printable.W || rh > printable.H {
			continue
		}

		if cursorX+rw > right {
			cursorY += shelfHeight
			cursorX = printable.X
			shelfHeight = 0
		}

		if cursorY+rh > bottom {
			if !config.MultiPage {
				continue
			}
			currentPage++
			cursorX, cursorY = printable.X, printable.Y
			shelfHeight = 0
		}

		placements = append(placements, emitPlacement(in, cursorX, cursorY, currentPage))
		cursorX += rw
		shelfHeight = max(shelfHeight, rh)
	}

	return placements, nil
}
