package pack

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// printableArea derives the printable rectangle of a page: the page
// dimensions with margins subtracted. Returns ErrInvalidGeometry if the
// margins leave a non-positive width or height.
func printableArea(config PageConfig) (Rect, error) {
	w := config.PageWidth - config.MarginLeft - config.MarginRight
	h := config.PageHeight - config.MarginTop - config.MarginBottom
	if w <= 0 || h <= 0 {
		return Rect{}, ErrInvalidGeometry
	}
	return Rect{X: config.MarginLeft, Y: config.MarginTop, W: w, H: h}, nil
}

// effectiveDims returns the rotation-aware bounding dimensions of size:
// width and height are swapped for a rotation of 90 or 270 degrees.
func effectiveDims(size PhotoSize, rotation int) (w, h float64) {
	if rotation == 90 || rotation == 270 {
		return size.Height, size.Width
	}
	return size.Width, size.Height
}

func validRotation(rotation int) bool {
	switch rotation {
	case 0, 90, 180, 270:
		return true
	default:
		return false
	}
}

// containsRect reports whether outer fully contains inner, non-strictly
// (equal rects contain each other). Used for pruning, where any non-strict
// containment of a distinct rect removes it.
func containsRect(outer, inner Rect) bool {
	return outer.X <= inner.X &&
		outer.Y <= inner.Y &&
		outer.X+outer.W >= inner.X+inner.W &&
		outer.Y+outer.H >= inner.Y+inner.H
}

// strictlyContains reports whether outer contains inner with at least one
// of the four bounding inequalities strict, so that an exact duplicate
// does not count as strictly contained in itself. Used for the
// insert-only-if-not-already-covered check before adding a MaxRects split
// candidate.
func strictlyContains(outer, inner Rect) bool {
	if !containsRect(outer, inner) {
		return false
	}
	return outer.X < inner.X ||
		outer.Y < inner.Y ||
		outer.X+outer.W > inner.X+inner.W ||
		outer.Y+outer.H > inner.Y+inner.H
}
