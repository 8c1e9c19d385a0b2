// Package pack implements a deterministic 2D rectangle bin-packing engine
// for laying out photos on pages. It is a pure function over its inputs:
// no I/O, no logging, no shared state between calls.
package pack

// PhotoSize is a named rectangle with positive dimensions in a caller-chosen
// linear unit (inches, millimeters, points — the package is unit-agnostic).
type PhotoSize struct {
	Name   string
	Width  float64
	Height float64
}

// PhotoInput is one copy of a photo to be placed.
type PhotoInput struct {
	ID       string
	Size     PhotoSize
	Rotation int // one of 0, 90, 180, 270
	Priority int // higher is placed first; default 0
	Payload  any // opaque, propagated unchanged
}

// PageConfig describes the page geometry and placement policy shared by
// every page a Pack call may produce.
type PageConfig struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	Spacing      float64 // minimum clearance to the right of and below each photo
	MultiPage    bool    // if false, overflow items are dropped rather than spilling to a new page
}

// Placement is the output record for one placed photo.
type Placement struct {
	ID              string
	Payload         any
	Size            PhotoSize
	Rotation        int
	X, Y            float64 // top-left corner of the photo, not including the spacing pad
	EffectiveWidth  float64
	EffectiveHeight float64
	PageIndex       int
}

// Algorithm selects which packing driver Pack uses. It is a closed,
// three-valued tagged variant rather than a string switch; Pack dispatches
// on it exactly once per call.
type Algorithm int

const (
	Guillotine Algorithm = iota
	Shelf
	MaxRects
)

// driver is implemented by each of the three algorithm packers. Pack
// dispatches to exactly one driver per call; the driver owns everything
// about how free space for the current page is tracked and split.
type driver interface {
	// pack places sorted into placements across one or more pages per
	// config's multi-page policy, returning the items that were placed.
	pack(sorted []PhotoInput, config PageConfig, printable Rect) ([]Placement, error)
}

// Pack lays the given photo copies out onto pages described by config,
// using algo to decide how free space is tracked and how each item is
// positioned. It is deterministic: equal inputs (including input order)
// always produce equal outputs. Unplaceable items are silently omitted
// from the result; Pack never returns a partial result alongside an error.
func Pack(inputs []PhotoInput, config PageConfig, algo Algorithm) ([]Placement, error) {
	printable, err := printableArea(config)
	if err != nil {
		return nil, err
	}
	if config.Spacing < 0 || config.MarginTop < 0 || config.MarginRight < 0 ||
		config.MarginBottom < 0 || config.MarginLeft < 0 {
		return nil, ErrInvalidGeometry
	}
	for _, in := range inputs {
		if in.Size.Width <= 0 || in.Size.Height <= 0 {
			return nil, ErrInvalidGeometry
		}
		if !validRotation(in.Rotation) {
			return nil, ErrInvalidGeometry
		}
	}

	var d driver
	switch algo {
	case Guillotine:
		d = guillotineDriver{}
	case Shelf:
		d = shelfDriver{}
	case MaxRects:
		d = maxRectsDriver{}
	default:
		return nil, ErrUnknownAlgorithm
	}

	sorted := sortInputs(inputs, algo)
	return d.pack(sorted, config, printable)
}
