package pack

import "errors"

// ErrInvalidGeometry is returned when the page margins leave no printable
// area, a photo has non-positive dimensions, spacing or a margin is
// negative, or a rotation outside {0, 90, 180, 270} is requested.
var ErrInvalidGeometry = errors.New("pack: invalid geometry")

// ErrUnknownAlgorithm is returned when the requested Algorithm is not one
// of Guillotine, Shelf, or MaxRects.
var ErrUnknownAlgorithm = errors.New("pack: unknown algorithm")
