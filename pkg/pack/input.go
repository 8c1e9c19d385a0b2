package pack

import "sort"

// sortInputs orders inputs by priority descending, then by a per-algorithm
// tie-break key descending (area for Guillotine/MaxRects, height for
// Shelf), stable on any remaining tie so that equal-priority, equal-size
// inputs retain their original relative order. The input slice is never
// mutated; sortInputs returns a new slice.
func sortInputs(inputs []PhotoInput, algo Algorithm) []PhotoInput {
	sorted := make([]PhotoInput, len(inputs))
	copy(sorted, inputs)

	key := tieBreakArea
	if algo == Shelf {
		key = tieBreakHeight
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return key(a) > key(b)
	})
	return sorted
}

func tieBreakArea(in PhotoInput) float64 {
	w, h := effectiveDims(in.Size, in.Rotation)
	return w * h
}

func tieBreakHeight(in PhotoInput) float64 {
	_, h := effectiveDims(in.Size, in.Rotation)
	return h
}
