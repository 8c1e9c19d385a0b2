package pack

import "testing"

func TestSortInputsOrdersByPriorityThenArea(t *testing.T) {
	inputs := []PhotoInput{
		{ID: "small", Size: PhotoSize{Width: 1, Height: 1}, Priority: 0},
		{ID: "big", Size: PhotoSize{Width: 3, Height: 3}, Priority: 0},
		{ID: "urgent", Size: PhotoSize{Width: 1, Height: 1}, Priority: 10},
	}
	sorted := sortInputs(inputs, Guillotine)

	want := []string{"urgent", "big", "small"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("sorted[%d].ID = %q, want %q", i, sorted[i].ID, id)
		}
	}
}

func TestSortInputsIsStableOnFullTies(t *testing.T) {
	inputs := []PhotoInput{
		{ID: "a", Size: PhotoSize{Width: 2, Height: 2}},
		{ID: "b", Size: PhotoSize{Width: 2, Height: 2}},
		{ID: "c", Size: PhotoSize{Width: 2, Height: 2}},
	}
	sorted := sortInputs(inputs, Guillotine)

	for i, id := range []string{"a", "b", "c"} {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d].ID = %q, want %q (stability broken)", i, sorted[i].ID, id)
		}
	}
}

func TestSortInputsDoesNotMutateCaller(t *testing.T) {
	inputs := []PhotoInput{
		{ID: "a", Size: PhotoSize{Width: 1, Height: 1}, Priority: 0},
		{ID: "b", Size: PhotoSize{Width: 2, Height: 2}, Priority: 5},
	}
	_ = sortInputs(inputs, Guillotine)

	if inputs[0].ID != "a" || inputs[1].ID != "b" {
		t.Errorf("sortInputs mutated caller slice: %+v", inputs)
	}
}

func TestSortInputsShelfBreaksTiesByHeight(t *testing.T) {
	inputs := []PhotoInput{
		{ID: "wide", Size: PhotoSize{Width: 4, Height: 1}},
		{ID: "tall", Size: PhotoSize{Width: 1, Height: 4}},
	}
	sorted := sortInputs(inputs, Shelf)
	if sorted[0].ID != "tall" {
		t.Errorf("Shelf tie-break should favor taller effective height first, got %q", sorted[0].ID)
	}
}
