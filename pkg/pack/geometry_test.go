package pack

import "testing"

func TestPrintableAreaSubtractsMargins(t *testing.T) {
	config := PageConfig{
		PageWidth: 6, PageHeight: 4,
		MarginTop: 0.5, MarginRight: 0.5, MarginBottom: 0.5, MarginLeft: 0.5,
	}
	got, err := printableArea(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Rect{X: 0.5, Y: 0.5, W: 5, H: 3}
	if got != want {
		t.Errorf("printableArea() = %+v, want %+v", got, want)
	}
}

func TestPrintableAreaRejectsNonPositiveResult(t *testing.T) {
	config := PageConfig{
		PageWidth: 1, PageHeight: 1,
		MarginTop: 0.6, MarginRight: 0, MarginBottom: 0.6, MarginLeft: 0,
	}
	if _, err := printableArea(config); err != ErrInvalidGeometry {
		t.Errorf("printableArea() error = %v, want ErrInvalidGeometry", err)
	}
}

func TestEffectiveDimsSwapsOnSideRotation(t *testing.T) {
	size := PhotoSize{Width: 2, Height: 3}
	cases := []struct {
		rotation int
		wantW    float64
		wantH    float64
	}{
		{0, 2, 3},
		{90, 3, 2},
		{180, 2, 3},
		{270, 3, 2},
	}
	for _, c := range cases {
		w, h := effectiveDims(size, c.rotation)
		if w != c.wantW || h != c.wantH {
			t.Errorf("effectiveDims(%d) = (%v, %v), want (%v, %v)", c.rotation, w, h, c.wantW, c.wantH)
		}
	}
}

func TestStrictlyContainsExcludesEqualRects(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 4, H: 4}
	if strictlyContains(r, r) {
		t.Errorf("strictlyContains(r, r) = true, want false for an equal rect")
	}
	if !containsRect(r, r) {
		t.Errorf("containsRect(r, r) = false, want true (non-strict containment includes equality)")
	}
	inner := Rect{X: 1, Y: 1, W: 2, H: 2}
	if !strictlyContains(r, inner) {
		t.Errorf("strictlyContains(r, inner) = false, want true")
	}
}
