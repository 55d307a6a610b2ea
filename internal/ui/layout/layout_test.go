package layout

import "testing"

func TestCalculate_WideScreen(t *testing.T) {
	l := Calculate(160, 40, true)

	if !l.NavVisible {
		t.Error("nav rail should be visible at 160 cols")
	}
	if l.NavWidth < minNavWidth {
		t.Errorf("nav too narrow: %d < %d", l.NavWidth, minNavWidth)
	}
	if l.NavWidth > maxNavWidth {
		t.Errorf("nav too wide: %d > %d", l.NavWidth, maxNavWidth)
	}
	if l.NavWidth+l.ContentWidth != 160 {
		t.Errorf("nav+content should sum to 160, got %d", l.NavWidth+l.ContentWidth)
	}
	if l.ContentHeight != 40-headerHeight-statusBarHeight {
		t.Errorf("unexpected content height: %d", l.ContentHeight)
	}
}

func TestCalculate_NarrowScreenDropsNav(t *testing.T) {
	l := Calculate(50, 20, true)

	if l.NavVisible {
		t.Error("nav rail should be hidden at 50 cols")
	}
	if l.ContentWidth != 50 {
		t.Errorf("content should take full width, got %d", l.ContentWidth)
	}
}

func TestCalculate_NavHidden(t *testing.T) {
	l := Calculate(160, 40, false)

	if l.NavWidth != 0 {
		t.Error("nav width should be 0 when hidden")
	}
	if l.ContentWidth != 160 {
		t.Errorf("content should take full width, got %d", l.ContentWidth)
	}
}

func TestCalculate_TinyHeightClamped(t *testing.T) {
	l := Calculate(100, 1, true)

	if l.ContentHeight < 1 {
		t.Errorf("content height must stay positive, got %d", l.ContentHeight)
	}
}
