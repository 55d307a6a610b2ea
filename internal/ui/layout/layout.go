package layout

// Layout holds calculated dimensions for the dashboard chrome.
type Layout struct {
	Width  int
	Height int

	NavWidth     int
	ContentWidth int

	ContentHeight int // height minus header and status bar

	NavVisible bool
}

const (
	headerHeight    = 1
	statusBarHeight = 1
	minNavWidth     = 16
	maxNavWidth     = 24
)

// Calculate computes the dashboard layout from terminal dimensions.
func Calculate(width, height int, navVisible bool) Layout {
	l := Layout{
		Width:         width,
		Height:        height,
		NavVisible:    navVisible,
		ContentHeight: height - headerHeight - statusBarHeight,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	// Narrow terminals drop the nav rail entirely.
	if width < 60 {
		l.NavVisible = false
		l.ContentWidth = width
		return l
	}

	if l.NavVisible {
		l.NavWidth = clamp(width/5, minNavWidth, maxNavWidth)
		l.ContentWidth = width - l.NavWidth
	} else {
		l.ContentWidth = width
	}

	return l
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
