package session

// Overlay identifies which transient header panel is open. At most one
// is open at a time.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayNotifications
	OverlayProfile
)

func (o Overlay) String() string {
	switch o {
	case OverlayNotifications:
		return "notifications"
	case OverlayProfile:
		return "profile"
	default:
		return "none"
	}
}

// ToggleNotifications opens the notification panel, closing the profile
// panel if it is open. A second toggle closes it again.
func (s *Store) ToggleNotifications() {
	if s.overlay == OverlayNotifications {
		s.overlay = OverlayNone
		return
	}
	s.overlay = OverlayNotifications
}

// ToggleProfile opens the profile panel, closing the notification panel
// if it is open. A second toggle closes it again.
func (s *Store) ToggleProfile() {
	if s.overlay == OverlayProfile {
		s.overlay = OverlayNone
		return
	}
	s.overlay = OverlayProfile
}

// DismissOverlays closes whichever panel is open. Triggered by any
// interaction outside the panels, and by logout.
func (s *Store) DismissOverlays() {
	s.overlay = OverlayNone
}

// Overlay returns the currently open panel.
func (s *Store) Overlay() Overlay {
	return s.overlay
}

// OverlayOpen reports whether any panel is open.
func (s *Store) OverlayOpen() bool {
	return s.overlay != OverlayNone
}
