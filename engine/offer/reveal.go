package offer

// RevealState is the one-way discount disclosure machine: hidden until
// revealed by a direct interaction or the claim broadcast, then revealed
// for the rest of the session. The breakdown overlay is an independent
// toggle that never affects reveal state.
type RevealState struct {
	revealed    bool
	overlayOpen bool
}

// Reveal transitions hidden → revealed. Idempotent: re-triggering while
// already revealed reports false so entry animations never re-fire.
func (s *RevealState) Reveal() bool {
	if s.revealed {
		return false
	}
	s.revealed = true
	return true
}

// Revealed reports whether the discount is disclosed.
func (s *RevealState) Revealed() bool {
	return s.revealed
}

// OpenOverlay shows the full feature-breakdown overlay.
func (s *RevealState) OpenOverlay() {
	s.overlayOpen = true
}

// CloseOverlay hides the overlay.
func (s *RevealState) CloseOverlay() {
	s.overlayOpen = false
}

// OverlayOpen reports whether the overlay is showing.
func (s *RevealState) OverlayOpen() bool {
	return s.overlayOpen
}
