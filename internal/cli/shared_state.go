package cli

import "github.com/alexanderramin/fitboard/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Block currently carried by a grab gesture. Empty ID means nothing
	// is carried. Grab/drop is the second add modality next to a direct
	// select; both end in the same planner call.
	CarryingID    string
	CarryingLabel string

	// Terminal dimensions
	Width  int
	Height int
}

// Grab starts carrying a block.
func (s *SharedState) Grab(b domain.BlockDefinition) {
	s.CarryingID = b.ID
	s.CarryingLabel = b.Label()
}

// Carrying reports whether a grab gesture is in flight.
func (s *SharedState) Carrying() bool { return s.CarryingID != "" }

// DropCarry ends the carry gesture and returns the carried block ID.
func (s *SharedState) DropCarry() (string, bool) {
	if s.CarryingID == "" {
		return "", false
	}
	id := s.CarryingID
	s.CarryingID = ""
	s.CarryingLabel = ""
	return id, true
}

// ClearCarry abandons the carry gesture without dropping.
func (s *SharedState) ClearCarry() {
	s.CarryingID = ""
	s.CarryingLabel = ""
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 0 {
		return 0
	}
	return h
}
