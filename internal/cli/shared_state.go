package cli

import "github.com/folhita/catalogo/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// The catalog form being edited during this session.
	Form *domain.CatalogForm

	// Path of the most recently saved proposal, empty before the first
	// successful generation.
	LastSavedPath string

	// LastSubmission holds the submission behind LastSavedPath, printed
	// as a summary after the TUI exits.
	LastSubmission *domain.Submission

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines: title + separator) and the
// status bar (2 lines: separator + hints) plus the notice line.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
