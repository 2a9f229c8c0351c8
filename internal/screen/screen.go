package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/serkanatas/kopya/internal/ui/layout"
)

// Screen is one view in the review UI.
type Screen interface {
	// Init returns the command to run when the screen is first shown.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus a
	// follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body. Header and footer are drawn by the
	// app frame.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
