package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/serkanatas/kopya/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as an inline filter box for
// narrowing a list by examinee ID.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates an unfocused filter input.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	return FilterInput{Model: ti}
}

// Activate focuses the input for typing.
func (f *FilterInput) Activate() tea.Cmd {
	f.active = true
	return f.Model.Focus()
}

// Deactivate blurs the input, keeping its value.
func (f *FilterInput) Deactivate() {
	f.active = false
	f.Model.Blur()
}

// Clear resets the value and blurs.
func (f *FilterInput) Clear() {
	f.Model.SetValue("")
	f.Deactivate()
}

// Active reports whether the input has focus.
func (f FilterInput) Active() bool {
	return f.active
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Matches reports whether s contains the filter text, case-insensitive.
// An empty filter matches everything.
func (f FilterInput) Matches(s string) bool {
	v := strings.TrimSpace(f.Model.Value())
	if v == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(v))
}

// Update forwards messages to the underlying input while active.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the filter line.
func (f FilterInput) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("filter: ")
	return label + f.Model.View()
}
