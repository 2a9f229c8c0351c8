package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/serkanatas/kopya/internal/router"
	"github.com/serkanatas/kopya/internal/screen"
	"github.com/serkanatas/kopya/internal/screens/review"
	"github.com/serkanatas/kopya/internal/screens/runs"
	"github.com/serkanatas/kopya/internal/store"
	"github.com/serkanatas/kopya/internal/ui/layout"
)

// AppModel is the root Bubble Tea model for the review UI.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(initial screen.Screen) AppModel {
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.router.Depth() == 1 {
				return m, tea.Quit
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run opens the run picker, or jumps straight into one run when runID
// is set.
func Run(st *store.Store, runID string) error {
	var initial screen.Screen
	if runID != "" {
		initial = review.New(st.RunRepo(), runID)
	} else {
		initial = runs.New(st.RunRepo())
	}

	p := tea.NewProgram(newAppModel(initial))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running review UI:", err)
		return err
	}
	return nil
}
