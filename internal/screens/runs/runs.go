package runs

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/serkanatas/kopya/internal/router"
	"github.com/serkanatas/kopya/internal/screen"
	"github.com/serkanatas/kopya/internal/screens/review"
	"github.com/serkanatas/kopya/internal/store"
	"github.com/serkanatas/kopya/internal/ui/components"
	"github.com/serkanatas/kopya/internal/ui/layout"
	"github.com/serkanatas/kopya/internal/ui/theme"
)

type runsLoadedMsg struct {
	Runs []store.RunRecord
	Err  error
}

// RunsScreen lists saved analysis runs; selecting one opens its
// flagged pairs.
type RunsScreen struct {
	runRepo store.RunRepo
	runs    []store.RunRecord
	menu    components.Menu
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*RunsScreen)(nil)
var _ screen.KeyHintProvider = (*RunsScreen)(nil)

// New creates the run picker.
func New(runRepo store.RunRepo) *RunsScreen {
	return &RunsScreen{runRepo: runRepo}
}

func (s *RunsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		runs, err := s.runRepo.ListRuns(context.Background(), 50)
		return runsLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *RunsScreen) Title() string {
	return "Analysis Runs"
}

func (s *RunsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *RunsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
			s.menu = components.NewMenu(s.menuItems())
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RunsScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, len(s.runs))
	for i, r := range s.runs {
		run := r
		items[i] = components.MenuItem{
			Label: runLabel(run),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: review.New(s.runRepo, run.RunID)}
				}
			},
		}
	}
	return items
}

func runLabel(r store.RunRecord) string {
	return fmt.Sprintf("%s  %s  key=%s  %d examinees  %d flagged",
		r.CreatedAt.Format("Jan 02 15:04"), shortID(r.RunID), r.KeyName,
		r.TotalExaminees, r.TotalFlagged)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (s *RunsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Flag).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading runs...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No saved runs. Run 'kopya analyze --save' first.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.menu.View())
	return b.String()
}
