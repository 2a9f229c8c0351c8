package review

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/serkanatas/kopya/internal/router"
	"github.com/serkanatas/kopya/internal/screen"
	"github.com/serkanatas/kopya/internal/store"
	"github.com/serkanatas/kopya/internal/ui/components"
	"github.com/serkanatas/kopya/internal/ui/layout"
	"github.com/serkanatas/kopya/internal/ui/theme"
)

type runLoadedMsg struct {
	Run   *store.RunRecord
	Pairs []store.FlaggedPairRecord
	Err   error
}

// ReviewScreen shows the flagged pairs of one run, with expandable
// per-pair detail and an ID filter.
type ReviewScreen struct {
	runRepo store.RunRepo
	runID   string

	run      *store.RunRecord
	pairs    []store.FlaggedPairRecord
	selected int
	expanded map[int]bool
	filter   components.FilterInput
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review screen for the given run.
func New(runRepo store.RunRepo, runID string) *ReviewScreen {
	return &ReviewScreen{
		runRepo:  runRepo,
		runID:    runID,
		expanded: make(map[int]bool),
		filter:   components.NewFilterInput("examinee ID"),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return func() tea.Msg {
		run, pairs, err := s.runRepo.GetRun(context.Background(), s.runID)
		return runLoadedMsg{Run: run, Pairs: pairs, Err: err}
	}
}

func (s *ReviewScreen) Title() string {
	return "Flagged Pairs"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if s.filter.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.run = msg.Run
			s.pairs = msg.Pairs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.filter.Active() {
			switch msg.String() {
			case "enter":
				s.filter.Deactivate()
				s.selected = 0
				return s, nil
			case "esc":
				s.filter.Clear()
				s.selected = 0
				return s, nil
			}
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			return s, cmd
		}

		visible := s.visiblePairs()
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "/":
			return s, s.filter.Activate()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(visible)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

// visiblePairs applies the ID filter.
func (s *ReviewScreen) visiblePairs() []store.FlaggedPairRecord {
	if s.filter.Value() == "" {
		return s.pairs
	}
	var out []store.FlaggedPairRecord
	for _, p := range s.pairs {
		if s.filter.Matches(p.ExamineeA) || s.filter.Matches(p.ExamineeB) {
			out = append(out, p)
		}
	}
	return out
}

func (s *ReviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Flag).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading run...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.run != nil {
		summary := fmt.Sprintf("  %d examinees, %d pairs compared, %d flagged",
			s.run.TotalExaminees, s.run.TotalPairs, s.run.TotalFlagged)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(summary))
		b.WriteString("\n")
	}
	if s.filter.Active() || s.filter.Value() != "" {
		b.WriteString("  " + s.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := s.visiblePairs()
	if len(visible) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No flagged pairs."))
		return b.String()
	}

	for i, p := range visible {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s#%d  %s × %s  suspicion %.2f  %s",
			prefix, p.Rank+1, p.ExamineeA, p.ExamineeB, p.Suspicion, p.Reason)

		style := theme.FlaggedPair
		if i != s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range pairDetail(p) {
				b.WriteString("      " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(d))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func pairDetail(p store.FlaggedPairRecord) []string {
	return []string{
		fmt.Sprintf("agreements %d, identical wrong %d, differences %d",
			p.Agreements, p.WrongAgreements, p.Differences),
		fmt.Sprintf("K-index %.4g / %.4g  (A copies B / B copies A)", p.KIndexAB, p.KIndexBA),
		fmt.Sprintf("GBT z %.2f, Harpp-Hogan %.2f, rarity %.2f", p.GBTZ, p.HarppHogan, p.RarityScore),
	}
}
