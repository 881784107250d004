package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EgiFazila/solrisk/internal/model"
)

type modelT struct {
	assessments []model.Assessment
	cursor      int
}

func initialModel(assessments []model.Assessment) modelT { return modelT{assessments: assessments} }

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.assessments)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assessments (%d)\n\n", len(m.assessments))
	for i, a := range m.assessments {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s score=%d [%s]\n", marker, a.File, a.Score, a.Category)
	}
	if len(m.assessments) > 0 {
		a := m.assessments[m.cursor]
		fmt.Fprintf(&b, "\nfingerprint %s\n", a.Fingerprint)
		if len(a.Signals) > 0 {
			fmt.Fprintf(&b, "signals: %s\n", strings.Join(a.Signals, ", "))
		}
	}
	b.WriteString("\nq to quit\n")
	return b.String()
}

// Run launches a minimal TUI list view over the assessments.
func Run(assessments []model.Assessment) error {
	p := tea.NewProgram(initialModel(assessments))
	_, err := p.Run()
	return err
}
