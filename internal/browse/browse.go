// Package browse implements an interactive terminal browser for the
// loaded trigger rules: a cursor-driven rule list with a rendered preview
// of each rule's skill document.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillmatch/skillmatch/internal/report"
	"github.com/skillmatch/skillmatch/internal/skills"
	"github.com/skillmatch/skillmatch/internal/trigger"
)

var (
	colorPurple = lipgloss.Color("#A855F7")
	colorDim    = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	entryStyle = lipgloss.NewStyle()

	metaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// model is the bubbletea model for the rule browser.
type model struct {
	rules *trigger.RuleSet
	lib   *skills.Library

	cursor   int
	preview  viewport.Model
	markdown *report.MarkdownRenderer
	width    int
	height   int
	ready    bool
}

// Run launches the browser and blocks until the user quits.
func Run(rules *trigger.RuleSet, lib *skills.Library) error {
	if rules.Empty() {
		return fmt.Errorf("no trigger rules to browse")
	}
	m := model{rules: rules, lib: lib}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.markdown = report.NewMarkdownRenderer(msg.Width)
		previewHeight := msg.Height - m.listHeight() - 2
		if previewHeight < 3 {
			previewHeight = 3
		}
		if !m.ready {
			m.preview = viewport.New(msg.Width, previewHeight)
			m.ready = true
		} else {
			m.preview.Width = msg.Width
			m.preview.Height = previewHeight
		}
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}
			return m, nil

		case tea.KeyDown:
			if m.cursor < len(m.rules.Rules)-1 {
				m.cursor++
				m.refreshPreview()
			}
			return m, nil

		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}
			return m, nil
		case "j":
			if m.cursor < len(m.rules.Rules)-1 {
				m.cursor++
				m.refreshPreview()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// listHeight is the number of lines the rule list occupies.
func (m model) listHeight() int {
	return len(m.rules.Rules) + 2 // title + entries + hint
}

// refreshPreview loads the selected rule's skill document into the viewport.
func (m *model) refreshPreview() {
	if !m.ready {
		return
	}
	rule := m.rules.Rules[m.cursor]
	doc, ok := m.lib.Lookup(rule.Name)
	if !ok {
		m.preview.SetContent(metaStyle.Render("No skill document for " + rule.Name))
		return
	}
	content := doc.Content
	if m.markdown != nil {
		content = m.markdown.Render(doc.Content)
	}
	m.preview.SetContent(content)
	m.preview.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Trigger rules") + "\n")

	for i, rule := range m.rules.Rules {
		meta := fmt.Sprintf("[%s/%s]", rule.Priority, rule.Enforcement)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+rule.Name) + " " + metaStyle.Render(meta) + "\n")
		} else {
			b.WriteString(entryStyle.Render("  "+rule.Name) + " " + metaStyle.Render(meta) + "\n")
		}
	}

	b.WriteString(hintStyle.Render("j/k or arrows move, pgup/pgdn scroll preview, q quits") + "\n")
	b.WriteString(m.preview.View())
	return b.String()
}
