package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mfranke/bridgecross/pkg/bridge"
	"github.com/mfranke/bridgecross/pkg/export"
	"github.com/mfranke/bridgecross/pkg/report"
)

var (
	walkStepStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	walkDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	walkBankStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

// walkModel is the bubbletea model for stepping through a crossing plan.
// Position 0 shows the initial configuration; position k the state after
// the k-th crossing.
type walkModel struct {
	scn    *bridge.Scenario
	steps  []report.Step
	solver string
	total  int
	limit  int
	pos    int
}

// walkthrough runs the interactive plan walkthrough for a solved run.
func walkthrough(scn *bridge.Scenario, limit int, run export.Run) error {
	m := walkModel{
		scn:    scn,
		steps:  run.Steps,
		solver: displayNames[run.Solver],
		total:  run.Result.Time,
		limit:  limit,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m walkModel) Init() tea.Cmd {
	return nil
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "enter", " ":
			if m.pos < len(m.steps) {
				m.pos++
			}
		case "left", "h":
			if m.pos > 0 {
				m.pos--
			}
		}
	}
	return m, nil
}

func (m walkModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("Crossing plan — %s", m.solver)))
	b.WriteString("\n")
	b.WriteString(walkDimStyle.Render("←/→ step  q quit"))
	b.WriteString("\n\n")

	var startBank, endBank []string
	var elapsed int
	umbrellaAtStart := true

	if m.pos == 0 {
		startBank = m.scn.People()
		b.WriteString(walkStepStyle.Render("Nightfall."))
		b.WriteString(" " + walkBankStyle.Render("Everyone waits on the start bank."))
	} else {
		s := m.steps[m.pos-1]
		startBank, endBank = s.StartBank, s.EndBank
		elapsed = s.Elapsed
		umbrellaAtStart = !s.ToEnd
		b.WriteString(walkStepStyle.Render(fmt.Sprintf("Step %d: ", m.pos)))
		b.WriteString(walkBankStyle.Render(fmt.Sprintf("%s cross %s (%d min)",
			strings.Join(s.Movers, ", "), s.Direction(), s.Trip)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.bankTable(startBank, endBank, umbrellaAtStart))
	b.WriteString("\n\n")
	b.WriteString(walkDimStyle.Render(fmt.Sprintf("elapsed %d/%d min  ·  total plan %d min  ·  [%d/%d]",
		elapsed, m.limit, m.total, m.pos, len(m.steps))))
	b.WriteString("\n")

	return b.String()
}

// bankTable renders both banks side by side, marking the umbrella's side.
func (m walkModel) bankTable(startBank, endBank []string, umbrellaAtStart bool) string {
	startHeader, endHeader := "Start bank", "End bank"
	if umbrellaAtStart {
		startHeader += " [u]"
	} else {
		endHeader += " [u]"
	}

	rows := [][]string{}
	for i := 0; i < max(len(startBank), len(endBank)); i++ {
		var left, right string
		if i < len(startBank) {
			left = startBank[i]
		}
		if i < len(endBank) {
			right = endBank[i]
		}
		rows = append(rows, []string{left, right})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(startHeader, endHeader).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return walkBankStyle.Width(16)
		})

	return t.Render()
}
