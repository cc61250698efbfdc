package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
	"github.com/MrJamesThe3rd/costbook/internal/category"
	"github.com/MrJamesThe3rd/costbook/internal/money"
)

type Summarizer interface {
	Summary(ctx context.Context) ([]allocation.SummaryLine, error)
}

type CostLines interface {
	GetLine(ctx context.Context, id uuid.UUID) (*category.CostLine, error)
	UpdateLine(ctx context.Context, l *category.CostLine) error
}

type committedState int

const (
	committedStateBrowse committedState = iota
	committedStateEdit
)

// CommittedModel shows budget, committed and uncommitted per cost line and
// lets the user correct a line's budget in place.
type CommittedModel struct {
	CommonModel
	summary   Summarizer
	costLines CostLines

	state committedState
	table table.Model
	lines []allocation.SummaryLine
	form  *huh.Form

	loading bool
	err     error
	status  string
}

func NewCommittedModel(summary Summarizer, costLines CostLines) CommittedModel {
	columns := []table.Column{
		{Title: "Category", Width: 24},
		{Title: "Cost line", Width: 30},
		{Title: "Budget", Width: 14},
		{Title: "Committed", Width: 14},
		{Title: "Uncommitted", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return CommittedModel{
		summary:   summary,
		costLines: costLines,
		table:     t,
		loading:   true,
	}
}

func (m CommittedModel) Title() string { return "Committed Costs" }

func (m CommittedModel) ShortHelp() string {
	if m.state == committedStateEdit {
		return "Enter: save | Esc: cancel"
	}

	return "Esc: back | e: edit budget | r: refresh"
}

func (m CommittedModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CommittedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCommittedMsg:
		m.loading = false
		m.err = msg.err
		m.lines = msg.lines
		m.refreshTable()

		return m, nil

	case budgetSavedMsg:
		m.status = "Budget saved."
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}

		m.state = committedStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 5))
		return m, nil
	}

	if m.state == committedStateEdit {
		return m.updateEdit(msg)
	}

	return m.updateBrowse(msg)
}

func (m CommittedModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.enterEdit()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CommittedModel) current() (allocation.SummaryLine, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.lines) {
		return allocation.SummaryLine{}, false
	}

	return m.lines[idx], true
}

func (m CommittedModel) enterEdit() (tea.Model, tea.Cmd) {
	line, ok := m.current()
	if !ok {
		return m, nil
	}

	value := line.Budget.StringFixed(2)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("budget").
				Title("Budget").
				Value(&value).
				Validate(func(s string) error {
					_, err := money.Parse(s)
					return err
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = committedStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m CommittedModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.state = committedStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	line, _ := m.current()
	budget, _ := money.Parse(m.form.GetString("budget"))

	return m, m.saveCmd(line.CostLineID, budget)
}

func (m CommittedModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading committed costs...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	budget, committed, uncommitted := totals(m.lines)
	footer := fmt.Sprintf("Total budget %s | committed %s | uncommitted %s",
		activeStyle(FormatAmount(budget)),
		activeStyle(FormatAmount(committed)),
		activeStyle(FormatAmount(uncommitted)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
		footer,
	)

	if m.state == committedStateEdit && m.form != nil {
		line, _ := m.current()
		panel := panelStyle.Render(fmt.Sprintf("Edit %s / %s\n\n%s", line.Category, line.Name, m.form.View()))
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CommittedModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.lines))
	for _, l := range m.lines {
		rows = append(rows, table.Row{
			l.Category,
			l.Name,
			FormatAmount(l.Budget),
			FormatAmount(l.Committed),
			FormatAmount(l.Uncommitted),
		})
	}

	m.table.SetRows(rows)
}

func totals(lines []allocation.SummaryLine) (budget, committed, uncommitted decimal.Decimal) {
	for _, l := range lines {
		budget = budget.Add(l.Budget)
		committed = committed.Add(l.Committed)
		uncommitted = uncommitted.Add(l.Uncommitted)
	}

	return budget, committed, uncommitted
}

type loadCommittedMsg struct {
	lines []allocation.SummaryLine
	err   error
}

func (m CommittedModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		lines, err := m.summary.Summary(ctx)

		return loadCommittedMsg{lines: lines, err: err}
	}
}

type budgetSavedMsg struct {
	err error
}

func (m CommittedModel) saveCmd(id uuid.UUID, budget decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		line, err := m.costLines.GetLine(ctx, id)
		if err != nil {
			return budgetSavedMsg{err: err}
		}

		line.Budget = budget

		return budgetSavedMsg{err: m.costLines.UpdateLine(ctx, line)}
	}
}
