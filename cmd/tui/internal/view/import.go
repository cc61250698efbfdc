package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/costbook/internal/category"
	"github.com/MrJamesThe3rd/costbook/internal/importer"
)

const importTimeout = 2 * time.Minute

type Replacer interface {
	ReplaceCategories(ctx context.Context, names []string) ([]*category.Category, error)
	ReplaceCostLines(ctx context.Context, rows []category.CostLineRow) ([]*category.CostLine, error)
	Refresh(ctx context.Context) error
}

type importKind int

const (
	importCategories importKind = iota
	importCostLines
)

func (k importKind) String() string {
	if k == importCostLines {
		return "Cost lines (category, cost line, budget)"
	}

	return "Categories (one name per row)"
}

type importState int

const (
	importStateKindSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

// ImportModel replaces categories or cost lines from a CSV picked on disk.
type ImportModel struct {
	CommonModel
	categories Replacer

	state      importState
	filePicker filepicker.Model
	kind       importKind

	status string
	err    error
}

func NewImportModel(categories Replacer) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		categories: categories,
		filePicker: fp,
	}
}

func (m ImportModel) Title() string { return "Import Budget" }

func (m ImportModel) ShortHelp() string { return "Esc: back | Enter: select" }

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateKindSelect {
			return m.updateKindSelect(msg)
		}

	case importDoneMsg:
		m.state = importStateResult
		m.err = msg.err

		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("Error: %v", msg.err)
		case m.kind == importCostLines:
			m.status = fmt.Sprintf("Imported %d cost lines.", msg.count)
		default:
			m.status = fmt.Sprintf("Imported %d categories. Existing cost lines were removed.", msg.count)
		}

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if ok, path := m.filePicker.DidSelectFile(msg); ok {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing %s...", path)

		return m, m.importCmd(m.kind, path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick, importStateResult:
		m.state = importStateKindSelect
		m.err = nil
		m.status = ""

		return m, nil
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateKindSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.kind = importCategories
	case tea.KeyDown:
		m.kind = importCostLines
	case tea.KeyEnter:
		m.state = importStateFilePick
		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateKindSelect:
		s := "Replace with:\n\n"
		for _, k := range []importKind{importCategories, importCostLines} {
			cursor := " "
			if k == m.kind {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, k)
		}

		return lipgloss.NewStyle().Padding(2).Render(s)
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select file (%s):\n\n%s", m.kind, m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		style := successStyle
		if m.err != nil {
			style = errorStyle
		}

		return lipgloss.NewStyle().Padding(2).Render(style.Render(m.status) + "\n\n(Esc to go back)")
	}

	return ""
}

type importDoneMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd(kind importKind, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		if kind == importCategories {
			names, err := importer.Categories(f)
			if err != nil {
				return importDoneMsg{err: err}
			}

			cats, err := m.categories.ReplaceCategories(ctx, names)

			return importDoneMsg{count: len(cats), err: err}
		}

		rows, err := importer.CostLines(f)
		if err != nil {
			return importDoneMsg{err: err}
		}

		lines, err := m.categories.ReplaceCostLines(ctx, rows)
		if err != nil {
			return importDoneMsg{err: err}
		}

		if err := m.categories.Refresh(ctx); err != nil {
			return importDoneMsg{err: fmt.Errorf("refreshing balances: %w", err)}
		}

		return importDoneMsg{count: len(lines)}
	}
}
