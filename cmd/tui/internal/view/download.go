package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/costbook/internal/report"
)

const downloadTimeout = 2 * time.Minute

type BillDocuments interface {
	BillDocuments(ctx context.Context, from, to time.Time) ([]byte, []report.Item, error)
}

type downloadState int

const (
	downloadStateTimeframe downloadState = iota
	downloadStatePath
	downloadStateWorking
	downloadStateResult
)

// DownloadModel zips the documents of bills dated in a range for the accountant.
type DownloadModel struct {
	CommonModel
	reports BillDocuments

	state     downloadState
	picker    TimeframePicker
	startDate time.Time
	endDate   time.Time

	form    *huh.Form
	spinner spinner.Model

	path    string
	summary string
	err     error
}

func NewDownloadModel(reports BillDocuments) DownloadModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return DownloadModel{
		reports: reports,
		picker:  NewTimeframePicker(),
		spinner: s,
	}
}

func (m DownloadModel) Title() string { return "Download Bill Documents" }

func (m DownloadModel) ShortHelp() string {
	switch m.state {
	case downloadStateResult:
		return "Esc: back to menu"
	case downloadStateWorking:
		return "Building archive..."
	}

	return "Esc: back | Enter: confirm"
}

func (m DownloadModel) Init() tea.Cmd {
	return nil
}

func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tf, ok := msg.(TimeframeSelectedMsg); ok {
		m.startDate, m.endDate = tf.Start, tf.End
		m.form = m.pathForm()
		m.state = downloadStatePath

		return m, m.form.Init()
	}

	switch m.state {
	case downloadStateTimeframe:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc && m.picker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd

	case downloadStatePath:
		return m.updatePath(msg)

	case downloadStateWorking:
		if res, ok := msg.(downloadResultMsg); ok {
			m.state = downloadStateResult
			m.err = res.err
			m.path = res.path
			m.summary = res.summary

			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case downloadStateResult:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m DownloadModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.state = downloadStateTimeframe
		m.picker.Reset()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = downloadStateWorking
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.downloadCmd(m.startDate, m.endDate, m.form.GetString("dir")))
}

func (m DownloadModel) pathForm() *huh.Form {
	dir := "./exports"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("dir").
				Title("Output directory").
				Description("Created if it doesn't exist").
				Value(&dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m DownloadModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case downloadStateTimeframe:
		return style.Render(m.picker.View())
	case downloadStatePath:
		return style.Render(m.form.View())
	case downloadStateWorking:
		return style.Render(fmt.Sprintf("%s Collecting bill documents...", m.spinner.View()))
	case downloadStateResult:
		if m.err != nil {
			return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}

		return style.Render(lipgloss.JoinVertical(lipgloss.Left,
			successStyle.Bold(true).Render("Saved "+m.path),
			"",
			m.summary,
		))
	}

	return ""
}

type downloadResultMsg struct {
	path    string
	summary string
	err     error
}

func (m DownloadModel) downloadCmd(from, to time.Time, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
		defer cancel()

		data, items, err := m.reports.BillDocuments(ctx, from, to)
		if err != nil {
			return downloadResultMsg{err: err}
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return downloadResultMsg{err: err}
		}

		name := fmt.Sprintf("bills_%s_%s.zip", from.Format("20060102"), to.Format("20060102"))
		path := filepath.Join(dir, name)

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return downloadResultMsg{err: err}
		}

		return downloadResultMsg{path: path, summary: report.Summary(items)}
	}
}
