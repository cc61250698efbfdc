package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/costbook/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/costbook/internal/app"
	"github.com/MrJamesThe3rd/costbook/internal/config"
	"github.com/MrJamesThe3rd/costbook/internal/database"
)

type screen int

const (
	screenMenu screen = iota
	screenCommitted
	screenImport
	screenBills
	screenOrders
	screenDownload
)

type model struct {
	app *app.App

	current screen
	active  tea.Model
	size    tea.WindowSizeMsg
}

var menu = []struct {
	key    string
	label  string
	screen screen
}{
	{"1", "Committed Costs", screenCommitted},
	{"2", "Import Categories / Cost Lines", screenImport},
	{"3", "Bills", screenBills},
	{"4", "Purchase Orders", screenOrders},
	{"5", "Download Bill Documents", screenDownload},
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	return model{
		app:     app.New(context.Background(), cfg, db),
		current: screenMenu,
	}
}

func (m model) open(s screen) tea.Model {
	a := m.app

	switch s {
	case screenCommitted:
		return view.NewCommittedModel(a.Allocations, a.Categories)
	case screenImport:
		return view.NewImportModel(a.Categories)
	case screenBills:
		return view.NewBillsModel(a.Bills, a.Sync)
	case screenOrders:
		return view.NewOrdersModel(a.PurchaseOrders)
	case screenDownload:
		return view.NewDownloadModel(a.Reports)
	}

	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == screenMenu {
			if msg.String() == "q" {
				return m, tea.Quit
			}

			for _, item := range menu {
				if msg.String() != item.key {
					continue
				}

				m.current = item.screen
				m.active = m.open(item.screen)

				size := m.size
				cmd := m.active.Init()

				if size.Width > 0 {
					return m, tea.Batch(cmd, func() tea.Msg { return size })
				}

				return m, cmd
			}

			return m, nil
		}
	case view.BackMsg:
		m.current = screenMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.current != screenMenu && m.active != nil {
		return m.active.View()
	}

	s := "Costbook\n\n"
	for _, item := range menu {
		s += item.key + ". " + item.label + "\n"
	}

	return lipgloss.NewStyle().Padding(2).Render(s + "\nq. Quit")
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
