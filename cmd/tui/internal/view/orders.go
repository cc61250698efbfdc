package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/purchaseorder"
)

const mailTimeout = 30 * time.Second

type PurchaseOrders interface {
	List(ctx context.Context, filter purchaseorder.ListFilter) ([]*purchaseorder.PurchaseOrder, error)
	PDF(ctx context.Context, id uuid.UUID) ([]byte, *purchaseorder.PurchaseOrder, *contact.Counterparty, error)
	Email(ctx context.Context, id uuid.UUID, to, cc []string) error
}

type orderItem struct {
	order *purchaseorder.PurchaseOrder
}

func (i orderItem) FilterValue() string { return i.order.Reference() }

type orderDelegate struct{}

func (d orderDelegate) Height() int                             { return 2 }
func (d orderDelegate) Spacing() int                            { return 0 }
func (d orderDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d orderDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(orderItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	o := it.order
	fmt.Fprintf(w, "%s%s  %s  %s\n", cursor, accentStyle.Render(o.Reference()), o.CreatedAt.Format(time.DateOnly), FormatAmount(o.Total()))
	fmt.Fprintf(w, "    %d lines, %d notes\n", len(o.Lines), len(o.Notes))
}

type orderState int

const (
	orderStateList orderState = iota
	orderStateSave
	orderStateEmail
	orderStateWorking
)

// OrdersModel renders purchase orders to disk or emails them to the supplier.
type OrdersModel struct {
	CommonModel
	orders PurchaseOrders

	state orderState
	list  list.Model
	form  *huh.Form

	dir string

	status string
	err    error
}

func NewOrdersModel(orders PurchaseOrders) OrdersModel {
	l := list.New([]list.Item{}, orderDelegate{}, 80, 20)
	l.Title = "Purchase Orders"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return OrdersModel{
		orders: orders,
		list:   l,
		dir:    ".",
	}
}

func (m OrdersModel) Title() string { return "Purchase Orders" }

func (m OrdersModel) ShortHelp() string {
	if m.state == orderStateList {
		return "Esc: back | Enter: save PDF | m: email | /: filter"
	}

	return "Esc: cancel"
}

func (m OrdersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m OrdersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadOrdersMsg:
		m.err = msg.err
		items := make([]list.Item, len(msg.orders))
		for i, o := range msg.orders {
			items[i] = orderItem{order: o}
		}

		return m, m.list.SetItems(items)

	case orderDoneMsg:
		m.state = orderStateList
		m.form = nil
		m.status = msg.status

		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil
	}

	switch m.state {
	case orderStateList:
		return m.updateList(msg)
	case orderStateSave, orderStateEmail:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m OrdersModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch key.String() {
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}

			return m, Back
		case "enter":
			if _, ok := m.list.SelectedItem().(orderItem); ok {
				m.state = orderStateSave
				m.form = m.saveForm()

				return m, m.form.Init()
			}
		case "m":
			if _, ok := m.list.SelectedItem().(orderItem); ok {
				m.state = orderStateEmail
				m.form = m.emailForm()

				return m, m.form.Init()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m OrdersModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.state = orderStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	item, _ := m.list.SelectedItem().(orderItem)
	id := item.order.ID

	if m.state == orderStateSave {
		m.state = orderStateWorking
		m.dir = m.form.GetString("dir")

		return m, m.saveCmd(id, m.dir)
	}

	m.state = orderStateWorking

	return m, m.emailCmd(id, splitAddresses(m.form.GetString("to")), splitAddresses(m.form.GetString("cc")))
}

func (m OrdersModel) saveForm() *huh.Form {
	dir := m.dir

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("dir").
				Title("Save to directory").
				Value(&dir),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m OrdersModel) emailForm() *huh.Form {
	var to, cc string

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("to").
				Title("To").
				Description("Blank sends to the supplier's email").
				Value(&to),
			huh.NewInput().
				Key("cc").
				Title("CC").
				Placeholder("a@example.com, b@example.com").
				Value(&cc),
		),
	).WithWidth(45).WithShowHelp(false)
}

func splitAddresses(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func (m OrdersModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	content := m.list.View()

	switch m.state {
	case orderStateSave, orderStateEmail:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Render(m.form.View()))
	case orderStateWorking:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panelStyle.Render("Working..."))
	}

	if m.status != "" {
		content = m.status + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadOrdersMsg struct {
	orders []*purchaseorder.PurchaseOrder
	err    error
}

func (m OrdersModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		orders, err := m.orders.List(ctx, purchaseorder.ListFilter{})

		return loadOrdersMsg{orders: orders, err: err}
	}
}

type orderDoneMsg struct {
	status string
	err    error
}

func (m OrdersModel) saveCmd(id uuid.UUID, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		data, order, _, err := m.orders.PDF(ctx, id)
		if err != nil {
			return orderDoneMsg{err: err}
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return orderDoneMsg{err: err}
		}

		path := filepath.Join(dir, order.Reference()+".pdf")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return orderDoneMsg{err: err}
		}

		return orderDoneMsg{status: successStyle.Render("Saved " + path)}
	}
}

func (m OrdersModel) emailCmd(id uuid.UUID, to, cc []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := m.orders.Email(ctx, id, to, cc); err != nil {
			return orderDoneMsg{err: err}
		}

		return orderDoneMsg{status: successStyle.Render("Email sent.")}
	}
}
