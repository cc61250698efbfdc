package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/bill"
)

const pushTimeout = time.Minute

type Bills interface {
	List(ctx context.Context, filter bill.ListFilter) ([]*bill.Bill, error)
	SetStatus(ctx context.Context, id uuid.UUID, status bill.Status) error
}

type Pusher interface {
	PushBill(ctx context.Context, id uuid.UUID) (string, error)
}

var billStatusFilters = []*bill.Status{
	nil,
	new(bill.StatusDraft),
	new(bill.StatusAllocated),
	new(bill.StatusApproved),
	new(bill.StatusSent),
}

// BillsModel lists bills by status and moves them through approval into Xero.
type BillsModel struct {
	CommonModel
	bills  Bills
	pusher Pusher

	table     table.Model
	spinner   spinner.Model
	items     []*bill.Bill
	filterIdx int

	busy    bool
	loading bool
	err     error
	status  string
}

func NewBillsModel(bills Bills, pusher Pusher) BillsModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Invoice", Width: 16},
			{Title: "Status", Width: 10},
			{Title: "Net", Width: 14},
			{Title: "GST", Width: 12},
			{Title: "Currency", Width: 8},
			{Title: "Xero", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return BillsModel{
		bills:   bills,
		pusher:  pusher,
		table:   t,
		spinner: s,
		loading: true,
	}
}

func (m BillsModel) Title() string { return "Bills" }

func (m BillsModel) ShortHelp() string {
	return "Esc: back | s: status filter | a: approve | p: push to Xero | r: refresh"
}

func (m BillsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BillsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBillsMsg:
		m.loading = false
		m.err = msg.err
		m.items = msg.bills
		m.refreshTable()

		return m, nil

	case billActionMsg:
		m.busy = false
		m.status = msg.status

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadCmd()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.filterIdx = (m.filterIdx + 1) % len(billStatusFilters)
			return m, m.loadCmd()
		case "a":
			if b := m.current(); b != nil {
				m.busy = true
				return m, tea.Batch(m.spinner.Tick, m.approveCmd(b))
			}
		case "p":
			if b := m.current(); b != nil {
				m.busy = true
				m.status = "Sending to Xero..."

				return m, tea.Batch(m.spinner.Tick, m.pushCmd(b))
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BillsModel) current() *bill.Bill {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	return m.items[idx]
}

func (m BillsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading bills...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	label := "All"
	if f := billStatusFilters[m.filterIdx]; f != nil {
		label = f.String()
	}

	header := fmt.Sprintf("Filter: [s] Status: %s | %d bills", activeStyle(label), len(m.items))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	status := m.status
	if m.busy {
		status = m.spinner.View() + " " + status
	}

	if status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *BillsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, b := range m.items {
		xero := ""
		if b.XeroInvoiceID != "" {
			xero = b.XeroInvoiceID[:min(8, len(b.XeroInvoiceID))]
		}

		rows = append(rows, table.Row{
			FormatDate(b.Date),
			b.InvoiceNumber,
			b.Status.String(),
			FormatAmount(b.Net),
			FormatAmount(b.GST),
			b.Currency,
			xero,
		})
	}

	m.table.SetRows(rows)
}

type loadBillsMsg struct {
	bills []*bill.Bill
	err   error
}

func (m BillsModel) loadCmd() tea.Cmd {
	filter := bill.ListFilter{Status: billStatusFilters[m.filterIdx]}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		bills, err := m.bills.List(ctx, filter)

		return loadBillsMsg{bills: bills, err: err}
	}
}

type billActionMsg struct {
	status string
	err    error
}

func (m BillsModel) approveCmd(b *bill.Bill) tea.Cmd {
	id, ref := b.ID, b.InvoiceNumber

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.bills.SetStatus(ctx, id, bill.StatusApproved); err != nil {
			return billActionMsg{err: err}
		}

		return billActionMsg{status: fmt.Sprintf("Approved %s.", ref)}
	}
}

func (m BillsModel) pushCmd(b *bill.Bill) tea.Cmd {
	id, ref := b.ID, b.InvoiceNumber

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		invoiceID, err := m.pusher.PushBill(ctx, id)
		if err != nil {
			return billActionMsg{err: err}
		}

		return billActionMsg{status: fmt.Sprintf("Sent %s to Xero as %s.", ref, invoiceID)}
	}
}
