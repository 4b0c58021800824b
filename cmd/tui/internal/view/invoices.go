package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
)

// InvoicesModel browses the saved invoice collection. Enter loads the
// selected invoice into the builder session.
type InvoicesModel struct {
	CommonModel
	invoiceSvc *invoice.Service

	table    table.Model
	invoices []*invoice.Invoice

	loading bool
	err     error
	status  string
}

func NewInvoicesModel(invoiceSvc *invoice.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "Number", Width: 22},
		{Title: "Date", Width: 12},
		{Title: "Items", Width: 6},
		{Title: "Grand Total", Width: 12},
		{Title: "Status", Width: 8},
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

	return InvoicesModel{
		invoiceSvc: invoiceSvc,
		table:      t,
		loading:    true,
	}
}

func (m InvoicesModel) Title() string { return "Saved Invoices" }
func (m InvoicesModel) ShortHelp() string {
	return "Esc: back | Enter: load into builder | x: delete | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadInvoicesCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.invoices = msg.invoices
		m.refreshTable()

		return m, nil

	case invoiceLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Load failed: %v", msg.err)
			return m, nil
		}

		return m, func() tea.Msg { return LoadedMsg{} }

	case invoiceDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}

		m.status = "Invoice deleted"

		return m, m.loadInvoicesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadInvoicesCmd()
		case "enter":
			if id, ok := m.selectedID(); ok {
				return m, m.loadCmd(id)
			}
		case "x":
			if id, ok := m.selectedID(); ok {
				return m, m.deleteCmd(id)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) selectedID() (uuid.UUID, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return uuid.Nil, false
	}

	return m.invoices[idx].ID, true
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invoices))

	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.InvoiceNumber,
			FormatDate(inv.Date),
			strconv.Itoa(len(inv.Items)),
			FormatMoney(inv.GrandTotal),
			string(inv.Status),
		})
	}

	m.table.SetRows(rows)
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// Messages

type loadInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m InvoicesModel) loadInvoicesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.invoiceSvc.Saved(ctx)

		return loadInvoicesMsg{invoices: invoices, err: err}
	}
}

type invoiceLoadedMsg struct {
	err error
}

func (m InvoicesModel) loadCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.invoiceSvc.Load(ctx, id)

		return invoiceLoadedMsg{err: err}
	}
}

type invoiceDeletedMsg struct {
	err error
}

func (m InvoicesModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return invoiceDeletedMsg{err: m.invoiceSvc.Delete(ctx, id)}
	}
}
