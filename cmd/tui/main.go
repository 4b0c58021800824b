package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Kunal1519/blind-invoice-creator-pro/cmd/tui/internal/view"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/config"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/database"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	invoiceStore "github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice/store"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	masterdataStore "github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata/store"
)

type model struct {
	invoiceService    *invoice.Service
	masterdataService *masterdata.Service

	currentView View

	builderView  view.BuilderModel
	invoicesView view.InvoicesModel
}

type View int

const (
	ViewMenu     View = 0
	ViewBuilder  View = 1
	ViewInvoices View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	invoiceSvc := invoice.NewService(invoiceStore.New(db))
	masterdataSvc := masterdata.NewService(masterdataStore.New(db))

	return model{
		invoiceService:    invoiceSvc,
		masterdataService: masterdataSvc,
		currentView:       ViewMenu,
		builderView:       view.NewBuilderModel(invoiceSvc, masterdataSvc),
		invoicesView:      view.NewInvoicesModel(invoiceSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewBuilder
				return m, m.builderView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService)

				return m, m.invoicesView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.LoadedMsg:
		m.currentView = ViewBuilder
		return m, m.builderView.Init()
	}

	switch m.currentView {
	case ViewBuilder:
		var newModel tea.Model
		newModel, cmd = m.builderView.Update(msg)
		m.builderView = newModel.(view.BuilderModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Blind Invoice Creator\n\n" +
				"1. Invoice Builder\n" +
				"2. Saved Invoices\n\n" +
				"q. Quit",
		)
	case ViewBuilder:
		return m.builderView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
