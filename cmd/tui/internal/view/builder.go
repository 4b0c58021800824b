package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

type builderState int

const (
	builderStateBrowse builderState = iota
	builderStateAddItem
	builderStateCharges
	builderStateDetails
)

// BuilderModel is the interactive invoice builder: an items table with
// a running totals panel, plus forms for adding line items and editing
// the discount/charge/GST header.
type BuilderModel struct {
	CommonModel
	invoiceSvc *invoice.Service
	catalogSvc *masterdata.Service

	state builderState
	table table.Model
	form  *huh.Form

	products []*masterdata.Product
	vendors  []*masterdata.Vendor
	parties  []*masterdata.Party

	// Details form bindings.
	formVendorID string
	formPartyID  string
	formGSTNo    string

	// Add-item form bindings.
	formProductID string
	formQuantity  string
	formUnit      string
	formWidth     string
	formHeight    string

	// Charges form bindings.
	formDiscount string
	formPacking  string
	formPelmet   string
	formCourier  string
	formInstall  string
	formGSTOn    bool
	formGSTPct   string

	loading bool
	err     error
	status  string
}

func NewBuilderModel(invoiceSvc *invoice.Service, catalogSvc *masterdata.Service) BuilderModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Product", Width: 24},
		{Title: "Qty", Width: 5},
		{Title: "Width", Width: 7},
		{Title: "Height", Width: 7},
		{Title: "Unit", Width: 6},
		{Title: "Sq.Ft", Width: 8},
		{Title: "Rate", Width: 8},
		{Title: "Amount", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return BuilderModel{
		invoiceSvc: invoiceSvc,
		catalogSvc: catalogSvc,
		table:      t,
	}
}

func (m BuilderModel) Title() string { return "Invoice Builder" }
func (m BuilderModel) ShortHelp() string {
	if m.state != builderStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add item | x: remove item | v: vendor/party | c: charges | s: save | n: new"
}

func (m BuilderModel) Init() tea.Cmd {
	if m.invoiceSvc.Current() == nil {
		m.invoiceSvc.CreateNew()
	}

	return m.loadProductsCmd()
}

func (m BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProductsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.products = msg.products
		m.vendors = msg.vendors
		m.parties = msg.parties
		m.refreshTable()

		return m, nil

	case saveInvoiceMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Save failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Saved %s", msg.number)
		}

		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	switch m.state {
	case builderStateBrowse:
		return m.updateBrowse(msg)
	case builderStateAddItem, builderStateCharges, builderStateDetails:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m BuilderModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "n":
			m.invoiceSvc.CreateNew()
			m.status = "Started a new invoice"
			m.refreshTable()

			return m, nil
		case "a":
			return m.enterAddItem()
		case "v":
			return m.enterDetails()
		case "c":
			return m.enterCharges()
		case "x":
			return m.removeSelected()
		case "s":
			return m, m.saveCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BuilderModel) enterAddItem() (tea.Model, tea.Cmd) {
	if len(m.products) == 0 {
		m.status = "No products in the catalog; add or import some first"
		return m, nil
	}

	options := make([]huh.Option[string], 0, len(m.products))
	for _, p := range m.products {
		label := p.Name
		if p.Shade != "" {
			label += " / " + p.Shade
		}

		label += fmt.Sprintf(" (%.2f/sq.ft)", p.PricePerSqFt)
		options = append(options, huh.NewOption(label, p.ID.String()))
	}

	m.formProductID = m.products[0].ID.String()
	m.formQuantity = "1"
	m.formUnit = string(pricing.UnitInches)
	m.formWidth = ""
	m.formHeight = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("product").
				Title("Product").
				Options(options...).
				Value(&m.formProductID),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.formQuantity).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive whole number")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("unit").
				Title("Unit").
				Options(
					huh.NewOption("Inches", string(pricing.UnitInches)),
					huh.NewOption("Centimetres", string(pricing.UnitCm)),
				).
				Value(&m.formUnit),

			huh.NewInput().
				Key("width").
				Title("Width").
				Value(&m.formWidth).
				Validate(ValidateFloat),

			huh.NewInput().
				Key("height").
				Title("Height").
				Value(&m.formHeight).
				Validate(ValidateFloat),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = builderStateAddItem
	m.table.Blur()

	return m, m.form.Init()
}

func (m BuilderModel) enterCharges() (tea.Model, tea.Cmd) {
	inv := m.invoiceSvc.Current()
	if inv == nil {
		return m, nil
	}

	m.formDiscount = FormatMoney(inv.DiscountPercentage)
	m.formPacking = FormatMoney(inv.PackingCharges)
	m.formPelmet = FormatMoney(inv.PelmetCharges)
	m.formCourier = FormatMoney(inv.CourierCharges)
	m.formInstall = FormatMoney(inv.InstallationCharges)
	m.formGSTOn = inv.GSTEnabled
	m.formGSTPct = FormatMoney(inv.GSTPercentage)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("discount").Title("Discount %").Value(&m.formDiscount).Validate(ValidateFloat),
			huh.NewInput().Key("packing").Title("Packing Charges").Value(&m.formPacking).Validate(ValidateFloat),
			huh.NewInput().Key("pelmet").Title("Pelmet Charges").Value(&m.formPelmet).Validate(ValidateFloat),
			huh.NewInput().Key("courier").Title("Courier Charges").Value(&m.formCourier).Validate(ValidateFloat),
			huh.NewInput().Key("installation").Title("Installation Charges").Value(&m.formInstall).Validate(ValidateFloat),
			huh.NewConfirm().Key("gst").Title("Apply GST").Value(&m.formGSTOn),
			huh.NewInput().Key("gst_pct").Title("GST %").Value(&m.formGSTPct).Validate(ValidateFloat),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = builderStateCharges
	m.table.Blur()

	return m, m.form.Init()
}

func (m BuilderModel) enterDetails() (tea.Model, tea.Cmd) {
	inv := m.invoiceSvc.Current()
	if inv == nil {
		return m, nil
	}

	if len(m.vendors) == 0 || len(m.parties) == 0 {
		m.status = "Add at least one vendor and one party first"
		return m, nil
	}

	vendorOptions := make([]huh.Option[string], 0, len(m.vendors))
	for _, v := range m.vendors {
		vendorOptions = append(vendorOptions, huh.NewOption(v.Name, v.ID.String()))
	}

	partyOptions := make([]huh.Option[string], 0, len(m.parties))
	for _, p := range m.parties {
		partyOptions = append(partyOptions, huh.NewOption(p.Name, p.ID.String()))
	}

	m.formVendorID = m.vendors[0].ID.String()
	if inv.VendorID != uuid.Nil {
		m.formVendorID = inv.VendorID.String()
	}

	m.formPartyID = m.parties[0].ID.String()
	if inv.PartyID != uuid.Nil {
		m.formPartyID = inv.PartyID.String()
	}

	m.formGSTNo = inv.GSTNo

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("vendor").
				Title("Vendor").
				Options(vendorOptions...).
				Value(&m.formVendorID),

			huh.NewSelect[string]().
				Key("party").
				Title("Party").
				Options(partyOptions...).
				Value(&m.formPartyID),

			huh.NewInput().
				Key("gst_no").
				Title("GST No").
				Value(&m.formGSTNo),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = builderStateDetails
	m.table.Blur()

	return m, m.form.Init()
}

func (m BuilderModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = builderStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	completed := m.state
	m.state = builderStateBrowse
	m.form = nil
	m.table.Focus()

	switch completed {
	case builderStateAddItem:
		m.applyAddItem()
	case builderStateCharges:
		m.applyCharges()
	case builderStateDetails:
		m.applyDetails()
	}

	m.refreshTable()

	return m, nil
}

func (m *BuilderModel) applyAddItem() {
	product := m.selectedProduct()
	if product == nil {
		m.status = "Selected product is gone; refresh the catalog"
		return
	}

	qty, _ := strconv.Atoi(strings.TrimSpace(m.formQuantity))
	unit := pricing.Unit(m.formUnit)

	params := invoice.ItemParams{
		Quantity: qty,
		Unit:     unit,
	}

	if unit == pricing.UnitCm {
		params.WidthCm = ParseFloat(m.formWidth)
		params.HeightCm = ParseFloat(m.formHeight)
	} else {
		params.WidthInches = ParseFloat(m.formWidth)
		params.HeightInches = ParseFloat(m.formHeight)
	}

	if _, err := m.invoiceSvc.AddItem(*product, params); err != nil {
		m.status = fmt.Sprintf("Could not add item: %v", err)
		return
	}

	m.status = fmt.Sprintf("Added %s", product.Name)
}

func (m *BuilderModel) applyCharges() {
	m.invoiceSvc.UpdateHeader(invoice.HeaderUpdate{
		DiscountPercentage:  new(ParseFloat(m.formDiscount)),
		PackingCharges:      new(ParseFloat(m.formPacking)),
		PelmetCharges:       new(ParseFloat(m.formPelmet)),
		CourierCharges:      new(ParseFloat(m.formCourier)),
		InstallationCharges: new(ParseFloat(m.formInstall)),
		GSTEnabled:          new(m.formGSTOn),
		GSTPercentage:       new(ParseFloat(m.formGSTPct)),
	})

	m.status = "Charges updated"
}

func (m *BuilderModel) applyDetails() {
	update := invoice.HeaderUpdate{
		GSTNo: new(m.formGSTNo),
	}

	if id, err := uuid.Parse(m.formVendorID); err == nil {
		update.VendorID = &id
	}

	if id, err := uuid.Parse(m.formPartyID); err == nil {
		update.PartyID = &id
	}

	m.invoiceSvc.UpdateHeader(update)
	m.status = "Invoice details updated"
}

func (m BuilderModel) removeSelected() (tea.Model, tea.Cmd) {
	inv := m.invoiceSvc.Current()
	if inv == nil {
		return m, nil
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(inv.Items) {
		return m, nil
	}

	m.invoiceSvc.RemoveItem(inv.Items[idx].ID)
	m.status = "Item removed"
	m.refreshTable()

	return m, nil
}

func (m *BuilderModel) selectedProduct() *masterdata.Product {
	id, err := uuid.Parse(m.formProductID)
	if err != nil {
		return nil
	}

	for _, p := range m.products {
		if p.ID == id {
			return p
		}
	}

	return nil
}

func (m *BuilderModel) refreshTable() {
	inv := m.invoiceSvc.Current()
	if inv == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(inv.Items))

	for i, it := range inv.Items {
		w, h := it.WidthInches, it.HeightInches
		if it.Unit == pricing.UnitCm {
			w, h = it.WidthCm, it.HeightCm
		}

		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			it.ProductName,
			strconv.Itoa(it.Quantity),
			FormatMoney(w),
			FormatMoney(h),
			string(it.Unit),
			FormatMoney(it.SqFt),
			FormatMoney(it.PricePerSqFt),
			FormatMoney(it.Amount),
		})
	}

	m.table.SetRows(rows)
}

func (m BuilderModel) View() string {
	inv := m.invoiceSvc.Current()
	if inv == nil {
		return lipgloss.NewStyle().Padding(2).Render("No invoice in progress. Press n to start one.")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("%s | %s | %s", inv.InvoiceNumber, FormatDate(inv.Date), inv.Status)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Bold(true).Render(header),
		tableView,
	)

	totals := m.totalsPanel(inv)
	content = lipgloss.JoinHorizontal(lipgloss.Top, content, totals)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m BuilderModel) totalsPanel(inv *invoice.Invoice) string {
	lines := []string{
		fmt.Sprintf("Material      %d", inv.TotalMaterial),
		fmt.Sprintf("Sq.Ft         %s", FormatMoney(inv.TotalSqFt)),
		fmt.Sprintf("Discount      %s", FormatMoney(inv.DiscountAmount)),
		fmt.Sprintf("Before Tax    %s", FormatMoney(inv.TotalAmountBeforeTax)),
		fmt.Sprintf("GST           %s", FormatMoney(inv.GSTAmount)),
		fmt.Sprintf("Grand Total   %s", FormatMoney(inv.GrandTotal)),
		fmt.Sprintf("To Be Paid    %s", FormatMoney(inv.TotalPayment)),
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(strings.Join(lines, "\n"))
}

// Messages

type loadProductsMsg struct {
	products []*masterdata.Product
	vendors  []*masterdata.Vendor
	parties  []*masterdata.Party
	err      error
}

func (m BuilderModel) loadProductsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		products, err := m.catalogSvc.Products(ctx)
		if err != nil {
			return loadProductsMsg{err: err}
		}

		vendors, err := m.catalogSvc.Vendors(ctx)
		if err != nil {
			return loadProductsMsg{err: err}
		}

		parties, err := m.catalogSvc.Parties(ctx)
		if err != nil {
			return loadProductsMsg{err: err}
		}

		return loadProductsMsg{products: products, vendors: vendors, parties: parties}
	}
}

type saveInvoiceMsg struct {
	number string
	err    error
}

func (m BuilderModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		current := m.invoiceSvc.Current()
		if current == nil {
			return saveInvoiceMsg{err: invoice.ErrNoInvoice}
		}

		if err := invoice.ValidateForSave(current); err != nil {
			return saveInvoiceMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		inv, err := m.invoiceSvc.Save(ctx)
		if err != nil {
			return saveInvoiceMsg{err: err}
		}

		return saveInvoiceMsg{number: inv.InvoiceNumber}
	}
}
