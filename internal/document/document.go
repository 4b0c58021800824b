// Package document renders a saved or in-progress invoice to a PDF and
// builds WhatsApp share links for sending it to the buyer.
package document

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/settings"
)

// RenderInput carries the invoice plus the master data it references.
// Vendor and Party may be nil when the invoice has none selected.
type RenderInput struct {
	Invoice  *invoice.Invoice
	Settings settings.Settings
	Vendor   *masterdata.Vendor
	Party    *masterdata.Party
}

// Renderer produces A4 proforma-invoice PDFs.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// itemColumns defines the line-item table layout. Widths sum to the
// printable width of an A4 page with 10mm margins.
var itemColumns = []struct {
	title string
	width float64
}{
	{"S.No", 10},
	{"Description", 38},
	{"Shade", 20},
	{"Colour", 20},
	{"Operation", 22},
	{"Qty", 10},
	{"Width", 15},
	{"Height", 15},
	{"Sq.Ft", 14},
	{"Rate", 12},
	{"Amount", 14},
}

// Render draws the invoice and returns the PDF bytes.
func (r *Renderer) Render(in RenderInput) ([]byte, error) {
	if in.Invoice == nil {
		return nil, invoice.ErrNoInvoice
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Core fonts are cp1252; tr maps UTF-8 names from master data.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.header(pdf, tr, in.Settings.Company)
	r.partyBlock(pdf, tr, in.Invoice, in.Vendor, in.Party)
	r.caution(pdf)
	r.itemsTable(pdf, tr, in.Invoice)
	r.totals(pdf, tr, in.Invoice, in.Settings)
	r.footer(pdf, tr, in.Settings.Company)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) header(pdf *gofpdf.Fpdf, tr func(string) string, c settings.CompanyProfile) {
	if c.Logo != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 5, tr(c.Logo), "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 9, tr(c.CompanyName), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 4.5, tr("ADDRESS: "+c.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4.5, tr("TEL. NO. - "+c.Phone), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4.5, tr("Email Id: "+c.Email), "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "PROFORMA INVOICE", "TB", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func (r *Renderer) partyBlock(pdf *gofpdf.Fpdf, tr func(string) string, inv *invoice.Invoice, vendor *masterdata.Vendor, party *masterdata.Party) {
	left, top := pdf.GetXY()
	half := 95.0

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(half, 5, "BUYER'S DETAILS", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)

	if party != nil {
		pdf.CellFormat(half, 4.5, tr(party.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(half, 4.5, tr("GST No.: "+party.GSTNo), "", 1, "L", false, 0, "")
		pdf.CellFormat(half, 4.5, tr("Email id.: "+party.Email), "", 1, "L", false, 0, "")
		pdf.CellFormat(half, 4.5, tr("Contact Person.: "+party.ContactPerson), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(half, 4.5, "-", "", 1, "L", false, 0, "")
	}

	buyerBottom := pdf.GetY()

	// Right-hand meta column, aligned with the buyer block.
	pdf.SetXY(left+half, top)
	pdf.CellFormat(half, 5, "", "", 2, "L", false, 0, "")
	pdf.CellFormat(half, 4.5, "Invoice No.: "+inv.InvoiceNumber, "", 2, "L", false, 0, "")
	pdf.CellFormat(half, 4.5, "Date: "+inv.Date.Format("02-01-2006"), "", 2, "L", false, 0, "")
	pdf.CellFormat(half, 4.5, tr("GST No.: "+inv.GSTNo), "", 2, "L", false, 0, "")

	if vendor != nil {
		pdf.CellFormat(half, 4.5, tr("Vendor: "+vendor.Name), "", 2, "L", false, 0, "")
	}

	if pdf.GetY() < buyerBottom {
		pdf.SetY(buyerBottom)
	}
	pdf.SetX(left)
	pdf.Ln(3)
}

func (r *Renderer) caution(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(0, 5, "PLEASE CHECK SIZE CAREFULLY AFTER YOUR APPROVAL WILL NOT BE RESPONSIBLE.", "1", 1, "C", false, 0, "")
	pdf.Ln(1)
}

func (r *Renderer) itemsTable(pdf *gofpdf.Fpdf, tr func(string) string, inv *invoice.Invoice) {
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(255, 240, 160)

	for _, col := range itemColumns {
		pdf.CellFormat(col.width, 6, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)

	for i, it := range inv.Items {
		w, h := it.WidthInches, it.HeightInches
		if it.Unit == pricing.UnitCm {
			w, h = it.WidthCm, it.HeightCm
		}

		cells := []struct {
			text  string
			align string
		}{
			{strconv.Itoa(i + 1), "C"},
			{tr(it.ProductName), "L"},
			{tr(it.Shade), "L"},
			{tr(it.ShadeColor), "L"},
			{tr(it.OperationType), "L"},
			{strconv.Itoa(it.Quantity), "C"},
			{trimFloat(w), "R"},
			{trimFloat(h), "R"},
			{money(it.SqFt), "R"},
			{money(it.PricePerSqFt), "R"},
			{money(it.Amount), "R"},
		}

		for j, cell := range cells {
			pdf.CellFormat(itemColumns[j].width, 5.5, cell.text, "1", 0, cell.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(60, 6, fmt.Sprintf("TOTAL MATERIAL - %d", inv.TotalMaterial), "1", 0, "L", true, 0, "")
	pdf.CellFormat(104, 6, fmt.Sprintf("TOTAL SQ.FT. - %s", money(inv.TotalSqFt)), "1", 0, "L", true, 0, "")
	pdf.CellFormat(26, 6, "", "1", 1, "", false, 0, "")
	pdf.Ln(2)
}

func (r *Renderer) totals(pdf *gofpdf.Fpdf, tr func(string) string, inv *invoice.Invoice, st settings.Settings) {
	left, top := pdf.GetXY()

	r.bankBlock(pdf, tr, st.Company)

	// Totals column sits to the right of the bank block.
	col := left + 100
	pdf.SetXY(col, top)

	itemsTotal := 0.0
	for _, it := range inv.Items {
		itemsTotal += it.Amount
	}

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}

		pdf.SetX(col)
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(255, 240, 160)
		pdf.CellFormat(55, 5.5, label, "1", 0, "L", true, 0, "")
		pdf.SetFont("Arial", style, 8)
		pdf.CellFormat(35, 5.5, value, "1", 1, "R", false, 0, "")
	}

	row("TOTAL", money(itemsTotal), false)

	if inv.DiscountPercentage > 0 {
		row(fmt.Sprintf("DISCOUNT %s%%", trimFloat(inv.DiscountPercentage)), money(inv.DiscountAmount), false)
		row("TOTAL AMOUNT - AFTER DISCOUNT", money(itemsTotal-inv.DiscountAmount), false)
	}

	if st.Charges.ShowPelmetCharges && inv.PelmetCharges > 0 {
		row("PELMET CHARGE- 150/ PER. R.FT", money(inv.PelmetCharges), false)
	}

	if st.Charges.ShowPackingCharges && inv.PackingCharges > 0 {
		row("PACKING CHARGES -", money(inv.PackingCharges), false)
	}

	if st.Charges.ShowCourierCharges && inv.CourierCharges > 0 {
		row("COURIER CHARGE -", money(inv.CourierCharges), false)
	}

	if st.Charges.ShowInstallationCharges && inv.InstallationCharges > 0 {
		row("INSTALLATION CHARGE/200-PER BLIND", money(inv.InstallationCharges), false)
	}

	if st.Charges.ShowLocalCartage {
		row("LOCAL CARTAGE CHARGE -", "", false)
	}

	row("TOTAL AMOUNT BEFORE TAX", money(inv.TotalAmountBeforeTax), false)

	if inv.GSTEnabled {
		row(fmt.Sprintf("GST %s%%", trimFloat(inv.GSTPercentage)), "", false)
		row("TOTAL TAX AMOUNT -", money(inv.GSTAmount), false)
	}

	row("Grand Total -", money(inv.GrandTotal), true)
	row("Total Payment To Be Paid-", money(inv.TotalPayment), true)

	// Continue below whichever block reached further down.
	if y := pdf.GetY(); y < top+30 {
		pdf.SetY(top + 30)
	}
	pdf.SetX(left)
	pdf.Ln(4)
}

func (r *Renderer) bankBlock(pdf *gofpdf.Fpdf, tr func(string) string, c settings.CompanyProfile) {
	left, top := pdf.GetXY()

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 5, "Payment Should Be Payable To :-", "", 2, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 4.5, "A/C No :- "+c.AccountNumber, "", 2, "L", false, 0, "")
	pdf.CellFormat(95, 4.5, tr("A/C Name :- "+c.AccountName), "", 2, "L", false, 0, "")
	pdf.CellFormat(95, 4.5, tr("Bank Name :- "+c.BankName), "", 2, "L", false, 0, "")
	pdf.CellFormat(95, 4.5, tr("Branch Name :- "+c.BranchName), "", 2, "L", false, 0, "")

	pdf.SetXY(left, top)
}

func (r *Renderer) footer(pdf *gofpdf.Fpdf, tr func(string) string, c settings.CompanyProfile) {
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, tr("For "+c.CompanyName), "", 1, "R", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Authorised Signatory", "", 1, "R", false, 0, "")
}

// Filename is the suggested download name for the rendered invoice.
func Filename(inv *invoice.Invoice) string {
	return inv.InvoiceNumber + ".pdf"
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// trimFloat drops trailing zeros so whole dimensions print as "36"
// rather than "36.00".
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
