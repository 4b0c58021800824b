package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/document"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/settings"
)

func sampleInvoice() *invoice.Invoice {
	inv := invoice.New()
	inv.Items = []invoice.Item{
		{
			ProductName:  "Roman Blind Classic",
			Shade:        "Ivory",
			Quantity:     2,
			WidthInches:  36,
			HeightInches: 60,
			Unit:         "inches",
			SqFt:         15,
			PricePerSqFt: 80,
			Amount:       2400,
		},
	}

	out := invoice.Recompute(*inv)

	return &out
}

func TestRenderer_Render(t *testing.T) {
	r := document.NewRenderer()

	pdf, err := r.Render(document.RenderInput{
		Invoice:  sampleInvoice(),
		Settings: settings.Defaults(),
		Party: &masterdata.Party{
			Name:          "Max Wallpaper & Interior",
			GSTNo:         "07ABCDE1234F1Z5",
			ContactPerson: "Rahul",
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderer_Render_CmItem(t *testing.T) {
	r := document.NewRenderer()

	inv := invoice.New()
	inv.Items = []invoice.Item{
		{
			ProductName:  "Zebra Blind",
			Quantity:     1,
			WidthCm:      100,
			HeightCm:     150,
			Unit:         pricing.UnitCm,
			SqFt:         16.15,
			PricePerSqFt: 95,
			Amount:       1534.25,
		},
	}
	out := invoice.Recompute(*inv)

	pdf, err := r.Render(document.RenderInput{
		Invoice:  &out,
		Settings: settings.Defaults(),
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderer_Render_NoInvoice(t *testing.T) {
	r := document.NewRenderer()

	_, err := r.Render(document.RenderInput{Settings: settings.Defaults()})
	assert.ErrorIs(t, err, invoice.ErrNoInvoice)
}

func TestRenderer_Render_NoPartySelected(t *testing.T) {
	r := document.NewRenderer()

	pdf, err := r.Render(document.RenderInput{
		Invoice:  sampleInvoice(),
		Settings: settings.Defaults(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestFilename(t *testing.T) {
	inv := sampleInvoice()
	assert.Equal(t, inv.InvoiceNumber+".pdf", document.Filename(inv))
}

func TestShareMessage(t *testing.T) {
	inv := sampleInvoice()

	msg := document.ShareMessage(inv, "CREATIVE INTERIORS")
	assert.Contains(t, msg, inv.InvoiceNumber)
	assert.Contains(t, msg, "CREATIVE INTERIORS")
	assert.Contains(t, msg, "2832.00")
}

func TestShareMessage_NoInvoice(t *testing.T) {
	assert.Equal(t, document.DefaultShareMessage, document.ShareMessage(nil, ""))
}

func TestWhatsAppLink(t *testing.T) {
	link := document.WhatsAppLink("+91 98114-00093", "Invoice ready")
	assert.Equal(t, "https://wa.me/919811400093?text=Invoice+ready", link)
}

func TestWhatsAppLink_NoPhone(t *testing.T) {
	link := document.WhatsAppLink("", "Invoice ready")
	assert.Equal(t, "https://web.whatsapp.com/send?text=Invoice+ready", link)
}
