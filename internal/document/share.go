package document

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
)

// DefaultShareMessage is used when no invoice context is available.
const DefaultShareMessage = "Please find the attached proforma invoice. Thank you for your business!"

// ShareMessage builds the WhatsApp message announcing the invoice.
func ShareMessage(inv *invoice.Invoice, companyName string) string {
	if inv == nil {
		return DefaultShareMessage
	}

	if companyName == "" {
		companyName = "Creative Interiors"
	}

	return fmt.Sprintf("Proforma Invoice #%s from %s. Total Amount: ₹%.2f",
		inv.InvoiceNumber, companyName, inv.GrandTotal)
}

// WhatsAppLink returns a click-to-chat URL. With a phone number it
// targets that chat directly via wa.me; without one it opens WhatsApp
// Web with the message prefilled.
func WhatsAppLink(phone, message string) string {
	text := url.QueryEscape(message)

	if digits := phoneDigits(phone); digits != "" {
		return fmt.Sprintf("https://wa.me/%s?text=%s", digits, text)
	}

	return "https://web.whatsapp.com/send?text=" + text
}

// phoneDigits strips formatting from a phone number. wa.me wants the
// number in international format with no punctuation.
func phoneDigits(phone string) string {
	var b strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
