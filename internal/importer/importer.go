package importer

import (
	"io"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

// Format identifies a supported catalog file layout.
type Format string

const (
	FormatPriceList Format = "pricelist"
)

type Importer interface {
	Parse(r io.Reader) ([]*masterdata.Product, error)
}
