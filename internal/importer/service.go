package importer

import (
	"fmt"
	"io"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/importer/pricelist"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

type Service struct {
	priceList Importer
}

func NewService() *Service {
	return &Service{
		priceList: pricelist.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]*masterdata.Product, error) {
	var imp Importer

	switch format {
	case FormatPriceList:
		imp = s.priceList
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return imp.Parse(r)
}
