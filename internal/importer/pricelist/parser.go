// Package pricelist parses supplier price-list CSV exports into product
// records. The column layout (and the row where the header actually
// starts) varies per supplier, so the parser matches headers against
// known profiles instead of assuming row zero.
package pricelist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/Kunal1519/blind-invoice-creator-pro/internal/encoding"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]*masterdata.Product, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching price-list format found: expected a product and rate column")
	}

	return parseRows(profile, cols, rows[headerIdx+1:])
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header matching a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts products from data rows. Rows without a product
// name or a parseable rate are skipped; footer and note rows look
// exactly like that.
func parseRows(p *Profile, cols colIndex, rows [][]string) ([]*masterdata.Product, error) {
	var products []*masterdata.Product

	for _, row := range rows {
		name := cellValue(row, colOf(cols, p.ProductCol))
		if name == "" {
			continue
		}

		rate, ok := parseRate(cellValue(row, colOf(cols, p.RateCol)))
		if !ok {
			continue
		}

		products = append(products, &masterdata.Product{
			Name:          name,
			Shade:         cellValue(row, colOf(cols, p.ShadeCol)),
			ShadeColor:    cellValue(row, colOf(cols, p.ShadeColCol)),
			OperationType: cellValue(row, colOf(cols, p.OperationCol)),
			PricePerSqFt:  rate,
			IsMotorItem:   isYes(cellValue(row, colOf(cols, p.MotorCol))),
		})
	}

	return products, nil
}

// colOf resolves an optional column name; -1 means absent.
func colOf(cols colIndex, name string) int {
	if name == "" {
		return -1
	}

	if i, ok := cols[name]; ok {
		return i
	}

	return -1
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1":
		return true
	}

	return false
}
