package pricelist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/importer/pricelist"
)

func TestParser_DetailedPriceList(t *testing.T) {
	csv := `Supplier Price List - Effective 01-04-2026
Contact,sales@example.in

Product,Shade,Shade Colour,Operation,Rate/Sq.Ft,Motorised
Roman Blind Classic,Ivory,Off White,Chain,185.50,No
Roller Blind Blackout,Graphite,Dark Grey,Spring,"1,250.00",Yes
,,,,,
Rates exclusive of GST,,,,,
`

	p := pricelist.NewParser()
	products, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Roman Blind Classic", products[0].Name)
	assert.Equal(t, "Ivory", products[0].Shade)
	assert.Equal(t, "Off White", products[0].ShadeColor)
	assert.Equal(t, "Chain", products[0].OperationType)
	assert.Equal(t, 185.50, products[0].PricePerSqFt)
	assert.False(t, products[0].IsMotorItem)

	assert.Equal(t, "Roller Blind Blackout", products[1].Name)
	assert.Equal(t, 1250.00, products[1].PricePerSqFt)
	assert.True(t, products[1].IsMotorItem)
}

func TestParser_SimplePriceList(t *testing.T) {
	csv := `Item Name,Colour,Price Per Sq Ft
Zebra Blind,White,₹95
Vertical Blind,Beige,Rs. 110/-
`

	p := pricelist.NewParser()
	products, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Zebra Blind", products[0].Name)
	assert.Equal(t, "White", products[0].ShadeColor)
	assert.Equal(t, 95.0, products[0].PricePerSqFt)

	assert.Equal(t, "Vertical Blind", products[1].Name)
	assert.Equal(t, 110.0, products[1].PricePerSqFt)
}

func TestParser_SkipsUnpriceableRows(t *testing.T) {
	csv := `Product,Rate/Sq.Ft
Valid Blind,120
,95
No Rate Blind,
Call For Price,POA
`

	p := pricelist.NewParser()
	products, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Valid Blind", products[0].Name)
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Product,Rate/Sq.Ft\nCrème Café Blind,140\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := pricelist.NewParser()
	products, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Crème Café Blind", products[0].Name)
}

func TestParser_EmptyFile(t *testing.T) {
	p := pricelist.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching price-list format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Product,Rate/Sq.Ft`

	p := pricelist.NewParser()
	products, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestParser_UnknownColumns(t *testing.T) {
	csv := `SKU,Description,MRP
BL-001,Some Blind,500
`

	p := pricelist.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
}
