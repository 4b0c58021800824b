package pricelist

// Profile describes the column layout of a supplier price-list export.
// Adding a new supplier format is just adding a Profile to the list.
type Profile struct {
	Name         string
	ProductCol   string
	RateCol      string
	ShadeCol     string // optional
	ShadeColCol  string // optional
	OperationCol string // optional
	MotorCol     string // optional
}

// requiredCols returns the columns that must be present for this
// profile to match. Optional columns are filled when available.
func (p Profile) requiredCols() []string {
	return []string{p.ProductCol, p.RateCol}
}

// profiles is the ordered list of known supplier formats. More specific
// profiles come first so a detailed sheet never matches the simple one.
var profiles = []Profile{
	{
		Name:         "detailed",
		ProductCol:   "Product",
		ShadeCol:     "Shade",
		ShadeColCol:  "Shade Colour",
		OperationCol: "Operation",
		RateCol:      "Rate/Sq.Ft",
		MotorCol:     "Motorised",
	},
	{
		Name:        "simple",
		ProductCol:  "Item Name",
		ShadeColCol: "Colour",
		RateCol:     "Price Per Sq Ft",
	},
}
