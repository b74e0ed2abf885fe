package domain

// Column identifies a receipt field by the number the operator types for it.
type Column int

const (
	ColumnItemName Column = 1
	ColumnQuantity Column = 2
	ColumnPrice    Column = 3
)

// Columns lists every receipt column in menu order.
var Columns = []Column{ColumnItemName, ColumnQuantity, ColumnPrice}

func (c Column) Valid() bool {
	return c >= ColumnItemName && c <= ColumnPrice
}

func (c Column) String() string {
	switch c {
	case ColumnItemName:
		return "Item Name"
	case ColumnQuantity:
		return "Quantity"
	case ColumnPrice:
		return "Price"
	default:
		return "Unknown"
	}
}

// Layout is the order in which receipt columns are printed.
type Layout [3]Column

// DefaultLayout prints name, quantity, price.
var DefaultLayout = Layout{ColumnItemName, ColumnQuantity, ColumnPrice}

// Valid reports whether l is a permutation of all columns.
func (l Layout) Valid() bool {
	var seen [4]bool
	for _, c := range l {
		if !c.Valid() || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
