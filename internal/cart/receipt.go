package cart

import (
	"fmt"
	"strings"

	"github.com/fjod/go_cart/till/internal/console"
	"github.com/fjod/go_cart/till/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const fieldSeparator = " - "

// Receipt is a priced snapshot of the cart in a chosen column layout.
type Receipt struct {
	Layout domain.Layout
	Items  []domain.PricedLine
	Total  domain.Price
}

// FormatLine renders one item with its fields in layout order.
func (r Receipt) FormatLine(item domain.PricedLine) string {
	fields := make([]string, 0, len(r.Layout))
	for _, col := range r.Layout {
		fields = append(fields, item.Field(col))
	}
	return strings.Join(fields, fieldSeparator)
}

// Lines returns every item line followed by the total line.
func (r Receipt) Lines() []string {
	lines := make([]string, 0, len(r.Items)+1)
	for _, item := range r.Items {
		lines = append(lines, r.FormatLine(item))
	}
	return append(lines, fmt.Sprintf("Total: %s", r.Total.String()))
}

// Receipt prices every line against the catalog. The total does not depend on layout.
func (c *Cart) Receipt(layout domain.Layout) (Receipt, error) {
	if !layout.Valid() {
		return Receipt{}, fmt.Errorf("invalid receipt layout %v", layout)
	}

	r := Receipt{
		Layout: layout,
		Items:  make([]domain.PricedLine, 0, c.lines.Len()),
		Total:  decimal.Zero,
	}
	for el := c.lines.Front(); el != nil; el = el.Next() {
		price, err := c.catalog.PriceOf(el.Key)
		if err != nil {
			// every line was checked against the catalog when it was added
			return Receipt{}, fmt.Errorf("price %q: %w", el.Key, err)
		}

		item := domain.PricedLine{
			Line:      domain.Line{ItemType: el.Key, Quantity: el.Value},
			UnitPrice: price,
		}
		r.Items = append(r.Items, item)
		r.Total = r.Total.Add(item.Subtotal())
	}

	return r, nil
}

// Total returns the sum of quantity × unit price over the cart.
func (c *Cart) Total() (domain.Price, error) {
	r, err := c.Receipt(domain.DefaultLayout)
	if err != nil {
		return domain.Price{}, err
	}
	return r.Total, nil
}

// PrintReceipt asks the operator for a column order on port and then
// writes one line per item followed by the total.
func (c *Cart) PrintReceipt(port console.Port) error {
	layout, err := NegotiateLayout(port)
	if err != nil {
		return fmt.Errorf("negotiate receipt layout: %w", err)
	}

	r, err := c.Receipt(layout)
	if err != nil {
		return err
	}

	for _, line := range r.Lines() {
		port.Println(line)
	}

	c.logger.Info("receipt printed",
		zap.Int("items", len(r.Items)),
		zap.Stringer("total", r.Total))
	return nil
}
