package cart

import (
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/fjod/go_cart/till/internal/catalog"
	"github.com/fjod/go_cart/till/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cart holds item quantities in first-insertion order.
// It is driven by a single operator and is not safe for concurrent use.
type Cart struct {
	id      string
	catalog catalog.Catalog
	lines   *orderedmap.OrderedMap[string, int]
	logger  *zap.Logger
}

type Option func(*Cart)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Cart) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithID(id string) Option {
	return func(c *Cart) {
		if id != "" {
			c.id = id
		}
	}
}

// New creates an empty cart priced by the given catalog.
func New(cat catalog.Catalog, opts ...Option) *Cart {
	c := &Cart{
		id:      uuid.NewString(),
		catalog: cat,
		lines:   orderedmap.NewOrderedMap[string, int](),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("cart_id", c.id))
	return c
}

// NewDefault creates an empty cart priced by the built-in catalog.
func NewDefault(opts ...Option) *Cart {
	return New(catalog.Default(), opts...)
}

func (c *Cart) ID() string {
	return c.id
}

// AddItem adds quantity units of itemType. An item already in the cart keeps
// its position and accumulates; a new one goes to the end.
func (c *Cart) AddItem(itemType string, quantity int) error {
	if quantity <= 0 {
		return c.reject(KindQuantityNotPositive, itemType, quantity)
	}
	if !c.catalog.IsKnown(itemType) {
		return c.reject(KindItemNotPurchasable, itemType, quantity)
	}

	current, _ := c.lines.Get(itemType)
	c.lines.Set(itemType, current+quantity)

	c.logger.Debug("item added",
		zap.String("item_type", itemType),
		zap.Int("quantity", quantity),
		zap.Int("new_quantity", current+quantity))
	return nil
}

// AddItemText is AddItem for a quantity typed by the operator.
func (c *Cart) AddItemText(itemType, quantity string) error {
	n, err := parseQuantity(quantity)
	if err != nil {
		return c.rejectText(itemType, quantity)
	}
	return c.AddItem(itemType, n)
}

// RemoveItem takes quantity units of itemType out of the cart. Removing at
// least as many as are present drops the line entirely.
func (c *Cart) RemoveItem(itemType string, quantity int) error {
	current, ok := c.lines.Get(itemType)
	if !ok {
		return c.reject(KindItemNotInCart, itemType, quantity)
	}
	if quantity <= 0 {
		return c.reject(KindQuantityNotPositive, itemType, quantity)
	}

	if quantity >= current {
		c.lines.Delete(itemType)
		c.logger.Debug("item removed", zap.String("item_type", itemType))
		return nil
	}

	c.lines.Set(itemType, current-quantity)
	c.logger.Debug("item decremented",
		zap.String("item_type", itemType),
		zap.Int("quantity", quantity),
		zap.Int("new_quantity", current-quantity))
	return nil
}

// RemoveItemText is RemoveItem for a quantity typed by the operator.
func (c *Cart) RemoveItemText(itemType, quantity string) error {
	if _, ok := c.lines.Get(itemType); !ok {
		return c.reject(KindItemNotInCart, itemType, 0)
	}
	n, err := parseQuantity(quantity)
	if err != nil {
		return c.rejectText(itemType, quantity)
	}
	return c.RemoveItem(itemType, n)
}

func (c *Cart) Quantity(itemType string) (int, bool) {
	return c.lines.Get(itemType)
}

func (c *Cart) Len() int {
	return c.lines.Len()
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []domain.Line {
	lines := make([]domain.Line, 0, c.lines.Len())
	for el := c.lines.Front(); el != nil; el = el.Next() {
		lines = append(lines, domain.Line{ItemType: el.Key, Quantity: el.Value})
	}
	return lines
}

func (c *Cart) reject(kind Kind, itemType string, quantity int) error {
	c.logger.Info("cart operation rejected",
		zap.Stringer("reason", kind),
		zap.String("item_type", itemType),
		zap.Int("quantity", quantity))
	return newValidationError(kind, itemType)
}

func (c *Cart) rejectText(itemType, quantity string) error {
	c.logger.Info("cart operation rejected",
		zap.Stringer("reason", KindQuantityNotNumeric),
		zap.String("item_type", itemType),
		zap.String("quantity", quantity))
	return newValidationError(KindQuantityNotNumeric, itemType)
}

func parseQuantity(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
