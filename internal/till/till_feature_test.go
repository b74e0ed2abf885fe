package till

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/fjod/go_cart/till/internal/cart"
	"github.com/fjod/go_cart/till/internal/console/consoletest"
)

type tillTestContext struct {
	session *Session
	port    *consoletest.Script
}

func (c *tillTestContext) reset() {
	c.session = nil
	c.port = nil
}

// Given steps

func (c *tillTestContext) aTillWithTheDefaultPriceList() error {
	c.port = consoletest.NewScript()
	c.session = NewSession(cart.NewDefault(), c.port, nil)
	return nil
}

// When steps

func (c *tillTestContext) iAddOf(quantity, itemType string) error {
	c.session.AddItem(itemType, quantity)
	return nil
}

func (c *tillTestContext) iRemoveOf(quantity, itemType string) error {
	c.session.RemoveItem(itemType, quantity)
	return nil
}

func (c *tillTestContext) iPrintTheReceiptChoosingColumns(columns string) error {
	output := c.port.Output
	c.port = consoletest.NewScript(strings.Split(columns, ",")...)
	c.port.Output = output
	c.session.port = c.port
	return c.session.PrintReceipt()
}

// Then steps

func (c *tillTestContext) lineOfTheOutputIs(n int, want string) error {
	if n < 1 || n > len(c.port.Output) {
		return fmt.Errorf("output has %d lines, wanted line %d", len(c.port.Output), n)
	}
	if got := c.port.Output[n-1]; got != want {
		return fmt.Errorf("line %d: expected %q, got %q", n, want, got)
	}
	return nil
}

func (c *tillTestContext) theOutputIs(table *godog.Table) error {
	if len(table.Rows) != len(c.port.Output) {
		return fmt.Errorf("expected %d output lines, got %d: %q", len(table.Rows), len(c.port.Output), c.port.Output)
	}
	for i, row := range table.Rows {
		if err := c.lineOfTheOutputIs(i+1, row.Cells[0].Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *tillTestContext) theCartIsEmpty() error {
	if n := c.session.Cart().Len(); n != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", n)
	}
	return nil
}

func (c *tillTestContext) theCartDoesNotContain(itemType string) error {
	if _, ok := c.session.Cart().Quantity(itemType); ok {
		return fmt.Errorf("expected %q not to be in the cart", itemType)
	}
	return nil
}

func (c *tillTestContext) theCartHoldsOf(quantity int, itemType string) error {
	got, ok := c.session.Cart().Quantity(itemType)
	if !ok || got != quantity {
		return fmt.Errorf("expected %d of %q, got %d", quantity, itemType, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &tillTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a till with the default price list$`, tc.aTillWithTheDefaultPriceList)

	// When steps
	ctx.Step(`^I add "?([^" ]+)"? of "([^"]*)"$`, tc.iAddOf)
	ctx.Step(`^I remove "?([^" ]+)"? of "([^"]*)"$`, tc.iRemoveOf)
	ctx.Step(`^I print the receipt choosing columns "([^"]*)"$`, tc.iPrintTheReceiptChoosingColumns)

	// Then steps
	ctx.Step(`^line (\d+) of the output is "([^"]*)"$`, tc.lineOfTheOutputIs)
	ctx.Step(`^the output is:$`, tc.theOutputIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart does not contain "([^"]*)"$`, tc.theCartDoesNotContain)
	ctx.Step(`^the cart holds (\d+) of "([^"]*)"$`, tc.theCartHoldsOf)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/till.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
