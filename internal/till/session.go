package till

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fjod/go_cart/till/internal/cart"
	"github.com/fjod/go_cart/till/internal/console"
	"go.uber.org/zap"
)

const (
	MsgUnknownCommand = "Unknown command. Type help for the list of commands."
	MsgUsageAdd       = "Usage: add <item> <quantity>"
	MsgUsageRemove    = "Usage: remove <item> <quantity>"
	MsgEmptyCart      = "The shopping cart is empty."

	commandPrompt = "> "
)

const helpText = `Commands:
  add <item> <quantity>     put items in the cart
  remove <item> <quantity>  take items out of the cart
  list                      show the cart contents
  receipt                   print the receipt
  help                      show this help
  quit                      leave the till`

// Session drives one cart from operator commands read on a console port.
type Session struct {
	cart   *cart.Cart
	port   console.Port
	logger *zap.Logger
}

func NewSession(c *cart.Cart, port console.Port, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		cart:   c,
		port:   port,
		logger: logger.With(zap.String("cart_id", c.ID())),
	}
}

func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Run reads commands until quit, the end of input or ctx is done.
// Rejected operations are reported on the port and never end the session.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("till session started")
	defer s.logger.Info("till session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.port.Prompt(commandPrompt)
		line, err := s.port.ReadToken()
		if errors.Is(err, console.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.Execute(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. It reports whether the session should end.
// Only failures of the port itself are returned.
func (s *Session) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "add":
		if len(fields) != 3 {
			s.port.Println(MsgUsageAdd)
			return false, nil
		}
		s.report(s.cart.AddItemText(fields[1], fields[2]))

	case "remove":
		if len(fields) != 3 {
			s.port.Println(MsgUsageRemove)
			return false, nil
		}
		s.report(s.cart.RemoveItemText(fields[1], fields[2]))

	case "list":
		s.list()

	case "receipt":
		if err := s.cart.PrintReceipt(s.port); err != nil {
			return false, err
		}

	case "help":
		s.port.Println(helpText)

	case "quit", "exit":
		return true, nil

	default:
		s.port.Println(MsgUnknownCommand)
	}

	return false, nil
}

// AddItem adds items and reports a rejection on the port.
func (s *Session) AddItem(itemType, quantity string) {
	s.report(s.cart.AddItemText(itemType, quantity))
}

// RemoveItem removes items and reports a rejection on the port.
func (s *Session) RemoveItem(itemType, quantity string) {
	s.report(s.cart.RemoveItemText(itemType, quantity))
}

func (s *Session) PrintReceipt() error {
	return s.cart.PrintReceipt(s.port)
}

func (s *Session) report(err error) {
	if err == nil {
		return
	}
	var vErr *cart.ValidationError
	if errors.As(err, &vErr) {
		s.port.Println(vErr.Message)
		return
	}
	s.logger.Error("cart operation failed", zap.Error(err))
	s.port.Println(fmt.Sprintf("Error: %v", err))
}

func (s *Session) list() {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.port.Println(MsgEmptyCart)
		return
	}
	for _, l := range lines {
		s.port.Println(fmt.Sprintf("%s x %d", l.ItemType, l.Quantity))
	}
}
