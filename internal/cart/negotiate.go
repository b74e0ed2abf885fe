package cart

import (
	"errors"
	"slices"
	"strconv"

	"github.com/fjod/go_cart/till/internal/console"
	"github.com/fjod/go_cart/till/internal/domain"
)

// ColumnPrompt is shown once before the first column is read.
const ColumnPrompt = "In what order would you like to the receipt to be printed. Type the number and click enter.\n" +
	"1. Item Name\n" +
	"2. Quantity\n" +
	"3. Price\n"

var ErrLayoutComplete = errors.New("all receipt columns already chosen")

// Negotiator collects a receipt layout one typed column at a time.
// A rejected token leaves the chosen columns as they were.
type Negotiator struct {
	chosen []domain.Column
}

func NewNegotiator() *Negotiator {
	return &Negotiator{chosen: make([]domain.Column, 0, len(domain.Columns))}
}

// Offer tries to append the column typed as token.
func (n *Negotiator) Offer(token string) error {
	if n.Done() {
		return ErrLayoutComplete
	}

	v, err := strconv.Atoi(token)
	col := domain.Column(v)
	if err != nil || !col.Valid() {
		return &InputFormatError{Token: token, Message: MsgColumnOutOfRange}
	}
	if slices.Contains(n.chosen, col) {
		return &InputFormatError{Token: token, Message: MsgColumnRepeated}
	}

	n.chosen = append(n.chosen, col)
	return nil
}

func (n *Negotiator) Done() bool {
	return len(n.chosen) == len(domain.Columns)
}

// Chosen returns the columns accepted so far.
func (n *Negotiator) Chosen() []domain.Column {
	return slices.Clone(n.chosen)
}

// Layout returns the negotiated layout once every column has been chosen.
func (n *Negotiator) Layout() (domain.Layout, bool) {
	var l domain.Layout
	if !n.Done() {
		return l, false
	}
	copy(l[:], n.chosen)
	return l, true
}

// NegotiateLayout prompts on port until the operator has typed every column
// exactly once. Invalid tokens are answered with a message and read again;
// the only way out before completion is the input running dry.
func NegotiateLayout(port console.Port) (domain.Layout, error) {
	port.Prompt(ColumnPrompt)

	n := NewNegotiator()
	for !n.Done() {
		token, err := port.ReadToken()
		if err != nil {
			return domain.Layout{}, err
		}

		if err := n.Offer(token); err != nil {
			var formatErr *InputFormatError
			if errors.As(err, &formatErr) {
				port.Println(formatErr.Message)
				continue
			}
			return domain.Layout{}, err
		}
	}

	layout, _ := n.Layout()
	return layout, nil
}
