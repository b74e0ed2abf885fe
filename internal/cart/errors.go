package cart

import "fmt"

// Kind classifies a rejected cart operation.
type Kind int

const (
	KindQuantityNotNumeric Kind = iota + 1
	KindQuantityNotPositive
	KindItemNotPurchasable
	KindItemNotInCart
)

// Messages shown to the operator.
const (
	MsgQuantityNotNumeric  = "The quantity must be a number."
	MsgQuantityNotPositive = "The quantity must be greater than zero."
	MsgItemNotPurchasable  = "Not available for purchase."
	MsgItemNotInCart       = "Not currently in the shopping cart."
	MsgColumnOutOfRange    = "Please enter a number between 1 and 3."
	MsgColumnRepeated      = "Already entered that number. Try again."
)

func (k Kind) String() string {
	switch k {
	case KindQuantityNotNumeric:
		return "quantity not numeric"
	case KindQuantityNotPositive:
		return "quantity not positive"
	case KindItemNotPurchasable:
		return "item not purchasable"
	case KindItemNotInCart:
		return "item not in cart"
	default:
		return "unknown"
	}
}

// ValidationError rejects an add or remove. The cart is unchanged when one is returned.
type ValidationError struct {
	Kind     Kind
	ItemType string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same Kind, so the Err* values work with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrQuantityNotNumeric  = &ValidationError{Kind: KindQuantityNotNumeric, Message: MsgQuantityNotNumeric}
	ErrQuantityNotPositive = &ValidationError{Kind: KindQuantityNotPositive, Message: MsgQuantityNotPositive}
	ErrItemNotPurchasable  = &ValidationError{Kind: KindItemNotPurchasable, Message: MsgItemNotPurchasable}
	ErrItemNotInCart       = &ValidationError{Kind: KindItemNotInCart, Message: MsgItemNotInCart}
)

func newValidationError(kind Kind, itemType string) *ValidationError {
	var msg string
	switch kind {
	case KindQuantityNotNumeric:
		msg = MsgQuantityNotNumeric
	case KindQuantityNotPositive:
		msg = MsgQuantityNotPositive
	case KindItemNotPurchasable:
		msg = MsgItemNotPurchasable
	case KindItemNotInCart:
		msg = MsgItemNotInCart
	}
	return &ValidationError{Kind: kind, ItemType: itemType, Message: msg}
}

// InputFormatError rejects one token during column negotiation.
// It never escapes PrintReceipt; the message is shown and the operator asked again.
type InputFormatError struct {
	Token   string
	Message string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s (got %q)", e.Message, e.Token)
}
