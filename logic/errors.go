package logic

import "fmt"

// StatusCode represents the category of a rejected request.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
)

// Error message constants for the cart domain.
const (
	ErrMsgDiscountRequired    = "Discount value is required"
	ErrMsgInvalidDiscountType = "Invalid discount type"
	ErrMsgPercentageInvalid   = "Percentage must be a number"
	ErrMsgPercentageRange     = "Percentage must be 0-100"
	ErrMsgFixedInvalid        = "Fixed discount must be a number"
	ErrMsgFixedDiscountNeg    = "Fixed discount cannot be negative"
	ErrMsgInvalidLogLevel     = "Invalid log level"
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when input at the process boundary is rejected.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// NewInvalidArgument creates an INVALID_ARGUMENT error.
func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// NewInvalidArgumentf creates an INVALID_ARGUMENT error with formatting.
func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}
