package inventory

import (
	"errors"
	"fmt"
)

// InvariantError reports a broken stock invariant. It signals a programming error
// in the caller (a validation precondition was skipped), never bad user input.
type InvariantError struct {
	Op      string
	Product string
	Detail  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("inventory invariant violated: %s %q: %s", e.Op, e.Product, e.Detail)
}

// IsInvariantViolation checks if err is, or wraps, an InvariantError
func IsInvariantViolation(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}

func invariantf(op, product, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Op: op, Product: product, Detail: fmt.Sprintf(format, args...)}
}
