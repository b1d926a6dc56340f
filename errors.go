package compound

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every InvalidParameterError.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError identifies an investment field that cannot be projected.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }
