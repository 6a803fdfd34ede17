package statement

import (
	"errors"
	"fmt"
)

// ErrMalformedDate is wrapped by DateFormatError.
var ErrMalformedDate = errors.New("malformed date")

// RangeError reports a requested window outside the permitted lookback.
type RangeError struct {
	Reason string
}

func (e *RangeError) Error() string {
	return e.Reason
}

// DateFormatError reports a date bound that is not eight digits.
type DateFormatError struct {
	Field string
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q, expected DDMMYYYY", e.Field, e.Value)
}

func (e *DateFormatError) Unwrap() error {
	return ErrMalformedDate
}
