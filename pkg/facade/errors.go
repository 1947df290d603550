package facade

import (
	"fmt"
)

// Kind classifies a decode failure. Kinds are comparable and usable as
// targets for errors.Is.
type Kind string

const (
	MalformedDate   Kind = "malformed date"
	MalformedTime   Kind = "malformed time"
	MalformedAmount Kind = "malformed amount"
	UnknownCode     Kind = "unknown code"
)

func (k Kind) Error() string { return string(k) }

// DecodeError reports an element that was present but failed to decode.
type DecodeError struct {
	Attribute string
	Binding   Binding
	Raw       string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Attribute, e.Binding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeFailure(kind Kind, raw string) error {
	return fmt.Errorf("%w: %q", kind, raw)
}
