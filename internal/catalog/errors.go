package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the handle did not resolve to a product, or the
// document it resolved to was unusable.
var ErrNotFound = errors.New("product not found")

// TransportError wraps a network-level failure reaching the platform,
// including timeouts. It is never retried here.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
