package sheets

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by every gateway call when no endpoint URL has
// been configured. An unset endpoint is a valid state, not a bug, so callers
// surface it instead of logging a failure.
var ErrNotConnected = errors.New("sheets endpoint not configured")

// TransportError wraps a request that never produced a usable envelope:
// network failure, timeout, or a body that is not JSON. Never retried here.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sheets %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RequestError carries the remote store's own failure: the envelope arrived
// with success=false. Login mismatches surface through this type too.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// IsRequestError reports whether the remote store rejected the call, as
// opposed to the call never completing.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}
