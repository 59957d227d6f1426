package gosms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// ValidationError reports a request the caller must fix. Handlers map it
// to HTTP 400; it is never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// TransportError reports a failure to reach the gateway or an unexpected
// HTTP status from it. Handlers map it to HTTP 500. A failure code inside
// a 2xx gateway reply is a business failure, not a TransportError.
type TransportError struct {
	Msg string
	Err error
}

func (e *TransportError) Error() string { return e.Msg }
func (e *TransportError) Unwrap() error { return e.Err }

// ClassifyNetError renders an outbound-call fault as a readable message.
// The checks run in a fixed order so the output stays deterministic.
func ClassifyNetError(err error) string {
	switch {
	case err == nil:
		return "Unknown error calling SMS provider"
	case errors.Is(err, syscall.ECONNRESET):
		return "Connection reset by SMS provider"
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || isTimeout(err):
		return "Request to SMS provider timed out or was aborted"
	case isUnreachable(err):
		return "SMS provider unreachable or DNS lookup failed"
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		return "Request sent but no response received from SMS provider"
	default:
		return err.Error()
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ECONNREFUSED)
}
