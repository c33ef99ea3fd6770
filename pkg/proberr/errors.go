package proberr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind classifies a probe failure.
type Kind string

const (
	// KindAuth means the service rejected the supplied credentials.
	KindAuth Kind = "auth"
	// KindTimeout means the service did not answer within the probe deadline.
	KindTimeout Kind = "timeout"
	// KindMissing means the client capability is not available in this build.
	KindMissing Kind = "missing"
	// KindUnavailable covers every other connectivity failure.
	KindUnavailable Kind = "unavailable"
)

// ProbeError is a structured probe failure.
type ProbeError struct {
	Kind    Kind
	Message string
	Err     error // wrapped underlying error
}

func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// MissingCapability reports an absent client library/package.
func MissingCapability(client string) *ProbeError {
	return &ProbeError{
		Kind:    KindMissing,
		Message: fmt.Sprintf("%s client support not available", client),
	}
}

var authPatterns = []string{
	"authentication",
	"unauthorized",
	"unauthenticated",
	"invalid credentials",
	"401",
}

var timeoutPatterns = []string{
	"i/o timeout",
	"connection timeout",
	"deadline exceeded",
	"timed out",
}

// Classify inspects an underlying error and assigns a failure kind.
// Recognition is by error type where possible and by text pattern
// otherwise, since most drivers surface auth rejections as plain strings.
func Classify(err error) Kind {
	if err == nil {
		return KindUnavailable
	}

	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	text := strings.ToLower(err.Error())
	for _, p := range authPatterns {
		if strings.Contains(text, p) {
			return KindAuth
		}
	}
	for _, p := range timeoutPatterns {
		if strings.Contains(text, p) {
			return KindTimeout
		}
	}

	return KindUnavailable
}

// IsAuth reports whether err looks like a credential rejection.
func IsAuth(err error) bool {
	return Classify(err) == KindAuth
}

// IsTimeout reports whether err looks like a probe deadline expiry.
func IsTimeout(err error) bool {
	return Classify(err) == KindTimeout
}

// Describe renders the operator-facing detail string for a probe failure.
// Auth failures get a credential hint, timeouts a stable short message,
// anything else surfaces the raw error text verbatim.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	switch Classify(err) {
	case KindAuth:
		return "authentication failed (check credentials)"
	case KindTimeout:
		return "connection timeout"
	case KindMissing:
		var pe *ProbeError
		if errors.As(err, &pe) {
			return pe.Message
		}
		return err.Error()
	default:
		return err.Error()
	}
}
