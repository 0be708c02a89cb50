package remote

import (
	"context"
	"errors"
	"fmt"
)

// FailureKind is the closed set of ways a client operation can fail.
// Every call site reacts to one of these kinds instead of matching on
// error strings.
type FailureKind int

const (
	// FailureTransport: no response at all (network, DNS, timeout).
	FailureTransport FailureKind = iota + 1
	// FailureRejected: response received with a non-success status.
	FailureRejected
	// FailureDegraded: success status but the content is unusable.
	FailureDegraded
	// FailureValidation: caught locally before any network call.
	FailureValidation
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureRejected:
		return "rejected"
	case FailureDegraded:
		return "degraded"
	case FailureValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Failure carries the classified kind alongside the raw diagnostics.
type Failure struct {
	Kind   FailureKind
	Op     string
	Status int    // set for FailureRejected
	Body   string // raw response body, diagnostic only
	Err    error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case FailureRejected:
		return fmt.Sprintf("%s: remote rejected with status %d: %s", f.Op, f.Status, f.Body)
	case FailureValidation:
		return fmt.Sprintf("%s: %s", f.Op, f.Body)
	default:
		return fmt.Sprintf("%s: %s failure: %v", f.Op, f.Kind, f.Err)
	}
}

func (f *Failure) Unwrap() error { return f.Err }

// Transportf wraps a no-response error.
func Transportf(op string, err error) *Failure {
	return &Failure{Kind: FailureTransport, Op: op, Err: err}
}

// Rejectedf wraps a non-success response, keeping the body as diagnostics.
func Rejectedf(op string, status int, body string) *Failure {
	return &Failure{Kind: FailureRejected, Op: op, Status: status, Body: body}
}

// Degradedf wraps a successful response whose content was unusable.
func Degradedf(op string, err error) *Failure {
	return &Failure{Kind: FailureDegraded, Op: op, Err: err}
}

// Validationf wraps a local pre-flight validation failure.
func Validationf(op, format string, args ...any) *Failure {
	return &Failure{Kind: FailureValidation, Op: op, Body: fmt.Sprintf(format, args...)}
}

// Classify maps any error from this module into the failure taxonomy.
// Unknown errors count as transport failures: they mean no usable response
// was obtained.
func Classify(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureTransport
	}
	return FailureTransport
}
