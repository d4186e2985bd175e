package auth

import (
	"errors"
	"fmt"
)

// RejectKind says why an authentication or authorization step did not succeed.
type RejectKind string

const (
	KindInvalidCredentials RejectKind = "invalid_credentials"
	KindExpired            RejectKind = "expired"
	KindBadSignature       RejectKind = "bad_signature"
	KindMalformed          RejectKind = "malformed"
	KindInactive           RejectKind = "inactive"
	KindForbidden          RejectKind = "forbidden"
)

// Rejected is a terminal per-request failure. It never wraps the underlying
// cause: token and credential internals must not leak into error payloads.
type Rejected struct {
	Kind RejectKind
}

func (r *Rejected) Error() string {
	return "auth rejected: " + string(r.Kind)
}

func Reject(kind RejectKind) error {
	return &Rejected{Kind: kind}
}

// KindOf returns the rejection kind of err, or "" if err is not a Rejected.
func KindOf(err error) RejectKind {
	var r *Rejected
	if errors.As(err, &r) {
		return r.Kind
	}
	return ""
}

var (
	// ErrMisconfigured is fatal at process startup, never per-request.
	ErrMisconfigured = errors.New("auth config invalid")

	// ErrDirectoryUnavailable marks a directory I/O failure. It is propagated
	// as-is so an outage is never reported as a bad login.
	ErrDirectoryUnavailable = errors.New("user directory unavailable")
)

func directoryUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
}
