package client

import (
	"errors"
	"fmt"
)

// FetchKind classifies how a fetch failed.
type FetchKind string

const (
	// KindTransport covers DNS, connect, TLS and timeout failures.
	KindTransport FetchKind = "transport"
	// KindStatus is a non-2xx HTTP response.
	KindStatus FetchKind = "status"
	// KindDecode is a payload that could not be parsed.
	KindDecode FetchKind = "decode"
	// KindRejected is a well-formed envelope with success=false.
	KindRejected FetchKind = "rejected"
)

// FetchError is the single failure type surfaced by the client. Transport
// errors, non-success statuses, malformed payloads and server rejections
// all normalize into it; callers branch on Kind when they care.
type FetchError struct {
	Kind       FetchKind
	StatusCode int    // set for KindStatus
	Message    string // server-supplied message for KindRejected
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("fetch failed: status %d", e.StatusCode)
	case KindRejected:
		return fmt.Sprintf("request rejected: %s", e.Message)
	default:
		return fmt.Sprintf("fetch failed (%s): %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsRejection reports whether err is a server-side success=false response.
func IsRejection(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindRejected
}
