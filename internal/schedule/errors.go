package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey means the process was started without ISLAMIC_API_KEY.
	ErrMissingAPIKey = errors.New("missing IslamicAPI key")

	// ErrUnexpectedShape means the upstream body had no data.fasting list.
	ErrUnexpectedShape = errors.New("unexpected IslamicAPI response shape (missing data.fasting)")

	// ErrNoFastingDays means nothing survived filtering.
	ErrNoFastingDays = errors.New("no fasting days returned from IslamicAPI")
)

// FormatError is returned by NormalizeTime for strings that are neither
// H:MM nor H:MM AM/PM.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized time format: %q", e.Value)
}

// UpstreamError covers transport failures, timeouts, non-2xx replies and
// undecodable bodies. Status is 0 when no HTTP status was received.
type UpstreamError struct {
	Status int
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		if e.Detail == "" {
			return fmt.Sprintf("upstream IslamicAPI error: HTTP %d", e.Status)
		}
		return fmt.Sprintf("upstream IslamicAPI error: HTTP %d - %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("failed to fetch Ramadan data: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
