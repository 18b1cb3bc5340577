package growth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotReady is returned by a Tracker used before Initialize.
var ErrNotReady = errors.New("tracker is not initialized")

// ValidationError lists every reason an input was rejected. It is returned
// before any state mutation or remote call.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "; ")
}

// validation accumulates failures, and returns nil if there are none.
type validation []string

func (v *validation) check(ok bool, format string, args ...any) {
	if !ok {
		*v = append(*v, fmt.Sprintf(format, args...))
	}
}

func (v validation) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Failures: v}
}

// StorageWriteError is returned when a collection could not be persisted.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("cannot save %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// RemoteAdviceError is returned when the advice model could not be reached or
// its answer did not have the expected shape. The request can be sent again
// as is.
type RemoteAdviceError struct {
	Err error
}

func (e *RemoteAdviceError) Error() string {
	return fmt.Sprintf("failed to generate advice: %v", e.Err)
}

func (e *RemoteAdviceError) Unwrap() error { return e.Err }

// Retryable is always true: nothing was kept from the failed attempt.
func (e *RemoteAdviceError) Retryable() bool { return true }
