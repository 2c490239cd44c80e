package check

import (
	"errors"
	"fmt"

	"github.com/samplerlab/modcheck/internal/model"
)

// ErrNotFound is the sentinel wrapped by NotFoundError. Callers can
// classify failures with errors.Is(err, check.ErrNotFound).
var ErrNotFound = errors.New("no matching connection")

// NotFoundError is returned by RegionCCView.At and ValueAt when no
// connection matches the requested target and CC number. It is a
// recoverable failure: test assertions use it to produce meaningful
// messages rather than aborting.
type NotFoundError struct {
	// CC is the controller number that was looked up.
	CC int
	// Target is the view's modulation target.
	Target model.ModKey
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no connection from CC %d to %s", e.CC, e.Target)
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
