package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks requests rejected before any provider call
	// (unsupported interval or range, malformed as-of, empty symbol).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound means the provider had no usable price data for the request.
	ErrNotFound = errors.New("no price data for requested symbol/interval/range")
)

// ParamError carries a client-facing reason for a rejected parameter.
// It matches ErrInvalidParameter with errors.Is.
type ParamError struct {
	Reason string
}

func (e *ParamError) Error() string { return e.Reason }

func (e *ParamError) Is(target error) bool { return target == ErrInvalidParameter }

func invalidParam(format string, args ...any) error {
	return &ParamError{Reason: fmt.Sprintf(format, args...)}
}
