package repository

import (
	"errors"
	"fmt"

	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
)

// Wrap converts a store error into an application error about resource.
// Anything other than the sentinels is treated as the store being unreachable.
func Wrap(resource, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return apperrors.NotFound(resource, err)
	case errors.Is(err, ErrDuplicate):
		return apperrors.Conflict(resource+" already exists", err)
	default:
		return apperrors.Unavailable("store", fmt.Errorf("failed to %s: %w", op, err))
	}
}
