package listing

import (
	"errors"
	"fmt"
)

// ErrListingUnavailable is matched by errors returned when a directory can not
// be enumerated.
var ErrListingUnavailable = errors.New("listing unavailable")

// UnavailableError reports a directory that can not be enumerated: it is
// missing, not a directory or not readable.
type UnavailableError struct {
	Path string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("can not list %s: %v", e.Path, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrListingUnavailable
}
