package opensearch

import (
	"fmt"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// Error is a failed call to the cluster. Transport failures have a zero
// Status and carry the cause in Err.
type Error struct {
	Status int
	Body   string
	Err    error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("opensearch: %v", e.Err)
	}
	return fmt.Sprintf("opensearch error (status %d): %s", e.Status, e.Body)
}

// Unwrap exposes the cause. Transport faults and 5xx responses also
// match domain.ErrSearchUnavailable.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Status == 0 || e.Status >= 500 {
		errs = append(errs, domain.ErrSearchUnavailable)
	}
	return errs
}
