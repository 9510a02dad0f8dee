package store

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// LoadError reports a failed block load. WeekDay is empty when the failure
// is not tied to one day.
type LoadError struct {
	Block   string
	WeekDay string
	Err     error
}

func (e *LoadError) Error() string {
	if e.WeekDay == "" {
		return fmt.Sprintf("load %s: %v", e.Block, e.Err)
	}
	return fmt.Sprintf("load %s %s: %v", e.Block, e.WeekDay, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SQLState returns the PostgreSQL error code, or "" for non-server errors.
func (e *LoadError) SQLState() string {
	var pqErr *pq.Error
	if errors.As(e.Err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// isRetryable reports transaction rollback errors (class 40), such as
// serialization failures and deadlocks.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "40"
	}
	return false
}
