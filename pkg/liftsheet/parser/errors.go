package parser

import (
	"errors"
	"fmt"
)

// ErrHeaderNotFound indicates that a required header column could not be
// located for an anchor.
var ErrHeaderNotFound = errors.New("header not found")

// HeaderNotFoundError reports which header was missing for which session.
type HeaderNotFoundError struct {
	// WeekDay is the anchor text, e.g. "W3D1".
	WeekDay string
	// Header is the header label that was searched for.
	Header string
	// Row and Col locate the anchor cell (1-based).
	Row int
	Col int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("could not find %q header for %s", e.Header, e.WeekDay)
}

func (e *HeaderNotFoundError) Unwrap() error {
	return ErrHeaderNotFound
}
