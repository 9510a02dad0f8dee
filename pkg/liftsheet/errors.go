package liftsheet

import (
	"errors"
	"fmt"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/parser"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/source"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is not a workbook format we can read.
var ErrUnsupportedFormat = source.ErrUnsupportedFormat

// ErrNoBlocks indicates the workbook has no block worksheets.
var ErrNoBlocks = errors.New("no block worksheets found")

// ErrHeaderNotFound matches any *HeaderNotFoundError.
var ErrHeaderNotFound = parser.ErrHeaderNotFound

// HeaderNotFoundError reports the week-day and header label that could not
// be located.
type HeaderNotFoundError = parser.HeaderNotFoundError

// Components reported in ExtractionError.
const (
	ComponentSource = "source"
	ComponentSets   = "sets"
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "source", "sets"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
