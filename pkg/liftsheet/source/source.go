// Package source reads worksheet grids from workbook files and Google Sheets.
//
// Every source returns cell text with merged-cell interiors blank: only the
// top-left cell of a merge carries the merge's value.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

// ErrUnsupportedFormat indicates the input is not a workbook format we can read.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Source is a workbook that can produce grids for its worksheets.
type Source interface {
	// Name is the workbook file name or spreadsheet id.
	Name() string
	// SheetNames lists worksheet titles in workbook order.
	SheetNames(ctx context.Context) ([]string, error)
	// Grid reads one worksheet's cell text and merge list.
	Grid(ctx context.Context, sheet string) (*models.Grid, error)
	Close() error
}

// Open opens a workbook file, choosing the reader from the file extension.
func Open(path string) (Source, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return OpenXLSX(path)
	case ".xls":
		return OpenXLS(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// clearMergeInteriors blanks every merged cell except the top-left one.
func clearMergeInteriors(cells [][]string, merges []models.MergeRect) {
	for _, m := range merges {
		for r := m.Row; r <= m.LastRow() && r <= len(cells); r++ {
			row := cells[r-1]
			for c := m.Col; c <= m.LastCol() && c <= len(row); c++ {
				if r == m.Row && c == m.Col {
					continue
				}
				row[c-1] = ""
			}
		}
	}
}

// trimRow drops trailing empty cells so row lengths match what a
// spreadsheet UI would show.
func trimRow(row []string) []string {
	n := len(row)
	for n > 0 && row[n-1] == "" {
		n--
	}
	return row[:n]
}
