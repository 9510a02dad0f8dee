package source

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/parser"
	"github.com/xuri/excelize/v2"
)

// XLSX reads grids from an Office Open XML workbook.
type XLSX struct {
	f    *excelize.File
	name string
}

// OpenXLSX opens the workbook at path.
func OpenXLSX(path string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return NewXLSX(f, filepath.Base(path)), nil
}

// NewXLSX wraps an already opened excelize file.
func NewXLSX(f *excelize.File, name string) *XLSX {
	return &XLSX{f: f, name: name}
}

func (x *XLSX) Name() string {
	return x.name
}

func (x *XLSX) SheetNames(_ context.Context) ([]string, error) {
	return x.f.GetSheetList(), nil
}

// Grid reads cell text with excelize's display formatting applied and
// converts the sheet's merge references into rectangles.
func (x *XLSX) Grid(_ context.Context, sheet string) (*models.Grid, error) {
	rows, err := x.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	mergeCells, err := x.f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("read merges: %w", err)
	}

	merges := make([]models.MergeRect, 0, len(mergeCells))
	for _, mc := range mergeCells {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		rect, err := parser.ParseMergeRange(ref)
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", ref, err)
		}
		merges = append(merges, rect)
	}

	clearMergeInteriors(rows, merges)
	for i := range rows {
		rows[i] = trimRow(rows[i])
	}

	return &models.Grid{Cells: rows, Merges: merges}, nil
}

func (x *XLSX) Close() error {
	return x.f.Close()
}
