package source

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"github.com/yamitzky/xlrd-go/xlrd"
)

// XLS reads grids from a legacy BIFF workbook.
type XLS struct {
	book *xlrd.Book
	name string
}

// OpenXLS opens the workbook at path.
func OpenXLS(path string) (*XLS, error) {
	book, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{
		Logfile:        io.Discard,
		FormattingInfo: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return &XLS{book: book, name: filepath.Base(path)}, nil
}

func (x *XLS) Name() string {
	return x.name
}

func (x *XLS) SheetNames(_ context.Context) ([]string, error) {
	return x.book.SheetNames(), nil
}

func (x *XLS) Grid(_ context.Context, sheet string) (*models.Grid, error) {
	sh, err := x.book.SheetByName(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	rows := make([][]string, sh.NRows)
	for r := 0; r < sh.NRows; r++ {
		row := make([]string, sh.NCols)
		for c := 0; c < sh.NCols; c++ {
			row[c] = xlsCellText(sh.Cell(r, c), x.book.Datemode)
		}
		rows[r] = row
	}

	merges := xlsMerges(sh.MergedCells)
	clearMergeInteriors(rows, merges)
	for i := range rows {
		rows[i] = trimRow(rows[i])
	}

	return &models.Grid{Cells: rows, Merges: merges}, nil
}

func (x *XLS) Close() error {
	x.book.ReleaseResources()
	return nil
}

// xlsMerges converts xlrd's 0-based, end-exclusive (rlo, rhi, clo, chi)
// ranges into 1-based rectangles.
func xlsMerges(ranges [][4]int) []models.MergeRect {
	merges := make([]models.MergeRect, 0, len(ranges))
	for _, r := range ranges {
		rlo, rhi, clo, chi := r[0], r[1], r[2], r[3]
		if rhi <= rlo || chi <= clo {
			continue
		}
		merges = append(merges, models.MergeRect{
			Row:     rlo + 1,
			Col:     clo + 1,
			NumRows: rhi - rlo,
			NumCols: chi - clo,
		})
	}
	return merges
}

func xlsCellText(cell *xlrd.Cell, datemode int) string {
	if cell == nil {
		return ""
	}
	switch cell.CType {
	case xlrd.XL_CELL_EMPTY, xlrd.XL_CELL_BLANK, xlrd.XL_CELL_ERROR:
		return ""
	case xlrd.XL_CELL_DATE:
		if v, ok := cell.Value.(float64); ok {
			if t, err := xlrd.XldateAsDatetime(v, datemode); err == nil {
				return t.Format("2006-01-02")
			}
		}
	case xlrd.XL_CELL_BOOLEAN:
		switch v := cell.Value.(type) {
		case bool:
			return strconv.FormatBool(v)
		case int:
			return strconv.FormatBool(v != 0)
		}
	}

	switch v := cell.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
