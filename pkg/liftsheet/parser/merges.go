package parser

import (
	"fmt"
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"github.com/xuri/excelize/v2"
)

// ResolveRegion returns the first merged range (in list order) containing
// (row, col). When no range contains the cell, a 1x1 range at the cell is
// returned.
func ResolveRegion(merges []models.MergeRect, row, col int) models.MergeRect {
	for _, mr := range merges {
		if mr.Contains(row, col) {
			return mr
		}
	}
	return models.MergeRect{Row: row, Col: col, NumRows: 1, NumCols: 1}
}

// ParseMergeRange parses a range reference such as "B2:D5" into a
// MergeRect. Absolute markers and a leading sheet name are accepted
// ('Block 1'!$B$2:$D$5). A single cell reference yields a 1x1 range.
func ParseMergeRange(ref string) (models.MergeRect, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.MergeRect{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.MergeRect{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.MergeRect{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	// Normalize reversed references like "D5:B2".
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.MergeRect{
		Row:     startRow,
		Col:     startCol,
		NumRows: endRow - startRow + 1,
		NumCols: endCol - startCol + 1,
	}, nil
}
