package parser

import (
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

// Header labels searched for on an anchor's top row.
const (
	HeaderExercise = "Exercise"
	HeaderNotes    = "Notes"
)

// Headers holds the resolved 1-based header columns for one anchor.
type Headers struct {
	Exercise int
	Notes    int
}

// LocateHeaders resolves the Exercise and Notes columns for an anchor whose
// merged region is region. Both lookups are relative to the region's top row
// and only consider columns right of the region's first column.
func LocateHeaders(g *models.Grid, anchor Anchor, region models.MergeRect) (Headers, error) {
	exCol, ok := findExerciseColumn(g, region)
	if !ok {
		return Headers{}, &HeaderNotFoundError{
			WeekDay: anchor.WeekDay,
			Header:  HeaderExercise,
			Row:     anchor.Row,
			Col:     anchor.Col,
		}
	}

	notesCol, ok := findNotesColumn(g, region)
	if !ok {
		return Headers{}, &HeaderNotFoundError{
			WeekDay: anchor.WeekDay,
			Header:  HeaderNotes,
			Row:     anchor.Row,
			Col:     anchor.Col,
		}
	}

	return Headers{Exercise: exCol, Notes: notesCol}, nil
}

// findExerciseColumn tries merged header cells first, then falls back to a
// left-to-right scan of the top row.
func findExerciseColumn(g *models.Grid, region models.MergeRect) (int, bool) {
	if col, ok := findMergedHeader(g, region, HeaderExercise); ok {
		return col, true
	}

	top := region.Row
	for col := region.Col + 1; col <= g.RowLen(top); col++ {
		if strings.TrimSpace(g.Cell(top, col)) == HeaderExercise {
			return col, true
		}
	}
	return 0, false
}

// findNotesColumn tries merged header cells first, then falls back to a
// right-to-left scan of the top row, so the rightmost Notes cell wins.
func findNotesColumn(g *models.Grid, region models.MergeRect) (int, bool) {
	if col, ok := findMergedHeader(g, region, HeaderNotes); ok {
		return col, true
	}

	top := region.Row
	for col := g.RowLen(top); col > region.Col; col-- {
		if strings.TrimSpace(g.Cell(top, col)) == HeaderNotes {
			return col, true
		}
	}
	return 0, false
}

// findMergedHeader returns the column of the first merge (in list order) that
// spans the region's top row, starts right of the region and whose top-left
// cell reads label. Merges anchored outside the grid are skipped.
func findMergedHeader(g *models.Grid, region models.MergeRect, label string) (int, bool) {
	for _, mr := range g.Merges {
		if !mr.ContainsRow(region.Row) || mr.Col <= region.Col {
			continue
		}
		if !g.Has(mr.Row, mr.Col) {
			continue
		}
		if strings.TrimSpace(g.Cell(mr.Row, mr.Col)) == label {
			return mr.Col, true
		}
	}
	return 0, false
}
