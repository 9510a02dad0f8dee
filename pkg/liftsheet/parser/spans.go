package parser

import (
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

// headerRows is the number of header lines between an anchor region's top
// row and its first data row.
const headerRows = 2

// ExerciseSpan is a row range sharing one exercise name because the name
// cell was merged vertically.
type ExerciseSpan struct {
	Name    string
	FromRow int
	ToRow   int
}

// dataRows returns the first and last data row (inclusive) of a region.
// last < first when the region has no data rows.
func dataRows(region models.MergeRect) (first, last int) {
	return region.Row + headerRows, region.LastRow()
}

// BuildSpans collects the merges in exCol that overlap the region's data
// rows and names each after its top-left cell. Merges whose name is blank
// produce no span.
func BuildSpans(g *models.Grid, exCol int, region models.MergeRect) []ExerciseSpan {
	first, last := dataRows(region)

	var spans []ExerciseSpan
	for _, mr := range g.Merges {
		if mr.Col != exCol || mr.Row > last || mr.LastRow() < first {
			continue
		}
		name := strings.TrimSpace(g.Cell(mr.Row, mr.Col))
		if name == "" {
			continue
		}
		spans = append(spans, ExerciseSpan{
			Name:    name,
			FromRow: mr.Row,
			ToRow:   mr.LastRow(),
		})
	}
	return spans
}

// spanName returns the name of the first span covering row.
func spanName(spans []ExerciseSpan, row int) (string, bool) {
	for _, s := range spans {
		if s.FromRow <= row && row <= s.ToRow {
			return s.Name, true
		}
	}
	return "", false
}
