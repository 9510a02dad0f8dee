// Package parser implements the training sheet extraction engine: anchor
// scanning, merge resolution, header lookup, exercise span backfill, set
// extraction and numeric normalization. Everything here is pure and works
// on an immutable models.Grid.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

var weekDayPattern = regexp.MustCompile(`(?i)^W(\d+)D(\d+)$`)

// Anchor is a cell naming one week/day session block.
type Anchor struct {
	// WeekDay is the trimmed anchor text, e.g. "W1D2".
	WeekDay string
	// Row and Col are the 1-based coordinates of the anchor cell.
	Row int
	Col int
}

// ScanAnchors returns every week/day anchor in the grid in row-major order.
// Repeated anchor texts are returned once per occurrence.
func ScanAnchors(g *models.Grid) []Anchor {
	var anchors []Anchor
	for rowIdx, row := range g.Cells {
		for colIdx, cell := range row {
			text := strings.TrimSpace(cell)
			if !weekDayPattern.MatchString(text) {
				continue
			}
			anchors = append(anchors, Anchor{
				WeekDay: text,
				Row:     rowIdx + 1,
				Col:     colIdx + 1,
			})
		}
	}
	return anchors
}

// ParseWeekDay splits a week/day token such as "W3D2" into its numbers.
func ParseWeekDay(s string) (week, day int, ok bool) {
	m := weekDayPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}
	week, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	day, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return week, day, true
}
