package parser

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

// blockTitlePattern matches "B3", "Block 3", "Block 3 - Peaking" and
// "Block 3 (Deload)".
var blockTitlePattern = regexp.MustCompile(
	`(?i)^(?:B|Block)\s*(?P<number>\d+)` +
		`(?:\s*[-–]\s*(?P<comment>[^()]+?)|\s*\((?P<comment2>[^)]+)\))?$`,
)

const (
	startDatePrefix = "Start Date:"
	endDatePrefix   = "End Date:"
)

// dateLayouts are tried in order when reading block dates.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ParseBlockTitle parses a worksheet title into a Block. It reports false
// for sheets that are not training blocks.
func ParseBlockTitle(title string) (models.Block, bool) {
	title = strings.TrimSpace(title)
	m := blockTitlePattern.FindStringSubmatch(title)
	if m == nil {
		return models.Block{}, false
	}

	number, err := strconv.Atoi(m[blockTitlePattern.SubexpIndex("number")])
	if err != nil {
		return models.Block{}, false
	}

	comment := m[blockTitlePattern.SubexpIndex("comment")]
	if comment == "" {
		comment = m[blockTitlePattern.SubexpIndex("comment2")]
	}

	return models.Block{
		Number:  number,
		Comment: strings.TrimSpace(comment),
		Title:   title,
	}, true
}

// SelectBlocks returns the block sheets among titles ordered by block
// number. Titles with equal numbers keep their workbook order.
func SelectBlocks(titles []string) []models.Block {
	var blocks []models.Block
	for _, t := range titles {
		if b, ok := ParseBlockTitle(t); ok {
			b.Title = t
			blocks = append(blocks, b)
		}
	}
	slices.SortStableFunc(blocks, func(a, b models.Block) int {
		return a.Number - b.Number
	})
	return blocks
}

// FindBlockDates scans rows top-down for "Start Date:" and "End Date:"
// cells and stops after the first row holding either. Values that do not
// parse as a date are returned as nil.
func FindBlockDates(g *models.Grid) (start, end *time.Time) {
	var startText, endText string
	for _, row := range g.Cells {
		for _, cell := range row {
			if v, ok := strings.CutPrefix(cell, startDatePrefix); ok {
				startText = strings.TrimSpace(v)
			}
			if v, ok := strings.CutPrefix(cell, endDatePrefix); ok {
				endText = strings.TrimSpace(v)
			}
		}
		if startText != "" || endText != "" {
			break
		}
	}
	return parseDate(startText), parseDate(endText)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
