package parser

import (
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

// Offsets are the metric column positions relative to the Exercise column.
type Offsets struct {
	PrescribedReps  int
	PrescribedRPE   int
	CompletedWeight int
	CompletedReps   int
	CompletedRPE    int
}

// DefaultOffsets returns the column layout used by the training sheets.
func DefaultOffsets() Offsets {
	return Offsets{
		PrescribedReps:  3,
		PrescribedRPE:   6,
		CompletedWeight: 10,
		CompletedReps:   11,
		CompletedRPE:    12,
	}
}

// ExtractAnchor runs the full pipeline for a single anchor: region
// resolution, header lookup, span backfill and set extraction.
func ExtractAnchor(g *models.Grid, anchor Anchor, offsets Offsets) ([]models.SetRecord, error) {
	region := ResolveRegion(g.Merges, anchor.Row, anchor.Col)
	headers, err := LocateHeaders(g, anchor, region)
	if err != nil {
		return nil, err
	}
	spans := BuildSpans(g, headers.Exercise, region)
	return ExtractSets(g, anchor, region, headers, spans, offsets), nil
}

// ExtractAll extracts every anchor in scan order and stops at the first
// header failure.
func ExtractAll(g *models.Grid, offsets Offsets) ([]models.SetRecord, error) {
	var records []models.SetRecord
	for _, anchor := range ScanAnchors(g) {
		recs, err := ExtractAnchor(g, anchor, offsets)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// ExtractSets walks the data rows of region and emits one record per
// non-blank row. Set numbers restart at 1 whenever the exercise differs from
// the previous emitted row; blank rows leave that state untouched.
func ExtractSets(g *models.Grid, anchor Anchor, region models.MergeRect, headers Headers, spans []ExerciseSpan, offsets Offsets) []models.SetRecord {
	first, last := dataRows(region)
	if last > g.NumRows() {
		last = g.NumRows()
	}

	var (
		records  []models.SetRecord
		prevEx   string
		emitted  bool
		setCount = 1
	)

	exCol := headers.Exercise
	for row := first; row <= last; row++ {
		exercise := strings.TrimSpace(g.Cell(row, exCol))
		if exercise == "" {
			exercise, _ = spanName(spans, row)
		}

		rec := models.SetRecord{
			WeekDay:         anchor.WeekDay,
			Exercise:        exercise,
			PrescribedReps:  g.Cell(row, exCol+offsets.PrescribedReps),
			PrescribedRPE:   g.Cell(row, exCol+offsets.PrescribedRPE),
			CompletedWeight: g.Cell(row, exCol+offsets.CompletedWeight),
			CompletedReps:   g.Cell(row, exCol+offsets.CompletedReps),
			CompletedRPE:    g.Cell(row, exCol+offsets.CompletedRPE),
			Notes:           g.Cell(row, headers.Notes),
		}
		if isBlankRecord(rec) {
			continue
		}

		if !emitted || exercise != prevEx {
			setCount = 1
			prevEx = exercise
			emitted = true
		}
		rec.SetNumber = setCount
		records = append(records, rec)
		setCount++
	}

	return records
}

// isBlankRecord reports whether every metric and the notes are whitespace.
func isBlankRecord(r models.SetRecord) bool {
	for _, v := range []string{
		r.PrescribedReps,
		r.PrescribedRPE,
		r.CompletedWeight,
		r.CompletedReps,
		r.CompletedRPE,
		r.Notes,
	} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
