package liftsheet

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/parser"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/source"
	"golang.org/x/sync/errgroup"
)

// Extract extracts block sheets from a workbook file.
func Extract(ctx context.Context, path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ExtractSource(ctx, src, opts)
}

// ExtractSource extracts block sheets from any grid source. Grids are read
// sequentially; extraction runs concurrently up to opts.Workers() and the
// result keeps block order.
func ExtractSource(ctx context.Context, src source.Source, opts Options) (*models.WorkbookData, error) {
	titles, err := src.SheetNames(ctx)
	if err != nil {
		return nil, NewExtractionError("", ComponentSource, err)
	}

	blocks := selectSheets(titles, opts.AllSheets)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%s: %w", src.Name(), ErrNoBlocks)
	}

	grids := make([]*models.Grid, len(blocks))
	for i, b := range blocks {
		g, err := src.Grid(ctx, b.Title)
		if err != nil {
			return nil, NewExtractionError(b.Title, ComponentSource, err)
		}
		grids[i] = g
	}

	sheets := make([]models.SheetData, len(blocks))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers())
	for i := range blocks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sd, err := ExtractSheet(blocks[i], grids[i], opts)
			if err != nil {
				return err
			}
			sheets[i] = *sd
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &models.WorkbookData{
		BookName: src.Name(),
		Sheets:   sheets,
	}, nil
}

// ExtractSheet extracts and normalizes one block sheet. Block dates are
// read from the grid when the block does not carry them already.
func ExtractSheet(block models.Block, g *models.Grid, opts Options) (*models.SheetData, error) {
	log := opts.logger().With("sheet", block.Title)

	if block.StartDate == nil && block.EndDate == nil {
		block.StartDate, block.EndDate = parser.FindBlockDates(g)
	}

	records, failures, err := ExtractGrid(g, opts)
	if err != nil {
		return nil, NewExtractionError(block.Title, ComponentSets, err)
	}
	for _, f := range failures {
		log.Warn("skipped anchor", "week_day", f.WeekDay, "row", f.Row, "col", f.Col, "reason", f.Reason)
	}

	normalized := opts.Normalizer.NormalizeRecords(records, opts.ThreadPreviousRPE)
	for _, nr := range normalized {
		if len(nr.Dropped) > 0 {
			log.Debug("dropped unparseable values",
				"week_day", nr.WeekDay,
				"exercise", nr.Exercise,
				"set_number", nr.SetNumber,
				"fields", nr.Dropped,
			)
		}
	}

	log.Debug("extracted sheet", "records", len(records), "failures", len(failures))

	return &models.SheetData{
		Block:      block,
		Records:    records,
		Normalized: normalized,
		Failures:   failures,
	}, nil
}

// ExtractGrid extracts raw set records from every anchor of g in scan order.
// Under HeaderPolicySkip a header failure drops only its anchor and is
// returned in failures; any other policy stops at the first failure.
func ExtractGrid(g *models.Grid, opts Options) ([]models.SetRecord, []models.AnchorFailure, error) {
	var (
		records  []models.SetRecord
		failures []models.AnchorFailure
	)

	for _, anchor := range parser.ScanAnchors(g) {
		recs, err := parser.ExtractAnchor(g, anchor, opts.Offsets)
		if err != nil {
			if opts.ShouldSkipFailedAnchors() && errors.Is(err, parser.ErrHeaderNotFound) {
				failures = append(failures, models.AnchorFailure{
					WeekDay: anchor.WeekDay,
					Row:     anchor.Row,
					Col:     anchor.Col,
					Reason:  err.Error(),
				})
				continue
			}
			return nil, nil, err
		}
		records = append(records, recs...)
	}

	return records, failures, nil
}

// selectSheets returns block sheets in block order. With all set, other
// sheets follow in workbook order.
func selectSheets(titles []string, all bool) []models.Block {
	blocks := parser.SelectBlocks(titles)
	if !all {
		return blocks
	}

	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		seen[b.Title] = true
	}
	for _, t := range titles {
		if !seen[t] {
			blocks = append(blocks, models.Block{Title: t})
		}
	}
	return blocks
}
