package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/source"
	"google.golang.org/api/option"
)

// openSource opens the workbook file given on the command line, or the
// configured Google spreadsheet when no file is given.
func (a *app) openSource(ctx context.Context, args []string) (source.Source, error) {
	if len(args) > 0 {
		path := args[0]
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return source.Open(path)
	}

	id := sheetID
	if id == "" {
		var err error
		if id, err = a.cfg.SpreadsheetID(); err != nil {
			return nil, err
		}
	}
	if a.cfg.GoogleCreds == "" {
		return nil, errors.New("GOOGLE_CREDS must be set to read Google Sheets")
	}

	client, err := source.ServiceAccountClient(ctx, a.cfg.GoogleCreds)
	if err != nil {
		return nil, err
	}
	return source.NewGoogleSheets(ctx, id, option.WithHTTPClient(client))
}

func (a *app) extract(ctx context.Context, args []string) (*models.WorkbookData, error) {
	src, err := a.openSource(ctx, args)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	a.log.Info("extracting", "source", src.Name())
	wb, err := liftsheet.ExtractSource(ctx, src, a.opts)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	return wb, nil
}
