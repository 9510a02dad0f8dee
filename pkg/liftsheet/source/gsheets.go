package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheets reads grids from a spreadsheet through the Sheets v4 API.
type GoogleSheets struct {
	svc *sheets.Service
	id  string

	mu     sync.Mutex
	titles []string
	merges map[string][]models.MergeRect
}

// ServiceAccountClient builds a read-only HTTP client from a service
// account credentials file.
func ServiceAccountClient(ctx context.Context, credentialsPath string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return config.Client(ctx), nil
}

// NewGoogleSheets creates a source for the spreadsheet with the given id.
func NewGoogleSheets(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleSheets, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &GoogleSheets{svc: svc, id: spreadsheetID}, nil
}

func (s *GoogleSheets) Name() string {
	return s.id
}

func (s *GoogleSheets) SheetNames(ctx context.Context) ([]string, error) {
	if err := s.loadMetadata(ctx); err != nil {
		return nil, err
	}
	return s.titles, nil
}

func (s *GoogleSheets) Grid(ctx context.Context, sheet string) (*models.Grid, error) {
	if err := s.loadMetadata(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.id, quoteSheetTitle(sheet)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	rows := make([][]string, len(resp.Values))
	for i, values := range resp.Values {
		row := make([]string, len(values))
		for j, v := range values {
			if v != nil {
				row[j] = fmt.Sprint(v)
			}
		}
		rows[i] = row
	}

	s.mu.Lock()
	merges := s.merges[sheet]
	s.mu.Unlock()

	clearMergeInteriors(rows, merges)
	for i := range rows {
		rows[i] = trimRow(rows[i])
	}

	return &models.Grid{Cells: rows, Merges: merges}, nil
}

func (s *GoogleSheets) Close() error {
	return nil
}

// loadMetadata fetches sheet titles and merges once per source.
func (s *GoogleSheets) loadMetadata(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.merges != nil {
		return nil
	}

	resp, err := s.svc.Spreadsheets.Get(s.id).
		Fields("sheets(properties.title,merges)").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("read spreadsheet %s: %w", s.id, err)
	}

	merges := make(map[string][]models.MergeRect, len(resp.Sheets))
	titles := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties == nil {
			continue
		}
		title := sh.Properties.Title
		titles = append(titles, title)
		merges[title] = gridRangeMerges(sh.Merges)
	}

	s.titles = titles
	s.merges = merges
	return nil
}

// gridRangeMerges converts 0-based, end-exclusive grid ranges into 1-based
// rectangles.
func gridRangeMerges(ranges []*sheets.GridRange) []models.MergeRect {
	merges := make([]models.MergeRect, 0, len(ranges))
	for _, gr := range ranges {
		if gr == nil {
			continue
		}
		numRows := gr.EndRowIndex - gr.StartRowIndex
		numCols := gr.EndColumnIndex - gr.StartColumnIndex
		if numRows < 1 || numCols < 1 {
			continue
		}
		merges = append(merges, models.MergeRect{
			Row:     int(gr.StartRowIndex) + 1,
			Col:     int(gr.StartColumnIndex) + 1,
			NumRows: int(numRows),
			NumCols: int(numCols),
		})
	}
	return merges
}

func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
