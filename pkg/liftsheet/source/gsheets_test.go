package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetJSON = `{
  "sheets": [
    {
      "properties": {"title": "Block 1"},
      "merges": [
        {"startRowIndex": 1, "endRowIndex": 6, "endColumnIndex": 1},
        {"startRowIndex": 3, "endRowIndex": 5, "startColumnIndex": 1, "endColumnIndex": 2}
      ]
    },
    {"properties": {"title": "Maxes"}}
  ]
}`

const valuesJSON = `{
  "range": "'Block 1'!A1:E5",
  "majorDimension": "ROWS",
  "values": [
    ["Start Date: 2024-01-08"],
    ["W1D1", "Exercise", "", "", "Notes"],
    ["W1D1"],
    ["", "Squat", "3", "8"],
    ["", "Squat", "3", "", ""]
  ]
}`

func newTestSheets(t *testing.T) (*GoogleSheets, *int) {
	t.Helper()

	metadataCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/values/"):
			if !strings.Contains(r.URL.Path, "Block 1") {
				http.Error(w, `{"error": {"code": 400, "message": "bad range"}}`, http.StatusBadRequest)
				return
			}
			w.Write([]byte(valuesJSON))
		case strings.HasSuffix(r.URL.Path, "/spreadsheets/sheet-123"):
			metadataCalls++
			w.Write([]byte(spreadsheetJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	src, err := NewGoogleSheets(context.Background(), "sheet-123",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("NewGoogleSheets failed: %v", err)
	}
	return src, &metadataCalls
}

func TestGoogleSheets_Grid(t *testing.T) {
	src, metadataCalls := newTestSheets(t)
	ctx := context.Background()

	names, err := src.SheetNames(ctx)
	if err != nil {
		t.Fatalf("SheetNames failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Block 1", "Maxes"}) {
		t.Errorf("SheetNames = %v, expected [Block 1 Maxes]", names)
	}

	g, err := src.Grid(ctx, "Block 1")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	expectedMerges := []models.MergeRect{
		{Row: 2, Col: 1, NumRows: 5, NumCols: 1},
		{Row: 4, Col: 2, NumRows: 2, NumCols: 1},
	}
	if !reflect.DeepEqual(g.Merges, expectedMerges) {
		t.Errorf("Merges = %+v, expected %+v", g.Merges, expectedMerges)
	}

	if got := g.Cell(2, 5); got != "Notes" {
		t.Errorf("Cell(2, 5) = %q, expected Notes", got)
	}
	// Interiors of merges are blanked.
	if got := g.Cell(3, 1); got != "" {
		t.Errorf("Cell(3, 1) = %q, expected empty", got)
	}
	if got := g.Cell(5, 2); got != "" {
		t.Errorf("Cell(5, 2) = %q, expected empty", got)
	}
	if got := g.RowLen(5); got != 3 {
		t.Errorf("RowLen(5) = %d, expected 3", got)
	}

	if *metadataCalls != 1 {
		t.Errorf("metadata fetched %d times, expected 1", *metadataCalls)
	}
}

func TestGoogleSheets_GridError(t *testing.T) {
	src, _ := newTestSheets(t)

	if _, err := src.Grid(context.Background(), "Maxes"); err == nil {
		t.Fatal("expected error for failing values request")
	}
}

func TestGridRangeMerges(t *testing.T) {
	ranges := []*sheets.GridRange{
		{StartRowIndex: 0, EndRowIndex: 1, StartColumnIndex: 3, EndColumnIndex: 6},
		{StartRowIndex: 2, EndRowIndex: 2, StartColumnIndex: 0, EndColumnIndex: 1},
		nil,
	}

	expected := []models.MergeRect{{Row: 1, Col: 4, NumRows: 1, NumCols: 3}}
	if got := gridRangeMerges(ranges); !reflect.DeepEqual(got, expected) {
		t.Errorf("gridRangeMerges = %+v, expected %+v", got, expected)
	}
}

func TestQuoteSheetTitle(t *testing.T) {
	if got := quoteSheetTitle("Bob's Block 1"); got != "'Bob''s Block 1'" {
		t.Errorf("quoteSheetTitle = %q", got)
	}
}
