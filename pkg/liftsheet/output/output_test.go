package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

func ptr(v float64) *float64 {
	return &v
}

func sampleWorkbook() *models.WorkbookData {
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	return &models.WorkbookData{
		BookName: "program.xlsx",
		Sheets: []models.SheetData{
			{
				Block: models.Block{Number: 1, Comment: "Intro", Title: "Block 1 - Intro", StartDate: &start},
				Records: []models.SetRecord{
					{WeekDay: "W1D1", Exercise: "Squat", SetNumber: 1, PrescribedReps: "5", PrescribedRPE: "-5%", CompletedWeight: "142.5", Notes: "belt, \"easy\""},
				},
				Normalized: []models.NormalizedSetRecord{
					{
						WeekDay: "W1D1", Exercise: "Squat", SetNumber: 1,
						PrescribedReps: ptr(5), CompletedWeight: ptr(142.5),
						Notes:   "belt, \"easy\"",
						Dropped: []string{models.FieldPrescribedRPE},
					},
				},
			},
		},
	}
}

func TestToJSON(t *testing.T) {
	wb := sampleWorkbook()

	compact, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	for _, want := range []string{
		`"book_name":"program.xlsx"`,
		`"start_date":"2024-01-08T00:00:00Z"`,
		`"prescribed_rpe":null`,
		`"completed_weight":142.5`,
		`"dropped":["prescribed_rpe"]`,
	} {
		if !strings.Contains(string(compact), want) {
			t.Errorf("JSON missing %s:\n%s", want, compact)
		}
	}

	pretty, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON(pretty) failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"book_name\": \"program.xlsx\"") {
		t.Errorf("pretty JSON not indented:\n%s", pretty)
	}
}

func TestSheetToJSON(t *testing.T) {
	wb := sampleWorkbook()

	data, err := SheetToJSON(&wb.Sheets[0], false)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	if !strings.HasPrefix(string(data), `{"block":{"number":1,"comment":"Intro"`) {
		t.Errorf("unexpected sheet JSON: %s", data)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleWorkbook()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	expected := "block,week_day,exercise,set_number,prescribed_reps,prescribed_rpe,completed_weight,completed_reps,completed_rpe,notes\n" +
		"Block 1,W1D1,Squat,1,5,,142.5,,,\"belt, \"\"easy\"\"\"\n"
	if buf.String() != expected {
		t.Errorf("CSV =\n%s\nexpected\n%s", buf.String(), expected)
	}
}
