// Package output serializes extraction results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

// CSVHeader is the column order written by WriteCSV.
var CSVHeader = []string{
	"block", "week_day", "exercise", "set_number",
	"prescribed_reps", "prescribed_rpe",
	"completed_weight", "completed_reps", "completed_rpe",
	"notes",
}

// ToJSON serializes a workbook result.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet result.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteCSV writes one row per normalized set, in sheet order. Absent
// values are empty cells.
func WriteCSV(w io.Writer, wb *models.WorkbookData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		block := sheet.Block.Name()
		for _, r := range sheet.Normalized {
			row := []string{
				block,
				r.WeekDay,
				r.Exercise,
				strconv.Itoa(r.SetNumber),
				formatFloat(r.PrescribedReps),
				formatFloat(r.PrescribedRPE),
				formatFloat(r.CompletedWeight),
				formatFloat(r.CompletedReps),
				formatFloat(r.CompletedRPE),
				r.Notes,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
