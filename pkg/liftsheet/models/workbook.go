package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path) or spreadsheet id.
	BookName string `json:"book_name"`
	// Sheets holds block sheets ordered by block number.
	Sheets []SheetData `json:"sheets"`
}

// Records returns all raw records across sheets, in sheet order.
func (w *WorkbookData) Records() []SetRecord {
	var out []SetRecord
	for _, s := range w.Sheets {
		out = append(out, s.Records...)
	}
	return out
}
