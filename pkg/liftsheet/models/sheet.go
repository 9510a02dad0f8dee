package models

import (
	"strconv"
	"time"
)

// Block describes a training block worksheet.
type Block struct {
	// Number is the block number parsed from the sheet title.
	Number int `json:"number"`
	// Comment is the optional comment from the sheet title.
	Comment string `json:"comment,omitempty"`
	// Title is the worksheet title as found in the workbook.
	Title string `json:"title"`
	// StartDate is taken from a "Start Date:" cell, if any.
	StartDate *time.Time `json:"start_date,omitempty"`
	// EndDate is taken from an "End Date:" cell, if any.
	EndDate *time.Time `json:"end_date,omitempty"`
}

// Name returns the persistent name of the block, e.g. "Block 3".
// Sheets without a block number fall back to their title.
func (b Block) Name() string {
	if b.Number <= 0 {
		return b.Title
	}
	return "Block " + strconv.Itoa(b.Number)
}

// AnchorFailure records an anchor that was skipped during extraction.
type AnchorFailure struct {
	WeekDay string `json:"week_day"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Reason  string `json:"reason"`
}

// SheetData represents the extraction result for a single worksheet.
type SheetData struct {
	// Block is the block parsed from the sheet title and metadata cells.
	Block Block `json:"block"`
	// Records contains raw set records in anchor-scan-then-row order.
	Records []SetRecord `json:"records"`
	// Normalized contains the normalized form of Records, index for index.
	Normalized []NormalizedSetRecord `json:"normalized"`
	// Failures lists anchors skipped under the skip header policy.
	Failures []AnchorFailure `json:"failures,omitempty"`
}
