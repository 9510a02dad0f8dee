package parser

import "github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"

// Test sheets use a 15-column layout: anchor in A, Exercise in B, prescribed
// reps in E, prescribed RPE in H, completed weight/reps/RPE in L/M/N and Notes
// in O.
const sheetWidth = 15

func headerRow(anchor string) []string {
	row := make([]string, sheetWidth)
	row[0] = anchor
	row[1] = "Exercise"
	row[4] = "Reps"
	row[7] = "RPE"
	row[11] = "Weight"
	row[12] = "Reps"
	row[13] = "RPE"
	row[14] = "Notes"
	return row
}

func subHeaderRow() []string {
	row := make([]string, sheetWidth)
	row[4] = "Prescribed"
	row[11] = "Completed"
	return row
}

func setRow(exercise, reps, rpe, weight, doneReps, doneRPE, notes string) []string {
	row := make([]string, sheetWidth)
	row[1] = exercise
	row[4] = reps
	row[7] = rpe
	row[11] = weight
	row[12] = doneReps
	row[13] = doneRPE
	row[14] = notes
	return row
}

func blankRow() []string {
	return make([]string, sheetWidth)
}

// anchorMerge merges the anchor column over a whole session block.
func anchorMerge(row, numRows int) models.MergeRect {
	return models.MergeRect{Row: row, Col: 1, NumRows: numRows, NumCols: 1}
}

func exerciseMerge(row, numRows int) models.MergeRect {
	return models.MergeRect{Row: row, Col: 2, NumRows: numRows, NumCols: 1}
}

func exercises(records []models.SetRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Exercise
	}
	return out
}

func setNumbers(records []models.SetRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.SetNumber
	}
	return out
}
