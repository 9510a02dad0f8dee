package source

import (
	"reflect"
	"testing"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

func TestClearMergeInteriors(t *testing.T) {
	cells := [][]string{
		{"W1D1", "W1D1", "Exercise"},
		{"W1D1", "W1D1"},
		{"x"},
	}
	merges := []models.MergeRect{
		{Row: 1, Col: 1, NumRows: 4, NumCols: 2},
	}

	clearMergeInteriors(cells, merges)

	expected := [][]string{
		{"W1D1", "", "Exercise"},
		{"", ""},
		{""},
	}
	if !reflect.DeepEqual(cells, expected) {
		t.Errorf("cells = %q, expected %q", cells, expected)
	}
}

func TestTrimRow(t *testing.T) {
	tests := []struct {
		row      []string
		expected []string
	}{
		{[]string{"a", "", ""}, []string{"a"}},
		{[]string{"", "b"}, []string{"", "b"}},
		{[]string{"", ""}, []string{}},
		{nil, nil},
	}

	for _, tt := range tests {
		got := trimRow(tt.row)
		if len(got) != len(tt.expected) {
			t.Errorf("trimRow(%q) = %q, expected %q", tt.row, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("trimRow(%q) = %q, expected %q", tt.row, got, tt.expected)
				break
			}
		}
	}
}
