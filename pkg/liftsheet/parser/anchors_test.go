package parser

import (
	"reflect"
	"testing"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

func TestScanAnchors(t *testing.T) {
	g := &models.Grid{
		Cells: [][]string{
			{"Start Date: 2024-01-01", "W1D1x", "W10D2"},
			{},
			{" w1d1 ", "", "", "W1D1"},
			{"W1", "D1", "WD1", "W1D"},
			{"", "W3D12"},
		},
	}

	expected := []Anchor{
		{WeekDay: "W10D2", Row: 1, Col: 3},
		{WeekDay: "w1d1", Row: 3, Col: 1},
		{WeekDay: "W1D1", Row: 3, Col: 4},
		{WeekDay: "W3D12", Row: 5, Col: 2},
	}

	got := ScanAnchors(g)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ScanAnchors = %+v, expected %+v", got, expected)
	}
}

func TestParseWeekDay(t *testing.T) {
	tests := []struct {
		input    string
		week     int
		day      int
		expected bool
	}{
		{"W1D1", 1, 1, true},
		{"w12d3", 12, 3, true},
		{" W2D4 ", 2, 4, true},
		{"W2", 0, 0, false},
		{"Block 1", 0, 0, false},
	}

	for _, tt := range tests {
		week, day, ok := ParseWeekDay(tt.input)
		if ok != tt.expected || week != tt.week || day != tt.day {
			t.Errorf("ParseWeekDay(%q) = (%d, %d, %v), expected (%d, %d, %v)",
				tt.input, week, day, ok, tt.week, tt.day, tt.expected)
		}
	}
}
