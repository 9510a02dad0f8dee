package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
)

var rangePattern = regexp.MustCompile(`^(\d+)\s*-\s*\d+`)

// Normalizer converts raw cell text into numbers.
type Normalizer struct {
	// Bodyweight substitutes "BW" cells.
	Bodyweight float64
	// HighBand is the percentage magnitude at or above which a percent RPE
	// cell resolves to the previous RPE minus 2.
	HighBand float64
	// LowBand is the percentage magnitude at or above which a percent RPE
	// cell resolves to the previous RPE minus 1.
	LowBand float64
}

// DefaultNormalizer returns a Normalizer with a 100kg bodyweight and 7/5
// percent bands.
func DefaultNormalizer() Normalizer {
	return Normalizer{
		Bodyweight: 100,
		HighBand:   7,
		LowBand:    5,
	}
}

// Normalize converts one cell. It returns nil for blank or unparseable text.
//
// Rules, in order:
//   - "N%" adjusts prevRPE by band (nil without prevRPE)
//   - "8-12" yields the leading bound
//   - "BW" yields the configured bodyweight
//   - anything else must parse as a finite float
func (n Normalizer) Normalize(raw string, prevRPE *float64) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if strings.HasSuffix(s, "%") {
		if prevRPE == nil {
			return nil
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimRight(s, "%")), 64)
		if err != nil {
			return nil
		}
		switch mag := math.Abs(pct); {
		case mag >= n.HighBand:
			return floatPtr(*prevRPE - 2)
		case mag >= n.LowBand:
			return floatPtr(*prevRPE - 1)
		default:
			return floatPtr(*prevRPE)
		}
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		return &v
	}

	if strings.EqualFold(s, "BW") {
		return floatPtr(n.Bodyweight)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// NormalizeRecords converts records in order. When threadRPE is set, a
// percent cell in either RPE column is resolved against the same column of
// the previous record of the same exercise run; the context resets whenever
// a record starts a new run (set number 1).
func (n Normalizer) NormalizeRecords(records []models.SetRecord, threadRPE bool) []models.NormalizedSetRecord {
	out := make([]models.NormalizedSetRecord, 0, len(records))

	var prevPrescribed, prevCompleted *float64
	for _, r := range records {
		if r.SetNumber <= 1 {
			prevPrescribed, prevCompleted = nil, nil
		}

		nr := models.NormalizedSetRecord{
			WeekDay:   r.WeekDay,
			Exercise:  r.Exercise,
			SetNumber: r.SetNumber,
			Notes:     r.Notes,
		}

		var ctxPrescribed, ctxCompleted *float64
		if threadRPE {
			ctxPrescribed, ctxCompleted = prevPrescribed, prevCompleted
		}

		nr.PrescribedReps = n.field(&nr, models.FieldPrescribedReps, r.PrescribedReps, nil)
		nr.PrescribedRPE = n.field(&nr, models.FieldPrescribedRPE, r.PrescribedRPE, ctxPrescribed)
		nr.CompletedWeight = n.field(&nr, models.FieldCompletedWeight, r.CompletedWeight, nil)
		nr.CompletedReps = n.field(&nr, models.FieldCompletedReps, r.CompletedReps, nil)
		nr.CompletedRPE = n.field(&nr, models.FieldCompletedRPE, r.CompletedRPE, ctxCompleted)

		prevPrescribed, prevCompleted = nr.PrescribedRPE, nr.CompletedRPE
		out = append(out, nr)
	}

	return out
}

// field normalizes raw and records name in nr.Dropped when non-blank text
// produced no value.
func (n Normalizer) field(nr *models.NormalizedSetRecord, name, raw string, prevRPE *float64) *float64 {
	v := n.Normalize(raw, prevRPE)
	if v == nil && strings.TrimSpace(raw) != "" {
		nr.Dropped = append(nr.Dropped, name)
	}
	return v
}

func floatPtr(v float64) *float64 {
	return &v
}
