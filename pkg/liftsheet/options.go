// Package liftsheet extracts training set records from block worksheets.
package liftsheet

import (
	"log/slog"
	"runtime"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/parser"
)

// HeaderPolicy controls what happens when an anchor has no Exercise or
// Notes header.
type HeaderPolicy string

const (
	// HeaderPolicyAbort fails the whole sheet on the first missing header.
	HeaderPolicyAbort HeaderPolicy = "abort"
	// HeaderPolicySkip drops the failing anchor and records it in
	// SheetData.Failures.
	HeaderPolicySkip HeaderPolicy = "skip"
)

// Options configures extraction behavior.
type Options struct {
	// Offsets are the metric column positions relative to the Exercise column.
	Offsets parser.Offsets
	// Normalizer holds the bodyweight default and RPE percent bands.
	Normalizer parser.Normalizer
	// HeaderPolicy selects abort or skip on header-not-found.
	HeaderPolicy HeaderPolicy
	// ThreadPreviousRPE resolves percent RPE cells against the previous set
	// of the same exercise. When false, percent cells normalize to absent.
	ThreadPreviousRPE bool
	// AllSheets extracts every worksheet, not only block-titled ones.
	AllSheets bool
	// Concurrency limits how many sheets are extracted at once.
	// Zero means GOMAXPROCS.
	Concurrency int
	// Logger receives dropped-field and skipped-anchor diagnostics.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Offsets:      parser.DefaultOffsets(),
		Normalizer:   parser.DefaultNormalizer(),
		HeaderPolicy: HeaderPolicyAbort,
	}
}

// ShouldSkipFailedAnchors returns whether header failures are isolated to
// their anchor.
func (o Options) ShouldSkipFailedAnchors() bool {
	return o.HeaderPolicy == HeaderPolicySkip
}

// Workers returns the effective sheet concurrency.
func (o Options) Workers() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
