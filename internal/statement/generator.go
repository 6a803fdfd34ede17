package statement

import (
	"fmt"
	"time"

	"github.com/dvloznov/bank-middleware-mock/internal/domain"
)

// Request holds the caller-supplied statement criteria. Empty fields are omitted.
type Request struct {
	AccountNumber string
	FromDate      string
	ToDate        string
}

// Options configures a Generator.
type Options struct {
	Catalog Catalog
	Source  Source

	// Now returns the current time; its location determines calendar days.
	// Defaults to time.Now.
	Now func() time.Time

	// Shuffle randomizes the order of the sample.
	Shuffle bool

	// ExactDate additionally keeps only records dated FromDate when it is supplied.
	ExactDate bool
}

// Generator resolves the window, synthesizes the universe, filters it and samples
// the result. It holds no per-request state.
type Generator struct {
	synth     *Synthesizer
	src       Source
	now       func() time.Time
	shuffle   bool
	exactDate bool
}

// NewGenerator creates a generator from opts.
func NewGenerator(opts Options) (*Generator, error) {
	synth, err := NewSynthesizer(opts.Catalog, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Generator{
		synth:     synth,
		src:       opts.Source,
		now:       now,
		shuffle:   opts.Shuffle,
		exactDate: opts.ExactDate,
	}, nil
}

// Window returns the permitted window at the current time.
func (g *Generator) Window() Window {
	return DefaultWindow(g.now())
}

// Generate returns at most MaxSampleSize records for req. It fails with *RangeError
// or *DateFormatError; no records are synthesized in that case.
func (g *Generator) Generate(req Request) ([]domain.TransactionRecord, error) {
	w, err := Resolve(req.FromDate, req.ToDate, g.now())
	if err != nil {
		return nil, err
	}

	filter := Filter{AccountNumber: req.AccountNumber}
	if g.exactDate && req.FromDate != "" {
		filter.ValidDate = FormatDate(w.From)
	}

	records := filter.Apply(g.synth.Synthesize(w))
	return Sample(records, g.src, g.shuffle), nil
}
