// Package driver times batches of table operations over a working set of
// player records, in sorted, shuffled and reversed order.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/theflywheel/schash"
	"github.com/theflywheel/schash/internal/catcher"
	"github.com/theflywheel/schash/internal/metrics"
)

var (
	// ErrSizeDrift means the table still reports elements after every element was removed.
	ErrSizeDrift = errors.New("size counter drift")
	// ErrLostElement means an inserted element was not found by the search phase.
	ErrLostElement = errors.New("inserted element not found")
)

// Order is the arrangement of the working set for one pass.
type Order string

const (
	Sorted   Order = "sorted"
	Shuffled Order = "shuffled"
	Reversed Order = "reversed"
)

// Orders lists the passes in the order they run.
var Orders = []Order{Sorted, Shuffled, Reversed}

// Phase is one timed batch within a pass.
type Phase string

const (
	PhaseInsert  Phase = "insert"
	PhaseSearch  Phase = "search"
	PhaseRemoval Phase = "removal"
)

// Result is the timing of one phase.
type Result struct {
	Order   Order
	Phase   Phase
	Elapsed time.Duration
	Buckets int
}

// Run holds the results of a complete run.
type Run struct {
	ID      uuid.UUID
	Lines   int
	Results []Result
}

// Durations returns the elapsed time of every phase in run order.
func (r *Run) Durations() []time.Duration {
	out := make([]time.Duration, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Elapsed
	}
	return out
}

// Config controls table sizing and shuffling.
type Config struct {
	InitialSize int
	Seed        uint64
}

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder sends phase timings to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithLogger sets the logger used for progress and table growth.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// recordSet is the part of schash.Table a pass exercises.
type recordSet interface {
	Insert(catcher.Record)
	Contains(catcher.Record) bool
	Remove(catcher.Record)
	Len() int
	Buckets() int
}

func newTable(size int, logger *slog.Logger) (recordSet, error) {
	return schash.NewWithSize[catcher.Record](size, schash.WithLogger(logger))
}

// Runner executes benchmark runs.
type Runner struct {
	cfg      Config
	recorder metrics.Recorder
	logger   *slog.Logger
	newTable func(size int, logger *slog.Logger) (recordSet, error)
}

// New creates a Runner. A zero InitialSize means schash.DefaultSize.
func New(cfg Config, opts ...Option) *Runner {
	if cfg.InitialSize == 0 {
		cfg.InitialSize = schash.DefaultSize
	}
	r := &Runner{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		newTable: newTable,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run times insert, search and removal over records for every order. Each
// order uses a fresh table.
func (r *Runner) Run(ctx context.Context, records []catcher.Record) (*Run, error) {
	run := &Run{ID: uuid.New(), Lines: len(records)}
	logger := r.logger.With("run_id", run.ID.String())

	logger.Info("Starting benchmark run", "records", len(records), "initial_size", r.cfg.InitialSize)

	rng := rand.New(rand.NewPCG(r.cfg.Seed, r.cfg.Seed))
	work := slices.Clone(records)

	for _, order := range Orders {
		arrange(work, order, rng)

		results, err := r.pass(ctx, logger, order, work)
		run.Results = append(run.Results, results...)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				r.recorder.IncRun(metrics.OutcomeCanceled)
			} else {
				r.recorder.IncRun(metrics.OutcomeFailed)
			}
			return run, fmt.Errorf("%s pass: %w", order, err)
		}
	}

	r.recorder.IncRun(metrics.OutcomeSuccess)
	logger.Info("Benchmark run complete", "phases", len(run.Results))
	return run, nil
}

func (r *Runner) pass(ctx context.Context, logger *slog.Logger, order Order, work []catcher.Record) ([]Result, error) {
	tbl, err := r.newTable(r.cfg.InitialSize, logger)
	if err != nil {
		return nil, err
	}

	var results []Result
	record := func(phase Phase, elapsed time.Duration) {
		res := Result{Order: order, Phase: phase, Elapsed: elapsed, Buckets: tbl.Buckets()}
		results = append(results, res)
		r.recorder.ObservePhase(string(order), string(phase), elapsed)
		logger.Info("Phase complete",
			"order", order,
			"phase", phase,
			"elapsed", elapsed,
			"size", tbl.Len(),
			"buckets", tbl.Buckets())
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	start := time.Now()
	for _, rec := range work {
		tbl.Insert(rec)
	}
	record(PhaseInsert, time.Since(start))
	r.recorder.SetBuckets(string(order), tbl.Buckets())

	if err := ctx.Err(); err != nil {
		return results, err
	}
	missing := 0
	start = time.Now()
	for _, rec := range work {
		if !tbl.Contains(rec) {
			missing++
		}
	}
	record(PhaseSearch, time.Since(start))
	if missing > 0 {
		return results, fmt.Errorf("%w: %d of %d", ErrLostElement, missing, len(work))
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	start = time.Now()
	for _, rec := range work {
		tbl.Remove(rec)
	}
	record(PhaseRemoval, time.Since(start))
	if n := tbl.Len(); n != 0 {
		return results, fmt.Errorf("%w: %d elements left", ErrSizeDrift, n)
	}

	return results, nil
}

func arrange(work []catcher.Record, order Order, rng *rand.Rand) {
	switch order {
	case Sorted:
		slices.SortFunc(work, catcher.Compare)
	case Shuffled:
		rng.Shuffle(len(work), func(i, j int) {
			work[i], work[j] = work[j], work[i]
		})
	case Reversed:
		slices.SortFunc(work, func(a, b catcher.Record) int {
			return catcher.Compare(b, a)
		})
	}
}
