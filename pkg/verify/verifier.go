package verify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/aretw0/densca/pkg/domain"
	"github.com/aretw0/densca/pkg/observability"
	"golang.org/x/sync/errgroup"
)

// Oracle decides whether the automaton classifies the initial value of a ring of size cells.
type Oracle func(value uint32, size int) bool

// DefaultOracle runs the automaton from a fresh configuration.
func DefaultOracle(value uint32, size int) bool {
	return domain.MustNew(value, size).IsCorrect()
}

// Progress receives search progress. Implementations must be safe for concurrent use
// of Advance.
type Progress interface {
	Start(size int, total uint64)
	Advance(n uint64)
	Finish()
}

// Verifier searches every initial configuration of a ring size for a counterexample.
type Verifier struct {
	workers   int
	chunkSize int
	fullRange bool
	oracle    Oracle
	logger    *slog.Logger
	metrics   *observability.Metrics
	progress  Progress
}

// Result is the outcome of FindCounterExample.
type Result struct {
	Size int
	// Total is the number of candidates in the enumerated range.
	Total uint64
	// Evaluated is the number of candidates the oracle actually ran on.
	// It equals Total when no counterexample exists.
	Evaluated uint64

	CounterExample uint32
	Found          bool
}

// New creates a Verifier.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		chunkSize: DefaultChunkSize,
		oracle:    DefaultOracle,
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.workers < 1 {
		v.workers = runtime.NumCPU()
	}
	if v.chunkSize < 1 {
		v.chunkSize = DefaultChunkSize
	}
	if v.oracle == nil {
		v.oracle = DefaultOracle
	}
	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if v.progress == nil {
		v.progress = nopProgress{}
	}
	return v
}

// Workers returns the size of the worker pool.
func (v *Verifier) Workers() int { return v.workers }

// Candidates returns the number of initial values enumerated for size.
func (v *Verifier) Candidates(size int) uint64 {
	if v.fullRange {
		return uint64(1) << uint(size)
	}
	return uint64(1) << uint(size-1)
}

// FindCounterExample evaluates the oracle on every candidate of the given size and
// returns one it rejects. Candidates are spread across the worker pool in chunks; the
// first rejection to be reported wins and stops the distribution of further chunks.
// Which rejection wins is not deterministic when several exist.
func (v *Verifier) FindCounterExample(ctx context.Context, size int) (Result, error) {
	if size < 1 || size > domain.MaxSize {
		return Result{}, fmt.Errorf("find counter example: size %d: %w", size, domain.ErrSizeOutOfRange)
	}

	res := Result{Size: size, Total: v.Candidates(size)}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		found     atomic.Bool
		witness   atomic.Uint32
		evaluated atomic.Uint64
	)

	v.progress.Start(size, res.Total)
	defer v.progress.Finish()

	g, gctx := errgroup.WithContext(searchCtx)
	g.SetLimit(v.workers)

	chunk := uint64(v.chunkSize)
	for start := uint64(0); start < res.Total; start += chunk {
		if gctx.Err() != nil {
			break
		}
		end := min(start+chunk, res.Total)

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			var n uint64
			for k := start; k < end; k++ {
				if found.Load() {
					break
				}
				n++
				if !v.oracle(uint32(k), size) {
					if found.CompareAndSwap(false, true) {
						witness.Store(uint32(k))
						cancel()
					}
					break
				}
			}
			evaluated.Add(n)
			v.metrics.ObserveCandidates(size, n)
			v.progress.Advance(n)
			return nil
		})
	}
	_ = g.Wait()

	res.Evaluated = evaluated.Load()
	if found.Load() {
		res.Found = true
		res.CounterExample = witness.Load()
		v.logger.Debug("counterexample found", "size", size, "value", res.CounterExample)
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("find counter example: size %d: %w", size, err)
	}
	return res, nil
}

// Report summarises the search over one ring size.
type Report struct {
	Result
	Duration time.Duration
	// Trace holds the run of the counterexample, one snapshot per sweep.
	Trace []*domain.Configuration
}

// Clean reports whether no counterexample was found.
func (r Report) Clean() bool {
	return !r.Found
}

// SearchSize runs FindCounterExample and, when a counterexample exists, records its
// sweep-by-sweep trace.
func (v *Verifier) SearchSize(ctx context.Context, size int) (Report, error) {
	v.metrics.SetSize(size)
	v.logger.Info("searching", "size", size, "candidates", v.Candidates(size), "workers", v.workers)

	began := time.Now()
	res, err := v.FindCounterExample(ctx, size)
	report := Report{Result: res, Duration: time.Since(began)}
	if err != nil {
		return report, err
	}
	v.metrics.ObserveSearch(size, report.Duration, res.Found)

	if res.Found {
		c := domain.MustNew(res.CounterExample, size)
		report.Trace = domain.Trace(c, domain.SweepBudget(size)+1)
		v.logger.Warn("counterexample", "size", size, "value", fmt.Sprintf("%0*b", size, res.CounterExample))
	} else {
		v.logger.Info("clean", "size", size, "duration", report.Duration)
	}
	return report, nil
}

// DefaultMinSize and DefaultMaxSize bound SearchAll when no range is configured.
const (
	DefaultMinSize = 2
	DefaultMaxSize = 30
)

// SearchAll searches every size from min to max inclusive, one size at a time, and
// passes each report to fn as soon as it is available. It stops at the first error.
func (v *Verifier) SearchAll(ctx context.Context, minSize, maxSize int, fn func(Report)) ([]Report, error) {
	if minSize < 1 || maxSize > domain.MaxSize {
		return nil, fmt.Errorf("search sizes %d..%d: %w", minSize, maxSize, domain.ErrSizeOutOfRange)
	}
	if minSize > maxSize {
		return nil, fmt.Errorf("search sizes %d..%d: %w", minSize, maxSize, domain.ErrInvalidRange)
	}

	reports := make([]Report, 0, maxSize-minSize+1)
	for size := minSize; size <= maxSize; size++ {
		report, err := v.SearchSize(ctx, size)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
		if fn != nil {
			fn(report)
		}
	}
	return reports, nil
}

type nopProgress struct{}

func (nopProgress) Start(int, uint64) {}
func (nopProgress) Advance(uint64)    {}
func (nopProgress) Finish()           {}
