package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aretw0/densca"
	httpAdapter "github.com/aretw0/densca/internal/adapters/http"
	"github.com/aretw0/densca/internal/config"
	"github.com/aretw0/densca/internal/presentation/graph"
	"github.com/aretw0/densca/internal/presentation/tui"
	"github.com/aretw0/densca/pkg/domain"
	"github.com/aretw0/densca/pkg/observability"
	"github.com/aretw0/densca/pkg/verify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// VerifyOptions contains the configuration for the verify command.
type VerifyOptions struct {
	Config config.Config
	Debug  bool
	// JSON replaces the human report with one JSON line per size.
	JSON bool
}

// RunVerify searches the configured size range and prints one line per clean size, or
// the full trace of a counterexample. It returns whether every size was clean.
func RunVerify(ctx context.Context, opts VerifyOptions, s Streams) (bool, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	logger, err := createLogger(s.Err, cfg.LogLevel, opts.Debug)
	if err != nil {
		return false, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(reg)

	if cfg.MetricsAddr != "" {
		l, err := httpAdapter.Listen(cfg.MetricsAddr)
		if err != nil {
			return false, err
		}
		serveCtx, stop := context.WithCancel(ctx)
		served := make(chan struct{})
		go func() {
			defer close(served)
			if err := httpAdapter.Serve(serveCtx, l, httpAdapter.NewHandler(reg), logger); err != nil {
				logger.Error("metrics server failed", "err", err)
			}
		}()
		defer func() {
			stop()
			<-served
		}()
	}

	vopts := append(cfg.VerifierOptions(),
		verify.WithLogger(logger),
		verify.WithMetrics(metrics),
	)
	if cfg.Progress && isTerminal(s.Err) {
		vopts = append(vopts, verify.WithProgress(tui.NewProgressLine(s.Err, 250*time.Millisecond)))
	}
	v := verify.New(vopts...)

	renderer := tui.NewTraceRenderer(colorProfile(s.Out))
	reporter := NewJSONReporter(s.Out)
	reports, err := v.SearchAll(ctx, cfg.MinSize, cfg.MaxSize, func(r verify.Report) {
		if opts.JSON {
			if err := reporter.Report(r); err != nil {
				logger.Error("failed to write report", "err", err)
			}
			return
		}
		if r.Clean() {
			fmt.Fprintf(s.Out, "size %d clean\n", r.Size)
			return
		}
		fmt.Fprintf(s.Out, "Error in the following example (size %d, value %0*b):\n", r.Size, r.Size, r.CounterExample)
		if err := renderer.Print(s.Out, r.Trace); err != nil {
			logger.Error("failed to print trace", "err", err)
		}
	})
	if err != nil {
		return false, err
	}

	if !opts.JSON {
		summary := tui.Summary(reports)
		if isTerminal(s.Out) {
			if rendered, err := tui.NewRenderer(100)(summary); err == nil {
				summary = rendered
			}
		}
		fmt.Fprint(s.Out, summary)
	}

	for _, r := range reports {
		if !r.Clean() {
			return false, nil
		}
	}
	return true, nil
}

// TraceOptions contains the configuration for the trace command.
type TraceOptions struct {
	Size int
	// Value is used when HasValue is set; otherwise a random ring is drawn.
	Value    uint32
	HasValue bool
	// Seed makes the random ring reproducible. Zero picks a time-based seed.
	Seed uint64
	// Format is "text" (default) or "mermaid".
	Format string
}

// RunTrace prints every sweep of one ring until it converges or the sweep budget runs out.
func RunTrace(opts TraceOptions, s Streams) (domain.Verdict, error) {
	var (
		c   *domain.Configuration
		err error
	)
	if opts.HasValue {
		c, err = domain.New(opts.Value, opts.Size)
	} else {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		c, err = domain.Random(opts.Size, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	}
	if err != nil {
		return domain.Verdict{}, err
	}

	verdict := c.Clone().Evaluate()
	snapshots := domain.Trace(c, domain.SweepBudget(c.Size())+1)

	switch opts.Format {
	case "", "text":
	case "mermaid":
		fmt.Fprint(s.Out, graph.GenerateMermaid(snapshots, &verdict))
		return verdict, nil
	default:
		return verdict, fmt.Errorf("unknown trace format %q", opts.Format)
	}

	renderer := tui.NewTraceRenderer(colorProfile(s.Out))
	if err := renderer.Print(s.Out, snapshots); err != nil {
		return verdict, err
	}
	printVerdict(s, verdict)
	return verdict, nil
}

// RunCheck evaluates a single ring and prints its verdict.
func RunCheck(value uint32, size int, s Streams) (domain.Verdict, error) {
	verdict, err := densca.Check(value, size)
	if err != nil {
		return verdict, err
	}
	printVerdict(s, verdict)
	return verdict, nil
}

func printVerdict(s Streams, v domain.Verdict) {
	initial := fmt.Sprintf("%0*b", v.Size, v.Value)
	switch {
	case v.Tie:
		printSystemMessage(s.Out, "%s: tie, no expectation", initial)
	case !v.Converged:
		printSystemMessage(s.Out, "%s: no convergence after %d sweeps, incorrect", initial, v.Sweeps)
	default:
		verdict := "correct"
		if !v.Correct {
			verdict = "incorrect"
		}
		printSystemMessage(s.Out, "%s: majority %d, converged to %d after %d sweeps, %s",
			initial, b2i(v.Majority), v.Final&1, v.Sweeps, verdict)
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
