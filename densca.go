package densca

import (
	"context"
	"log/slog"

	"github.com/aretw0/densca/pkg/domain"
	"github.com/aretw0/densca/pkg/verify"
)

// Version is the released version of densca.
var Version = "0.3.0"

// Check runs the automaton on a single ring and reports its verdict.
func Check(value uint32, size int) (domain.Verdict, error) {
	c, err := domain.New(value, size)
	if err != nil {
		return domain.Verdict{}, err
	}
	return c.Evaluate(), nil
}

// VerifyAll searches every ring size from minSize to maxSize for a counterexample,
// using all available CPUs.
func VerifyAll(ctx context.Context, minSize, maxSize int, logger *slog.Logger) ([]verify.Report, error) {
	v := verify.New(verify.WithLogger(logger))
	return v.SearchAll(ctx, minSize, maxSize, nil)
}
