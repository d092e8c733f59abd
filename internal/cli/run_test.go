package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/aretw0/densca/internal/config"
	"github.com/aretw0/densca/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferStreams() (Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Streams{Out: &out, Err: &errOut}, &out, &errOut
}

func TestRunVerify(t *testing.T) {
	s, out, errOut := bufferStreams()
	cfg := config.Default()
	cfg.MinSize, cfg.MaxSize = 2, 5
	cfg.Workers = 2

	clean, err := RunVerify(context.Background(), VerifyOptions{Config: cfg}, s)
	require.NoError(t, err)
	assert.True(t, clean)

	for size := 2; size <= 5; size++ {
		assert.Contains(t, out.String(), fmt.Sprintf("size %d clean\n", size))
	}
	assert.Contains(t, out.String(), "4 of 4 sizes clean.")
	assert.Contains(t, errOut.String(), "searching")
}

func TestRunVerify_JSON(t *testing.T) {
	s, out, _ := bufferStreams()
	cfg := config.Default()
	cfg.MinSize, cfg.MaxSize = 3, 4

	clean, err := RunVerify(context.Background(), VerifyOptions{Config: cfg, JSON: true}, s)
	require.NoError(t, err)
	assert.True(t, clean)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"size":3`)
	assert.Contains(t, lines[1], `"clean":true`)
	assert.NotContains(t, out.String(), "sizes clean")
}

func TestRunVerify_ServesMetrics(t *testing.T) {
	s, _, _ := bufferStreams()
	cfg := config.Default()
	cfg.MinSize, cfg.MaxSize = 2, 3
	cfg.MetricsAddr = "127.0.0.1:0"

	clean, err := RunVerify(context.Background(), VerifyOptions{Config: cfg}, s)
	require.NoError(t, err)
	assert.True(t, clean)
}

func TestRunVerify_MetricsAddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s, out, _ := bufferStreams()
	cfg := config.Default()
	cfg.MinSize, cfg.MaxSize = 2, 3
	cfg.MetricsAddr = busy.Addr().String()

	_, err = RunVerify(context.Background(), VerifyOptions{Config: cfg}, s)
	assert.ErrorContains(t, err, "metrics server")
	assert.Empty(t, out.String())
}

func TestRunVerify_InvalidConfig(t *testing.T) {
	s, _, _ := bufferStreams()
	cfg := config.Default()
	cfg.MaxSize = 40

	_, err := RunVerify(context.Background(), VerifyOptions{Config: cfg}, s)
	assert.ErrorIs(t, err, domain.ErrSizeOutOfRange)
}

func TestRunVerify_Interrupted(t *testing.T) {
	s, _, _ := bufferStreams()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunVerify(ctx, VerifyOptions{Config: config.Default()}, s)
	require.Error(t, err)
	assert.NoError(t, HandleExecutionError(err))
}

func TestRunTrace_FixedValue(t *testing.T) {
	s, out, _ := bufferStreams()

	verdict, err := RunTrace(TraceOptions{Size: 3, Value: 0b011, HasValue: true}, s)
	require.NoError(t, err)
	assert.True(t, verdict.Correct)

	assert.Contains(t, out.String(), "110\n")
	assert.Contains(t, out.String(), "X1X\nBBB\n,,;\n")
	assert.Contains(t, out.String(), ">>> 011: majority 1, converged to 1 after 3 sweeps, correct")
}

func TestRunTrace_Mermaid(t *testing.T) {
	s, out, _ := bufferStreams()

	_, err := RunTrace(TraceOptions{Size: 3, Value: 0b011, HasValue: true, Format: "mermaid"}, s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "graph LR\n"))
	assert.Contains(t, out.String(), "class s3 correct;")

	_, err = RunTrace(TraceOptions{Size: 3, Value: 0b011, HasValue: true, Format: "svg"}, s)
	assert.ErrorContains(t, err, "unknown trace format")
}

func TestRunTrace_SeedIsReproducible(t *testing.T) {
	s1, out1, _ := bufferStreams()
	s2, out2, _ := bufferStreams()

	_, err := RunTrace(TraceOptions{Size: 13, Seed: 42}, s1)
	require.NoError(t, err)
	_, err = RunTrace(TraceOptions{Size: 13, Seed: 42}, s2)
	require.NoError(t, err)

	assert.Equal(t, out1.String(), out2.String())
}

func TestRunTrace_InvalidSize(t *testing.T) {
	s, _, _ := bufferStreams()
	_, err := RunTrace(TraceOptions{Size: 0, Seed: 1}, s)
	assert.ErrorIs(t, err, domain.ErrSizeOutOfRange)
}

func TestRunCheck(t *testing.T) {
	s, out, _ := bufferStreams()

	verdict, err := RunCheck(0b01, 2, s)
	require.NoError(t, err)
	assert.True(t, verdict.Tie)
	assert.Contains(t, out.String(), "01: tie")

	_, err = RunCheck(0b111, 2, s)
	assert.ErrorIs(t, err, domain.ErrValueOverflow)
}

func TestPrintVerdict_NoConvergence(t *testing.T) {
	s, out, _ := bufferStreams()
	c := domain.MustNew(0b001, 3)
	c.SetCell(1, domain.Cell{Intermediate: true})

	printVerdict(s, c.Evaluate())
	assert.Equal(t, ">>> 001: no convergence after 4 sweeps, incorrect\n", out.String())
}

func TestParseValue(t *testing.T) {
	tests := map[string]uint32{
		"0b011": 3,
		"0x1f":  31,
		"21":    21,
	}
	for in, want := range tests {
		got, err := ParseValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseValue("0b2")
	assert.Error(t, err)
	_, err = ParseValue("4294967296")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 2, ExitCode(&ExitError{Code: 2}))
	assert.Equal(t, 130, ExitCode(fmt.Errorf("verify: %w", &ExitError{Code: 130})))

	err := &ExitError{Code: 2, Err: errors.New("counterexample at size 9")}
	assert.Equal(t, "counterexample at size 9", err.Error())
	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, HandleExecutionError(nil))
	assert.NoError(t, HandleExecutionError(fmt.Errorf("search: %w", context.Canceled)))

	boom := errors.New("boom")
	assert.Equal(t, boom, HandleExecutionError(boom))
}
