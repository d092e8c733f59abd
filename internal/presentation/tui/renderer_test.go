package tui

import (
	"testing"
	"time"

	"github.com/aretw0/densca/pkg/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	reports := []verify.Report{
		{Result: verify.Result{Size: 3, Total: 4, Evaluated: 4}, Duration: 2 * time.Millisecond},
		{Result: verify.Result{Size: 5, Total: 16, Evaluated: 9, Found: true, CounterExample: 0b101}},
	}

	md := Summary(reports)
	assert.Contains(t, md, "| 3 | 4 | 4 | clean | 2ms |")
	assert.Contains(t, md, "counterexample `00101`")
	assert.Contains(t, md, "1 of 2 sizes clean.")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer(80)
	out, err := render("# Verification summary\n\nall clean")
	require.NoError(t, err)
	assert.Contains(t, out, "Verification summary")
	assert.Contains(t, out, "all clean")
}
