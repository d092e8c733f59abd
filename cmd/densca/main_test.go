package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/densca/internal/cli"
	"github.com/aretw0/densca/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "densca version ")
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	flags := verifyCmd.Flags()
	require.NoError(t, flags.Set("size", "7"))
	require.NoError(t, flags.Set("workers", "3"))
	require.NoError(t, flags.Set("no-progress", "true"))
	t.Cleanup(func() {
		for _, name := range []string{"size", "workers", "no-progress"} {
			f := flags.Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	cfg, err := loadConfig(verifyCmd)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MinSize)
	assert.Equal(t, 7, cfg.MaxSize)
	assert.Equal(t, 3, cfg.Workers)
	assert.False(t, cfg.Progress)
}

func TestLoadConfig_RejectsBadRange(t *testing.T) {
	flags := verifyCmd.Flags()
	require.NoError(t, flags.Set("max", "40"))
	t.Cleanup(func() {
		f := flags.Lookup("max")
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	_, err := loadConfig(verifyCmd)
	assert.Error(t, err)
}

func TestCheckCommand_CorrectRingExitsZero(t *testing.T) {
	rootCmd.SetArgs([]string{"check", "0b011", "--size", "3"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, 0, cli.ExitCode(err))
}

func TestCheckCommand_BadValueIsAnError(t *testing.T) {
	rootCmd.SetArgs([]string{"check", "0b1111", "--size", "3"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.ErrorIs(t, err, domain.ErrValueOverflow)
	assert.Equal(t, 1, cli.ExitCode(err))
}
