package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membench/membench/bench"
)

const presetYAML = `
presets:
  quick:
    kernel: copy
    iters: 5
    warmup: 0
  dram-triad:
    kernel: triad
    size: 1GiB
    prefault: true
    aligned: true
    seed: 7
`

func writePresetFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presetYAML), 0o644))
	return path
}

func TestApplyPreset_OverlaysOnlySetFields(t *testing.T) {
	path := writePresetFile(t)

	cfg := bench.DefaultConfig()
	require.NoError(t, ApplyPreset(path, "quick", &cfg))

	assert.Equal(t, "copy", cfg.Kernel)
	assert.Equal(t, 5, cfg.Iters)
	assert.Equal(t, 0, cfg.Warmup) // explicit zero wins over the default 10
	// Untouched fields keep their defaults.
	assert.Equal(t, "64MB", cfg.Size)
	assert.Equal(t, int64(14), cfg.Seed)
	assert.False(t, cfg.Prefault)
}

func TestApplyPreset_AllFields(t *testing.T) {
	path := writePresetFile(t)

	cfg := bench.DefaultConfig()
	require.NoError(t, ApplyPreset(path, "dram-triad", &cfg))

	assert.Equal(t, "triad", cfg.Kernel)
	assert.Equal(t, "1GiB", cfg.Size)
	assert.True(t, cfg.Prefault)
	assert.True(t, cfg.Aligned)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestApplyPreset_Errors(t *testing.T) {
	path := writePresetFile(t)
	cfg := bench.DefaultConfig()

	assert.Error(t, ApplyPreset(path, "no-such-preset", &cfg))
	assert.Error(t, ApplyPreset(filepath.Join(t.TempDir(), "missing.yaml"), "quick", &cfg))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("presets: ["), 0o644))
	assert.Error(t, ApplyPreset(bad, "quick", &cfg))
}

func TestKnownKernel(t *testing.T) {
	for _, name := range []string{"stream", "copy", "scale", "add", "triad", "flops", "fma", "dot", "saxpy", "latency", "stream_triad"} {
		assert.True(t, knownKernel(name), name)
	}
	for _, name := range []string{"", "streem", "memcpy"} {
		assert.False(t, knownKernel(name), name)
	}
}
