package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosax/arma"
	"github.com/sartorproj/gosax/timeseries"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 100, cfg.Length)
	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.Equal(t, arma.Default(), cfg.Process)
	assert.Equal(t, Params{FrameSize: 4, AlphabetSize: 5}, cfg.Params())
	require.NoError(t, cfg.Validate())
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	data := []byte(`
length: 240
seed: 7
process:
  ma: [0.3, 0.2]
frame_size: 12
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, 240, cfg.Length)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, []float64{0.0}, cfg.Process.AR, "absent keys keep defaults")
	assert.Equal(t, []float64{0.3, 0.2}, cfg.Process.MA)
	assert.Equal(t, 1.0, cfg.Process.Sigma)
	assert.Equal(t, 12, cfg.FrameSize)
	assert.Equal(t, 5, cfg.AlphabetSize)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{"bad yaml", "length: [", nil},
		{"zero length", "length: 0", timeseries.ErrInvalidParameter},
		{"zero frame", "frame_size: 0", timeseries.ErrInvalidParameter},
		{"zero alphabet", "alphabet_size: 0", timeseries.ErrInvalidParameter},
		{"bad sigma", "process:\n  sigma: -1", arma.ErrInvalidProcess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "config:")
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestConfigSizesAboveLength(t *testing.T) {
	cfg, err := ParseConfig([]byte("length: 10\nframe_size: 11\n"))
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.FrameSize)

	p, err := New(cfg)
	require.NoError(t, err)
	_, err = p.Run(cfg.Params())
	require.ErrorIs(t, err, timeseries.ErrInvalidParameter)

	res, err := p.Run(Params{FrameSize: 2, AlphabetSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Symbolic.Len())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosax.yaml")
	require.NoError(t, os.WriteFile(path, []byte("length: 64\nalphabet_size: 8\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Length)
	assert.Equal(t, 8, cfg.AlphabetSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	data, err := DefaultConfig().Marshal()
	require.NoError(t, err)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvLength: "200", EnvSeed: "99"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 200, cfg.Length)
	assert.Equal(t, uint64(99), cfg.Seed)

	env = map[string]string{EnvLength: "many"}
	cfg = DefaultConfig()
	require.Error(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 100, cfg.Length, "unparsable value is not applied")

	env = map[string]string{EnvSeed: "-1"}
	require.Error(t, DefaultConfig().ApplyEnv(lookup))

	env = map[string]string{EnvLength: "0"}
	require.ErrorIs(t, DefaultConfig().ApplyEnv(lookup), timeseries.ErrInvalidParameter)

	env = map[string]string{EnvLength: "3"}
	cfg = DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookup), "default sizes are bounded where they are used")
	assert.Equal(t, 3, cfg.Length)

	env = nil
	cfg = DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, DefaultConfig(), cfg)
}
