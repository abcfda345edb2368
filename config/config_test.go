package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
	"github.com/c360/containerkit/wire"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, container.DefaultVersion, cfg.Version)
	assert.Equal(t, container.DefaultMessageType, cfg.DefaultMessageType)
	assert.Equal(t, container.DefaultMaxValues, cfg.MaxValues)
	assert.Equal(t, wire.DefaultMaxDepth, cfg.MaxDepth)
	assert.NoError(t, cfg.Validate())
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, container.DefaultVersion, cfg.Version)
	assert.Equal(t, container.DefaultMaxValues, cfg.MaxValues)
	assert.Equal(t, wire.DefaultMaxDepth, cfg.MaxDepth)
}

func TestValidateCapsMaxValues(t *testing.T) {
	cfg := &Config{MaxValues: 5_000_000}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, container.AbsoluteMaxValues, cfg.MaxValues)
}

func TestValidateRejectsNegatives(t *testing.T) {
	err := (&Config{MaxValues: -1}).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)

	err = (&Config{MaxDepth: -1}).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
version: "2.1.0.0"
default_message_type: telemetry
max_values: 500
max_depth: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0.0", cfg.Version)
	assert.Equal(t, "telemetry", cfg.DefaultMessageType)
	assert.Equal(t, 500, cfg.MaxValues)
	assert.Equal(t, 8, cfg.MaxDepth)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 4\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, container.DefaultVersion, cfg.Version)
	assert.Equal(t, container.DefaultMaxValues, cfg.MaxValues)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingConfig)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: [oops\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestConfigOptionsApply(t *testing.T) {
	cfg := &Config{
		Version:            "3.0.0.0",
		DefaultMessageType: "sensor_data",
		MaxValues:          3,
		MaxDepth:           2,
	}
	require.NoError(t, cfg.Validate())

	c := container.New(cfg.ContainerOptions()...)
	assert.Equal(t, "3.0.0.0", c.Version())
	assert.Equal(t, "sensor_data", c.MessageType())
	assert.Equal(t, 3, c.MaxValues())

	codec := wire.NewCodec(cfg.CodecOptions()...)
	assert.Equal(t, 2, codec.MaxDepth())
	assert.Equal(t, 3, codec.MaxValues())
}

func TestSafeConfigGetReturnsCopy(t *testing.T) {
	sc := NewSafeConfig(Default())

	got := sc.Get()
	got.MaxDepth = 1

	assert.Equal(t, wire.DefaultMaxDepth, sc.Get().MaxDepth)
}

func TestSafeConfigUpdate(t *testing.T) {
	sc := NewSafeConfig(Default())

	require.Error(t, sc.Update(nil))
	require.Error(t, sc.Update(&Config{MaxValues: -1}))

	require.NoError(t, sc.Update(&Config{MaxDepth: 5}))
	assert.Equal(t, 5, sc.Get().MaxDepth)
}

func TestSafeConfigConcurrentAccess(t *testing.T) {
	sc := NewSafeConfig(Default())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if j%10 == 0 {
					_ = sc.Update(&Config{MaxDepth: j + 1})
				}
				cfg := sc.Get()
				assert.NotNil(t, cfg)
				assert.GreaterOrEqual(t, cfg.MaxDepth, 1)
			}
		}()
	}
	wg.Wait()
}
