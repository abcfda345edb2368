package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/containerkit/config"
	"github.com/c360/containerkit/container"
)

func TestDefaultFactoryCreate(t *testing.T) {
	f := NewDefaultFactory(nil)

	c := f.Create()
	assert.Equal(t, container.DefaultMessageType, c.MessageType())
	assert.Equal(t, container.DefaultVersion, c.Version())
	assert.Equal(t, container.DefaultMaxValues, c.MaxValues())
}

func TestDefaultFactoryWithConfig(t *testing.T) {
	cfg := &config.Config{
		Version:            "2.0.0.0",
		DefaultMessageType: "telemetry",
		MaxValues:          50,
	}
	require.NoError(t, cfg.Validate())
	f := NewDefaultFactory(cfg)

	c := f.Create()
	assert.Equal(t, "telemetry", c.MessageType())
	assert.Equal(t, "2.0.0.0", c.Version())
	assert.Equal(t, 50, c.MaxValues())

	c = f.CreateWithType("alert")
	assert.Equal(t, "alert", c.MessageType())
	assert.Equal(t, "2.0.0.0", c.Version())
}

func TestFactoryBuilder(t *testing.T) {
	cfg := &config.Config{Version: "2.0.0.0", DefaultMessageType: "telemetry"}
	require.NoError(t, cfg.Validate())

	c, err := NewDefaultFactory(cfg).Builder().
		AddInt("n", 1).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "telemetry", c.MessageType())
	assert.Equal(t, "2.0.0.0", c.Version())
	assert.Equal(t, 1, c.ValueCount())
}

func TestFactoryTracksConfigUpdates(t *testing.T) {
	f := NewDefaultFactory(nil)

	require.NoError(t, f.Config().Update(&config.Config{DefaultMessageType: "sensor_data"}))
	assert.Equal(t, "sensor_data", f.Create().MessageType())
}

func TestProvider(t *testing.T) {
	p := NewProvider(nil)

	telemetry := NewDefaultFactory(&config.Config{DefaultMessageType: "telemetry"})
	require.NoError(t, p.Register("telemetry", telemetry))

	// Duplicate registration fails.
	require.Error(t, p.Register("telemetry", telemetry))
	require.Error(t, p.Register("", telemetry))
	require.Error(t, p.Register("x", nil))

	assert.Equal(t, "telemetry", p.Factory("telemetry").Create().MessageType())

	// Unknown names fall back to the default factory.
	assert.Equal(t, container.DefaultMessageType, p.Factory("unknown").Create().MessageType())
	assert.Equal(t, container.DefaultMessageType, p.Factory("").Create().MessageType())

	assert.Equal(t, []string{"telemetry"}, p.Names())
}
