package factory

import (
	"fmt"
	"sync"

	"github.com/c360/containerkit/builder"
	"github.com/c360/containerkit/config"
	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
)

// ContainerFactory creates containers with a consistent configuration
type ContainerFactory interface {
	// Create returns a fresh container with the factory's defaults
	Create() *container.Container

	// CreateWithType returns a fresh container with an explicit
	// message type
	CreateWithType(messageType string) *container.Container

	// Builder returns a builder preloaded with the factory's defaults
	Builder() *builder.Builder
}

// DefaultFactory creates containers from a shared configuration.
// Configuration updates apply to containers created afterwards.
type DefaultFactory struct {
	cfg *config.SafeConfig
}

// NewDefaultFactory creates a factory. A nil config means built-in
// defaults.
func NewDefaultFactory(cfg *config.Config) *DefaultFactory {
	return &DefaultFactory{cfg: config.NewSafeConfig(cfg)}
}

// Config returns the factory's thread-safe configuration handle
func (f *DefaultFactory) Config() *config.SafeConfig {
	return f.cfg
}

// Create returns a fresh container with the factory's defaults
func (f *DefaultFactory) Create() *container.Container {
	return container.New(f.cfg.Get().ContainerOptions()...)
}

// CreateWithType returns a fresh container with an explicit message type
func (f *DefaultFactory) CreateWithType(messageType string) *container.Container {
	opts := append(f.cfg.Get().ContainerOptions(), container.WithMessageType(messageType))
	return container.New(opts...)
}

// Builder returns a builder preloaded with the factory's defaults
func (f *DefaultFactory) Builder() *builder.Builder {
	cfg := f.cfg.Get()
	return builder.New().
		WithVersion(cfg.Version).
		WithType(cfg.DefaultMessageType).
		WithMaxValues(cfg.MaxValues)
}

// Provider hands out factories by name for dependency-injection style
// wiring. An unnamed default factory is always available.
type Provider struct {
	mu        sync.RWMutex
	factories map[string]ContainerFactory
	fallback  ContainerFactory
}

// NewProvider creates a provider with the given fallback factory. A
// nil fallback means a DefaultFactory with built-in defaults.
func NewProvider(fallback ContainerFactory) *Provider {
	if fallback == nil {
		fallback = NewDefaultFactory(nil)
	}
	return &Provider{
		factories: make(map[string]ContainerFactory),
		fallback:  fallback,
	}
}

// Register adds a named factory. Registering an existing name fails.
func (p *Provider) Register(name string, f ContainerFactory) error {
	if name == "" || f == nil {
		return errors.WrapInvalid(
			errors.New("name and factory are required"), "factory", "Register", "registration")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.factories[name]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("factory %q already registered", name),
			"factory", "Register", "registration")
	}
	p.factories[name] = f
	return nil
}

// Factory returns the named factory, or the fallback when the name is
// empty or unknown.
func (p *Provider) Factory(name string) ContainerFactory {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if f, ok := p.factories[name]; ok {
		return f
	}
	return p.fallback
}

// Names returns the registered factory names
func (p *Provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.factories))
	for name := range p.factories {
		names = append(names, name)
	}
	return names
}
