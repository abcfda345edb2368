// Package factory creates containers with consistent, shared defaults.
//
// DefaultFactory binds a thread-safe configuration to container
// construction, so every subsystem stamps the same version, message
// type and limits without passing options around. Provider adds a
// small registry for handing out named factories in larger wirings,
// always falling back to a default.
package factory
