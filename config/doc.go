// Package config loads and validates codec configuration.
//
// Config carries the tunable limits of the module: the wire protocol
// version stamped into headers, the default message type, the
// per-container value cap and the nesting depth limit. Load reads a
// YAML file and validates it; Default returns the built-in settings.
// Validation fills unset fields with their defaults and caps
// max_values at the absolute ceiling rather than rejecting it.
//
// SafeConfig provides thread-safe access to configuration: Get returns
// a copy so callers can never mutate shared state, and Update swaps
// the whole configuration atomically after validating it.
package config
