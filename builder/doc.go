// Package builder provides a fluent way to assemble containers.
//
// The builder defers errors so chains read cleanly: any failure along
// the way, such as an out-of-range long or a nil value, is remembered
// and reported by Build, and everything after it becomes a no-op.
// WithGeneratedSource stamps a unique sub id for per-session routing.
package builder
