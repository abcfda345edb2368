// Package store provides a thread-safe keyed store of values.
//
// ValueStore differs from a Container in two ways: keys are unique,
// so Set replaces, and there is no header. It is the right shape for
// long-lived state that gets snapshotted onto the wire, rather than
// for a message in flight. Serialize clones the current entries into
// a container in sorted key order and wire-encodes it, so snapshots
// of equal stores are byte-identical.
//
// Statistics (reads, writes, removes, serializations, uptime) are
// always collected; pass WithMetrics to also export activity as
// Prometheus metrics under the store's name label.
package store
