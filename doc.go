// Package containerkit provides a typed, tagged-value data model with
// a thread-safe container and deterministic codecs for crossing
// language boundaries.
//
// # Layout
//
// The module is organized around one data model and the surfaces that
// consume it:
//
//   - container: the 16 value kinds with their stable numeric codes,
//     checked numeric conversions, and the header-carrying Container
//     that stores an ordered, multi-valued collection of them.
//   - wire: the text wire format, a recursive grammar that encodes a
//     whole container (nested arrays and containers included) into one
//     deterministic string and parses it back.
//   - jsoncodec, xmlcodec: type-tagged JSON in both directions and
//     encode-only XML, for consumers that want standard formats.
//   - builder, factory: fluent assembly and configured construction.
//   - store: a keyed value store with always-on statistics, for
//     long-lived state that gets snapshotted onto the wire.
//   - config, metric, errors: YAML configuration with thread-safe
//     access, optional Prometheus instrumentation, and the typed
//     error kinds shared by every package.
//
// # Interoperability
//
// The wire format is implemented by peers in several languages. Two
// rules keep them compatible: type codes are stable and never
// renumbered, and conversions are checked rather than truncating, so
// a value either crosses the boundary exactly or fails loudly.
package containerkit
