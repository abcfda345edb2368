// Package jsoncodec renders containers as type-tagged JSON and parses
// them back.
//
// The JSON form exists for consumers that cannot speak the wire
// grammar: each value is an object carrying its name, its type's text
// name and its payload. Numbers are emitted as JSON numbers in their
// canonical text and parsed back with json.Number, so 64-bit integers
// survive without passing through a float64. Bytes travel as base64
// strings; arrays and nested containers recurse as tagged value
// lists. Round-trips are type-exact: the rebuilt container holds the
// same variants, not a lowest-common-denominator approximation.
package jsoncodec
