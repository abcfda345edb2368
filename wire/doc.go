// Package wire implements the text wire format for containers.
//
// A container serializes to a single deterministic string:
//
//	@header={{[id,value];...}};@data={{[name,code,payload];...}};
//
// The header block carries the routing fields, message type and
// version under fixed numeric ids. The data block carries every value
// in insertion order with its stable numeric type code. Array payloads
// are anonymous entry blocks, {{[code,payload];...}}, and container
// payloads repeat the full grammar recursively, so arbitrarily nested
// data round-trips through one flat string. Bytes payloads travel as
// standard base64.
//
// Decoding is a recursive descent parse, never delimiter splitting:
// nested payloads legally contain the bracket and separator
// characters, so entries are only delimited at the current nesting
// level. Malformed input always yields a typed error carrying the byte
// offset where parsing stopped, and never a partially built container.
// Both directions enforce a configurable maximum nesting depth
// (DefaultMaxDepth) so adversarial input cannot exhaust the stack.
//
// The grammar has no escape mechanism, matching the format used by
// the peer implementations in other languages. Value names must avoid
// all of the structural characters ('[', ']', '{', '}', ',', ';');
// string payloads are less constrained and only must avoid ']'.
// Arbitrary binary content belongs in a bytes value, which travels as
// base64.
package wire
