// Package errors provides standardized error handling patterns for containerkit.
//
// # Overview
//
// The package combines two things: the typed domain errors produced by the
// value, container, and wire-codec layers, and a three-class classification
// system (Transient, Invalid, Fatal) that lets callers make handling
// decisions without string matching.
//
// # Domain Errors
//
// Each failure mode in the container system has a concrete error type
// carrying its diagnostic fields, plus a sentinel it matches via errors.Is:
//
//   - ConversionError / ErrInvalidConversion — a checked type conversion
//     failed (e.g. string to int, or a lossy float to integer)
//   - RangeError / ErrValueOutOfRange — a value cannot be represented in
//     the target type (narrowing overflow, 32-bit Long construction)
//   - NotFoundError / ErrValueNotFound — no value under the requested name
//   - FormatError / ErrInvalidDataFormat — malformed wire, JSON, or XML
//     input; carries the byte offset where parsing failed and optionally a
//     terminal parse kind (ErrUnterminatedBlock, ErrUnknownTypeCode,
//     ErrMalformedField)
//   - LimitError / ErrLimitExceeded — an insert would exceed a container's
//     configured value cap
//   - ErrMaxDepthExceeded — nesting deeper than the codec's configured
//     maximum
//
// All of these integrate with the standard errors.Is / errors.As chain:
//
//	if errors.Is(err, errors.ErrValueOutOfRange) {
//	    var re *errors.RangeError
//	    if errors.As(err, &re) {
//	        log.Printf("%s out of [%s, %s]", re.Value, re.Min, re.Max)
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapInvalid(err, "Container", "AddValue", "limit check")
//	errors.WrapFatal(err, "Store", "Serialize", "snapshot encode")
//	errors.WrapTransient(err, "Component", "Method", "action")
//
// # Classification
//
// Conversion, range, format, and depth errors classify as Invalid: the
// input is wrong and retrying cannot help. Limit errors classify as Fatal
// from the container's perspective; whether to drop or reroute is the
// caller's policy. Nothing in this module produces Transient errors, since
// every operation is a bounded, CPU-only computation.
package errors
