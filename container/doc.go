// Package container implements the typed, tagged-value data model shared
// across the containerkit language implementations.
//
// # Data Model
//
// The model is a closed family of 16 value kinds, each bound to a stable
// numeric type code (0 = Null through 15 = Array) that crosses the wire
// and must never be renumbered. Every kind implements the Value
// capability: identity (Name), type tag (Type), canonical Size, checked
// numeric conversions, total String and canonical Bytes forms, and a
// polymorphic Clone.
//
// Two integer kinds deserve attention: LongValue and ULongValue are the
// 32-bit range-checked kinds, present for parity with platforms whose
// native long is 32 bits. Their constructors are fallible and reject
// out-of-range input at construction time. LLongValue and ULLongValue
// carry the full 64-bit ranges and never fail construction.
//
// # Conversions
//
// Conversions are checked, not truncating. Widening always succeeds;
// narrowing fails with a range error when the value cannot be represented
// exactly in the target, including fractional loss from float to integer.
// Strings never convert to numbers implicitly.
//
//	v := container.NewIntValue("count", 42)
//	n, _ := v.ToLong()       // widening: always fine
//	_, err := container.NewDoubleValue("pi", 3.14).ToInt()
//	// err matches errors.ErrInvalidConversion: fractional loss
//
// # Nesting
//
// ArrayValue holds an ordered sequence of anonymous values; ContainerValue
// holds named children. Both may nest arbitrarily (bounded on the wire by
// the codec's depth limit) and are walked recursively by the wire, JSON,
// and XML codecs.
//
// # Container
//
// Container is the top-level unit of exchange: six header strings
// (source/target routing, message type, version) plus an ordered
// multi-map of values. It is protected by a single reader/writer lock:
// readers proceed together, writers are exclusive. Passing the *Container
// pointer is the cheap O(1) share; Copy(includeValues) is the explicit
// O(n) duplication.
//
//	c := container.New(
//	    container.WithSource("client", "session-1"),
//	    container.WithTarget("server", "handler"),
//	    container.WithMessageType("user_data"),
//	)
//	_ = c.AddValue(container.NewIntValue("count", 42))
package container
