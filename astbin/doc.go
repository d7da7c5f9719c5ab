// Package astbin flattens a JavaScript / TypeScript syntax tree into a single
// byte buffer of fixed-size, tag-based records.
//
// The buffer lets a fast native parser hand a full tree to a separate
// consumer (for example a lint rule engine hosted in a scripting runtime)
// without the consumer re-parsing text or walking a native object graph.
//
// # Record layout
//
// Every node becomes one 14-byte header, all integers little-endian:
//
//	offset size field
//	0      1    kind        (Kind)
//	1      1    flags       (Flags, currently always FlagNone)
//	2      4    child count (uint32)
//	6      4    span start  (uint32 byte offset)
//	10     4    span end    (uint32 byte offset)
//
// The header is followed immediately by exactly child-count complete child
// records, each with its own children, in an order fixed per kind. The root
// is a single Program record whose count is the number of top-level items.
// There is no framing and no length prefix: a decoder reads one header and
// recurses count times. See package astbin/decoder for a reference reader.
//
// # Counts and slots
//
// A child count is the structural arity of the node, not the number of
// tokens in the source. Three conventions are used:
//
//   - Lists contribute their length (block statements, sequence
//     expressions, switch cases).
//   - Optional children contribute one only when present (the else branch
//     of an if, the argument of a return).
//   - Fixed slots that may be syntactically absent always contribute one,
//     and an absent slot is written as a zero-count EmptyExpr record (the
//     three heads of a for loop). Decoders index such slots by position.
//
// Spread arguments and elements are preceded by a zero-count Spread marker
// that is itself counted by the parent, so a call with n arguments of which
// k are spread declares 1+n+k children.
//
// # Stability
//
// Kind values are a wire contract with the decoder. They are append-only:
// an existing value never changes meaning and is never reused.
//
// # Resources
//
// Encoding is a single synchronous depth-first walk. Stack depth grows with
// the nesting depth of the tree; Go stacks grow on demand up to the runtime
// limit, so only pathological nesting can exhaust it. Callers that need a
// tighter bound must enforce it before encoding.
package astbin
