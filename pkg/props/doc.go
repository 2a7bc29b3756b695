// Package props accumulates multi-valued properties with per-key deduplication.
//
// A [Properties] accumulator collects batches of key → values updates. Values
// under one key are kept as an order-preserving set while merging, so the
// first occurrence of a value fixes its position and later duplicates are
// ignored:
//
//	p := props.New[string]()
//	p.Merge(props.P("tag", "x"))
//	p.Merge(props.P("tag", "y", "x"))
//	p.Map() // map[tag:[x y]]
//
// Merging into the same accumulator several times is equivalent to merging the
// concatenation of all updates once.
//
// # Seeded Values
//
// [FromMap] seeds an accumulator with plain lists. A seeded list is returned
// exactly as given until a merge touches its key; from then on it is treated
// as a set in its existing order.
//
// # Read-back
//
// Sets never escape the package. [Properties.Values] and [Properties.Map]
// return fresh ordered slices.
//
// # Equality
//
// Values are compared with Go's == on V. Callers merging structured data should
// normalize it to a comparable representation (e.g. strings) first.
package props
