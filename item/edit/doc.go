// Package edit rebuilds an item's property list and splices it back into the
// record's bits.
//
// # Overview
//
// An Engine applies a Delta (properties to add, ids to remove, instances to
// change) to a parsed record. The bits before the property list and the bits
// after it, up to the end of the meaningful body, are preserved verbatim; only
// the list between them is re-encoded. The resulting candidate is re-parsed
// and checked by item/verify before it is returned.
//
//	engine := edit.NewEngine(parser, edit.Options{})
//	out, err := engine.Apply(rec, edit.Delta{
//	    Add: []props.Property{{ID: 79, Value: 9}},
//	})
//
// # Merge Order
//
//  1. Existing properties in their original order
//  2. Instances of every id in Delta.Remove are dropped
//  3. Delta.Change overwrites matching instances in place
//  4. Delta.Add is appended in caller order
//
// Every precondition is checked before any bit is touched: unknown ids,
// values or params that do not fit their width, duplicate additions of a
// non-repeatable id, and changes that target a missing instance.
//
// # Ownership
//
// Apply never modifies its input. A successful call returns a freshly parsed
// record whose property offsets refer to its own bits; offsets taken from the
// input record are stale for the output.
package edit
