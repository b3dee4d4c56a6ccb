// Package sieve maintains a minimal family of unavoidable sets for a fixed
// solved Sudoku grid.
//
// An unavoidable set is a minimal set of cells whose simultaneous removal
// from the solved grid leaves a puzzle with more than one completion, while
// restoring any single cell of the set makes the completion unique again.
// The sieve stores such sets as 81-bit cell masks, partitioned into weight
// buckets, and keeps the collection an antichain with respect to insertion
// order: a candidate that is a superset of a stored item carries no new
// information and is rejected.
//
// The central query is Satisfies: a clue mask that intersects every stored
// item is, as far as the current sieve knows, safe to use as the basis of a
// uniquely solvable puzzle. A clue mask that misses an item entirely leaves
// that item's ambiguity intact.
//
// A Sieve is a single-threaded, synchronous structure. Callers must
// serialize access or use one sieve per goroutine.
package sieve
