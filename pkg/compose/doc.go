// Package compose is the composition algebra over machines: systematic
// renaming (hygiene), sequential concatenation, union and loop
// construction.
//
// Independently authored machines commonly reuse identical state labels
// (every "move" builder numbers its states "0", "1", ...). Merging them
// naively would conflate unrelated states. The operators here rename
// contributing machines injectively before merging, so composites stay
// collision-free without any global counter.
//
// Every operator is a pure function: operands are never mutated, and the
// result is a fresh machine. That keeps composition order-independent
// (except for the documented fold order of Multiconcat) and lets
// independent sub-machines be built in parallel before a final fold.
package compose
