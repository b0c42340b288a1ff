// Package arena provides the append-only node store for the AVL tree.
//
// The arena owns every node record. Nodes are addressed by Slot, a stable
// integer index handed out by Allocate; links between nodes (left, right,
// parent) are slots too, so no record ever holds a pointer to another record
// or to the arena itself.
//
// # Features
//
//   - Append-only: slots are never removed, relocated or reused
//   - Segmented backing storage (no copying on growth)
//   - O(1) indexed access and field updates
//
// # Safety
//
// Out-of-range slot access is a programming error and panics with an
// *InvalidSlotError. Exhausting the 32-bit slot space panics as well; it is
// treated like running out of memory.
package arena
