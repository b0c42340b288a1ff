// Package avltree provides an arena-backed AVL tree with order-statistic
// queries.
//
// All nodes live in a single append-only store and refer to each other by
// Slot, a stable integer index. The Tree owns the store; every operation
// works on slots, so nodes never hold references to the container.
//
// # Quick Start
//
//	t := avltree.New[int]()
//	for _, v := range []int{5, 3, 8, 1} {
//	    t.Insert(v)
//	}
//	v, ok := t.Nth(0) // 1, true
//	_, ok = t.Nth(t.Size()) // ok == false
//
// Custom orders use NewFunc:
//
//	byLen := avltree.NewFunc(func(a, b string) int {
//	    return cmp.Compare(len(a), len(b))
//	})
//
// # Ordering
//
// A value strictly less than a node goes left; greater or equal goes right.
// Duplicates are kept and iterate in insertion order.
//
// # Balancing
//
// After each insert the tree walks from the new leaf to the root, refreshing
// heights (leaf = 1, absent child = 0) and applying a single or double
// rotation wherever |height(left) - height(right)| > 1.
//
// # Errors
//
// Out-of-range queries return false. Internal invariant violations (a
// rotation without the required child, an invalid slot, a broken parent link)
// panic; continuing would corrupt every later operation. WithValidation
// re-checks the whole tree after each insert, which is useful in tests.
//
// # Concurrency
//
// Tree is single-threaded. Synced wraps a Tree behind one mutex for shared use.
//
// Deletion is not supported.
package avltree
