// Package testutil provides testing utilities for avltree.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic insertion workloads and reference helpers.
//
// # Workloads
//
//	rng := testutil.NewRNG(seed)
//	rng.Shuffled(1000)          // permutation of 0..999
//	rng.UniformInts(1000, 50)   // many duplicates
//	rng.ZipfInts(1000, 50, 1.5) // heavily skewed duplicates
//	testutil.Ascending(1000)    // worst case for an unbalanced BST
//
// # Reference
//
//	want := testutil.Sorted(values)        // expected Nth order
//	bound := testutil.AVLHeightBound(n)    // maximum AVL height
package testutil
