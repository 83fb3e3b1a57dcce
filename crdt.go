// Package gocrdt provides a suite of state-based Conflict-free Replicated
// Data Types (CvRDTs) for geo-replicated or peer-to-peer systems that need
// strong eventual consistency without a coordinator.
//
// Each replica holds a local copy of the data, accepts local updates
// unilaterally, and periodically merges in the whole state of a peer; once
// every pair of replicas has mutually merged, they converge on identical
// state regardless of the order or multiplicity of merges.
//
// The package implements four interlocking types: Tag, a replica-local
// logical clock; LWWRegister, a last-writer-wins single-value cell; ORSet,
// an add-wins observed-remove set; and Map, a composition of ORSet and
// LWWRegister into a convergent key-value store.
package gocrdt

// CRDT is the dynamic-dispatch boundary for callers holding heterogeneous
// CRDT instances (a codec, a CLI, a registry keyed by name) that don't know
// the concrete type parameters of each instance at compile time.
//
// The core algorithms never use this interface internally — Map merges its
// ORSet and LWWRegisters through their statically-typed Merge methods. CRDT
// exists only for the boundary where dynamic dispatch is unavoidable.
type CRDT interface {
	// Value returns the current consolidated state of the CRDT.
	Value() any

	// Merge combines the state of a remote CRDT into the local instance.
	//
	// To guarantee convergence across all replicas, implementations MUST be:
	//
	// 1. Commutative: A.Merge(B) then B.Merge(A) yields equal state on both.
	// 2. Associative: (A.Merge(B)).Merge(C) == A.Merge(B.Merge(C)) in outcome.
	// 3. Idempotent: A.Merge(A) leaves A unchanged.
	//
	// Implementations type-assert the other parameter and return
	// ErrIncompatibleType if the concrete type (including type parameters)
	// does not match.
	Merge(other CRDT) error
}
