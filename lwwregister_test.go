package gocrdt

import "testing"

func TestLWWRegister_UninitializedRead(t *testing.T) {
	r := NewLWWRegister[string](1)

	if _, err := r.Value(); err != ErrUninitialized {
		t.Fatalf("expected ErrUninitialized, got %v", err)
	}
}

// S1 from the spec: two registers race, distinct uids at the same seq
// break the tie deterministically and both sides converge.
func TestLWWRegister_S1Race(t *testing.T) {
	r1 := NewLWWRegister[string](1)
	r2 := NewLWWRegister[string](2)

	r1.Assign("a")
	r2.Assign("b")

	r1.Merge(r2)
	if v, _ := r1.Value(); v != "b" {
		t.Errorf("expected r1 to adopt %q, got %q", "b", v)
	}

	r2.Merge(r1)
	if v, _ := r2.Value(); v != "b" {
		t.Errorf("expected r2 to stay at %q, got %q", "b", v)
	}
}

func TestLWWRegister_ReplicaIDReflectsBind(t *testing.T) {
	r := NewLWWRegister[string](1)
	if got := r.ReplicaID(); got != 1 {
		t.Fatalf("expected replica id 1, got %d", got)
	}

	r.Bind(9)
	if got := r.ReplicaID(); got != 9 {
		t.Errorf("expected replica id 9 after rebind, got %d", got)
	}
}

func TestLWWRegister_Idempotent(t *testing.T) {
	r := NewLWWRegister[int](1)
	r.Assign(42)

	r.Merge(r)
	if v, _ := r.Value(); v != 42 {
		t.Errorf("self-merge should be a no-op, got %d", v)
	}
}

func TestLWWRegister_AsCRDTRoundTrip(t *testing.T) {
	r1 := NewLWWRegister[string](1)
	r2 := NewLWWRegister[string](2)

	r1.Assign("first")
	r2.Assign("second")

	if err := r1.AsCRDT().Merge(r2.AsCRDT()); err != nil {
		t.Fatalf("unexpected error merging through CRDT boundary: %v", err)
	}

	if got := r1.AsCRDT().Value(); got != "second" {
		t.Errorf("expected %q through CRDT boundary, got %v", "second", got)
	}
}

func TestLWWRegister_AsCRDTRejectsIncompatibleType(t *testing.T) {
	r1 := NewLWWRegister[string](1)
	other := NewLWWRegister[int](2)
	other.Assign(7)

	err := r1.AsCRDT().Merge(other.AsCRDT())
	if err == nil {
		t.Fatalf("expected ErrIncompatibleType merging LWWRegister[string] with LWWRegister[int]")
	}
}
