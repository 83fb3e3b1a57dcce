package gocrdt

import "testing"

func TestTag_Monotonicity(t *testing.T) {
	tag := NewTag(7)

	if !tag.BeginningOfTime() {
		t.Fatalf("expected beginning of time before any update")
	}

	for n := uint64(1); n <= 5; n++ {
		tag.Update()
		if tag.SequenceNumber() != n {
			t.Errorf("expected sequence number %d, got %d", n, tag.SequenceNumber())
		}
		if tag.BeginningOfTime() {
			t.Errorf("expected beginning of time to be false after %d updates", n)
		}
	}
}

func TestTag_TieBreakAcrossReplicas(t *testing.T) {
	t1 := NewTag(1)
	t2 := NewTag(2)

	t1.Update()
	t2.Update()

	if t1.Equal(t2) {
		t.Fatalf("tags from distinct replicas at the same seq must not be equal")
	}

	lt12 := t1.Less(t2)
	lt21 := t2.Less(t1)
	if lt12 == lt21 {
		t.Fatalf("exactly one of t1<t2, t2<t1 must hold, got %v and %v", lt12, lt21)
	}
	if !lt12 {
		t.Errorf("expected t1 < t2 since uid 1 < uid 2 at equal seq")
	}
}

func TestTag_CopyLeavesReplicaIDIntact(t *testing.T) {
	local := NewTag(5)
	remote := NewTag(9)
	remote.Update()
	remote.Update()

	local.Copy(remote)

	if local.ReplicaID != 5 {
		t.Errorf("expected replica id to remain 5, got %d", local.ReplicaID)
	}
	if !local.Equal(remote) {
		t.Errorf("expected (seq, uid) to match remote after copy")
	}
}

func TestTag_BindResetsLikeAFreshTag(t *testing.T) {
	tag := NewTag(1)
	tag.Update()
	tag.Update()

	tag.Bind(3)

	if tag.ReplicaID != 3 {
		t.Errorf("expected replica id 3 after rebind, got %d", tag.ReplicaID)
	}
	if tag.Uid != 3 {
		t.Errorf("expected uid to follow replica id after rebind, got %d", tag.Uid)
	}
}
