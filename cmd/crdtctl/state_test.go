package main

import (
	"path/filepath"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	st := newReplicaState(42)
	st.Values.Put("k", "v")
	st.Tags.Add("x")
	st.Note.Assign("hello")

	if err := saveState(path, st); err != nil {
		t.Fatalf("saveState: %v", err)
	}

	loaded, err := loadState(path)
	if err != nil {
		t.Fatalf("loadState: %v", err)
	}

	if got, err := loaded.Values.Get("k"); err != nil || got != "v" {
		t.Errorf("Values.Get(k) = %q, %v", got, err)
	}
	if !loaded.Tags.Contains("x") {
		t.Errorf("expected tag x present after round trip")
	}
	if got, err := loaded.Note.Value(); err != nil || got != "hello" {
		t.Errorf("Note.Value() = %q, %v", got, err)
	}
}
