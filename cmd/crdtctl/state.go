package main

import (
	"encoding/json"
	"errors"
	"os"

	gocrdt "github.com/miladghaznavi/go-crdts"
)

// replicaState is the on-disk snapshot crdtctl round-trips between
// invocations. It stands in for the gossip transport the core library
// deliberately omits: two replicas exchange state by handing each other
// this file and calling Merge.
type replicaState struct {
	ReplicaID uint64                      `json:"replica_id"`
	Values    *gocrdt.Map[string, string] `json:"values"`
	Tags      *gocrdt.ORSet[string]       `json:"tags"`
	Note      *gocrdt.LWWRegister[string] `json:"note"`
}

func newReplicaState(replicaID uint64) *replicaState {
	return &replicaState{
		ReplicaID: replicaID,
		Values:    gocrdt.NewMap[string, string](replicaID),
		Tags:      gocrdt.NewORSet[string](replicaID),
		Note:      gocrdt.NewLWWRegister[string](replicaID),
	}
}

func loadState(path string) (*replicaState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	st := &replicaState{
		Values: gocrdt.NewMap[string, string](0),
		Tags:   gocrdt.NewORSet[string](0),
		Note:   gocrdt.NewLWWRegister[string](0),
	}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, err
	}
	return st, nil
}

func saveState(path string, st *replicaState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
