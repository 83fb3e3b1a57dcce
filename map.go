package gocrdt

import (
	"fmt"
	"sync"
)

// Map is a convergent key-value store with add-wins semantics for keys and
// last-writer-wins semantics for values. Keys are tracked in an ORSet; each
// live key's value is held in its own LWWRegister.
type Map[K comparable, V any] struct {
	mu        sync.RWMutex
	keys      *ORSet[K]
	registers map[K]*LWWRegister[V]
}

// NewMap creates an empty Map at the replica identified by replicaID.
func NewMap[K comparable, V any](replicaID uint64) *Map[K, V] {
	return &Map[K, V]{
		keys:      NewORSet[K](replicaID),
		registers: make(map[K]*LWWRegister[V]),
	}
}

// Put adds key to the key set and assigns val to its register, creating the
// register (bound to this replica) on first use.
func (m *Map[K, V]) Put(key K, val V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys.Add(key)
	reg, ok := m.registers[key]
	if !ok {
		reg = NewLWWRegister[V](m.keys.ReplicaID())
		m.registers[key] = reg
	}
	reg.Assign(val)
}

// Get returns the current value of key, or ErrNotFound if key is not
// present in the key set.
func (m *Map[K, V]) Get(key K) (V, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var zero V
	if !m.keys.Contains(key) {
		return zero, ErrNotFound
	}
	return m.registers[key].Value()
}

// Remove removes key from the key set and erases its register.
func (m *Map[K, V]) Remove(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys.Remove(key)
	delete(m.registers, key)
}

// Contains reports whether key is present in the key set.
func (m *Map[K, V]) Contains(key K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys.Contains(key)
}

// Size returns the number of live keys.
func (m *Map[K, V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys.Size()
}

// ReplicaID returns the local replica id.
func (m *Map[K, V]) ReplicaID() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys.ReplicaID()
}

// KeyValuePairs returns a snapshot mapping each live key to its current
// value.
func (m *Map[K, V]) KeyValuePairs() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[K]V, len(m.registers))
	for k, reg := range m.registers {
		v, err := reg.Value()
		if err != nil {
			continue
		}
		out[k] = v
	}
	return out
}

// Merge absorbs remote's state into m:
//
//  1. Snapshot m's keys before mutating.
//  2. Merge the key sets.
//  3. Erase registers for any key the key-set merge decided to drop.
//  4. For every (key, register) remote holds: merge into the matching local
//     register if one exists; otherwise, if the key-set merge just added
//     the key, seed a freshly bound local register with the remote's
//     current value and merge it against the remote register. The seed-
//     then-merge keeps the local register's tag strictly increasing (past
//     beginning of time) before the merge resolves the winner, so the
//     interim local value is never externally observable.
func (m *Map[K, V]) Merge(remote *Map[K, V]) {
	if m == remote {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	remote.mu.RLock()
	defer remote.mu.RUnlock()

	before := m.keys.Elements()

	m.keys.Merge(remote.keys)

	for k := range before {
		if !m.keys.Contains(k) {
			delete(m.registers, k)
		}
	}

	for k, remoteReg := range remote.registers {
		if localReg, ok := m.registers[k]; ok {
			localReg.Merge(remoteReg)
			continue
		}
		if m.keys.Contains(k) {
			v, err := remoteReg.Value()
			if err != nil {
				continue
			}
			seeded := NewLWWRegister[V](m.keys.ReplicaID())
			seeded.Assign(v)
			seeded.Merge(remoteReg)
			m.registers[k] = seeded
		}
	}
}

// AsCRDT adapts m to the CRDT interface for callers that hold heterogeneous
// CRDTs and don't know K/V at compile time.
func (m *Map[K, V]) AsCRDT() CRDT {
	return mapCRDT[K, V]{m}
}

type mapCRDT[K comparable, V any] struct {
	m *Map[K, V]
}

func (c mapCRDT[K, V]) Value() any {
	return c.m.KeyValuePairs()
}

func (c mapCRDT[K, V]) Merge(other CRDT) error {
	remote, ok := other.(mapCRDT[K, V])
	if !ok {
		return fmt.Errorf("%w: expected Map[...], got %T", ErrIncompatibleType, other)
	}
	c.m.Merge(remote.m)
	return nil
}
