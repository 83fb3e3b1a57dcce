package gocrdt

import "encoding/json"

// tagWire is the exported, JSON-friendly mirror of Tag's fields. Used
// throughout this file instead of embedding Tag by value, since Tag values
// nested inside maps or plain struct fields are never addressable and would
// silently bypass Tag's own MarshalJSON/UnmarshalJSON.
type tagWire struct {
	Seq       uint64 `json:"seq"`
	Uid       uint64 `json:"uid"`
	ReplicaID uint64 `json:"replica_id"`
}

func toTagWire(t *Tag) tagWire {
	return tagWire{Seq: t.Seq, Uid: t.Uid, ReplicaID: t.ReplicaID}
}

func (w tagWire) toTag() Tag {
	return Tag{Seq: w.Seq, Uid: w.Uid, ReplicaID: w.ReplicaID}
}

// MarshalJSON preserves exactly the Tag fields named in spec §3/§6: the
// sequence number, the uid, and the owning replica id.
func (t *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(toTagWire(t))
}

// UnmarshalJSON restores a Tag from its wire representation.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var w tagWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = w.toTag()
	return nil
}

// lwwRegisterWire mirrors LWWRegister's data model: the value and the
// embedded tag, per spec §6's serialization requirement for LWWRegister.
type lwwRegisterWire[V any] struct {
	Value V       `json:"value"`
	Tag   tagWire `json:"tag"`
}

// MarshalJSON preserves the register's value and embedded tag.
func (r *LWWRegister[V]) MarshalJSON() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return json.Marshal(lwwRegisterWire[V]{Value: r.value, Tag: toTagWire(&r.tag)})
}

// UnmarshalJSON restores a register from its wire representation. The
// replica id carried by the wire tag is preserved as-is; callers that want
// to rebind the register to a different local replica should call Bind
// afterward.
func (r *LWWRegister[V]) UnmarshalJSON(data []byte) error {
	var w lwwRegisterWire[V]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = w.Value
	r.tag = w.Tag.toTag()
	return nil
}

// orSetWire mirrors ORSet's data model: the per-element per-replica add-tag
// map, the version vector, and the owning replica id, per spec §6.
type orSetWire[E comparable] struct {
	Elements  map[E]map[uint64]tagWire `json:"elements"`
	Versions  map[uint64]tagWire       `json:"versions"`
	ReplicaID uint64                   `json:"replica_id"`
}

// MarshalJSON preserves elements, versions, and the local replica id.
func (s *ORSet[E]) MarshalJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w := orSetWire[E]{
		Elements:  make(map[E]map[uint64]tagWire, len(s.elements)),
		Versions:  make(map[uint64]tagWire, len(s.versions)),
		ReplicaID: s.repl,
	}
	for e, tags := range s.elements {
		flat := make(map[uint64]tagWire, len(tags))
		for r, tag := range tags {
			flat[r] = toTagWire(tag)
		}
		w.Elements[e] = flat
	}
	for r, tag := range s.versions {
		w.Versions[r] = toTagWire(tag)
	}
	return json.Marshal(w)
}

// UnmarshalJSON restores an ORSet from its wire representation.
func (s *ORSet[E]) UnmarshalJSON(data []byte) error {
	var w orSetWire[E]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.repl = w.ReplicaID
	s.elements = make(map[E]map[uint64]*Tag, len(w.Elements))
	for e, tags := range w.Elements {
		inner := make(map[uint64]*Tag, len(tags))
		for r, tw := range tags {
			t := tw.toTag()
			inner[r] = &t
		}
		s.elements[e] = inner
	}
	s.versions = make(map[uint64]*Tag, len(w.Versions))
	for r, tw := range w.Versions {
		t := tw.toTag()
		s.versions[r] = &t
	}
	return nil
}

// mapWire mirrors Map's data model: the ORSet of keys and the mapping of
// key to LWWRegister, per spec §6.
type mapWire[K comparable, V any] struct {
	Keys      *ORSet[K]             `json:"keys"`
	Registers map[K]*LWWRegister[V] `json:"registers"`
}

// MarshalJSON preserves the key ORSet and the per-key registers.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return json.Marshal(mapWire[K, V]{Keys: m.keys, Registers: m.registers})
}

// UnmarshalJSON restores a Map from its wire representation.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	w := mapWire[K, V]{Keys: &ORSet[K]{}, Registers: make(map[K]*LWWRegister[V])}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = w.Keys
	m.registers = w.Registers
	return nil
}
