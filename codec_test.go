package gocrdt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_JSONRoundTrip(t *testing.T) {
	tag := NewTag(7)
	tag.Update()
	tag.Update()

	data, err := json.Marshal(tag)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"replica_id":7`), "want snake_case replica_id key, got %s", data)

	var out Tag
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, *tag, out)
}

func TestLWWRegister_JSONRoundTrip(t *testing.T) {
	r := NewLWWRegister[string](3)
	r.Assign("hello")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"replica_id":3`), "nested tag must use snake_case keys, got %s", data)

	out := NewLWWRegister[string](0)
	require.NoError(t, json.Unmarshal(data, out))

	v, err := out.Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestORSet_JSONRoundTrip(t *testing.T) {
	s := NewORSet[string](5)
	s.Add("a")
	s.Add("b")
	s.Remove("a")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"seq"`), "elements/versions tags must use snake_case keys, got %s", data)

	out := NewORSet[string](0)
	require.NoError(t, json.Unmarshal(data, out))

	assert.True(t, out.Contains("b"))
	assert.False(t, out.Contains("a"))
	assert.Equal(t, uint64(5), out.ReplicaID())
}

func TestMap_JSONRoundTrip(t *testing.T) {
	m := NewMap[string, int](9)
	m.Put("x", 1)
	m.Put("y", 2)
	m.Remove("y")

	data, err := json.Marshal(m)
	require.NoError(t, err)

	out := NewMap[string, int](0)
	require.NoError(t, json.Unmarshal(data, out))

	v, err := out.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = out.Get("y")
	assert.ErrorIs(t, err, ErrNotFound)
}

// A Tag nested inside an ORSet's elements/versions maps must round-trip
// through its dedicated wire type rather than falling back to Go's default
// field-name encoding, which would silently produce PascalCase keys.
func TestORSet_JSONUsesTagWireNotDefaultEncoding(t *testing.T) {
	s := NewORSet[string](1)
	s.Add("z")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), `"ReplicaID"`), "must not leak default Go field names: %s", data)
}
