// Package replicaid provisions the uint64 replica identity that gocrdt's
// core types require at construction. spec.md explicitly keeps replica-id
// provisioning (e.g. MAC-address derivation) out of the core library; this
// package is that out-of-scope "external collaborator", built for the demo
// CLI rather than the merge machinery itself.
package replicaid

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// New generates a fresh random replica id derived from a version-4 UUID.
// The UUID's first eight bytes are folded into a uint64; this is a demo
// identity scheme, not a collision-resistant one — two replicas started at
// the same instant from the same seed are not guaranteed distinct ids any
// more than two random UUIDs are guaranteed distinct.
func New() uint64 {
	id := uuid.New()
	return binary.BigEndian.Uint64(id[:8])
}

// FromName derives a stable replica id from an operator-supplied name, so
// the same `--name` flag value always resolves to the same id across
// invocations. Uses UUID v5 (SHA-1 name-based) against a fixed namespace so
// the mapping is deterministic without the caller managing any state.
func FromName(name string) uint64 {
	id := uuid.NewSHA1(namespace, []byte(name))
	return binary.BigEndian.Uint64(id[:8])
}

// namespace is a fixed, arbitrary UUID used as the root for all
// name-derived replica ids produced by FromName.
var namespace = uuid.MustParse("a4f0c7d2-9e3b-4c1a-8f6d-2b5e7c9a1d3f")
