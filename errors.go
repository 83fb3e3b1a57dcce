package gocrdt

import "errors"

// ErrUninitialized is returned by LWWRegister.Value when the register's tag
// is still at the beginning of time — assign has never been called.
var ErrUninitialized = errors.New("gocrdt: register has not been assigned a value")

// ErrNotFound is returned by Map.Get when the requested key is not present
// in the map's key set.
var ErrNotFound = errors.New("gocrdt: key not found")

// ErrIncompatibleType is returned by the CRDT-interface Merge methods when
// the concrete type (or type parameters) of other does not match the
// receiver.
var ErrIncompatibleType = errors.New("gocrdt: incompatible CRDT type")
