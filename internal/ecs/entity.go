package ecs

// EntityID is the integer index identifying an entity across storages.
type EntityID uint64

// MaxEntities bounds every storage index. Indices at or above it are rejected
// with ErrOutOfRange.
const MaxEntities EntityID = 1 << 20
