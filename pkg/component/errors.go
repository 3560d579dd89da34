package component

import "errors"

// ErrCycleDetected is returned when an Add would make a container reachable
// from itself through the child relation.
var ErrCycleDetected = errors.New("cycle detected")

// ErrNilChild is returned when a nil node is passed to Add.
var ErrNilChild = errors.New("nil child")

// ErrNotContainer is returned by uniform entry points (see the canopy
// facade) when a child-management operation targets a leaf.
var ErrNotContainer = errors.New("node is not a container")
