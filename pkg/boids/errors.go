package boids

import "errors"

var (
	// ErrOutsideRegion is returned when an insertion targets a quadtree node
	// whose region does not contain the agent's position. During rebalancing
	// this is recoverable: the id bubbles up and is retried on an ancestor.
	ErrOutsideRegion = errors.New("boids: position outside node region")

	// ErrRebalanceOverflow is returned when agents escape the root region
	// during a rebalance. The root is sized with enough margin that this
	// must never happen in a correctly configured world; when it does, the
	// index is inconsistent and the run has to stop.
	ErrRebalanceOverflow = errors.New("boids: agents escaped the quadtree root during rebalance")
)
