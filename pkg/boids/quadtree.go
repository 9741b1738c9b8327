package boids

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-quadtree-boids/pkg/geometry"
)

// nodeCapacity is the number of agent ids a leaf holds before it subdivides.
const nodeCapacity = 12

// subdivision holds the four owned children of an internal node, one per
// quadrant of the parent region split at its midpoint on both axes.
type subdivision struct {
	ne *Quadtree
	nw *Quadtree
	se *Quadtree
	sw *Quadtree
}

// Quadtree is one node of the spatial index. A node is in exactly one of two
// states: a leaf (sub == nil, up to nodeCapacity ids, every id's position
// inside the region) or an internal node (sub != nil, no ids of its own).
// The region of a node never changes after construction; only the leaf vs.
// internal shape of the tree changes as agents move.
//
// The tree stores plain AgentIDs and reads positions from the Pool passed to
// each operation, so it never aliases agent storage.
type Quadtree struct {
	region geometry.Rect
	ids    []AgentID
	sub    *subdivision
}

// NewQuadtree creates an empty leaf covering the given region.
func NewQuadtree(region geometry.Rect) *Quadtree {
	return &Quadtree{
		region: region,
		ids:    make([]AgentID, 0, nodeCapacity),
	}
}

// Region returns the fixed region this node covers.
func (q *Quadtree) Region() geometry.Rect {
	return q.region
}

// IsEmpty reports whether this node is a leaf holding no agents.
// Internal nodes are never empty, even when all their children are; they
// only become empty again by collapsing during a rebalance.
func (q *Quadtree) IsEmpty() bool {
	return q.sub == nil && len(q.ids) == 0
}

// Count returns the number of agent ids held in this subtree.
func (q *Quadtree) Count() int {
	n := len(q.ids)
	if q.sub != nil {
		n += q.sub.ne.Count() + q.sub.nw.Count() + q.sub.se.Count() + q.sub.sw.Count()
	}
	return n
}

// Insert places the agent in the subtree rooted at this node, reading its
// position from the pool. It fails with ErrOutsideRegion when the position
// is not inside this node's region: callers must only insert into a node
// whose region contains the point (the root is sized to guarantee this at
// population time).
func (q *Quadtree) Insert(id AgentID, pool *Pool) error {
	pos := pool.GetPosition(id)
	if !q.region.ContainsPoint(pos.X, pos.Y) {
		return fmt.Errorf("agent %d at %s does not fit node region %s: %w",
			id, pos, q.region, ErrOutsideRegion)
	}
	q.insertAt(id, pool, pos)
	return nil
}

// insertAt is the unchecked insertion used for redistribution during
// subdivision and rebalancing. The position is handed in to avoid a
// redundant pool lookup; it must already be known to lie in q.region.
func (q *Quadtree) insertAt(id AgentID, pool *Pool, pos geometry.Vector2D) {
	if q.sub == nil {
		if len(q.ids) < nodeCapacity {
			q.ids = append(q.ids, id)
			return
		}
		// Leaf at capacity: become an internal node first.
		q.subdivide(pool)
	}
	q.childFor(pos.X, pos.Y).insertAt(id, pool, pos)
}

// subdivide turns a full leaf into an internal node: it creates the four
// quadrant children and redistributes every held id into the matching child.
func (q *Quadtree) subdivide(pool *Pool) {
	midX := (q.region.Left + q.region.Right) / 2
	midY := (q.region.Top + q.region.Bottom) / 2
	q.sub = &subdivision{
		ne: NewQuadtree(geometry.NewRect(midX, q.region.Right, q.region.Top, midY)),
		nw: NewQuadtree(geometry.NewRect(q.region.Left, midX, q.region.Top, midY)),
		se: NewQuadtree(geometry.NewRect(midX, q.region.Right, midY, q.region.Bottom)),
		sw: NewQuadtree(geometry.NewRect(q.region.Left, midX, midY, q.region.Bottom)),
	}

	held := q.ids
	q.ids = nil
	for _, id := range held {
		pos := pool.GetPosition(id)
		q.childFor(pos.X, pos.Y).insertAt(id, pool, pos)
	}
}

// childFor selects the quadrant child for a position using the midpoint
// test. Ties on a split line go to the west (x) / north (y) side.
func (q *Quadtree) childFor(x, y float64) *Quadtree {
	midX := (q.region.Left + q.region.Right) / 2
	midY := (q.region.Top + q.region.Bottom) / 2
	west := x <= midX
	north := y <= midY
	switch {
	case west && north:
		return q.sub.nw
	case west && !north:
		return q.sub.sw
	case !west && north:
		return q.sub.ne
	default:
		return q.sub.se
	}
}

// RangeQuery returns the ids of all agents whose stored position lies inside
// the query rectangle (closed containment, matching Rect semantics). Subtrees
// whose region does not intersect the query are pruned without descending;
// that pruning is what makes the index cheaper than a linear scan. For a
// fixed tree shape the result order is deterministic: a node's own ids
// first, then ne, nw, se, sw.
func (q *Quadtree) RangeQuery(query geometry.Rect, pool *Pool) []AgentID {
	return q.appendInRange(query, pool, nil)
}

// AppendInRange is RangeQuery with a caller-owned result buffer, so the
// per-step neighborhood queries can reuse one allocation.
func (q *Quadtree) AppendInRange(query geometry.Rect, pool *Pool, acc []AgentID) []AgentID {
	return q.appendInRange(query, pool, acc)
}

func (q *Quadtree) appendInRange(query geometry.Rect, pool *Pool, acc []AgentID) []AgentID {
	if !q.region.Intersects(query) {
		return acc
	}

	for _, id := range q.ids {
		pos := pool.GetPosition(id)
		if query.ContainsPoint(pos.X, pos.Y) {
			acc = append(acc, id)
		}
	}

	if q.sub != nil {
		acc = q.sub.ne.appendInRange(query, pool, acc)
		acc = q.sub.nw.appendInRange(query, pool, acc)
		acc = q.sub.se.appendInRange(query, pool, acc)
		acc = q.sub.sw.appendInRange(query, pool, acc)
	}
	return acc
}

// Rebalance restores the containment invariant after agent positions have
// changed: afterwards every agent sits in a leaf whose region contains its
// position. Must be called on the root once per step, after integration.
// It returns ErrRebalanceOverflow if any agent's new position falls outside
// the root region, which means the root margin cannot absorb the
// population's actual per-step displacement.
func (q *Quadtree) Rebalance(pool *Pool) error {
	rejects := q.rebalance(pool)
	if len(rejects) > 0 {
		return fmt.Errorf("%d agents (first: %d at %s) cannot be re-homed under root region %s: %w",
			len(rejects), rejects[0], pool.GetPosition(rejects[0]), q.region, ErrRebalanceOverflow)
	}
	return nil
}

// rebalance works depth-first and returns the ids this subtree can no
// longer keep, for the caller to retry higher up.
func (q *Quadtree) rebalance(pool *Pool) []AgentID {
	var rejects []AgentID

	if q.sub != nil {
		rejects = append(rejects, q.sub.ne.rebalance(pool)...)
		rejects = append(rejects, q.sub.nw.rebalance(pool)...)
		rejects = append(rejects, q.sub.se.rebalance(pool)...)
		rejects = append(rejects, q.sub.sw.rebalance(pool)...)

		// A fully depopulated internal node collapses back into a leaf,
		// reclaiming the children and keeping the tree shallow where the
		// population has thinned out.
		if q.sub.ne.IsEmpty() && q.sub.nw.IsEmpty() && q.sub.se.IsEmpty() && q.sub.sw.IsEmpty() {
			q.sub = nil
			q.ids = make([]AgentID, 0, nodeCapacity)
		}

		// Re-home the children's rejects at this level. Whatever does not
		// fit this node's own region bubbles further up.
		var escaped []AgentID
		for _, id := range rejects {
			pos := pool.GetPosition(id)
			if q.region.ContainsPoint(pos.X, pos.Y) {
				q.insertAt(id, pool, pos)
			} else {
				escaped = append(escaped, id)
			}
		}
		return escaped
	}

	// Leaf: keep the ids still inside the region, reject the rest.
	kept := q.ids[:0]
	for _, id := range q.ids {
		pos := pool.GetPosition(id)
		if q.region.ContainsPoint(pos.X, pos.Y) {
			kept = append(kept, id)
		} else {
			rejects = append(rejects, id)
		}
	}
	q.ids = kept
	return rejects
}
