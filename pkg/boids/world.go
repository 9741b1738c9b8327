package boids

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-quadtree-boids/pkg/geometry"
)

// Flocking rule weights and motion limits. These are deliberately fixed
// internal constants, not configuration: changing them changes the observable
// flocking behaviour the scenario tests pin down.
const (
	// tooCloseRange is the distance below which separation kicks in.
	tooCloseRange = 2.5
	// viewRange is the side length of the square neighborhood each agent
	// queries the index with.
	viewRange = 25.0

	separationFactor = 0.05
	alignmentFactor  = 0.05
	cohesionFactor   = 0.0005
	centerPullFactor = 0.002

	minSpeed = 1.5
	maxSpeed = 3.0

	// rootMarginFactor sizes the index root region as a multiple of the
	// world extent, so in-flight positions can never leave the root before
	// the next rebalance, even through a wrap-around discontinuity.
	rootMarginFactor = 4.0
)

// World owns one agent pool and one quadtree sized to the world, and drives
// the per-step pipeline: desired headings from neighbor queries, motion
// integration with wrap-around, then an index rebalance. Both the pool and
// the tree are created once and only mutated afterwards; the agent count
// never changes after population.
//
// A World is exclusively owned by whoever drives its step loop: no method is
// safe for concurrent use.
type World struct {
	width  float64
	height float64
	center geometry.Vector2D

	pool  *Pool
	index *Quadtree

	neighborBuf []AgentID
}

// NewWorld creates an empty world with the given extents.
// Both extents must be positive and finite.
func NewWorld(width, height float64) (*World, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 1) || math.IsInf(height, 1) {
		return nil, fmt.Errorf("boids: world extents must be positive and finite, got %gx%g", width, height)
	}
	root := geometry.NewRect(0, width*rootMarginFactor, 0, height*rootMarginFactor)
	return &World{
		width:  width,
		height: height,
		center: geometry.NewVector(width/2, height/2),
		pool:   NewPool(0),
		index:  NewQuadtree(root),
	}, nil
}

// Pool exposes read access on the agent store for reporting collaborators.
func (w *World) Pool() *Pool {
	return w.pool
}

// Count returns the number of agents in the world.
func (w *World) Count() int {
	return w.pool.Len()
}

// Populate appends quantity agents at uniformly random positions inside the
// world with unit headings in uniformly random directions, and indexes each
// one. Safe to call several times before the first Update; the appends
// accumulate.
func (w *World) Populate(quantity int) error {
	for i := 0; i < quantity; i++ {
		pos := geometry.NewVector(rand.Float64()*w.width, rand.Float64()*w.height)
		heading := geometry.NewVectorPolar(1, rand.Float64()*2*math.Pi)
		id := w.pool.Push(pos, heading)
		if err := w.index.Insert(id, w.pool); err != nil {
			return fmt.Errorf("populating agent %d: %w", id, err)
		}
	}
	return nil
}

// Update advances the simulation by one step: recompute every agent's
// desired heading, integrate motion, then rebalance the index against the
// moved positions. deltaTime is accepted for interface symmetry with
// real-time callers but does not scale velocity; the rule weights are tuned
// for a fixed 60-updates-per-second cadence.
func (w *World) Update(deltaTime float64) error {
	w.calculateHeadings()
	w.moveBoids(deltaTime)
	return w.index.Rebalance(w.pool)
}

// calculateHeadings runs the desired-heading phase: for each agent, reset
// its scratch heading, apply the unconditional center pull, and then, when
// the neighborhood holds at least one other agent, the three neighbor rules.
// The neighborhood query always returns the agent itself, since its own
// position sits at the center of the query rectangle.
func (w *World) calculateHeadings() {
	pool := w.pool
	for id := AgentID(0); id < AgentID(pool.Len()); id++ {
		pool.SetScratchHeading(id, 0, 0)

		pos := pool.GetPosition(id)

		// Center pull, regardless of neighbors. The pull strength grows
		// with the squared distance from the world center.
		distSqToCenter := pos.DistanceSquaredTo(w.center)
		pool.AddScaledToScratch(id, w.center.X-pos.X, w.center.Y-pos.Y, centerPullFactor*distSqToCenter)

		neighborhood := geometry.NewRectFromCenter(pos.X, pos.Y, viewRange, viewRange)
		w.neighborBuf = w.index.AppendInRange(neighborhood, pool, w.neighborBuf[:0])
		neighbors := w.neighborBuf

		if len(neighbors) < 2 {
			// Only the agent itself: the neighbor rules have nothing to
			// say, the scratch heading keeps just the center pull.
			continue
		}
		others := float64(len(neighbors) - 1)

		// Separation: push away from every neighbor closer than the
		// too-close threshold, tested on the squared distance.
		awayX, awayY := 0.0, 0.0
		for _, other := range neighbors {
			if other == id {
				continue
			}
			otherPos := pool.GetPosition(other)
			if pos.DistanceSquaredTo(otherPos) < tooCloseRange*tooCloseRange {
				awayX += pos.X - otherPos.X
				awayY += pos.Y - otherPos.Y
			}
		}
		pool.AddScaledToScratch(id, awayX, awayY, separationFactor)

		// Alignment: steer along the average heading of the others.
		avgHeadingX, avgHeadingY := 0.0, 0.0
		for _, other := range neighbors {
			if other == id {
				continue
			}
			h := pool.GetHeading(other)
			avgHeadingX += h.X
			avgHeadingY += h.Y
		}
		pool.AddScaledToScratch(id, avgHeadingX/others, avgHeadingY/others, alignmentFactor)

		// Cohesion: accumulate the mean neighbor position itself, not a
		// displacement from it. Dimensionally odd, intentionally kept:
		// the integration phase treats the scratch heading as a raw
		// additive adjustment, and the flocking behaviour depends on it.
		avgPosX, avgPosY := 0.0, 0.0
		for _, other := range neighbors {
			if other == id {
				continue
			}
			p := pool.GetPosition(other)
			avgPosX += p.X
			avgPosY += p.Y
		}
		pool.AddScaledToScratch(id, avgPosX/others, avgPosY/others, cohesionFactor)
	}
}

// moveBoids runs the integration phase: combine each agent's current heading
// with its desired one, clamp the speed, commit the new heading and wrap the
// new position back into the world on both axes independently.
func (w *World) moveBoids(deltaTime float64) {
	_ = deltaTime // accepted, not applied; see Update

	pool := w.pool
	for id := AgentID(0); id < AgentID(pool.Len()); id++ {
		combined := pool.GetHeading(id).Add(pool.GetScratchHeading(id))
		combined = combined.ClampLen(minSpeed, maxSpeed)
		pool.SetHeading(id, combined.X, combined.Y)

		pos := pool.GetPosition(id)
		newX := geometry.WrapAround(pos.X+combined.X, 0, w.width)
		newY := geometry.WrapAround(pos.Y+combined.Y, 0, w.height)
		pool.SetPosition(id, newX, newY)
	}
}
