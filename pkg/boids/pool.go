package boids

import "github.com/lao-tseu-is-alive/go-quadtree-boids/pkg/geometry"

// AgentID is a dense, zero-based index into the Pool. Ids are assigned by
// Push in order and stay stable for the lifetime of a run: agents are never
// deleted, so an id is never reused.
type AgentID int

// Pool is structure-of-arrays storage for the whole population: three
// parallel []float64 buffers with x,y interleaved, indexed by AgentID.
// Keeping plain integer ids in the spatial index instead of pointers into
// the pool keeps the buffers contiguous and trivially resizable.
//
// The scratch heading of an agent is only meaningful between the start of a
// step's rule-evaluation phase (which resets it) and the end of that step's
// integration phase.
//
// Accessors do not range-check beyond the built-in slice bounds check: an id
// outside [0, Len()) is a programming error and panics loudly rather than
// returning a default.
type Pool struct {
	positions       []float64
	currentHeadings []float64
	scratchHeadings []float64
}

// NewPool creates an empty Pool with room for capacity agents.
func NewPool(capacity int) *Pool {
	return &Pool{
		positions:       make([]float64, 0, capacity*2),
		currentHeadings: make([]float64, 0, capacity*2),
		scratchHeadings: make([]float64, 0, capacity*2),
	}
}

// Push appends one agent and returns its id (the previous length).
// Only used during population; the scratch heading starts at zero.
func (p *Pool) Push(pos, heading geometry.Vector2D) AgentID {
	id := AgentID(len(p.positions) / 2)
	p.positions = append(p.positions, pos.X, pos.Y)
	p.currentHeadings = append(p.currentHeadings, heading.X, heading.Y)
	p.scratchHeadings = append(p.scratchHeadings, 0, 0)
	return id
}

// Len returns the number of agents in the pool.
func (p *Pool) Len() int {
	return len(p.positions) / 2
}

// GetPosition returns the position of the agent.
func (p *Pool) GetPosition(id AgentID) geometry.Vector2D {
	return geometry.Vector2D{X: p.positions[id*2], Y: p.positions[id*2+1]}
}

// SetPosition overwrites the position of the agent.
func (p *Pool) SetPosition(id AgentID, x, y float64) {
	p.positions[id*2] = x
	p.positions[id*2+1] = y
}

// GetHeading returns the current (committed) heading of the agent.
func (p *Pool) GetHeading(id AgentID) geometry.Vector2D {
	return geometry.Vector2D{X: p.currentHeadings[id*2], Y: p.currentHeadings[id*2+1]}
}

// SetHeading overwrites the current heading of the agent.
func (p *Pool) SetHeading(id AgentID, x, y float64) {
	p.currentHeadings[id*2] = x
	p.currentHeadings[id*2+1] = y
}

// GetScratchHeading returns the in-progress desired heading of the agent.
func (p *Pool) GetScratchHeading(id AgentID) geometry.Vector2D {
	return geometry.Vector2D{X: p.scratchHeadings[id*2], Y: p.scratchHeadings[id*2+1]}
}

// SetScratchHeading overwrites the scratch heading of the agent.
func (p *Pool) SetScratchHeading(id AgentID, x, y float64) {
	p.scratchHeadings[id*2] = x
	p.scratchHeadings[id*2+1] = y
}

// AddScaledToScratch accumulates (dx*scalar, dy*scalar) into the agent's
// scratch heading. This is the primitive every flocking rule builds on.
func (p *Pool) AddScaledToScratch(id AgentID, dx, dy, scalar float64) {
	p.scratchHeadings[id*2] += dx * scalar
	p.scratchHeadings[id*2+1] += dy * scalar
}
