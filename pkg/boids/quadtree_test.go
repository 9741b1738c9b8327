package boids

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-quadtree-boids/pkg/geometry"
)

// checkLeafContainment walks the whole tree and fails the test if any node
// violates the structural invariants: internal nodes hold no ids, and every
// id held by a leaf has its position inside the leaf's region.
func checkLeafContainment(t *testing.T, q *Quadtree, pool *Pool) {
	t.Helper()
	if q.sub != nil {
		if len(q.ids) != 0 {
			t.Fatalf("internal node %s holds %d ids directly", q.region, len(q.ids))
		}
		checkLeafContainment(t, q.sub.ne, pool)
		checkLeafContainment(t, q.sub.nw, pool)
		checkLeafContainment(t, q.sub.se, pool)
		checkLeafContainment(t, q.sub.sw, pool)
		return
	}
	for _, id := range q.ids {
		pos := pool.GetPosition(id)
		if !q.region.ContainsPoint(pos.X, pos.Y) {
			t.Fatalf("leaf %s holds agent %d at %s, outside its region", q.region, id, pos)
		}
	}
}

func TestQuadtree_SubdividesOnThirteenthInsert(t *testing.T) {
	pool := NewPool(nodeCapacity + 1)
	qt := NewQuadtree(geometry.NewRect(0, 100, 0, 100))

	// The first nodeCapacity insertions stay in the root leaf.
	for i := 0; i < nodeCapacity; i++ {
		id := pool.Push(geometry.NewVector(float64(i), float64(i)), geometry.Vector2D{})
		if err := qt.Insert(id, pool); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}
	if qt.sub != nil {
		t.Fatalf("node subdivided after %d insertions; capacity is %d", nodeCapacity, nodeCapacity)
	}
	if len(qt.ids) != nodeCapacity {
		t.Fatalf("leaf holds %d ids; want %d", len(qt.ids), nodeCapacity)
	}

	// The next insertion pushes the leaf over capacity and triggers
	// subdivision: the node becomes internal and holds nothing directly.
	id := pool.Push(geometry.NewVector(80, 80), geometry.Vector2D{})
	if err := qt.Insert(id, pool); err != nil {
		t.Fatalf("Insert(%d) failed: %v", id, err)
	}
	if qt.sub == nil {
		t.Fatal("node did not subdivide on the insertion past capacity")
	}
	if len(qt.ids) != 0 {
		t.Errorf("internal node still holds %d ids directly", len(qt.ids))
	}
	if got := qt.Count(); got != nodeCapacity+1 {
		t.Errorf("Count() = %d after subdivision; want %d", got, nodeCapacity+1)
	}
	checkLeafContainment(t, qt, pool)
}

func TestQuadtree_MidpointTiesGoWestAndNorth(t *testing.T) {
	pool := NewPool(nodeCapacity + 1)
	qt := NewQuadtree(geometry.NewRect(0, 100, 0, 100))

	// Force subdivision with agents exactly on the vertical split line.
	for i := 0; i <= nodeCapacity; i++ {
		id := pool.Push(geometry.NewVector(50, float64(i*3)), geometry.Vector2D{})
		if err := qt.Insert(id, pool); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}
	if qt.sub == nil {
		t.Fatal("node did not subdivide")
	}
	// x = 50 sits on the split line and every y is at most 50: ties go to
	// the west/north side, so everything lands in the NW subtree.
	if got := qt.sub.nw.Count(); got != nodeCapacity+1 {
		t.Errorf("NW subtree holds %d agents; want %d", got, nodeCapacity+1)
	}
	for _, child := range []*Quadtree{qt.sub.ne, qt.sub.se, qt.sub.sw} {
		if got := child.Count(); got != 0 {
			t.Errorf("child %s holds %d agents; want 0", child.region, got)
		}
	}
}

func TestQuadtree_InsertOutsideRegionFails(t *testing.T) {
	pool := NewPool(1)
	qt := NewQuadtree(geometry.NewRect(0, 100, 0, 100))

	id := pool.Push(geometry.NewVector(200, 50), geometry.Vector2D{})
	err := qt.Insert(id, pool)
	if !errors.Is(err, ErrOutsideRegion) {
		t.Errorf("Insert outside region returned %v; want ErrOutsideRegion", err)
	}
	if qt.Count() != 0 {
		t.Errorf("failed insert left %d ids in the tree", qt.Count())
	}
}

func TestQuadtree_RangeQueryWholeRegion(t *testing.T) {
	const population = 200
	pool := NewPool(population)
	region := geometry.NewRect(0, 800, 0, 800)
	qt := NewQuadtree(region)

	for i := 0; i < population; i++ {
		id := pool.Push(geometry.NewVector(rand.Float64()*800, rand.Float64()*800), geometry.Vector2D{})
		if err := qt.Insert(id, pool); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}

	got := qt.RangeQuery(region, pool)
	if len(got) != population {
		t.Fatalf("whole-region query returned %d ids; want %d", len(got), population)
	}
	seen := make(map[AgentID]bool, population)
	for _, id := range got {
		if seen[id] {
			t.Errorf("whole-region query returned agent %d twice", id)
		}
		seen[id] = true
	}
}

func TestQuadtree_RangeQueryPrunesAndFilters(t *testing.T) {
	pool := NewPool(3)
	qt := NewQuadtree(geometry.NewRect(0, 100, 0, 100))

	inside := pool.Push(geometry.NewVector(10, 10), geometry.Vector2D{})
	edge := pool.Push(geometry.NewVector(20, 10), geometry.Vector2D{})
	outside := pool.Push(geometry.NewVector(90, 90), geometry.Vector2D{})
	for _, id := range []AgentID{inside, edge, outside} {
		if err := qt.Insert(id, pool); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}

	t.Run("Disjoint query returns nothing", func(t *testing.T) {
		got := qt.RangeQuery(geometry.NewRect(200, 300, 200, 300), pool)
		if len(got) != 0 {
			t.Errorf("disjoint query returned %v; want empty", got)
		}
	})

	t.Run("Closed bounds include agents on the query edge", func(t *testing.T) {
		got := qt.RangeQuery(geometry.NewRect(0, 20, 0, 20), pool)
		if len(got) != 2 {
			t.Fatalf("query returned %v; want the two near agents", got)
		}
		found := map[AgentID]bool{got[0]: true, got[1]: true}
		if !found[inside] || !found[edge] {
			t.Errorf("query returned %v; want ids %d and %d", got, inside, edge)
		}
	})
}

func TestQuadtree_RangeQueryDeterministicOrder(t *testing.T) {
	const population = 100
	pool := NewPool(population)
	region := geometry.NewRect(0, 800, 0, 800)
	qt := NewQuadtree(region)

	for i := 0; i < population; i++ {
		id := pool.Push(geometry.NewVector(rand.Float64()*800, rand.Float64()*800), geometry.Vector2D{})
		if err := qt.Insert(id, pool); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}

	first := qt.RangeQuery(region, pool)
	second := qt.RangeQuery(region, pool)
	if len(first) != len(second) {
		t.Fatalf("repeated query changed result size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated query changed result order at %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestQuadtree_RebalanceRehomesMovedAgents(t *testing.T) {
	const population = 100
	pool := NewPool(population)
	region := geometry.NewRect(0, 800, 0, 800)
	qt := NewQuadtree(region)

	for i := 0; i < population; i++ {
		id := pool.Push(geometry.NewVector(rand.Float64()*800, rand.Float64()*800), geometry.Vector2D{})
		if err := qt.Insert(id, pool); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}

	// Scatter everyone to fresh positions, including cross-quadrant jumps.
	for id := AgentID(0); id < population; id++ {
		pool.SetPosition(id, rand.Float64()*800, rand.Float64()*800)
	}

	if err := qt.Rebalance(pool); err != nil {
		t.Fatalf("Rebalance failed: %v", err)
	}
	checkLeafContainment(t, qt, pool)
	if got := qt.Count(); got != population {
		t.Errorf("Count() = %d after rebalance; want %d", got, population)
	}
}

func TestQuadtree_RebalanceCollapsesEmptySubtrees(t *testing.T) {
	pool := NewPool(2 * nodeCapacity)
	qt := NewQuadtree(geometry.NewRect(0, 100, 0, 100))

	// Cluster enough agents in the NW quadrant that both the root and its
	// NW child subdivide.
	for i := 0; i < 2*nodeCapacity; i++ {
		id := pool.Push(geometry.NewVector(rand.Float64()*40, rand.Float64()*40), geometry.Vector2D{})
		if err := qt.Insert(id, pool); err != nil {
			t.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}
	if qt.sub == nil || qt.sub.nw.sub == nil {
		t.Fatal("setup did not subdivide the root and its NW child")
	}

	// Move the whole population to the SE quadrant and rebalance: the NW
	// child has no agents left anywhere below it, so it must collapse back
	// into an empty leaf. The root keeps its children (SE is populated).
	for id := AgentID(0); id < AgentID(pool.Len()); id++ {
		pool.SetPosition(id, 60+rand.Float64()*40, 60+rand.Float64()*40)
	}
	if err := qt.Rebalance(pool); err != nil {
		t.Fatalf("Rebalance failed: %v", err)
	}

	if qt.sub == nil {
		t.Fatal("root collapsed even though the SE quadrant is populated")
	}
	if qt.sub.nw.sub != nil {
		t.Error("depopulated NW child did not collapse to a leaf")
	}
	if !qt.sub.nw.IsEmpty() {
		t.Error("collapsed NW child is not empty")
	}
	if got := qt.Count(); got != pool.Len() {
		t.Errorf("Count() = %d after rebalance; want %d", got, pool.Len())
	}
	checkLeafContainment(t, qt, pool)
}

func TestQuadtree_RebalanceOverflowIsFatal(t *testing.T) {
	pool := NewPool(1)
	qt := NewQuadtree(geometry.NewRect(0, 100, 0, 100))

	id := pool.Push(geometry.NewVector(50, 50), geometry.Vector2D{})
	if err := qt.Insert(id, pool); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Teleport the agent outside the root region: no ancestor can take the
	// reject, so the rebalance must fail loudly instead of dropping it.
	pool.SetPosition(id, 500, 500)
	err := qt.Rebalance(pool)
	if !errors.Is(err, ErrRebalanceOverflow) {
		t.Errorf("Rebalance returned %v; want ErrRebalanceOverflow", err)
	}
}

func TestQuadtree_IsEmpty(t *testing.T) {
	pool := NewPool(1)
	qt := NewQuadtree(geometry.NewRect(0, 100, 0, 100))

	if !qt.IsEmpty() {
		t.Error("fresh leaf is not empty")
	}

	id := pool.Push(geometry.NewVector(50, 50), geometry.Vector2D{})
	if err := qt.Insert(id, pool); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if qt.IsEmpty() {
		t.Error("leaf with one agent reported empty")
	}
}

func BenchmarkQuadtree_Insert(b *testing.B) {
	const population = 1000
	pool := NewPool(population)
	for i := 0; i < population; i++ {
		pool.Push(geometry.NewVector(rand.Float64()*800, rand.Float64()*800), geometry.Vector2D{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt := NewQuadtree(geometry.NewRect(0, 800, 0, 800))
		for id := AgentID(0); id < population; id++ {
			_ = qt.Insert(id, pool)
		}
	}
}

func BenchmarkQuadtree_RangeQuery(b *testing.B) {
	const population = 1000
	pool := NewPool(population)
	qt := NewQuadtree(geometry.NewRect(0, 800, 0, 800))
	for i := 0; i < population; i++ {
		id := pool.Push(geometry.NewVector(rand.Float64()*800, rand.Float64()*800), geometry.Vector2D{})
		if err := qt.Insert(id, pool); err != nil {
			b.Fatalf("Insert(%d) failed: %v", id, err)
		}
	}
	query := geometry.NewRectFromCenter(400, 400, 25, 25)

	var buf []AgentID
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = qt.AppendInRange(query, pool, buf[:0])
	}
}
