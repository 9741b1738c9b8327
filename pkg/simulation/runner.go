package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-quadtree-boids/pb"
	"github.com/lao-tseu-is-alive/go-quadtree-boids/pkg/boids"
)

// Runner is the actor that owns a boids.World and drives its step loop. The
// actor mailbox serializes every Tick, which gives the core exactly the
// exclusive-ownership model it requires: nothing else ever reads or writes
// the pool or the index while a step is in flight.
//
// Drivers Ask a *pb.Tick and get *pb.StepStats back; a *pb.GetSnapshot
// returns the full population state. After each step the runner also pushes
// a snapshot to the optional snapshot channel, non-blocking, so a slow
// observer never stalls the simulation.
type Runner struct {
	cfg        *Config
	world      *boids.World
	snapshotCh chan<- *pb.WorldSnapshot

	// Benchmark stats
	step        uint64
	stepAvg     float64 // rolling average, ms
	lastLogTime time.Time
}

var _ actor.Actor = (*Runner)(nil)

// NewRunner creates a runner for the given config. snapshotCh may be nil
// when no observer wants frames.
func NewRunner(cfg *Config, snapshotCh chan<- *pb.WorldSnapshot) *Runner {
	return &Runner{
		cfg:        cfg,
		snapshotCh: snapshotCh,
	}
}

func (r *Runner) PreStart(ctx *actor.Context) error {
	world, err := boids.NewWorld(r.cfg.WorldWidth, r.cfg.WorldHeight)
	if err != nil {
		return err
	}
	if err := world.Populate(r.cfg.NumBoids); err != nil {
		return err
	}
	r.world = world
	r.step = 0
	r.lastLogTime = time.Now()
	ctx.ActorSystem().Logger().Infof("World populated with %d boids in %gx%g",
		world.Count(), r.cfg.WorldWidth, r.cfg.WorldHeight)
	return nil
}

func (r *Runner) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("Runner %s started", ctx.Self().Name())

	case *pb.Tick:
		start := time.Now()
		if err := r.world.Update(msg.GetDeltaTime()); err != nil {
			// An agent escaped the index root: the run is inconsistent and
			// must stop loudly, not keep stepping over a broken index.
			ctx.Err(err)
			return
		}
		elapsed := time.Since(start)
		r.step++

		// Rolling average (exponential moving average)
		r.stepAvg = r.stepAvg*0.95 + float64(elapsed.Microseconds())/1000.0*0.05
		r.logBenchmarks(ctx)

		r.pushSnapshot()

		ctx.Response(&pb.StepStats{
			Step:       r.step,
			DurationUs: elapsed.Microseconds(),
			Agents:     uint64(r.world.Count()),
		})

	case *pb.GetSnapshot:
		ctx.Response(r.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (r *Runner) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Runner stopped after %d steps", r.step)
	return nil
}

func (r *Runner) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(r.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 step %d | boids: %d | avg step: %.2fms",
			r.step, r.world.Count(), r.stepAvg)
		r.lastLogTime = time.Now()
	}
}

func (r *Runner) pushSnapshot() {
	if r.snapshotCh == nil {
		return
	}
	select {
	case r.snapshotCh <- r.buildSnapshot():
	default:
		// Observer busy, skip frame
	}
}

func (r *Runner) buildSnapshot() *pb.WorldSnapshot {
	pool := r.world.Pool()
	snapshot := &pb.WorldSnapshot{
		Step:   r.step,
		Agents: make([]*pb.AgentState, 0, pool.Len()),
	}
	for id := boids.AgentID(0); id < boids.AgentID(pool.Len()); id++ {
		pos := pool.GetPosition(id)
		heading := pool.GetHeading(id)
		snapshot.Agents = append(snapshot.Agents, &pb.AgentState{
			Id:       uint64(id),
			Position: &pb.Vec2{X: pos.X, Y: pos.Y},
			Heading:  &pb.Vec2{X: heading.X, Y: heading.Y},
		})
	}
	return snapshot
}
