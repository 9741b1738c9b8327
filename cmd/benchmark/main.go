package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-quadtree-boids/pb"
	"github.com/lao-tseu-is-alive/go-quadtree-boids/pkg/simulation"
)

const askTimeout = 5 * time.Second

func main() {
	var (
		configFile = flag.String("config", "", "path to a JSON config file (optional)")
		schemaFile = flag.String("schema", "config.schema.json", "path to the config JSON schema")
		numBoids   = flag.Int("boids", 0, "number of boids (overrides config)")
		steps      = flag.Int("steps", 0, "steps per repetition (overrides config)")
		reps       = flag.Int("reps", 0, "number of benchmark repetitions (overrides config)")
	)
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *numBoids > 0 {
		cfg.NumBoids = *numBoids
	}
	if *steps > 0 {
		cfg.Steps = *steps
	}
	if *reps > 0 {
		cfg.Repetitions = *reps
	}
	if cfg.Repetitions < 1 {
		cfg.Repetitions = 1
	}

	ctx := context.Background()
	logger := golog.DefaultLogger

	system, err := actor.NewActorSystem("BoidsBench",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	logger.Infof("benchmark: %d boids, %d steps, %d repetitions",
		cfg.NumBoids, cfg.Steps, cfg.Repetitions)

	var repTotals []time.Duration
	for rep := 0; rep < cfg.Repetitions; rep++ {
		// A fresh runner per repetition so every run starts from a fresh
		// random population and an un-subdivided index.
		pid, err := system.Spawn(ctx, fmt.Sprintf("runner-%d", rep),
			simulation.NewRunner(cfg, nil))
		if err != nil {
			log.Fatal(err)
		}

		var total time.Duration
		for i := 0; i < cfg.Steps; i++ {
			reply, err := actor.Ask(ctx, pid, &pb.Tick{DeltaTime: cfg.DeltaTime}, askTimeout)
			if err != nil {
				log.Fatalf("repetition %d step %d: %v", rep, i, err)
			}
			stats, ok := reply.(*pb.StepStats)
			if !ok {
				log.Fatalf("repetition %d step %d: unexpected reply %T", rep, i, reply)
			}
			total += time.Duration(stats.GetDurationUs()) * time.Microsecond
		}

		repTotals = append(repTotals, total)
		logger.Infof("repetition %d: total %s, avg %s/step",
			rep, total, total/time.Duration(cfg.Steps))
	}

	min, max, sum := repTotals[0], repTotals[0], time.Duration(0)
	for _, t := range repTotals {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
		sum += t
	}
	avg := sum / time.Duration(len(repTotals))
	logger.Infof("done: min %s, avg %s, max %s per repetition (%s avg/step)",
		min, avg, max, avg/time.Duration(cfg.Steps))
}
