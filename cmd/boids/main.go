package main

import (
	"log"

	"github.com/lao-tseu-is-alive/go-quadtree-boids/pkg/boids"
)

const (
	worldWidth  = 800
	worldHeight = 800
	numBoids    = 250
	numSteps    = 1000
	deltaTime   = 1.0 / 60.0
)

func main() {
	world, err := boids.NewWorld(worldWidth, worldHeight)
	if err != nil {
		log.Fatal(err)
	}
	if err := world.Populate(numBoids); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < numSteps; i++ {
		if err := world.Update(deltaTime); err != nil {
			log.Fatalf("step %d: %v", i, err)
		}
		if (i+1)%100 == 0 {
			log.Printf("step %d/%d done (%d boids)", i+1, numSteps, world.Count())
		}
	}

	log.Println("Finished.")
}
