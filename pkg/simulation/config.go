package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config carries the harness-level knobs of a benchmark run: how big the
// world is, how many agents to spawn, how many steps to run and how often to
// repeat the whole run. The flocking rule weights are deliberately NOT here;
// they are fixed constants inside the core.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Run shape
	Steps       int     `json:"steps"`
	Repetitions int     `json:"repetitions"`
	DeltaTime   float64 `json:"deltaTime"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:  800,
		WorldHeight: 800,
		NumBoids:    500,
		Steps:       1000,
		Repetitions: 5,
		DeltaTime:   1.0 / 60.0,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
