package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "worldWidth": {"type": "number", "exclusiveMinimum": 0},
    "worldHeight": {"type": "number", "exclusiveMinimum": 0},
    "numBoids": {"type": "integer", "minimum": 0},
    "steps": {"type": "integer", "minimum": 1},
    "repetitions": {"type": "integer", "minimum": 1},
    "deltaTime": {"type": "number", "exclusiveMinimum": 0}
  },
  "required": ["worldWidth", "worldHeight", "numBoids", "steps", "repetitions"],
  "additionalProperties": false
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WorldWidth <= 0 || cfg.WorldHeight <= 0 {
		t.Errorf("default world extents %gx%g are not positive", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.NumBoids <= 0 {
		t.Errorf("default population %d is not positive", cfg.NumBoids)
	}
	if cfg.Steps < 1 || cfg.Repetitions < 1 {
		t.Errorf("default run shape steps=%d repetitions=%d is invalid", cfg.Steps, cfg.Repetitions)
	}
	if cfg.DeltaTime <= 0 {
		t.Errorf("default deltaTime %g is not positive", cfg.DeltaTime)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.json", testSchema)

	t.Run("Valid config loads", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "valid.json", `{
			"worldWidth": 1024,
			"worldHeight": 768,
			"numBoids": 250,
			"steps": 100,
			"repetitions": 3,
			"deltaTime": 0.0166
		}`)

		cfg, err := LoadConfig(cfgPath, schemaPath)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.WorldWidth != 1024 || cfg.WorldHeight != 768 {
			t.Errorf("loaded extents %gx%g; want 1024x768", cfg.WorldWidth, cfg.WorldHeight)
		}
		if cfg.NumBoids != 250 {
			t.Errorf("loaded numBoids = %d; want 250", cfg.NumBoids)
		}
		if cfg.Steps != 100 || cfg.Repetitions != 3 {
			t.Errorf("loaded run shape steps=%d repetitions=%d; want 100 and 3", cfg.Steps, cfg.Repetitions)
		}
	})

	t.Run("Missing required field fails validation", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "missing.json", `{
			"worldWidth": 800,
			"worldHeight": 800,
			"numBoids": 100
		}`)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("LoadConfig accepted a config missing required fields")
		}
	})

	t.Run("Out-of-range value fails validation", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "badvalue.json", `{
			"worldWidth": -10,
			"worldHeight": 800,
			"numBoids": 100,
			"steps": 100,
			"repetitions": 1
		}`)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("LoadConfig accepted a negative world width")
		}
	})

	t.Run("Unknown field fails validation", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "unknown.json", `{
			"worldWidth": 800,
			"worldHeight": 800,
			"numBoids": 100,
			"steps": 100,
			"repetitions": 1,
			"renderScale": 2
		}`)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("LoadConfig accepted a config with an unknown field")
		}
	})

	t.Run("Malformed JSON fails", func(t *testing.T) {
		cfgPath := writeTestFile(t, dir, "broken.json", `{"worldWidth": `)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("LoadConfig accepted malformed JSON")
		}
	})

	t.Run("Missing config file fails", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.json"), schemaPath); err == nil {
			t.Error("LoadConfig accepted a nonexistent config file")
		}
	})
}
