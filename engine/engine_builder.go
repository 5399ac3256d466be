package engine

import (
	"log"
	"time"

	"github.com/TomWoodling/pippis-poc/engine/config"
	"github.com/TomWoodling/pippis-poc/engine/creature"
	"github.com/TomWoodling/pippis-poc/engine/window"
	"github.com/TomWoodling/pippis-poc/engine/zone"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the simulation tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - tps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		if tps <= 0 {
			tps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(tps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather
// than running headless.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCreature registers a creature controller during engine construction.
// The first creature registered becomes the input target.
//
// Parameters:
//   - c: the creature controller to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCreature(c creature.Controller) EngineBuilderOption {
	return func(e *engine) {
		e.creatures[c.ID()] = c
		if !e.hasInputTarget {
			e.inputTarget = c.ID()
			e.hasInputTarget = true
		}
		c.Initialize()
	}
}

// WithVolume registers a trigger volume during engine construction.
//
// Parameters:
//   - v: the trigger volume to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithVolume(v zone.Volume) EngineBuilderOption {
	return func(e *engine) {
		e.volumes = append(e.volumes, v)
	}
}

// WithSeabed sets the world floor height. Bodies are clamped to it each tick
// and contact drives the GROUNDED transition.
//
// Parameters:
//   - y: the floor height in world space
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSeabed(y float32) EngineBuilderOption {
	return func(e *engine) {
		e.seabedY = y
		e.hasSeabed = true
	}
}

// WithSimWorkers sets the number of worker goroutines the per-tick creature
// fan-out uses. Values <= 0 keep the default.
//
// Parameters:
//   - workers: worker goroutine count
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSimWorkers(workers int) EngineBuilderOption {
	return func(e *engine) {
		if workers > 0 {
			e.simWorkers = workers
		}
	}
}

// WithTuningFile starts a hot-reload watcher on a YAML tuning file. Every
// save retunes all registered creatures between ticks. Watch failures are
// logged and the engine runs without hot reload.
//
// Parameters:
//   - path: path to the YAML tuning file
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTuningFile(path string) EngineBuilderOption {
	return func(e *engine) {
		watcher, err := config.NewWatcher(path)
		if err != nil {
			log.Printf("tuning hot reload disabled: %v", err)
			return
		}
		e.tuningWatcher = watcher
	}
}
