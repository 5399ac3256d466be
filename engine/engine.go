package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/TomWoodling/pippis-poc/engine/config"
	"github.com/TomWoodling/pippis-poc/engine/creature"
	"github.com/TomWoodling/pippis-poc/engine/input"
	"github.com/TomWoodling/pippis-poc/engine/profiler"
	"github.com/TomWoodling/pippis-poc/engine/window"
	"github.com/TomWoodling/pippis-poc/engine/zone"
)

// engine implements the Engine interface.
// Coordinates the simulation and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	mu        sync.RWMutex
	creatures map[uint64]creature.Controller
	volumes   []zone.Volume

	// inputTarget is the creature receiving window input; defaults to the
	// first creature added.
	inputTarget    uint64
	hasInputTarget bool

	// seabedY is the hard floor the world clamps bodies to; contact drives
	// the GROUNDED transition.
	seabedY   float32
	hasSeabed bool

	// tuningWatcher delivers hot-reloaded tuning between ticks.
	tuningWatcher *config.Watcher

	// simPool fans each tick's creature updates out over a bounded set of
	// reusable goroutines. Workers persist across ticks, avoiding per-tick
	// goroutine spawn/teardown overhead.
	simPool    worker.DynamicWorkerPool
	simWorkers int
}

// Engine is the main entry point for the simulation host.
// It orchestrates the fixed-rate tick loop, creature registry, trigger
// volumes, and window management.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the simulation tick rate in ticks per second.
	// If the engine is running, the change takes effect immediately.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers a function called after every simulation
	// tick, once all creatures have advanced and volumes have stepped.
	//
	// Parameters:
	//   - callback: function receiving the tick delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddCreature registers a creature controller, initializes it, and makes
	// it the input target if none is set.
	//
	// Parameters:
	//   - c: the creature controller to register
	AddCreature(c creature.Controller)

	// RemoveCreature unregisters the creature with the given ID.
	//
	// Parameters:
	//   - id: the creature's entity ID
	RemoveCreature(id uint64)

	// Creature retrieves a registered creature controller.
	// Returns nil if no creature has that ID.
	//
	// Parameters:
	//   - id: the creature's entity ID
	//
	// Returns:
	//   - creature.Controller: the controller, or nil if not found
	Creature(id uint64) creature.Controller

	// Creatures returns a copy of all registered creatures keyed by ID.
	//
	// Returns:
	//   - map[uint64]creature.Controller: a copy of the creature map
	Creatures() map[uint64]creature.Controller

	// AddVolume registers a trigger volume. Volumes are stepped with every
	// creature's position after each tick.
	//
	// Parameters:
	//   - v: the trigger volume to register
	AddVolume(v zone.Volume)

	// SetInputTarget routes window input to the creature with the given ID.
	//
	// Parameters:
	//   - id: the creature's entity ID
	SetInputTarget(id uint64)

	// Run starts the simulation loop. With a window it blocks until the
	// window closes; headless it blocks until Quit is called.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder
// pattern.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		creatures:        make(map[uint64]creature.Controller),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
		simWorkers:       4,
	}

	for _, opt := range options {
		opt(e)
	}

	// Queue size of 64 accommodates typical creature counts with headroom.
	e.simPool = worker.NewDynamicWorkerPool(e.simWorkers, 64, 1*time.Second)

	if e.window != nil {
		e.wireWindowInput()
	}

	return e
}

// wireWindowInput forwards window key, look, and stick events to the input
// target creature.
func (e *engine) wireWindowInput() {
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		e.dispatchInput(input.Event{Kind: input.KindKey, Code: keyCode, Pressed: true})
	})
	e.window.SetKeyUpCallback(func(keyCode uint32) {
		e.dispatchInput(input.Event{Kind: input.KindKey, Code: keyCode, Pressed: false})
	})
	e.window.SetLookCallback(func(dx, dy float32) {
		e.dispatchInput(input.Event{Kind: input.KindLook, X: dx, Y: dy})
	})
}

// dispatchInput delivers one event to the current input target, if any.
func (e *engine) dispatchInput(ev input.Event) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.hasInputTarget {
		return
	}
	if c, ok := e.creatures[e.inputTarget]; ok {
		c.OnInputEvent(ev)
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
		if e.tuningWatcher != nil {
			_ = e.tuningWatcher.Close()
		}
	})
}

// handle launches the simulation and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleSimulation()
	go e.handleQuit()
}

// handleSimulation runs the fixed-rate tick loop in its own goroutine.
// Each tick fans creature updates out over the worker pool, resolves seabed
// contact, steps trigger volumes, and applies any pending tuning reload.
// Listens for dynamic rate changes via tickRateChannel and exits when the
// quit channel is closed. Recovers from panics to avoid crashing the process
// and signals quit on recovery.
func (e *engine) handleSimulation() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("simulation goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	var tuningUpdates <-chan config.Tuning
	if e.tuningWatcher != nil {
		tuningUpdates = e.tuningWatcher.Updates
	}

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.tick(dt)

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		case tuning, ok := <-tuningUpdates:
			if !ok {
				tuningUpdates = nil
				continue
			}
			e.applyTuning(tuning)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick advances every creature one step in parallel, then resolves world
// interactions sequentially.
func (e *engine) tick(dt float32) {
	controllers := e.snapshotCreatures()
	if len(controllers) == 0 {
		return
	}

	// Creatures never touch each other's state, so their updates fan out
	// over the pool; the WaitGroup is the per-tick barrier.
	var wg sync.WaitGroup
	for i, c := range controllers {
		wg.Add(1)
		cCap := c // capture for closure
		e.simPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				cCap.OnTick(dt)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Contact and volume resolution mutate shared trigger state, so they
	// run on the loop goroutine.
	for _, c := range controllers {
		e.resolveSeabed(c)
		e.mu.RLock()
		volumes := e.volumes
		e.mu.RUnlock()
		for _, v := range volumes {
			v.Step(c.ID(), c.Body().Position())
		}
	}
}

// snapshotCreatures copies the creature registry in ascending ID order so a
// tick sees a stable set even if the host mutates the registry mid-frame.
func (e *engine) snapshotCreatures() []creature.Controller {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := make([]uint64, 0, len(e.creatures))
	for id := range e.creatures {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	controllers := make([]creature.Controller, 0, len(ids))
	for _, id := range ids {
		controllers = append(controllers, e.creatures[id])
	}
	return controllers
}

// resolveSeabed clamps a body to the world floor and feeds the contact flag
// back into the creature's transition policy.
func (e *engine) resolveSeabed(c creature.Controller) {
	if !e.hasSeabed {
		return
	}
	body := c.Body()
	if body.Position().Y <= e.seabedY {
		body.Transform.Origin.Y = e.seabedY
		if body.Velocity.Y < 0 {
			body.Velocity.Y = 0
		}
		c.SetOnFloor(true)
		return
	}
	c.SetOnFloor(false)
}

// applyTuning retunes every registered creature with a hot-reloaded tuning
// set. Runs between ticks on the loop goroutine.
func (e *engine) applyTuning(tuning config.Tuning) {
	log.Printf("tuning reloaded, retuning %d creature(s)", len(e.Creatures()))
	for _, c := range e.snapshotCreatures() {
		c.Retune(tuning)
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the simulation tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	newRate := time.Second / time.Duration(tps)

	if e.running {
		// Send to channel for immediate update in running simulation loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called after every simulation tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddCreature(c creature.Controller) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.creatures[c.ID()] = c
	if !e.hasInputTarget {
		e.inputTarget = c.ID()
		e.hasInputTarget = true
	}
	c.Initialize()
}

func (e *engine) RemoveCreature(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.creatures, id)
	if e.hasInputTarget && e.inputTarget == id {
		e.hasInputTarget = false
	}
}

func (e *engine) Creature(id uint64) creature.Controller {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.creatures[id]
}

func (e *engine) Creatures() map[uint64]creature.Controller {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make(map[uint64]creature.Controller, len(e.creatures))
	for k, v := range e.creatures {
		cp[k] = v
	}
	return cp
}

func (e *engine) AddVolume(v zone.Volume) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volumes = append(e.volumes, v)
}

func (e *engine) SetInputTarget(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inputTarget = id
	e.hasInputTarget = true
}
