package countdown

import (
	"sync"
	"time"

	"timetracker/internal/core/model"
)

const observerBuffer = 64

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type clockTicker struct {
	ticker *time.Ticker
}

func (ticker clockTicker) C() <-chan time.Time { return ticker.ticker.C }

func (ticker clockTicker) Stop() { ticker.ticker.Stop() }

// NewClockTicker wraps time.NewTicker.
func NewClockTicker(interval time.Duration) Ticker {
	return clockTicker{ticker: time.NewTicker(interval)}
}

// Options contains runtime options for the Engine.
type Options struct {
	TickInterval time.Duration
	NewTicker    func(time.Duration) Ticker
	Now          func() time.Time
}

// Engine is the work/relax countdown state machine.
type Engine struct {
	mu         sync.Mutex
	config     model.PomodoroConfig
	options    Options
	session    Session
	generation uint64
	stopCh     chan struct{}
	events     []chan Event
	closed     bool
}

// New creates an idle Engine at the start of a work phase.
func New(config model.PomodoroConfig, options Options) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = NewClockTicker
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	engine := &Engine{
		config:  config,
		options: options,
		session: Session{
			Mode:      ModeWork,
			Total:     config.WorkSeconds(),
			Remaining: config.WorkSeconds(),
		},
	}
	return engine, nil
}

// Subscribe registers a new observer channel.
// Sends never block; a full channel drops the event.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Observe feeds observer from its own subscription until Close.
// The observer runs on a separate goroutine and may call back into the engine.
func (engine *Engine) Observe(observer Observer) {
	events := engine.Subscribe(observerBuffer)
	go func() {
		for event := range events {
			observer.OnEvent(event)
		}
	}()
}

// Start begins ticking. It is a no-op while running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || engine.session.Running {
		return
	}
	engine.startLocked()
}

// Pause stops ticking and keeps the remaining time.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || !engine.session.Running {
		return
	}
	engine.stopRunLocked()
	engine.emitLocked(EventPaused)
}

// Toggle pauses a running countdown and starts an idle one.
func (engine *Engine) Toggle() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	if engine.session.Running {
		engine.stopRunLocked()
		engine.emitLocked(EventPaused)
		return
	}
	engine.startLocked()
}

func (engine *Engine) startLocked() {
	engine.spawnRunLocked()
	engine.emitLocked(EventStarted)
}

func (engine *Engine) spawnRunLocked() {
	engine.session.Running = true
	engine.generation++
	stop := make(chan struct{})
	engine.stopCh = stop
	ticker := engine.options.NewTicker(engine.options.TickInterval)
	go engine.run(engine.generation, ticker, stop)
}

// Tick advances the countdown by one second while running.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || !engine.session.Running {
		return
	}
	engine.tickLocked()
}

// Switch ends the current phase immediately. A running countdown gets a
// fresh ticker so the new phase's first second is a full interval.
func (engine *Engine) Switch() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	if engine.session.Running {
		engine.stopRunLocked()
		engine.spawnRunLocked()
	}
	engine.switchLocked()
}

// Reset returns to an idle, full work phase.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	if engine.session.Running {
		engine.stopRunLocked()
		engine.emitLocked(EventPaused)
	}

	previous := engine.session.Mode
	engine.session.Mode = ModeWork
	engine.session.Total = engine.config.WorkSeconds()
	engine.session.Remaining = engine.session.Total
	if previous != ModeWork {
		engine.emitLocked(EventModeSwitch)
		return
	}
	engine.emitLocked(EventProgress)
}

// UpdateConfig applies new durations. Elapsed time in the current phase
// is kept; a phase that is already over ends on the next tick.
func (engine *Engine) UpdateConfig(config model.PomodoroConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return nil
	}

	elapsed := engine.session.Total - engine.session.Remaining
	engine.config = config
	engine.session.Total = engine.totalLocked(engine.session.Mode)
	engine.session.Remaining = engine.session.Total - elapsed
	if engine.session.Remaining < 1 {
		engine.session.Remaining = 1
	}
	engine.emitLocked(EventConfigChanged)
	return nil
}

// Close terminates ticking and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopRunLocked()
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Session returns a snapshot of the countdown record.
func (engine *Engine) Session() Session {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.session
}

// State returns Idle, Work or Relax.
func (engine *Engine) State() State {
	return engine.Session().State()
}

// Mode returns the current phase.
func (engine *Engine) Mode() Mode {
	return engine.Session().Mode
}

// Remaining returns the seconds left in the current phase.
func (engine *Engine) Remaining() int {
	return engine.Session().Remaining
}

// Running reports whether ticks are being emitted.
func (engine *Engine) Running() bool {
	return engine.Session().Running
}

// ProgressFraction returns 1 - remaining/total for the current phase.
func (engine *Engine) ProgressFraction() float64 {
	return engine.Session().Progress()
}

// Snapshot describes the current session as a progress event.
func (engine *Engine) Snapshot() Event {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.eventLocked(EventProgress)
}

// Config returns the active durations.
func (engine *Engine) Config() model.PomodoroConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

func (engine *Engine) run(generation uint64, ticker Ticker, stop <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			engine.tickGeneration(generation)
		}
	}
}

// tickGeneration drops ticks from runs that were paused in the meantime.
func (engine *Engine) tickGeneration(generation uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed || !engine.session.Running || generation != engine.generation {
		return
	}
	engine.tickLocked()
}

func (engine *Engine) tickLocked() {
	engine.session.Remaining--
	if engine.session.Remaining > 0 {
		engine.emitLocked(EventProgress)
		return
	}
	engine.switchLocked()
}

func (engine *Engine) switchLocked() {
	engine.session.Mode = engine.session.Mode.Other()
	engine.session.Total = engine.totalLocked(engine.session.Mode)
	engine.session.Remaining = engine.session.Total
	engine.emitLocked(EventModeSwitch)
}

func (engine *Engine) stopRunLocked() {
	if engine.stopCh != nil {
		close(engine.stopCh)
		engine.stopCh = nil
	}
	engine.generation++
	engine.session.Running = false
}

func (engine *Engine) totalLocked(mode Mode) int {
	if mode == ModeRelax {
		return engine.config.RelaxSeconds()
	}
	return engine.config.WorkSeconds()
}

func (engine *Engine) eventLocked(eventType EventType) Event {
	return Event{
		Type:      eventType,
		Mode:      engine.session.Mode,
		State:     engine.session.State(),
		Remaining: engine.session.Remaining,
		Total:     engine.session.Total,
		Progress:  engine.session.Progress(),
		At:        engine.options.Now(),
	}
}

func (engine *Engine) emitLocked(eventType EventType) {
	event := engine.eventLocked(eventType)
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
