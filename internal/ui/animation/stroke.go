package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	FrameInterval time.Duration
	Duration      time.Duration
}

// StrokeAnimator eases the indicator stroke between countdown ticks.
type StrokeAnimator struct {
	mu      sync.Mutex
	config  Config
	update  func(strokeEnd float64)
	cancel  context.CancelFunc
	current float64
}

// New creates an animator that reports every frame to update.
// update runs with the animator locked, usually on the animation goroutine,
// so it must not call back into the animator.
func New(config Config, update func(strokeEnd float64)) *StrokeAnimator {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	if config.Duration < config.FrameInterval {
		config.Duration = config.FrameInterval
	}
	return &StrokeAnimator{
		config:  config,
		update:  update,
		current: 1,
	}
}

// AnimateTo moves the stroke from its current value to target,
// replacing any animation in flight.
func (animator *StrokeAnimator) AnimateTo(ctx context.Context, target float64) {
	animator.mu.Lock()
	if animator.cancel != nil {
		animator.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	animator.cancel = cancel
	from := animator.current
	animator.mu.Unlock()

	go animator.run(runCtx, from, target)
}

// Jump cancels any animation and sets the stroke immediately.
func (animator *StrokeAnimator) Jump(target float64) {
	animator.mu.Lock()
	if animator.cancel != nil {
		animator.cancel()
		animator.cancel = nil
	}
	animator.current = target
	animator.update(target)
	animator.mu.Unlock()
}

// Stop terminates any active animation, leaving the stroke where it is.
func (animator *StrokeAnimator) Stop() {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	if animator.cancel != nil {
		animator.cancel()
		animator.cancel = nil
	}
}

// Current returns the last rendered stroke value.
func (animator *StrokeAnimator) Current() float64 {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.current
}

// Interpolate returns the linear blend of from and to at t in [0, 1].
func Interpolate(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return from + (to-from)*t
}

func (animator *StrokeAnimator) run(ctx context.Context, from, to float64) {
	frames := int(animator.config.Duration / animator.config.FrameInterval)
	for frame := 1; frame <= frames; frame++ {
		if !sleepWithContext(ctx, animator.config.FrameInterval) {
			return
		}
		if !animator.render(ctx, Interpolate(from, to, float64(frame)/float64(frames))) {
			return
		}
	}
}

// render draws value unless the run was cancelled meanwhile.
func (animator *StrokeAnimator) render(ctx context.Context, value float64) bool {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	animator.current = value
	animator.update(value)
	return true
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
