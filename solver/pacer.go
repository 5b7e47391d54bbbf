package solver

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultStep is the amount Increment and Decrement move the delay by.
const DefaultStep = 10 * time.Millisecond

// Pacer is the delay slept between two node expansions. It is read by every
// solver at each step boundary and may be adjusted at any time from any
// goroutine. The zero value is a zero delay with DefaultStep.
type Pacer struct {
	delay atomic.Int64 // nanoseconds, never negative
	step  time.Duration
}

// NewPacer returns a Pacer starting at initial (clamped to ≥ 0) that moves by
// step on each adjustment. A non-positive step selects DefaultStep.
func NewPacer(initial, step time.Duration) *Pacer {
	p := &Pacer{step: step}
	p.Set(initial)

	return p
}

// Delay returns the current pause between expansions.
func (p *Pacer) Delay() time.Duration {
	return time.Duration(p.delay.Load())
}

// Set replaces the delay; negative values become zero.
func (p *Pacer) Set(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.delay.Store(int64(d))
}

// Step returns the adjustment size.
func (p *Pacer) Step() time.Duration {
	if p.step <= 0 {
		return DefaultStep
	}

	return p.step
}

// Increment lengthens the delay by one step and returns the new value.
func (p *Pacer) Increment() time.Duration {
	return time.Duration(p.delay.Add(int64(p.Step())))
}

// Decrement shortens the delay by one step, never below zero, and returns
// the new value.
func (p *Pacer) Decrement() time.Duration {
	step := int64(p.Step())
	for {
		cur := p.delay.Load()
		next := cur - step
		if next < 0 {
			next = 0
		}
		if p.delay.CompareAndSwap(cur, next) {
			return time.Duration(next)
		}
	}
}

// Wait sleeps for the current delay. It returns ctx.Err() as soon as ctx is
// done, including when the delay is zero.
func (p *Pacer) Wait(ctx context.Context) error {
	d := p.Delay()
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
