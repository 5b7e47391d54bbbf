package solver_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/solver"
)

func TestPacer_Adjustments(t *testing.T) {
	p := solver.NewPacer(15*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, p.Delay())

	assert.Equal(t, 25*time.Millisecond, p.Increment())
	assert.Equal(t, 15*time.Millisecond, p.Decrement())
	assert.Equal(t, 5*time.Millisecond, p.Decrement())
	assert.Equal(t, time.Duration(0), p.Decrement(), "clamped at zero")
	assert.Equal(t, time.Duration(0), p.Decrement())

	p.Set(-time.Second)
	assert.Equal(t, time.Duration(0), p.Delay())
}

func TestPacer_ZeroValueUsesDefaultStep(t *testing.T) {
	var p solver.Pacer
	assert.Equal(t, solver.DefaultStep, p.Step())
	assert.Equal(t, solver.DefaultStep, p.Increment())
	assert.Equal(t, solver.DefaultStep, solver.NewPacer(0, -1).Step())
}

func TestPacer_WaitHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	zero := solver.NewPacer(0, 0)
	assert.ErrorIs(t, zero.Wait(ctx), context.Canceled)
	require.NoError(t, zero.Wait(context.Background()))

	slow := solver.NewPacer(time.Hour, 0)
	began := time.Now()
	assert.ErrorIs(t, slow.Wait(ctx), context.Canceled)
	assert.Less(t, time.Since(began), time.Second)
}

func TestPacer_WaitSleepsForDelay(t *testing.T) {
	p := solver.NewPacer(15*time.Millisecond, 0)
	began := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(began), 15*time.Millisecond)
}

func TestPacer_ConcurrentAdjustments(t *testing.T) {
	p := solver.NewPacer(0, time.Millisecond)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); p.Increment() }()
		go func() { defer wg.Done(); _ = p.Delay() }()
	}
	wg.Wait()
	assert.Equal(t, 50*time.Millisecond, p.Delay())

	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() { defer wg.Done(); p.Decrement() }()
	}
	wg.Wait()
	assert.Equal(t, time.Duration(0), p.Delay())
}
