package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopGuard_DetectsRepeatWithinWindow(t *testing.T) {
	guard := newLoopGuard(3)

	assert.False(t, guard.Observe("sig-a"))
	assert.False(t, guard.Observe("sig-b"))
	assert.True(t, guard.Observe("sig-a"))
}

func TestLoopGuard_WindowEviction(t *testing.T) {
	guard := newLoopGuard(2)

	assert.False(t, guard.Observe("sig-a"))
	assert.False(t, guard.Observe("sig-b"))
	// "sig-c" evicts "sig-a" from the 2-slot window.
	assert.False(t, guard.Observe("sig-c"))
	assert.False(t, guard.Observe("sig-a"))
	// But the window still holds the recent ones.
	assert.True(t, guard.Observe("sig-a"))
}

func TestLoopGuard_ResetIsSessionScoped(t *testing.T) {
	guard := newLoopGuard(3)

	assert.False(t, guard.Observe("sig-a"))
	guard.Reset()

	// A signature from a previous run must not trigger a false positive in
	// a later one.
	assert.False(t, guard.Observe("sig-a"))
}

func TestLoopGuard_DefaultWindow(t *testing.T) {
	guard := newLoopGuard(0)
	assert.Equal(t, defaultGuardWindow, guard.window)
}

func TestLoopGuard_RepeatCaughtWithinWindowPlusOne(t *testing.T) {
	// With window N, the same signature observed twice within any N+1
	// consecutive observations is always caught.
	const window = 3
	guard := newLoopGuard(window)

	for i := 0; i < window; i++ {
		assert.False(t, guard.Observe(fmt.Sprintf("sig-%d", i)))
	}
	assert.True(t, guard.Observe(fmt.Sprintf("sig-%d", window-1)))
}
