package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookDirection(t *testing.T) {
	tests := []struct {
		name       string
		dir        LookDirection
		wantString string
	}{
		{"left", Left, "Left"},
		{"right", Right, "Right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantString, tt.dir.String())
		})
	}

	assert.Equal(t, "Unknown", LookDirection(7).String())
}

func TestFlight(t *testing.T) {
	t.Run("grounded", func(t *testing.T) {
		f := Grounded()
		assert.False(t, f.IsAirborne())
		assert.Equal(t, "Grounded", f.Mode.String())
	})

	t.Run("take off", func(t *testing.T) {
		f := TakeOff(Left)
		assert.True(t, f.IsAirborne())
		assert.Equal(t, Left, f.Takeoff)
		assert.False(t, f.ReachedJumpApex)
		assert.Equal(t, "Airborne", f.Mode.String())
	})

	t.Run("zero value is grounded", func(t *testing.T) {
		var f Flight
		assert.False(t, f.IsAirborne())
	})
}

func TestTimer(t *testing.T) {
	t.Run("finishes exactly once", func(t *testing.T) {
		timer := NewTimer(100 * time.Millisecond)

		assert.False(t, timer.Tick(60*time.Millisecond))
		assert.False(t, timer.Finished())
		assert.Equal(t, 40*time.Millisecond, timer.Remaining())

		assert.True(t, timer.Tick(60*time.Millisecond))
		assert.True(t, timer.Finished())
		assert.Equal(t, time.Duration(0), timer.Remaining())

		assert.False(t, timer.Tick(60*time.Millisecond), "just-finished fires once")
		assert.True(t, timer.Finished())
	})

	t.Run("exact boundary finishes", func(t *testing.T) {
		timer := NewTimer(50 * time.Millisecond)
		assert.True(t, timer.Tick(50*time.Millisecond))
	})

	t.Run("zero duration finishes on first tick", func(t *testing.T) {
		timer := NewTimer(0)
		assert.False(t, timer.Finished())
		assert.True(t, timer.Tick(0))
	})
}
