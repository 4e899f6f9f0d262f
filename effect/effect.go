// Package effect implements deterministic animation state machines for
// WS2812 LED rings. Every effect renders complete frames into a caller-owned
// led.LEDs buffer and is driven entirely by the caller's tick loop.
package effect

import (
	"fmt"

	"github.com/pkg/errors"
	"libdb.so/ringglow/led"
)

// MaxLEDs is the maximum supported number of LEDs in a ring. The limit keeps
// the per-LED hue distribution exact with 8-bit integer math.
const MaxLEDs = 256

// Sentinel configuration errors. They are returned by constructors and
// builder methods only; a successfully constructed effect never fails.
var (
	// ErrZeroLEDs is returned when a non-positive ring size is requested.
	ErrZeroLEDs = errors.New("number of LEDs must be greater than 0")
	// ErrZeroSpeed is returned when an animation speed of 0 is requested.
	ErrZeroSpeed = errors.New("speed must be greater than 0")
	// ErrZeroDuty is returned when either duty phase of a flash is 0 ticks.
	ErrZeroDuty = errors.New("on and off durations must both be greater than 0")
)

// TooManyLEDsError is returned when a ring size above MaxLEDs is requested.
type TooManyLEDsError struct {
	Requested int
	Max       int
}

func (e *TooManyLEDsError) Error() string {
	return fmt.Sprintf("too many LEDs: requested %d, maximum supported is %d", e.Requested, e.Max)
}

// BufferTooSmallError is returned by Update and Current when the caller's
// buffer holds fewer LEDs than the effect was constructed for.
type BufferTooSmallError struct {
	Required int
	Actual   int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("buffer too small: need %d LEDs, got %d", e.Required, e.Actual)
}

// BrightnessRangeError is returned when a pulse brightness range has
// min >= max.
type BrightnessRangeError struct {
	Min uint8
	Max uint8
}

func (e *BrightnessRangeError) Error() string {
	return fmt.Sprintf("invalid range: min (%d) must be less than max (%d)", e.Min, e.Max)
}

// ProgressRangeError is returned by SetProgress for values outside 0..255.
type ProgressRangeError struct {
	Value int
}

func (e *ProgressRangeError) Error() string {
	return fmt.Sprintf("progress %d out of range 0..255", e.Value)
}

// Direction is the direction of animation rotation.
type Direction uint8

const (
	// Clockwise rotates the animation clockwise. It is the default.
	Clockwise Direction = iota
	// CounterClockwise rotates the animation counter-clockwise.
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Effect is a reusable LED ring animation. All effects in this package
// implement it.
//
// The buffer passed to Update and Current must hold at least as many LEDs as
// the effect was constructed for. Effects always write the full ring, never a
// partial frame.
type Effect interface {
	// Update fills the buffer with the current colors and advances the
	// animation by one tick.
	Update(buffer led.LEDs) error
	// Current fills the buffer with the current colors without advancing
	// the animation. It is idempotent between updates.
	Current(buffer led.LEDs) error
	// Reset restores the animation to its initial phase. Configuration
	// (speed, brightness, ring size) is untouched.
	Reset()
}

func validateNumLEDs(numLEDs int) error {
	if numLEDs <= 0 {
		return ErrZeroLEDs
	}
	if numLEDs > MaxLEDs {
		return &TooManyLEDsError{Requested: numLEDs, Max: MaxLEDs}
	}
	return nil
}

func validateSpeed(speed uint8) error {
	if speed == 0 {
		return ErrZeroSpeed
	}
	return nil
}

func validateBuffer(buffer led.LEDs, numLEDs int) error {
	if len(buffer) < numLEDs {
		return &BufferTooSmallError{Required: numLEDs, Actual: len(buffer)}
	}
	return nil
}

// advancePosition moves a ring position by speed steps in the given
// direction, wrapping around a ring of numLEDs LEDs.
func advancePosition(position int, speed uint8, numLEDs int, direction Direction) int {
	switch direction {
	case CounterClockwise:
		return ((position-int(speed))%numLEDs + numLEDs) % numLEDs
	default:
		return (position + int(speed)) % numLEDs
	}
}
