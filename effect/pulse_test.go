package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"libdb.so/ringglow/effect"
	"libdb.so/ringglow/led"
)

func TestNewPulseValidation(t *testing.T) {
	_, err := effect.NewPulse(0)
	assert.ErrorIs(t, err, effect.ErrZeroLEDs)
	_, err = effect.NewPulse(-1)
	assert.ErrorIs(t, err, effect.ErrZeroLEDs)

	var tooMany *effect.TooManyLEDsError
	_, err = effect.NewPulse(effect.MaxLEDs + 1)
	assert.ErrorAs(t, err, &tooMany)
}

func TestPulseWithRangeValidation(t *testing.T) {
	p, err := effect.NewPulse(4)
	require.NoError(t, err)

	var rangeErr *effect.BrightnessRangeError
	_, err = p.WithRange(100, 10, 5)
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint8(100), rangeErr.Min)
	assert.Equal(t, uint8(10), rangeErr.Max)

	_, err = p.WithRange(50, 50, 5)
	assert.ErrorAs(t, err, &rangeErr)

	_, err = p.WithRange(10, 100, 0)
	assert.ErrorIs(t, err, effect.ErrZeroSpeed)

	_, err = p.WithRange(10, 100, 5)
	require.NoError(t, err)
	assert.Equal(t, uint8(10), p.Brightness())
}

func TestPulseAllLEDsShareColor(t *testing.T) {
	p, err := effect.NewPulse(6)
	require.NoError(t, err)
	p.WithColor(led.RGB(255, 0, 0))

	buf := led.NewLEDs(6)
	for i := 0; i < 10; i++ {
		require.NoError(t, p.Update(buf))
	}

	for i := 1; i < 6; i++ {
		assert.Equal(t, buf[0], buf[i], "LED %d should match LED 0", i)
	}
}

// TestPulseContinuousAtTurnaround verifies the reflective turn-around: the
// brightness sequence never jumps by more than the step, including across
// the peak and the trough.
func TestPulseContinuousAtTurnaround(t *testing.T) {
	const step = 7

	p, err := effect.NewPulse(1)
	require.NoError(t, err)
	_, err = p.WithRange(10, 80, step)
	require.NoError(t, err)

	buf := led.NewLEDs(1)
	prev := int(p.Brightness())
	var sawMin, sawMax bool

	for i := 0; i < 200; i++ {
		require.NoError(t, p.Update(buf))
		cur := int(p.Brightness())

		diff := cur - prev
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, step, "tick %d: %d -> %d", i, prev, cur)

		assert.GreaterOrEqual(t, cur, 10)
		assert.LessOrEqual(t, cur, 80)
		sawMin = sawMin || cur == 10
		sawMax = sawMax || cur == 80
		prev = cur
	}

	assert.True(t, sawMin, "oscillation should reach the minimum")
	assert.True(t, sawMax, "oscillation should reach the maximum")
}

func TestPulseBrightnessIsPeriodic(t *testing.T) {
	p, err := effect.NewPulse(1)
	require.NoError(t, err)
	_, err = p.WithRange(0, 20, 5)
	require.NoError(t, err)

	buf := led.NewLEDs(1)
	var seq []uint8
	for i := 0; i < 60; i++ {
		require.NoError(t, p.Update(buf))
		seq = append(seq, p.Brightness())
	}

	// 0..20 by 5 with a held tick at each end: period is 10 ticks.
	const period = 10
	for i := period; i < len(seq); i++ {
		assert.Equal(t, seq[i-period], seq[i], "tick %d", i)
	}
}

func TestPulseScalesBaseColor(t *testing.T) {
	p, err := effect.NewPulse(2)
	require.NoError(t, err)
	p.WithColor(led.RGB(200, 100, 0))
	_, err = p.WithRange(0, 255, 255)
	require.NoError(t, err)

	buf := led.NewLEDs(2)
	require.NoError(t, p.Update(buf)) // renders min (0), then steps to 255
	assert.True(t, buf[0].IsOff())

	require.NoError(t, p.Update(buf))
	assert.Equal(t, led.RGB(200, 100, 0), buf[0])
}

func TestPulseReset(t *testing.T) {
	p, err := effect.NewPulse(4)
	require.NoError(t, err)
	_, err = p.WithRange(5, 200, 10)
	require.NoError(t, err)

	buf := led.NewLEDs(4)
	for i := 0; i < 13; i++ {
		require.NoError(t, p.Update(buf))
	}

	p.Reset()
	assert.Equal(t, uint8(5), p.Brightness())
}
