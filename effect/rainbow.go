package effect

import "libdb.so/ringglow/led"

// Rainbow is a rainbow animation for LED rings. The full hue spectrum is
// spread evenly across the ring and rotated by the configured speed on every
// update.
type Rainbow struct {
	numLEDs    int
	hueOffset  uint8
	speed      uint8
	brightness uint8
	saturation uint8
	direction  Direction
}

var _ Effect = (*Rainbow)(nil)

// NewRainbow creates a rainbow effect for a ring of numLEDs LEDs.
//
// Defaults: speed 1, full brightness, full saturation, clockwise.
func NewRainbow(numLEDs int) (*Rainbow, error) {
	if err := validateNumLEDs(numLEDs); err != nil {
		return nil, err
	}
	return &Rainbow{
		numLEDs:    numLEDs,
		speed:      1,
		brightness: 255,
		saturation: 255,
		direction:  Clockwise,
	}, nil
}

// WithSpeed sets the hue increment per update. Speed must be nonzero.
func (r *Rainbow) WithSpeed(speed uint8) (*Rainbow, error) {
	if err := validateSpeed(speed); err != nil {
		return nil, err
	}
	r.speed = speed
	return r, nil
}

// WithBrightness sets the overall brightness of the rainbow colors.
func (r *Rainbow) WithBrightness(brightness uint8) *Rainbow {
	r.brightness = brightness
	return r
}

// WithSaturation sets the color saturation. Lower values produce more pastel
// colors.
func (r *Rainbow) WithSaturation(saturation uint8) *Rainbow {
	r.saturation = saturation
	return r
}

// WithDirection sets the rotation direction.
func (r *Rainbow) WithDirection(direction Direction) *Rainbow {
	r.direction = direction
	return r
}

// NumLEDs returns the ring size this effect is configured for.
func (r *Rainbow) NumLEDs() int {
	return r.numLEDs
}

// Current fills the buffer with the current rainbow colors without advancing
// the animation.
func (r *Rainbow) Current(buffer led.LEDs) error {
	if err := validateBuffer(buffer, r.numLEDs); err != nil {
		return err
	}

	for i := 0; i < r.numLEDs; i++ {
		// Spread the full hue range evenly across the ring. Multiply
		// before dividing so large rings don't truncate to one hue.
		ledHue := uint8(i * 256 / r.numLEDs)
		hue := ledHue + r.hueOffset

		buffer[i] = led.HSVToRGB(hue, r.saturation, r.brightness)
	}

	return nil
}

// Update fills the buffer with rainbow colors and advances the rotation by
// the configured speed.
func (r *Rainbow) Update(buffer led.LEDs) error {
	if err := r.Current(buffer); err != nil {
		return err
	}

	switch r.direction {
	case CounterClockwise:
		r.hueOffset -= r.speed
	default:
		r.hueOffset += r.speed
	}

	return nil
}

// Reset restarts the animation by clearing the hue offset.
func (r *Rainbow) Reset() {
	r.hueOffset = 0
}
