package effect

import "libdb.so/ringglow/led"

// Pulse is a breathing animation. Every LED shows the same base color with
// its brightness walking up and down between a minimum and a maximum.
//
// The turn-around at either end is reflective: the brightness at the peak
// tick equals the value approaching and leaving it, so the sequence has no
// jump discontinuity.
type Pulse struct {
	numLEDs    int
	color      led.Color
	brightness uint8
	increasing bool
	min        uint8
	max        uint8
	step       uint8
}

var _ Effect = (*Pulse)(nil)

// NewPulse creates a pulse effect for a ring of numLEDs LEDs.
//
// Defaults: white base color, brightness range 0..255, step 2.
func NewPulse(numLEDs int) (*Pulse, error) {
	if err := validateNumLEDs(numLEDs); err != nil {
		return nil, err
	}
	return &Pulse{
		numLEDs:    numLEDs,
		color:      led.RGB(255, 255, 255),
		increasing: true,
		min:        0,
		max:        255,
		step:       2,
	}, nil
}

// WithColor sets the base color.
func (p *Pulse) WithColor(c led.Color) *Pulse {
	p.color = c
	return p
}

// WithRange sets the brightness range and the per-tick step size.
// min must be below max and step must be nonzero.
func (p *Pulse) WithRange(min, max, step uint8) (*Pulse, error) {
	if min >= max {
		return nil, &BrightnessRangeError{Min: min, Max: max}
	}
	if step == 0 {
		return nil, ErrZeroSpeed
	}
	p.min = min
	p.max = max
	p.step = step
	p.brightness = min
	p.increasing = true
	return p, nil
}

// NumLEDs returns the ring size this effect is configured for.
func (p *Pulse) NumLEDs() int {
	return p.numLEDs
}

// Brightness returns the current brightness level. It oscillates between the
// configured minimum and maximum as Update is called.
func (p *Pulse) Brightness() uint8 {
	return p.brightness
}

// Current fills the buffer with the base color at the current brightness
// without advancing the animation.
func (p *Pulse) Current(buffer led.LEDs) error {
	if err := validateBuffer(buffer, p.numLEDs); err != nil {
		return err
	}

	c := led.Scale(p.color, p.brightness)
	buffer[:p.numLEDs].Fill(c)

	return nil
}

// Update fills the buffer and advances the brightness by one step, turning
// around at the configured minimum and maximum.
func (p *Pulse) Update(buffer led.LEDs) error {
	if err := p.Current(buffer); err != nil {
		return err
	}

	if p.increasing {
		if p.brightness >= p.max {
			p.increasing = false
		} else {
			p.brightness = addClamped(p.brightness, p.step, p.max)
		}
	} else if p.brightness <= p.min {
		p.increasing = true
	} else {
		p.brightness = subClamped(p.brightness, p.step, p.min)
	}

	return nil
}

// Reset restarts the animation at the minimum brightness, rising.
func (p *Pulse) Reset() {
	p.brightness = p.min
	p.increasing = true
}

func addClamped(v, step, max uint8) uint8 {
	sum := uint16(v) + uint16(step)
	if sum > uint16(max) {
		return max
	}
	return uint8(sum)
}

func subClamped(v, step, min uint8) uint8 {
	if uint16(v) < uint16(min)+uint16(step) {
		return min
	}
	return v - step
}
