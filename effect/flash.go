package effect

import "libdb.so/ringglow/led"

// Flash toggles the whole ring between two colors on a configurable duty
// cycle. Each Update advances a tick counter; the current phase is where the
// counter sits in the on/off cycle.
type Flash struct {
	numLEDs  int
	color    led.Color
	offColor led.Color
	onTicks  uint8
	offTicks uint8
	counter  uint8
}

var _ Effect = (*Flash)(nil)

// NewFlash creates a flash effect for a ring of numLEDs LEDs.
//
// Defaults: white on-color, black off-color, 4 ticks per phase.
func NewFlash(numLEDs int) (*Flash, error) {
	if err := validateNumLEDs(numLEDs); err != nil {
		return nil, err
	}
	return &Flash{
		numLEDs:  numLEDs,
		color:    led.RGB(255, 255, 255),
		onTicks:  4,
		offTicks: 4,
	}, nil
}

// WithColor sets the on-phase color.
func (f *Flash) WithColor(c led.Color) *Flash {
	f.color = c
	return f
}

// WithOffColor sets the off-phase color.
func (f *Flash) WithOffColor(c led.Color) *Flash {
	f.offColor = c
	return f
}

// WithDuty sets the duty cycle as on/off tick counts. Both must be nonzero.
func (f *Flash) WithDuty(onTicks, offTicks uint8) (*Flash, error) {
	if onTicks == 0 || offTicks == 0 {
		return nil, ErrZeroDuty
	}
	f.onTicks = onTicks
	f.offTicks = offTicks
	return f, nil
}

// NumLEDs returns the ring size this effect is configured for.
func (f *Flash) NumLEDs() int {
	return f.numLEDs
}

// IsOn returns true while the effect is in the on phase.
func (f *Flash) IsOn() bool {
	return f.counter < f.onTicks
}

// Current fills the buffer with the current phase color without advancing
// the tick counter.
func (f *Flash) Current(buffer led.LEDs) error {
	if err := validateBuffer(buffer, f.numLEDs); err != nil {
		return err
	}

	c := f.offColor
	if f.IsOn() {
		c = f.color
	}
	buffer[:f.numLEDs].Fill(c)

	return nil
}

// Update fills the buffer and advances the tick counter by one, wrapping at
// the end of the duty cycle.
func (f *Flash) Update(buffer led.LEDs) error {
	if err := f.Current(buffer); err != nil {
		return err
	}
	cycle := uint16(f.onTicks) + uint16(f.offTicks)
	f.counter = uint8((uint16(f.counter) + 1) % cycle)
	return nil
}

// Reset restarts the cycle at the beginning of the on phase.
func (f *Flash) Reset() {
	f.counter = 0
}
