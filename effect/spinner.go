package effect

import "libdb.so/ringglow/led"

// Spinner is a rotating arc animation. A bright head LED travels around the
// ring followed by a tail of linearly fading LEDs; together they form a
// contiguous lit arc that rotates by the configured speed per tick.
type Spinner struct {
	numLEDs    int
	color      led.Color
	position   int
	speed      uint8
	tailLength uint8
	direction  Direction
}

var _ Effect = (*Spinner)(nil)

// NewSpinner creates a spinner effect for a ring of numLEDs LEDs.
//
// Defaults: white, speed 1, tail length 2, clockwise.
func NewSpinner(numLEDs int) (*Spinner, error) {
	if err := validateNumLEDs(numLEDs); err != nil {
		return nil, err
	}
	return &Spinner{
		numLEDs:    numLEDs,
		color:      led.RGB(255, 255, 255),
		speed:      1,
		tailLength: 2,
		direction:  Clockwise,
	}, nil
}

// WithColor sets the arc color.
func (s *Spinner) WithColor(c led.Color) *Spinner {
	s.color = c
	return s
}

// WithSpeed sets the position increment per update. Speed must be nonzero.
func (s *Spinner) WithSpeed(speed uint8) (*Spinner, error) {
	if err := validateSpeed(speed); err != nil {
		return nil, err
	}
	s.speed = speed
	return s, nil
}

// WithTailLength sets the number of fading LEDs behind the head.
func (s *Spinner) WithTailLength(tailLength uint8) *Spinner {
	s.tailLength = tailLength
	return s
}

// WithDirection sets the rotation direction.
func (s *Spinner) WithDirection(direction Direction) *Spinner {
	s.direction = direction
	return s
}

// NumLEDs returns the ring size this effect is configured for.
func (s *Spinner) NumLEDs() int {
	return s.numLEDs
}

// Position returns the head position on the ring.
func (s *Spinner) Position() int {
	return s.position
}

// Current fills the buffer with the current spinner frame without advancing
// the animation.
func (s *Spinner) Current(buffer led.LEDs) error {
	if err := validateBuffer(buffer, s.numLEDs); err != nil {
		return err
	}

	n := s.numLEDs
	head := s.position % n

	buffer[:n].Fill(led.Color{})
	buffer[head] = s.color

	// Tail fades linearly away from the head.
	total := int(s.tailLength) + 1
	for i := 1; i <= int(s.tailLength); i++ {
		var tailIdx int
		switch s.direction {
		case CounterClockwise:
			tailIdx = (head + i) % n
		default:
			tailIdx = (head + n - i) % n
		}
		brightness := uint8(255 * (total - i) / total)
		buffer[tailIdx] = led.Scale(s.color, brightness)
	}

	return nil
}

// Update fills the buffer with the spinner frame and rotates the arc by the
// configured speed.
func (s *Spinner) Update(buffer led.LEDs) error {
	if err := s.Current(buffer); err != nil {
		return err
	}
	s.position = advancePosition(s.position, s.speed, s.numLEDs, s.direction)
	return nil
}

// Reset returns the head to position 0.
func (s *Spinner) Reset() {
	s.position = 0
}
