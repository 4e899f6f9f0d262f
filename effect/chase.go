package effect

import "libdb.so/ringglow/led"

// Chase is a moving segment animation. A solid block of lit LEDs travels
// around the ring at the configured speed; every other LED stays off.
type Chase struct {
	numLEDs       int
	color         led.Color
	position      int
	speed         uint8
	segmentLength uint8
	direction     Direction
}

var _ Effect = (*Chase)(nil)

// NewChase creates a chase effect for a ring of numLEDs LEDs.
//
// Defaults: white, speed 1, segment length 3, clockwise.
func NewChase(numLEDs int) (*Chase, error) {
	if err := validateNumLEDs(numLEDs); err != nil {
		return nil, err
	}
	return &Chase{
		numLEDs:       numLEDs,
		color:         led.RGB(255, 255, 255),
		speed:         1,
		segmentLength: 3,
		direction:     Clockwise,
	}, nil
}

// WithColor sets the segment color.
func (c *Chase) WithColor(color led.Color) *Chase {
	c.color = color
	return c
}

// WithSpeed sets the position increment per update. Speed must be nonzero.
func (c *Chase) WithSpeed(speed uint8) (*Chase, error) {
	if err := validateSpeed(speed); err != nil {
		return nil, err
	}
	c.speed = speed
	return c, nil
}

// WithSegmentLength sets the number of LEDs in the moving segment.
func (c *Chase) WithSegmentLength(segmentLength uint8) *Chase {
	c.segmentLength = segmentLength
	return c
}

// WithDirection sets the movement direction.
func (c *Chase) WithDirection(direction Direction) *Chase {
	c.direction = direction
	return c
}

// NumLEDs returns the ring size this effect is configured for.
func (c *Chase) NumLEDs() int {
	return c.numLEDs
}

// Current fills the buffer with the current chase frame without advancing
// the animation.
func (c *Chase) Current(buffer led.LEDs) error {
	if err := validateBuffer(buffer, c.numLEDs); err != nil {
		return err
	}

	n := c.numLEDs
	buffer[:n].Fill(led.Color{})

	for i := 0; i < int(c.segmentLength); i++ {
		buffer[(c.position+i)%n] = c.color
	}

	return nil
}

// Update fills the buffer with the chase frame and moves the segment by the
// configured speed.
func (c *Chase) Update(buffer led.LEDs) error {
	if err := c.Current(buffer); err != nil {
		return err
	}
	c.position = advancePosition(c.position, c.speed, c.numLEDs, c.direction)
	return nil
}

// Reset returns the segment to position 0.
func (c *Chase) Reset() {
	c.position = 0
}
