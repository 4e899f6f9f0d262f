package effect

import "libdb.so/ringglow/led"

// MaxProgress is the maximum progress value accepted by SetProgress, mapping
// to a fully lit ring.
const MaxProgress = 255

// Progress is an externally driven fill indicator. The ring is lit
// proportionally to a progress value between 0 and MaxProgress, with the
// boundary LED blended for sub-LED resolution.
//
// Update and Current render the same frame: there is no internal animation
// to advance, the caller moves the state via SetProgress.
type Progress struct {
	numLEDs    int
	fillColor  led.Color
	emptyColor led.Color
	progress   int
}

var _ Effect = (*Progress)(nil)

// NewProgress creates a progress effect for a ring of numLEDs LEDs.
//
// Defaults: green fill, off (black) empty color, progress 0.
func NewProgress(numLEDs int) (*Progress, error) {
	if err := validateNumLEDs(numLEDs); err != nil {
		return nil, err
	}
	return &Progress{
		numLEDs:   numLEDs,
		fillColor: led.RGB(0, 255, 0),
	}, nil
}

// WithFillColor sets the color of filled LEDs.
func (p *Progress) WithFillColor(c led.Color) *Progress {
	p.fillColor = c
	return p
}

// WithEmptyColor sets the color of unfilled LEDs.
func (p *Progress) WithEmptyColor(c led.Color) *Progress {
	p.emptyColor = c
	return p
}

// SetProgress stores a new target to be rendered on the next Update or
// Current call. The value must lie in 0..MaxProgress.
func (p *Progress) SetProgress(progress int) error {
	if progress < 0 || progress > MaxProgress {
		return &ProgressRangeError{Value: progress}
	}
	p.progress = progress
	return nil
}

// Progress returns the current progress value.
func (p *Progress) Progress() int {
	return p.progress
}

// NumLEDs returns the ring size this effect is configured for.
func (p *Progress) NumLEDs() int {
	return p.numLEDs
}

// Current fills the buffer with the proportional fill for the current
// progress value.
func (p *Progress) Current(buffer led.LEDs) error {
	if err := validateBuffer(buffer, p.numLEDs); err != nil {
		return err
	}

	n := p.numLEDs

	// Scale progress into LED space with sub-LED resolution so the
	// boundary LED can be blended instead of snapping.
	fill := p.progress * n
	fullLEDs := fill / MaxProgress
	fraction := uint8(fill % MaxProgress)

	for i := 0; i < n; i++ {
		switch {
		case i < fullLEDs:
			buffer[i] = p.fillColor
		case i == fullLEDs && fullLEDs < n:
			buffer[i] = led.Lerp(p.emptyColor, p.fillColor, fraction)
		default:
			buffer[i] = p.emptyColor
		}
	}

	return nil
}

// Update renders the current progress. Progress is externally driven, so it
// is the same frame Current produces.
func (p *Progress) Update(buffer led.LEDs) error {
	return p.Current(buffer)
}

// Reset returns the progress to 0.
func (p *Progress) Reset() {
	p.progress = 0
}
