package effect

import (
	"fmt"

	"libdb.so/ringglow/led"
)

// MaxSections is the maximum number of sections supported by Section.
const MaxSections = 8

// TooManySectionsError is returned by SetSections when more than MaxSections
// sections are supplied.
type TooManySectionsError struct {
	Requested int
	Max       int
}

func (e *TooManySectionsError) Error() string {
	return fmt.Sprintf("too many sections: requested %d, maximum supported is %d", e.Requested, e.Max)
}

// Palette is a three-color theme for section rendering. Only Primary is used
// for rendering today; Secondary and Accent are reserved for gradient or
// alternating modes.
type Palette struct {
	Primary   led.Color
	Secondary led.Color
	Accent    led.Color
}

// Mono creates a palette with all three colors set to c.
func Mono(c led.Color) Palette {
	return Palette{Primary: c, Secondary: c, Accent: c}
}

// WeightedPalette pairs a palette with a proportional weight.
type WeightedPalette struct {
	Palette Palette
	Weight  uint8
}

// Section divides the ring into weighted color sections. Like Progress it is
// externally driven: Update renders the current state without advancing any
// animation.
type Section struct {
	numLEDs  int
	sections [MaxSections]WeightedPalette
	count    int
}

var _ Effect = (*Section)(nil)

// NewSection creates a section effect for a ring of numLEDs LEDs. It starts
// with no sections, so the ring renders dark.
func NewSection(numLEDs int) (*Section, error) {
	if err := validateNumLEDs(numLEDs); err != nil {
		return nil, err
	}
	return &Section{numLEDs: numLEDs}, nil
}

// SetSections replaces the active sections. Weights determine the
// proportional LED distribution; if all weights are zero the sections are
// treated as equal weight. The last section absorbs the rounding remainder.
func (s *Section) SetSections(sections []WeightedPalette) error {
	if len(sections) > MaxSections {
		return &TooManySectionsError{Requested: len(sections), Max: MaxSections}
	}
	copy(s.sections[:], sections)
	s.count = len(sections)
	return nil
}

// Clear removes all sections. The ring goes dark on the next render.
func (s *Section) Clear() {
	s.count = 0
}

// Count returns the number of active sections.
func (s *Section) Count() int {
	return s.count
}

// NumLEDs returns the ring size this effect is configured for.
func (s *Section) NumLEDs() int {
	return s.numLEDs
}

// Current fills the buffer with the current section layout.
func (s *Section) Current(buffer led.LEDs) error {
	if err := validateBuffer(buffer, s.numLEDs); err != nil {
		return err
	}

	if s.count == 0 {
		buffer[:s.numLEDs].Fill(led.Color{})
		return nil
	}

	var totalWeight int
	for _, ws := range s.sections[:s.count] {
		totalWeight += int(ws.Weight)
	}

	ledIdx := 0
	for i, ws := range s.sections[:s.count] {
		var sectionLEDs int
		switch {
		case i == s.count-1:
			// Last section absorbs the rounding remainder.
			sectionLEDs = s.numLEDs - ledIdx
		case totalWeight == 0:
			sectionLEDs = s.numLEDs / s.count
		default:
			sectionLEDs = int(ws.Weight) * s.numLEDs / totalWeight
		}

		buffer.SetRange(ledIdx, ledIdx+sectionLEDs, ws.Palette.Primary)
		ledIdx += sectionLEDs
	}

	return nil
}

// Update renders the current sections. Sections are externally driven, so it
// is the same frame Current produces.
func (s *Section) Update(buffer led.LEDs) error {
	return s.Current(buffer)
}

// Reset clears all sections.
func (s *Section) Reset() {
	s.Clear()
}
