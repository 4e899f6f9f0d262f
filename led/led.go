// Package led provides the color and pixel buffer primitives shared by the
// effect engine and the strip drivers.
package led

import (
	"encoding"
	"fmt"
	"io"
	"unsafe"
)

// Color is an 8-bit RGB color. It is stored as [r, g, b].
type Color [3]uint8

// RGB creates a color from its red, green and blue channels.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// R returns the red channel.
func (c Color) R() uint8 { return c[0] }

// G returns the green channel.
func (c Color) G() uint8 { return c[1] }

// B returns the blue channel.
func (c Color) B() uint8 { return c[2] }

// IsOff returns true if all channels are zero.
func (c Color) IsOff() bool {
	return c == Color{}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

var (
	_ encoding.TextUnmarshaler = (*Color)(nil)
	_ encoding.TextMarshaler   = (*Color)(nil)
)

// UnmarshalText parses a color in "#rrggbb" form.
func (c *Color) UnmarshalText(text []byte) error {
	var r, g, b uint8
	if _, err := fmt.Sscanf(string(text), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	*c = Color{r, g, b}
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Scale scales every channel of c by brightness, where 255 keeps the color
// unchanged and 0 turns it off.
func Scale(c Color, brightness uint8) Color {
	b := uint16(brightness)
	return Color{
		uint8(uint16(c[0]) * b / 255),
		uint8(uint16(c[1]) * b / 255),
		uint8(uint16(c[2]) * b / 255),
	}
}

// Lerp linearly interpolates between a and b. t ranges from 0 (returns a) to
// 255 (returns b).
func Lerp(a, b Color, t uint8) Color {
	t16 := uint16(t)
	inv := 255 - t16
	return Color{
		uint8((uint16(a[0])*inv + uint16(b[0])*t16) / 255),
		uint8((uint16(a[1])*inv + uint16(b[1])*t16) / 255),
		uint8((uint16(a[2])*inv + uint16(b[2])*t16) / 255),
	}
}

// LEDs describes a strip of LEDs. It is a preallocated slice of Color.
type LEDs []Color

// NewLEDs creates a new strip of LEDs. Colors are initialized to black (off).
func NewLEDs(numLEDs int) LEDs {
	return make(LEDs, numLEDs)
}

// WriteTo implements io.WriterTo. It writes the LED strip to the given writer
// as a series of Color values.
func (l LEDs) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, c := range l {
		n, err := w.Write(c[:])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// AsPixels returns the LED strip as a slice of uint8 values. Each LED is
// represented by three values, one for each color channel.
func (l LEDs) AsPixels() []uint8 {
	if len(l) == 0 {
		return nil
	}
	return unsafe.Slice((*uint8)(unsafe.Pointer(&l[0])), 3*len(l))
}

// Set sets the color of the LED at the given index.
func (l LEDs) Set(i int, c Color) {
	l[i] = c
}

// SetRange sets the color of the LEDs in the given range.
func (l LEDs) SetRange(start, end int, c Color) {
	for i := start; i < end; i++ {
		l[i] = c
	}
}

// Fill sets every LED in the strip to the given color.
func (l LEDs) Fill(c Color) {
	for i := range l {
		l[i] = c
	}
}

// Draw draws the given LEDs into the strip at the given index.
// It stops when either l or other is exhausted and returns the number of LEDs
// written.
func (l LEDs) Draw(start int, other LEDs) int {
	for i := range other {
		if start+i >= len(l) {
			return i
		}
		l[start+i] = other[i]
	}
	return len(other)
}
