// Package ws2812 implements the WS2812 single-wire bit protocol: GRB color
// packing and the pulse-timing encoding consumed by timing peripherals. It is
// hardware-independent; drivers chunk its output into their own transmit
// buffers.
package ws2812

import (
	"time"

	"libdb.so/ringglow/led"
)

// WS2812 bit timings. A 1 bit is transmitted as a long high followed by a
// short low, a 0 bit as a short high followed by a long low. The datasheet
// tolerates ±150ns on each phase.
const (
	T0H = 350 * time.Nanosecond
	T0L = 800 * time.Nanosecond
	T1H = 700 * time.Nanosecond
	T1L = 600 * time.Nanosecond

	// ResetLatch is the minimum low time after the last pulse of a frame
	// before the strip latches the colors.
	ResetLatch = 280 * time.Microsecond
)

// BitsPerPixel is the number of pulses a single color encodes to.
const BitsPerPixel = 24

// DefaultChunkPulses is the reference transmit buffer capacity, two pixels
// worth of pulses. Drivers should size their chunks to the actual peripheral
// buffer depth instead of assuming this figure.
const DefaultChunkPulses = 2 * BitsPerPixel

// Pulse is the timing of one transmitted bit: how long the line is held high
// followed by how long it is held low.
type Pulse struct {
	High time.Duration
	Low  time.Duration
}

var (
	pulse0 = Pulse{High: T0H, Low: T0L}
	pulse1 = Pulse{High: T1H, Low: T1L}
)

// GRB packs a color into a 24-bit value in WS2812 wire order:
// green in bits 23-16, red in bits 15-8, blue in bits 7-0.
func GRB(c led.Color) uint32 {
	return uint32(c.G())<<16 | uint32(c.R())<<8 | uint32(c.B())
}

// Encode converts a color to its 24 wire pulses, green-red-blue,
// most-significant bit first. It is total: every color encodes, with no
// allocation.
func Encode(c led.Color) [BitsPerPixel]Pulse {
	var pulses [BitsPerPixel]Pulse
	grb := GRB(c)
	for i := 0; i < BitsPerPixel; i++ {
		if grb&(1<<(BitsPerPixel-1-i)) != 0 {
			pulses[i] = pulse1
		} else {
			pulses[i] = pulse0
		}
	}
	return pulses
}

// Encoder lazily yields the pulse sequence for a frame of colors, 24 pulses
// per pixel, without buffering the whole sequence. The caller owns chunking.
type Encoder struct {
	colors led.LEDs
	grb    uint32
	pixel  int
	bit    int
}

// NewEncoder creates an encoder over the given frame. The frame must not be
// mutated while the encoder is in use.
func NewEncoder(colors led.LEDs) *Encoder {
	return &Encoder{colors: colors}
}

// Len returns the total number of pulses the full sequence yields.
func (e *Encoder) Len() int {
	return BitsPerPixel * len(e.colors)
}

// Next returns the next pulse in the sequence. It returns false once the
// sequence is exhausted.
func (e *Encoder) Next() (Pulse, bool) {
	if e.pixel >= len(e.colors) {
		return Pulse{}, false
	}
	if e.bit == 0 {
		e.grb = GRB(e.colors[e.pixel])
	}

	p := pulse0
	if e.grb&(1<<(BitsPerPixel-1-e.bit)) != 0 {
		p = pulse1
	}

	e.bit++
	if e.bit == BitsPerPixel {
		e.bit = 0
		e.pixel++
	}
	return p, true
}
