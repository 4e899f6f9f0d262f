// Package driver contains the transports that carry rendered frames to a
// physical LED strip. The animation core stays free of I/O; everything here
// sits on the far side of that boundary.
package driver

import (
	"libdb.so/ringglow/led"
	"libdb.so/ringglow/ws2812"
)

// Strip is a transport for full LED frames.
type Strip interface {
	// WriteFrame transmits the given frame. The frame is not retained
	// after the call returns.
	WriteFrame(frame led.LEDs) error
}

// StatusLED is a single-color status sink. Strip drivers implement it by
// filling the whole strip with one color, so application code can depend on
// "set a status color" without caring about the transport underneath.
type StatusLED interface {
	// SetColor sets the LED to the specified color.
	SetColor(c led.Color) error
}

// PulseTransmitter is implemented by timing peripherals that transmit WS2812
// pulse trains directly, such as an RMT channel. Implementations must hold
// the line low for at least ws2812.ResetLatch after the final chunk of a
// frame.
type PulseTransmitter interface {
	// TransmitPulses transmits the given pulses in order. The slice is
	// reused by the caller after the call returns.
	TransmitPulses(pulses []ws2812.Pulse) error
}

// TransmitFrame encodes a frame into WS2812 pulses and hands them to tx in
// fixed-capacity chunks. The chunk buffer lives on the stack, so a frame of
// any length transmits without heap allocation.
func TransmitFrame(tx PulseTransmitter, frame led.LEDs) error {
	var chunk [ws2812.DefaultChunkPulses]ws2812.Pulse
	n := 0

	enc := ws2812.NewEncoder(frame)
	for {
		p, ok := enc.Next()
		if !ok {
			break
		}
		chunk[n] = p
		n++
		if n == len(chunk) {
			if err := tx.TransmitPulses(chunk[:n]); err != nil {
				return err
			}
			n = 0
		}
	}

	if n > 0 {
		return tx.TransmitPulses(chunk[:n])
	}
	return nil
}
