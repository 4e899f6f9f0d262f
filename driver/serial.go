package driver

import (
	"github.com/pkg/errors"
	"go.bug.st/serial"

	"libdb.so/ringglow/led"
	"libdb.so/ringglow/ws2812"
)

// Serial drives a strip through a serial bridge (an MCU that shifts received
// bytes straight onto the data line). Frames are streamed as raw GRB bytes,
// one triplet per pixel, matching the wire order the bridge forwards.
type Serial struct {
	port    serial.Port
	buf     []byte
	numLEDs int
}

var (
	_ Strip     = (*Serial)(nil)
	_ StatusLED = (*Serial)(nil)
)

// OpenSerial opens the serial device and prepares a transmit buffer for
// frames of numLEDs pixels.
func OpenSerial(device string, baud, numLEDs int) (*Serial, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open serial port")
	}
	return NewSerial(port, numLEDs), nil
}

// NewSerial wraps an already-open serial port.
func NewSerial(port serial.Port, numLEDs int) *Serial {
	return &Serial{
		port:    port,
		buf:     make([]byte, 0, 3*numLEDs),
		numLEDs: numLEDs,
	}
}

// WriteFrame streams the frame to the bridge in GRB order.
func (s *Serial) WriteFrame(frame led.LEDs) error {
	s.buf = s.buf[:0]
	for _, c := range frame {
		grb := ws2812.GRB(c)
		s.buf = append(s.buf, byte(grb>>16), byte(grb>>8), byte(grb))
	}

	if _, err := s.port.Write(s.buf); err != nil {
		return errors.Wrap(err, "failed to write frame")
	}
	return nil
}

// SetColor fills the whole strip with a single color.
func (s *Serial) SetColor(c led.Color) error {
	frame := led.NewLEDs(s.numLEDs)
	frame.Fill(c)
	return s.WriteFrame(frame)
}

// Close closes the underlying port.
func (s *Serial) Close() error {
	return s.port.Close()
}
