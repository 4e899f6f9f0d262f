package driver

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	"libdb.so/ringglow/led"
)

// DefaultSPIFreq is the SPI clock used to approximate WS2812 NRZ timing.
// Each WS2812 bit is stretched into several SPI bits, so the clock runs well
// above the 800kHz symbol rate.
const DefaultSPIFreq = 2500 * physic.KiloHertz

// SPI drives a strip wired to an SPI MOSI pin, using the NRZ encoding from
// periph.io's nrzled device.
type SPI struct {
	dev     *nrzled.Dev
	closer  spi.PortCloser
	numLEDs int
}

var (
	_ Strip     = (*SPI)(nil)
	_ StatusLED = (*SPI)(nil)
)

// OpenSPI initializes the host, opens the SPI port registry entry (an empty
// name selects the first available port) and binds a WS2812 strip of numLEDs
// pixels to it.
func OpenSPI(port string, numLEDs int) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize periph host")
	}

	p, err := spireg.Open(port)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SPI port")
	}

	s, err := NewSPI(p, numLEDs)
	if err != nil {
		p.Close()
		return nil, err
	}
	s.closer = p
	return s, nil
}

// NewSPI binds a strip of numLEDs pixels to an already-open SPI port.
func NewSPI(port spi.Port, numLEDs int) (*SPI, error) {
	dev, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: numLEDs,
		Channels:  3,
		Freq:      DefaultSPIFreq,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create nrzled device")
	}

	return &SPI{dev: dev, numLEDs: numLEDs}, nil
}

// WriteFrame transmits the frame as raw RGB pixels; the nrzled device
// performs the GRB reorder and NRZ expansion.
func (s *SPI) WriteFrame(frame led.LEDs) error {
	if _, err := s.dev.Write(frame.AsPixels()); err != nil {
		return errors.Wrap(err, "failed to write frame")
	}
	return nil
}

// SetColor fills the whole strip with a single color.
func (s *SPI) SetColor(c led.Color) error {
	frame := led.NewLEDs(s.numLEDs)
	frame.Fill(c)
	return s.WriteFrame(frame)
}

// Close halts the strip and releases the SPI port if this driver opened it.
func (s *SPI) Close() error {
	if err := s.dev.Halt(); err != nil {
		return errors.Wrap(err, "failed to halt strip")
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
