// Package ringglow drives WS2812 LED rings. The animation core under
// effect/ and ws2812/ is sans-I/O; this package is the glue that ticks a
// configured effect at a fixed rate and forwards every rendered frame to a
// strip driver.
package ringglow

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"libdb.so/ringglow/driver"
	"libdb.so/ringglow/effect"
	"libdb.so/ringglow/led"
)

// Daemon is the main ringglow daemon. It owns the effect state and the frame
// buffer; the strip driver only ever sees fully rendered frames.
type Daemon struct {
	cfg    *Config
	logger *slog.Logger
	eff    effect.Effect
	frame  led.LEDs
}

// NewDaemon creates a new ringglow daemon.
func NewDaemon(cfg *Config, logger *slog.Logger) (*Daemon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	eff, err := cfg.Effect.Build(cfg.NumLEDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build effect")
	}

	return &Daemon{
		cfg:    cfg,
		logger: logger,
		eff:    eff,
		frame:  led.NewLEDs(cfg.NumLEDs),
	}, nil
}

// Effect returns the daemon's effect instance. Externally driven effects
// (progress, sections) are steered through it between frames.
func (d *Daemon) Effect() effect.Effect {
	return d.eff
}

// Run opens the configured strip transport and blocks driving the animation
// until the given context is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	strip, err := d.openStrip()
	if err != nil {
		return err
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		<-ctx.Done()
		d.logger.Debug("closing strip")
		if err := strip.Close(); err != nil {
			return errors.Wrap(err, "failed to close strip")
		}
		return ctx.Err()
	})
	errg.Go(func() error {
		return d.RunStrip(ctx, strip)
	})

	return errg.Wait()
}

// RunStrip drives the animation loop against an already-open strip. It
// blocks until the given context is canceled.
func (d *Daemon) RunStrip(ctx context.Context, strip driver.Strip) error {
	frameTicker := time.NewTicker(time.Second / time.Duration(d.cfg.Rate))
	defer frameTicker.Stop()

	d.logger.Debug(
		"starting animation loop",
		"num_leds", d.cfg.NumLEDs,
		"rate", d.cfg.Rate)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-frameTicker.C:
			// Update never fails here: the frame buffer was sized
			// from the same config the effect was built with.
			if err := d.eff.Update(d.frame); err != nil {
				return errors.Wrap(err, "failed to render frame")
			}
			if err := strip.WriteFrame(d.frame); err != nil {
				return errors.Wrap(err, "failed to write frame")
			}
		}
	}
}

type stripCloser interface {
	driver.Strip
	io.Closer
}

func (d *Daemon) openStrip() (stripCloser, error) {
	if d.cfg.Device != "" {
		d.logger.Debug(
			"opening serial strip",
			"device", d.cfg.Device,
			"baud", d.cfg.Baud)
		return driver.OpenSerial(d.cfg.Device, d.cfg.Baud, d.cfg.NumLEDs)
	}

	port := d.cfg.SPI
	if port == "auto" {
		port = ""
	}
	d.logger.Debug("opening SPI strip", "port", port)
	return driver.OpenSPI(port, d.cfg.NumLEDs)
}
