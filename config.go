package ringglow

import (
	"encoding"
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"libdb.so/ringglow/effect"
	"libdb.so/ringglow/led"
)

// Config is the configuration for the ringglow daemon.
type Config struct {
	// Device is the serial device the strip bridge is attached to.
	// This is usually /dev/ttyUSB0 or /dev/ttyACM0.
	Device string `toml:"device,omitempty"`
	// Baud is the baud rate for the serial connection.
	Baud int `toml:"baud,omitempty"`
	// SPI is the SPI port name the strip is wired to. Set either Device
	// or SPI, not both.
	SPI string `toml:"spi,omitempty"`
	// Rate is the refresh rate for the LEDs in frames per second.
	Rate int `toml:"rate"`
	// NumLEDs is the number of LEDs in the ring.
	NumLEDs int `toml:"num_leds"`
	// Effect selects and configures the animation.
	Effect EffectConfig `toml:"effect"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.NumLEDs <= 0 {
		return errors.New("no LEDs configured")
	}
	if c.Rate <= 0 {
		return errors.New("refresh rate must be positive")
	}

	if (c.Device == "") == (c.SPI == "") {
		return errors.New("exactly one of device and spi must be set")
	}
	if c.Device != "" && c.Baud <= 0 {
		return errors.New("baud rate must be positive")
	}

	// Building catches every per-effect configuration error up front, so
	// the daemon never starts with a half-valid animation.
	if _, err := c.Effect.Build(c.NumLEDs); err != nil {
		return errors.Wrap(err, "invalid effect")
	}

	return nil
}

// EffectConfig selects one animation. Exactly one field must be set.
type EffectConfig struct {
	Rainbow  *RainbowConfig  `toml:"rainbow,omitempty"`
	Pulse    *PulseConfig    `toml:"pulse,omitempty"`
	Spinner  *SpinnerConfig  `toml:"spinner,omitempty"`
	Progress *ProgressConfig `toml:"progress,omitempty"`
	Chase    *ChaseConfig    `toml:"chase,omitempty"`
	Flash    *FlashConfig    `toml:"flash,omitempty"`
	Sections *SectionsConfig `toml:"sections,omitempty"`
}

// Build constructs the configured effect for a ring of numLEDs LEDs.
func (c EffectConfig) Build(numLEDs int) (effect.Effect, error) {
	var build func(int) (effect.Effect, error)
	var n int

	if c.Rainbow != nil {
		build = c.Rainbow.build
		n++
	}
	if c.Pulse != nil {
		build = c.Pulse.build
		n++
	}
	if c.Spinner != nil {
		build = c.Spinner.build
		n++
	}
	if c.Progress != nil {
		build = c.Progress.build
		n++
	}
	if c.Chase != nil {
		build = c.Chase.build
		n++
	}
	if c.Flash != nil {
		build = c.Flash.build
		n++
	}
	if c.Sections != nil {
		build = c.Sections.build
		n++
	}

	switch n {
	case 0:
		return nil, errors.New("no effect configured")
	case 1:
		return build(numLEDs)
	default:
		return nil, errors.New("more than one effect configured")
	}
}

// RainbowConfig configures the rainbow animation. Zero values keep the
// effect's defaults.
type RainbowConfig struct {
	Speed      uint8           `toml:"speed,omitempty"`
	Brightness uint8           `toml:"brightness,omitempty"`
	Saturation uint8           `toml:"saturation,omitempty"`
	Direction  DirectionConfig `toml:"direction,omitempty"`
}

func (c *RainbowConfig) build(numLEDs int) (effect.Effect, error) {
	r, err := effect.NewRainbow(numLEDs)
	if err != nil {
		return nil, err
	}
	if c.Speed != 0 {
		if _, err := r.WithSpeed(c.Speed); err != nil {
			return nil, err
		}
	}
	if c.Brightness != 0 {
		r.WithBrightness(c.Brightness)
	}
	if c.Saturation != 0 {
		r.WithSaturation(c.Saturation)
	}
	return r.WithDirection(c.Direction.direction()), nil
}

// PulseConfig configures the breathing animation.
type PulseConfig struct {
	Color *led.Color `toml:"color,omitempty"`
	// Min, Max and Step configure the brightness oscillation. They are
	// applied together when Max is set.
	Min  uint8 `toml:"min,omitempty"`
	Max  uint8 `toml:"max,omitempty"`
	Step uint8 `toml:"step,omitempty"`
}

func (c *PulseConfig) build(numLEDs int) (effect.Effect, error) {
	p, err := effect.NewPulse(numLEDs)
	if err != nil {
		return nil, err
	}
	if c.Color != nil {
		p.WithColor(*c.Color)
	}
	if c.Max != 0 {
		if _, err := p.WithRange(c.Min, c.Max, c.Step); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SpinnerConfig configures the rotating arc animation.
type SpinnerConfig struct {
	Color      *led.Color      `toml:"color,omitempty"`
	Speed      uint8           `toml:"speed,omitempty"`
	TailLength *uint8          `toml:"tail_length,omitempty"`
	Direction  DirectionConfig `toml:"direction,omitempty"`
}

func (c *SpinnerConfig) build(numLEDs int) (effect.Effect, error) {
	s, err := effect.NewSpinner(numLEDs)
	if err != nil {
		return nil, err
	}
	if c.Color != nil {
		s.WithColor(*c.Color)
	}
	if c.Speed != 0 {
		if _, err := s.WithSpeed(c.Speed); err != nil {
			return nil, err
		}
	}
	if c.TailLength != nil {
		s.WithTailLength(*c.TailLength)
	}
	return s.WithDirection(c.Direction.direction()), nil
}

// ProgressConfig configures the progress indicator.
type ProgressConfig struct {
	FillColor  *led.Color `toml:"fill_color,omitempty"`
	EmptyColor *led.Color `toml:"empty_color,omitempty"`
	// Value is the initial progress, 0..255.
	Value int `toml:"value,omitempty"`
}

func (c *ProgressConfig) build(numLEDs int) (effect.Effect, error) {
	p, err := effect.NewProgress(numLEDs)
	if err != nil {
		return nil, err
	}
	if c.FillColor != nil {
		p.WithFillColor(*c.FillColor)
	}
	if c.EmptyColor != nil {
		p.WithEmptyColor(*c.EmptyColor)
	}
	if err := p.SetProgress(c.Value); err != nil {
		return nil, err
	}
	return p, nil
}

// ChaseConfig configures the moving segment animation.
type ChaseConfig struct {
	Color         *led.Color      `toml:"color,omitempty"`
	Speed         uint8           `toml:"speed,omitempty"`
	SegmentLength *uint8          `toml:"segment_length,omitempty"`
	Direction     DirectionConfig `toml:"direction,omitempty"`
}

func (c *ChaseConfig) build(numLEDs int) (effect.Effect, error) {
	ch, err := effect.NewChase(numLEDs)
	if err != nil {
		return nil, err
	}
	if c.Color != nil {
		ch.WithColor(*c.Color)
	}
	if c.Speed != 0 {
		if _, err := ch.WithSpeed(c.Speed); err != nil {
			return nil, err
		}
	}
	if c.SegmentLength != nil {
		ch.WithSegmentLength(*c.SegmentLength)
	}
	return ch.WithDirection(c.Direction.direction()), nil
}

// FlashConfig configures the duty-cycled flash animation.
type FlashConfig struct {
	Color    *led.Color `toml:"color,omitempty"`
	OffColor *led.Color `toml:"off_color,omitempty"`
	OnTicks  uint8      `toml:"on_ticks,omitempty"`
	OffTicks uint8      `toml:"off_ticks,omitempty"`
}

func (c *FlashConfig) build(numLEDs int) (effect.Effect, error) {
	f, err := effect.NewFlash(numLEDs)
	if err != nil {
		return nil, err
	}
	if c.Color != nil {
		f.WithColor(*c.Color)
	}
	if c.OffColor != nil {
		f.WithOffColor(*c.OffColor)
	}
	if c.OnTicks != 0 || c.OffTicks != 0 {
		if _, err := f.WithDuty(c.OnTicks, c.OffTicks); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// SectionsConfig configures the weighted section display.
type SectionsConfig struct {
	Sections []SectionConfig `toml:"section"`
}

// SectionConfig is a single weighted section. A zero weight across all
// sections divides the ring equally.
type SectionConfig struct {
	Color  led.Color `toml:"color"`
	Weight uint8     `toml:"weight,omitempty"`
}

func (c *SectionsConfig) build(numLEDs int) (effect.Effect, error) {
	s, err := effect.NewSection(numLEDs)
	if err != nil {
		return nil, err
	}
	sections := make([]effect.WeightedPalette, len(c.Sections))
	for i, sc := range c.Sections {
		sections[i] = effect.WeightedPalette{
			Palette: effect.Mono(sc.Color),
			Weight:  sc.Weight,
		}
	}
	if err := s.SetSections(sections); err != nil {
		return nil, err
	}
	return s, nil
}

// DirectionConfig is a rotation direction that can be parsed from TOML.
// The empty string means clockwise.
type DirectionConfig string

var (
	_ encoding.TextUnmarshaler = (*DirectionConfig)(nil)
	_ encoding.TextMarshaler   = DirectionConfig("")
)

func (d *DirectionConfig) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "", "clockwise", "counter-clockwise":
		*d = DirectionConfig(s)
		return nil
	default:
		return errors.Errorf("unknown direction %q", s)
	}
}

func (d DirectionConfig) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

func (d DirectionConfig) direction() effect.Direction {
	if d == "counter-clockwise" {
		return effect.CounterClockwise
	}
	return effect.Clockwise
}

// ParseConfig parses a configuration from a reader.
func ParseConfig(r io.Reader) (*Config, error) {
	var config Config
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
