package ringglow_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdb.so/ringglow"
	"libdb.so/ringglow/effect"
	"libdb.so/ringglow/led"
)

func TestParseConfig(t *testing.T) {
	const config = `
device = "/dev/ttyACM0"
baud = 1500000
rate = 60
num_leds = 24

[effect.spinner]
color = "#ff8000"
speed = 2
tail_length = 5
direction = "counter-clockwise"
`

	cfg, err := ringglow.ParseConfig(strings.NewReader(config))
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 1500000, cfg.Baud)
	assert.Equal(t, 60, cfg.Rate)
	assert.Equal(t, 24, cfg.NumLEDs)

	require.NotNil(t, cfg.Effect.Spinner)
	require.NotNil(t, cfg.Effect.Spinner.Color)
	assert.Equal(t, led.RGB(0xFF, 0x80, 0x00), *cfg.Effect.Spinner.Color)
	assert.Equal(t, uint8(2), cfg.Effect.Spinner.Speed)
	require.NotNil(t, cfg.Effect.Spinner.TailLength)
	assert.Equal(t, uint8(5), *cfg.Effect.Spinner.TailLength)

	require.NoError(t, cfg.Validate())
}

func TestParseConfigBadColor(t *testing.T) {
	const config = `
rate = 30
num_leds = 12

[effect.pulse]
color = "bright red"
`

	_, err := ringglow.ParseConfig(strings.NewReader(config))
	assert.Error(t, err)
}

func TestParseConfigBadDirection(t *testing.T) {
	const config = `
rate = 30
num_leds = 12

[effect.rainbow]
direction = "widdershins"
`

	_, err := ringglow.ParseConfig(strings.NewReader(config))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	base := func() *ringglow.Config {
		return &ringglow.Config{
			Device:  "/dev/ttyUSB0",
			Baud:    115200,
			Rate:    30,
			NumLEDs: 12,
			Effect: ringglow.EffectConfig{
				Rainbow: &ringglow.RainbowConfig{},
			},
		}
	}

	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("no LEDs", func(t *testing.T) {
		cfg := base()
		cfg.NumLEDs = 0
		assert.ErrorContains(t, cfg.Validate(), "no LEDs")
	})

	t.Run("bad rate", func(t *testing.T) {
		cfg := base()
		cfg.Rate = 0
		assert.ErrorContains(t, cfg.Validate(), "rate")
	})

	t.Run("no transport", func(t *testing.T) {
		cfg := base()
		cfg.Device = ""
		assert.ErrorContains(t, cfg.Validate(), "device and spi")
	})

	t.Run("both transports", func(t *testing.T) {
		cfg := base()
		cfg.SPI = "SPI0.0"
		assert.ErrorContains(t, cfg.Validate(), "device and spi")
	})

	t.Run("bad baud", func(t *testing.T) {
		cfg := base()
		cfg.Baud = 0
		assert.ErrorContains(t, cfg.Validate(), "baud")
	})

	t.Run("SPI needs no baud", func(t *testing.T) {
		cfg := base()
		cfg.Device = ""
		cfg.Baud = 0
		cfg.SPI = "SPI0.0"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("no effect", func(t *testing.T) {
		cfg := base()
		cfg.Effect = ringglow.EffectConfig{}
		assert.ErrorContains(t, cfg.Validate(), "no effect")
	})

	t.Run("two effects", func(t *testing.T) {
		cfg := base()
		cfg.Effect.Pulse = &ringglow.PulseConfig{}
		assert.ErrorContains(t, cfg.Validate(), "more than one effect")
	})

	t.Run("bad effect config", func(t *testing.T) {
		cfg := base()
		cfg.NumLEDs = effect.MaxLEDs + 1
		var tooMany *effect.TooManyLEDsError
		assert.ErrorAs(t, cfg.Validate(), &tooMany)
	})
}

func TestEffectConfigBuild(t *testing.T) {
	t.Run("rainbow", func(t *testing.T) {
		cfg := ringglow.EffectConfig{
			Rainbow: &ringglow.RainbowConfig{
				Speed:      3,
				Brightness: 128,
				Direction:  "counter-clockwise",
			},
		}
		eff, err := cfg.Build(16)
		require.NoError(t, err)
		require.IsType(t, (*effect.Rainbow)(nil), eff)
	})

	t.Run("pulse range", func(t *testing.T) {
		cfg := ringglow.EffectConfig{
			Pulse: &ringglow.PulseConfig{Min: 10, Max: 200, Step: 4},
		}
		eff, err := cfg.Build(16)
		require.NoError(t, err)

		p := eff.(*effect.Pulse)
		assert.Equal(t, uint8(10), p.Brightness())
	})

	t.Run("pulse bad range", func(t *testing.T) {
		cfg := ringglow.EffectConfig{
			Pulse: &ringglow.PulseConfig{Min: 200, Max: 10, Step: 4},
		}
		_, err := cfg.Build(16)
		var rangeErr *effect.BrightnessRangeError
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("progress initial value", func(t *testing.T) {
		cfg := ringglow.EffectConfig{
			Progress: &ringglow.ProgressConfig{Value: 128},
		}
		eff, err := cfg.Build(16)
		require.NoError(t, err)

		frame := led.NewLEDs(16)
		require.NoError(t, eff.Current(frame))
		assert.False(t, frame[0].IsOff())
		assert.True(t, frame[15].IsOff())
	})

	t.Run("progress bad value", func(t *testing.T) {
		cfg := ringglow.EffectConfig{
			Progress: &ringglow.ProgressConfig{Value: 300},
		}
		_, err := cfg.Build(16)
		var rangeErr *effect.ProgressRangeError
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("flash duty", func(t *testing.T) {
		cfg := ringglow.EffectConfig{
			Flash: &ringglow.FlashConfig{OnTicks: 2},
		}
		_, err := cfg.Build(16)
		assert.ErrorIs(t, err, effect.ErrZeroDuty)
	})

	t.Run("sections", func(t *testing.T) {
		cfg := ringglow.EffectConfig{
			Sections: &ringglow.SectionsConfig{
				Sections: []ringglow.SectionConfig{
					{Color: led.RGB(0xFF, 0, 0), Weight: 1},
					{Color: led.RGB(0, 0xFF, 0), Weight: 1},
				},
			},
		}
		eff, err := cfg.Build(8)
		require.NoError(t, err)

		frame := led.NewLEDs(8)
		require.NoError(t, eff.Current(frame))
		assert.Equal(t, led.RGB(0xFF, 0, 0), frame[0])
		assert.Equal(t, led.RGB(0, 0xFF, 0), frame[7])
	})
}
