package led

// HSVToRGB converts an HSV color to RGB using integer-only arithmetic.
//
// Hue wraps around the 8-bit range (0 = red, 85 ≈ green, 170 ≈ blue).
// Saturation 0 produces grayscale, value 0 produces black. The conversion is
// total: every input maps to a color.
func HSVToRGB(hue, saturation, value uint8) Color {
	if saturation == 0 {
		return Color{value, value, value}
	}

	// Scale hue into six sectors of 256 steps each.
	h := uint16(hue) * 6
	sector := uint8(h >> 8)
	fraction := uint8(h & 0xFF)

	s := uint16(saturation)
	v := uint16(value)

	p := uint8(v * (255 - s) / 255)
	q := uint8(v * (255 - s*uint16(fraction)/255) / 255)
	t := uint8(v * (255 - s*uint16(255-fraction)/255) / 255)

	switch sector {
	case 0:
		return Color{value, t, p} // red to yellow
	case 1:
		return Color{q, value, p} // yellow to green
	case 2:
		return Color{p, value, t} // green to cyan
	case 3:
		return Color{p, q, value} // cyan to blue
	case 4:
		return Color{t, p, value} // blue to magenta
	default:
		return Color{value, p, q} // magenta to red
	}
}
