package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteHeadMatchesPyteLiteralValues(t *testing.T) {
	assert.Equal(t, "000000", paletteHex(0))
	assert.Equal(t, "cd0000", paletteHex(1), "index 1 is pyte's literal dark red")
	assert.Equal(t, "5c5cff", paletteHex(12), "index 12 is pyte's literal bright-ish blue, not a generic VGA value")
	assert.Equal(t, "ffffff", paletteHex(15))
}

func TestPaletteCubeAndGrayscale(t *testing.T) {
	assert.Equal(t, rgbHex(0, 0, 0), paletteHex(16))
	assert.Equal(t, rgbHex(0xff, 0xff, 0xff), paletteHex(231))
	assert.Equal(t, rgbHex(8, 8, 8), paletteHex(232))
	assert.Equal(t, rgbHex(238, 238, 238), paletteHex(255))
}

func TestPaletteHexClampsOutOfRange(t *testing.T) {
	assert.Equal(t, paletteHex(0), paletteHex(-5))
	assert.Equal(t, paletteHex(255), paletteHex(999))
}

func TestRGBHexRoundTrip(t *testing.T) {
	hex := rgbHex(0x1a, 0x2b, 0x3c)
	assert.Equal(t, "1a2b3c", hex)
	r, g, b, ok := parseHex(hex)
	assert.True(t, ok)
	assert.Equal(t, byte(0x1a), r)
	assert.Equal(t, byte(0x2b), g)
	assert.Equal(t, byte(0x3c), b)
}

func TestParseHexRejectsMalformed(t *testing.T) {
	_, _, _, ok := parseHex("zzzzzz")
	assert.False(t, ok)
	_, _, _, ok = parseHex("abc")
	assert.False(t, ok)
}
