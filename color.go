package vtscreen

import "fmt"

// rgb is an internal helper for palette generation; cells never store one of
// these directly, only the hex string it serializes to.
type rgb struct {
	r, g, b byte
}

// ansiNames maps SGR codes 30-37/40-47 to the canonical named color tokens.
// Index 0 is code 30/40 (black) through index 7 is code 37/47 (white).
var ansiNames = [8]string{
	"black", "red", "green", "brown", "blue", "magenta", "cyan", "white",
}

// aixtermNames maps SGR codes 90-97/100-107 (aixterm bright colors).
var aixtermNames = [8]string{
	"brightblack", "brightred", "brightgreen", "brightbrown",
	"brightblue", "brightmagenta", "brightcyan", "brightwhite",
}

// cube6 holds the per-axis component values for the 6x6x6 color cube that
// makes up palette indices 16-231.
var cube6 = [6]byte{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// palette256 is the full 256-entry indexed color table: a fixed 16-color
// head (pyte's literal xterm-style values, not a generic VGA table), the
// 6x6x6 cube, then 24 grayscale steps. Computed once at package init.
var palette256 = buildPalette256()

func buildPalette256() [256]rgb {
	var p [256]rgb

	// Fixed 16-color head, taken verbatim from pyte's graphics.py
	// _FG_BG_256 table (credited there to Pygments, BSD licensed).
	head := [16]rgb{
		{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
		{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
		{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
		{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
	}
	copy(p[0:16], head[:])

	for i := 0; i < 216; i++ {
		r := cube6[(i/36)%6]
		g := cube6[(i/6)%6]
		b := cube6[i%6]
		p[16+i] = rgb{r, g, b}
	}

	for i := 0; i < 24; i++ {
		v := byte(8 + i*10)
		p[232+i] = rgb{v, v, v}
	}

	return p
}

// paletteHex resolves a 256-color palette index to its lowercase 6-hex-digit
// RGB string. idx is clamped into [0,255].
func paletteHex(idx int) string {
	if idx < 0 {
		idx = 0
	}
	if idx > 255 {
		idx = 255
	}
	c := palette256[idx]
	return rgbHex(c.r, c.g, c.b)
}

// rgbHex formats r,g,b as a lowercase 6-hex-digit string.
func rgbHex(r, g, b byte) string {
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// parseHex parses a lowercase (or uppercase) 6-hex-digit RGB string back
// into components. Returns ok=false on malformed input.
func parseHex(s string) (r, g, b byte, ok bool) {
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	var v [3]byte
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], true
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
