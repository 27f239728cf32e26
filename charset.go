package vtscreen

// charsetTable is a 256-entry code-point substitution map, applied only to
// bytes in 0x00..0xFF before grapheme segmentation.
type charsetTable [256]rune

// identityCharset returns a table that maps every byte to itself: LAT1 and
// the other non-line-drawing designations the core ships by default.
func identityCharset() charsetTable {
	var t charsetTable
	for i := range t {
		t[i] = rune(i)
	}
	return t
}

// vt100Charset is the DEC Special Graphics table selected by `ESC ( 0` /
// `ESC ) 0`: it replaces the printable ASCII range 0x5f-0x7e with VT100
// line-drawing glyphs, leaving every other byte untouched.
func vt100Charset() charsetTable {
	t := identityCharset()
	glyphs := map[byte]rune{
		0x5f: ' ',
		0x60: '◆', // diamond
		0x61: '▒', // checkerboard
		0x62: '␉', // HT symbol
		0x63: '␌', // FF symbol
		0x64: '␍', // CR symbol
		0x65: '␊', // LF symbol
		0x66: '°', // degree
		0x67: '±', // plus/minus
		0x68: '␤', // NL symbol
		0x69: '␋', // VT symbol
		0x6a: '┘', // bottom-right corner
		0x6b: '┐', // top-right corner
		0x6c: '┌', // top-left corner
		0x6d: '└', // bottom-left corner
		0x6e: '┼', // cross
		0x6f: '⎺', // scan line 1
		0x70: '⎻', // scan line 3
		0x71: '─', // horizontal line
		0x72: '⎼', // scan line 7
		0x73: '⎽', // scan line 9
		0x74: '├', // left tee
		0x75: '┤', // right tee
		0x76: '┴', // bottom tee
		0x77: '┬', // top tee
		0x78: '│', // vertical line
		0x79: '≤', // less-or-equal
		0x7a: '≥', // greater-or-equal
		0x7b: 'π', // pi
		0x7c: '≠', // not equal
		0x7d: '£', // pound sterling
		0x7e: '·', // centered dot
	}
	for b, r := range glyphs {
		t[b] = r
	}
	return t
}

// britishCharset is selected by `ESC ( A` / designation "A": identical to
// LAT1 except '#' (0x23) becomes the pound sterling sign.
func britishCharset() charsetTable {
	t := identityCharset()
	t[0x23] = '£'
	return t
}

// charsetByCode resolves a single-letter charset designation to its fixed
// table. Unknown codes return ok=false and must be ignored by the caller.
func charsetByCode(code byte) (charsetTable, bool) {
	switch code {
	case 'B': // US-ASCII / LAT1
		return identityCharset(), true
	case '0': // VT100 line drawing
		return vt100Charset(), true
	case 'A', 'U': // British / IBM PC code page, approximated
		return britishCharset(), true
	case 'K': // German, approximated as LAT1
		return identityCharset(), true
	default:
		return charsetTable{}, false
	}
}

// translate maps each byte of s through t, leaving non-Latin-1 runes (those
// already above 0xFF, e.g. from a previous translation or UTF-8 input)
// untouched.
func (t charsetTable) translate(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0 && r <= 0xFF {
			runes[i] = t[r]
		}
	}
	return string(runes)
}
