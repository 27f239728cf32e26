package vtscreen

// SelectGraphicRendition decodes an SGR (`CSI … m`) parameter sequence and
// applies the accumulated attribute changes to the cursor's style in one
// update. An empty sequence is treated as a single 0 (full reset).
//
// Extended color sequences (`38/48, 5, n` and `38/48, 2, r, g, b`) consume
// their trailing parameters from the same stream; a sequence that runs out
// of parameters mid-extension is abandoned silently and leaves prior color
// state untouched, matching real terminals tolerating noise on the wire.
func (s *Screen) SelectGraphicRendition(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	attrs := s.cursor.Attrs
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			def := s.defaultCell()
			attrs.Foreground = def.Foreground
			attrs.Background = def.Background
			attrs.Bold = false
			attrs.Italics = false
			attrs.Underscore = false
			attrs.Strikethrough = false
			attrs.Reverse = def.Reverse
			attrs.Blink = false

		case p == 1:
			attrs.Bold = true
		case p == 3:
			attrs.Italics = true
		case p == 4:
			attrs.Underscore = true
		case p == 5:
			attrs.Blink = true
		case p == 7:
			attrs.Reverse = true
		case p == 9:
			attrs.Strikethrough = true

		case p == 22:
			attrs.Bold = false
		case p == 23:
			attrs.Italics = false
		case p == 24:
			attrs.Underscore = false
		case p == 25:
			attrs.Blink = false
		case p == 27:
			attrs.Reverse = false
		case p == 29:
			attrs.Strikethrough = false

		case p >= 30 && p <= 37:
			attrs.Foreground = ansiNames[p-30]
		case p == 39:
			attrs.Foreground = defaultColor
		case p >= 40 && p <= 47:
			attrs.Background = ansiNames[p-40]
		case p == 49:
			attrs.Background = defaultColor

		case p >= 90 && p <= 97:
			attrs.Foreground = aixtermNames[p-90]
		case p >= 100 && p <= 107:
			attrs.Background = aixtermNames[p-100]

		case p == 38 || p == 48:
			consumed, color, ok := parseExtendedColor(params[i+1:])
			if ok {
				if p == 38 {
					attrs.Foreground = color
				} else {
					attrs.Background = color
				}
			}
			i += consumed

		default:
			// Unknown SGR code: ignored, not fatal.
		}
	}

	s.cursor.Attrs = attrs
}

// parseExtendedColor reads a `5, n` or `2, r, g, b` color extension from the
// front of rest. It returns how many of rest's entries were consumed (so
// the caller can advance its own index past them) and the resolved hex
// color string. ok is false when rest is too short to complete the
// extension, in which case consumed is however many entries were present
// and should still be skipped.
func parseExtendedColor(rest []int) (consumed int, color string, ok bool) {
	if len(rest) == 0 {
		return 0, "", false
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return len(rest), "", false
		}
		return 2, paletteHex(rest[1]), true
	case 2:
		if len(rest) < 4 {
			return len(rest), "", false
		}
		r, g, b := clampByte(rest[1]), clampByte(rest[2]), clampByte(rest[3])
		return 4, rgbHex(r, g, b), true
	default:
		return 1, "", false
	}
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
