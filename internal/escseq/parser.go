package escseq

import "strconv"

// parserState mirrors the teacher's state enum: a small explicit state
// machine over C0 controls, ESC sequences, and CSI/OSC collection, rather
// than a table-driven or regex-based approach.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateCharsetG0
	stateCharsetG1
	stateDECLine
)

// Parser decodes a VT-family escape sequence stream and drives a Target.
// It holds no knowledge of cell storage, grapheme segmentation, or SGR
// resolution — all of that lives behind Target.
type Parser struct {
	target Target

	state parserState

	printBuf []byte

	csiPrivate byte
	csiParams  []string
	csiCur     []byte

	oscBuf []byte

	utf8Need int
	utf8Buf  []byte
}

// NewParser returns a Parser that drives target.
func NewParser(target Target) *Parser {
	return &Parser{target: target}
}

// Parse feeds a chunk of bytes through the parser. It may be called
// repeatedly with successive reads from a PTY; state (partial escape
// sequences, partial UTF-8 runes) carries over between calls.
func (p *Parser) Parse(data []byte) {
	for _, b := range data {
		p.processByte(b)
	}
}

// ParseString is a convenience wrapper over Parse.
func (p *Parser) ParseString(data string) {
	p.Parse([]byte(data))
}

func (p *Parser) processByte(b byte) {
	if p.utf8Need > 0 {
		if b&0xc0 == 0x80 {
			p.utf8Buf = append(p.utf8Buf, b)
			p.utf8Need--
			if p.utf8Need == 0 {
				p.printBuf = append(p.printBuf, p.utf8Buf...)
				p.utf8Buf = nil
			}
			return
		}
		// invalid continuation: abandon the partial rune and reprocess b.
		p.utf8Buf = nil
		p.utf8Need = 0
	}

	if p.state == stateGround && b >= 0x20 && b != 0x7f {
		if n := utf8SeqLen(b); n > 1 {
			p.utf8Buf = []byte{b}
			p.utf8Need = n - 1
			return
		}
		p.printBuf = append(p.printBuf, b)
		return
	}

	switch p.state {
	case stateGround:
		p.handleControl(b)
	case stateEscape:
		p.handleEscape(b)
	case stateCSI:
		p.handleCSI(b)
	case stateOSC:
		p.handleOSC(b)
	case stateCharsetG0:
		p.flushPrint()
		p.target.Dispatch(false, func() { p.target.DefineCharset(b, "(") })
		p.state = stateGround
	case stateCharsetG1:
		p.flushPrint()
		p.target.Dispatch(false, func() { p.target.DefineCharset(b, ")") })
		p.state = stateGround
	case stateDECLine:
		if b == '8' {
			p.exec(p.target.AlignmentDisplay)
		}
		p.state = stateGround
	}
}

func utf8SeqLen(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}

func (p *Parser) flushPrint() {
	if len(p.printBuf) == 0 {
		return
	}
	text := string(p.printBuf)
	p.printBuf = p.printBuf[:0]
	p.target.Dispatch(false, func() { p.target.Draw(text) })
}

func (p *Parser) exec(fn func()) {
	p.flushPrint()
	p.target.Dispatch(false, fn)
}

func (p *Parser) handleControl(b byte) {
	switch b {
	case 0x00, 0x7f:
		// NUL, DEL: ignored
	case 0x07:
		p.exec(p.target.Bell)
	case 0x08:
		p.exec(p.target.Backspace)
	case 0x09:
		p.exec(p.target.Tab)
	case 0x0a, 0x0b, 0x0c:
		p.exec(p.target.Linefeed)
	case 0x0d:
		p.exec(p.target.CarriageReturn)
	case 0x0e:
		p.exec(p.target.ShiftOut)
	case 0x0f:
		p.exec(p.target.ShiftIn)
	case 0x1b:
		p.flushPrint()
		p.state = stateEscape
	default:
		// other C0 controls have no Target operation; drop silently.
	}
}

func (p *Parser) handleEscape(b byte) {
	switch b {
	case '[':
		p.csiPrivate = 0
		p.csiParams = nil
		p.csiCur = nil
		p.state = stateCSI
	case ']':
		p.oscBuf = nil
		p.state = stateOSC
	case '(':
		p.state = stateCharsetG0
	case ')':
		p.state = stateCharsetG1
	case 'D':
		p.exec(p.target.Index)
		p.state = stateGround
	case 'M':
		p.exec(p.target.ReverseIndex)
		p.state = stateGround
	case 'E':
		p.exec(func() { p.target.CarriageReturn(); p.target.Index() })
		p.state = stateGround
	case 'H':
		p.exec(p.target.SetTabStop)
		p.state = stateGround
	case '7':
		p.exec(p.target.SaveCursor)
		p.state = stateGround
	case '8':
		p.exec(p.target.RestoreCursor)
		p.state = stateGround
	case 'c':
		p.exec(p.target.Reset)
		p.state = stateGround
	case '#':
		// ESC # 8 (DECALN) is the only sequence in this family Target models.
		p.state = stateDECLine
	case '=', '>':
		// DECKPAM/DECKPNM: no keypad-mode surface on Target, ignored.
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func (p *Parser) handleCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.csiCur = append(p.csiCur, b)
	case b == ';' || b == ':':
		// colon-separated SGR subparameters (ITU T.416 form) are treated the
		// same as semicolons; Target has no notion of compound parameters.
		p.csiParams = append(p.csiParams, string(p.csiCur))
		p.csiCur = nil
	case b == '?' || b == '>' || b == '=':
		p.csiPrivate = b
	case b >= 0x40 && b <= 0x7e:
		p.csiParams = append(p.csiParams, string(p.csiCur))
		p.dispatchCSI(b)
		p.state = stateGround
	default:
		// unexpected intermediate byte, ignore and keep collecting
	}
}

func (p *Parser) csiInts(defaults ...int) []int {
	out := make([]int, 0, len(p.csiParams))
	for i, raw := range p.csiParams {
		if raw == "" {
			if i < len(defaults) {
				out = append(out, defaults[i])
			} else {
				out = append(out, 0)
			}
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			v = 0
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return defaults
	}
	return out
}

func (p *Parser) csiInt(idx, def int) int {
	if idx >= len(p.csiParams) || p.csiParams[idx] == "" {
		return def
	}
	v, err := strconv.Atoi(p.csiParams[idx])
	if err != nil || v == 0 {
		return def
	}
	return v
}

func (p *Parser) dispatchCSI(final byte) {
	private := p.csiPrivate == '?'
	switch final {
	case 'A':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorUp(n) })
	case 'B', 'e':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorDown(n) })
	case 'E':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorDown1(n) })
	case 'F':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorUp1(n) })
	case 'C', 'a':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorForward(n) })
	case 'D':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorBack(n) })
	case 'G', '`':
		col := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorToColumn(col) })
	case 'd':
		line := p.csiInt(0, 1)
		p.exec(func() { p.target.CursorToLine(line) })
	case 'H', 'f':
		line := p.csiInt(0, 1)
		col := p.csiInt(1, 1)
		p.exec(func() { p.target.CursorPosition(line, col) })
	case 'r':
		top := p.csiInt(0, 1)
		bottom := p.csiInt(1, 0)
		p.exec(func() { p.target.SetMargins(top, bottom) })
	case 'L':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.InsertLines(n) })
	case 'M':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.DeleteLines(n) })
	case '@':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.InsertCharacters(n) })
	case 'P':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.DeleteCharacters(n) })
	case 'X':
		n := p.csiInt(0, 1)
		p.exec(func() { p.target.EraseCharacters(n) })
	case 'K':
		how := p.csiInt(0, 0)
		p.exec(func() { p.target.EraseInLine(how) })
	case 'J':
		how := p.csiInt(0, 0)
		p.exec(func() { p.target.EraseInDisplay(how) })
	case 'g':
		how := p.csiInt(0, 0)
		p.exec(func() { p.target.ClearTabStop(how) })
	case 'm':
		params := p.csiInts(0)
		p.exec(func() { p.target.SelectGraphicRendition(params) })
	case 'h':
		codes := p.csiInts()
		p.exec(func() { p.target.SetMode(private, codes...) })
	case 'l':
		codes := p.csiInts()
		p.exec(func() { p.target.ResetMode(private, codes...) })
	case 'c':
		mode := p.csiInt(0, 0)
		p.exec(func() { p.target.ReportDeviceAttributes(mode, private) })
	case 'n':
		mode := p.csiInt(0, 0)
		p.exec(func() { p.target.ReportDeviceStatus(mode) })
	case 's':
		p.exec(p.target.SaveCursor)
	case 'u':
		p.exec(p.target.RestoreCursor)
	case 't':
		// window manipulation (resize-by-pixels, iconify, report position):
		// no surface on Target, routed to Debug so a caller can still see it.
		params := p.csiInts()
		p.exec(func() { p.target.Debug("window-op", params) })
	default:
		p.exec(func() { p.target.Debug("csi", string(final), p.csiParams) })
	}
}

func (p *Parser) handleOSC(b byte) {
	switch b {
	case 0x07:
		p.dispatchOSC()
		p.state = stateGround
	case 0x1b:
		// expects a following '\\' (ST); handled generically by treating
		// ESC as a terminator too, matching how real terminals tolerate it.
		// The byte after ESC is read in the escape state, so a '\\' is
		// consumed there rather than drawn.
		p.dispatchOSC()
		p.state = stateEscape
	default:
		p.oscBuf = append(p.oscBuf, b)
	}
}

func (p *Parser) dispatchOSC() {
	raw := string(p.oscBuf)
	cmd, text := splitOSC(raw)
	p.flushPrint()
	switch cmd {
	case 0:
		p.target.Dispatch(false, func() { p.target.SetTitle(text); p.target.SetIconName(text) })
	case 1:
		p.target.Dispatch(false, func() { p.target.SetIconName(text) })
	case 2:
		p.target.Dispatch(false, func() { p.target.SetTitle(text) })
	default:
		p.target.Dispatch(false, func() { p.target.Debug("osc", cmd, text) })
	}
}

func splitOSC(raw string) (cmd int, text string) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == ';' {
			cmd, _ = strconv.Atoi(raw[:i])
			return cmd, raw[i+1:]
		}
	}
	cmd, _ = strconv.Atoi(raw)
	return cmd, ""
}
