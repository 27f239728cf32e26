package vtscreen

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Margins is a 0-based, inclusive top/bottom scrolling region.
type Margins struct {
	Top    int
	Bottom int
}

// Savepoint is the state captured by SaveCursor and restored, asymmetrically,
// by RestoreCursor.
type Savepoint struct {
	Cursor  Cursor
	G0, G1  charsetTable
	Charset bool
	Origin  bool
	Wrap    bool
}

// Screen is the presentation engine: a styled character grid, cursor,
// scroll region, mode flags, charsets, tab stops and a saved-state stack.
// It is single-threaded and synchronous — see the package doc comment for
// the concurrency contract. It never parses bytes; operations here are the
// target of an upstream escape-sequence parser.
type Screen struct {
	lines, columns int
	savedColumns   int

	grid   *grid
	cursor Cursor
	modes  modeSet
	tabs   tabStops

	margins *Margins

	g0, g1  charsetTable
	charset bool // false = g0, true = g1

	savepoints []Savepoint

	dirty map[int]bool

	title, iconName string

	onWrite func(string)
	onBell  func()
}

// NewScreen returns a Screen reset to its initial state at the given size.
func NewScreen(columns, lines int) *Screen {
	s := &Screen{}
	s.lines = lines
	s.columns = columns
	s.grid = newGrid(columns)
	s.Reset()
	return s
}

// defaultCell is the screen's current default cell: a space, reversed iff
// DECSCNM is active. Unwritten columns resolve to this on read.
func (s *Screen) defaultCell() Cell {
	return blankCell(s.modes.has(ModeDECSCNM, true))
}

func (s *Screen) marginsOrFull() (top, bottom int) {
	if s.margins != nil {
		return s.margins.Top, s.margins.Bottom
	}
	return 0, s.lines - 1
}

func (s *Screen) markDirty(y int) {
	if s.dirty == nil {
		s.dirty = map[int]bool{}
	}
	s.dirty[y] = true
}

func (s *Screen) markDirtyRange(a, b int) {
	for y := a; y <= b; y++ {
		s.markDirty(y)
	}
}

func (s *Screen) markAllDirty() {
	s.markDirtyRange(0, s.lines-1)
}

// Dirty returns the sorted set of line indices mutated since the last
// ClearDirty.
func (s *Screen) Dirty() []int {
	out := make([]int, 0, len(s.dirty))
	for y := range s.dirty {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// ClearDirty empties the dirty set. Consumers call this after repainting.
func (s *Screen) ClearDirty() {
	s.dirty = map[int]bool{}
}

// Columns and Lines report the current screen size.
func (s *Screen) Columns() int { return s.columns }
func (s *Screen) Lines() int   { return s.lines }

// GetCursor returns the current cursor state.
func (s *Screen) GetCursor() Cursor { return s.cursor }

// Display renders the grid as lines strings of exact display width
// columns. A wide character's stub is skipped; the lead glyph alone
// accounts for both source positions.
func (s *Screen) Display() []string {
	def := s.defaultCell()
	out := make([]string, s.lines)
	for y := 0; y < s.lines; y++ {
		var b strings.Builder
		for x := 0; x < s.columns; x++ {
			c := s.grid.at(y, x, def)
			if c.isWideStub() {
				continue
			}
			b.WriteString(c.Data)
		}
		out[y] = b.String()
	}
	return out
}

// CellAt returns the styled cell at (y, x), or the screen's current default
// cell if nothing has been written there. Out-of-range coordinates return
// the default cell too.
func (s *Screen) CellAt(y, x int) Cell {
	def := s.defaultCell()
	if y < 0 || y >= s.lines || x < 0 || x >= s.columns {
		return def
	}
	return s.grid.at(y, x, def)
}

func (s *Screen) SetTitle(title string)       { s.title = title }
func (s *Screen) SetIconName(name string)     { s.iconName = name }
func (s *Screen) Title() string               { return s.title }
func (s *Screen) IconName() string            { return s.iconName }
func (s *Screen) SetWriteHook(fn func(string)) { s.onWrite = fn }
func (s *Screen) SetBellHook(fn func())        { s.onBell = fn }

// WriteProcessInput sends a device-report response upstream. A no-op until
// an embedder installs a hook via SetWriteHook.
func (s *Screen) WriteProcessInput(data string) {
	if s.onWrite != nil {
		s.onWrite(data)
	}
}

// Bell is called on BEL. A no-op until an embedder installs a hook.
func (s *Screen) Bell() {
	if s.onBell != nil {
		s.onBell()
	}
}

// Debug is a no-op sink for operations an upstream parser recognized but
// chose not to model as a first-class call.
func (s *Screen) Debug(args ...interface{}) {}

// Draw translates text through the active charset, segments it into
// grapheme clusters, and writes each cluster starting at the cursor.
func (s *Screen) Draw(text string) {
	active := s.g0
	if s.charset {
		active = s.g1
	}
	translated := active.translate(text)

	for _, cluster := range segmentClusters(translated) {
		w := clusterWidth(cluster)

		if s.cursor.X == s.columns {
			if s.modes.has(ModeDECAWM, true) {
				s.markDirty(s.cursor.Y)
				s.Index()
				s.CarriageReturn()
			} else if w > 0 {
				s.cursor.X -= w
				if s.cursor.X < 0 {
					s.cursor.X = 0
				}
			}
		}

		if s.modes.has(ModeIRM, false) && w > 0 {
			s.grid.shiftRight(s.cursor.Y, s.cursor.X, w, s.defaultCell())
		}

		switch {
		case w == 1:
			s.grid.set(s.cursor.Y, s.cursor.X, s.cellFromCluster(cluster))
			s.cursor.X = min(s.cursor.X+1, s.columns)

		case w == 2:
			cell := s.cellFromCluster(cluster)
			s.grid.set(s.cursor.Y, s.cursor.X, cell)
			if s.cursor.X+1 < s.columns {
				s.grid.set(s.cursor.Y, s.cursor.X+1, stubCell(cell))
			}
			s.cursor.X = min(s.cursor.X+2, s.columns)

		case w == 0:
			if isCombiningCluster(cluster) {
				s.joinCombining(cluster)
			}

		default: // w < 0: unprintable, stop processing this draw call
			s.markDirty(s.cursor.Y)
			return
		}
	}

	s.markDirty(s.cursor.Y)
}

func (s *Screen) cellFromCluster(cluster string) Cell {
	c := s.cursor.Attrs
	c.Data = cluster
	return c
}

// joinCombining NFC-joins cluster onto the cell preceding the cursor: the
// previous column on the current line, or the last column of the previous
// line when the cursor sits at the start of a wrapped line. At the very
// start of the screen there is nothing to join onto, and the cluster is
// dropped.
func (s *Screen) joinCombining(cluster string) {
	var px, py int
	switch {
	case s.cursor.X > 0:
		px, py = s.cursor.X-1, s.cursor.Y
	case s.cursor.Y > 0:
		px, py = s.columns-1, s.cursor.Y-1
	default:
		return
	}
	prev := s.grid.at(py, px, s.defaultCell())
	prev.Data = norm.NFC.String(prev.Data + cluster)
	s.grid.set(py, px, prev)
	if py != s.cursor.Y {
		s.markDirty(py)
	}
}

func (s *Screen) CarriageReturn() {
	s.cursor.X = 0
}

// Index moves the cursor down one line, scrolling the margin region up by
// one when already at the bottom margin.
func (s *Screen) Index() {
	top, bottom := s.marginsOrFull()
	if s.cursor.Y == bottom {
		s.scrollUp(top, bottom, 1)
		s.markAllDirty()
		return
	}
	if s.cursor.Y < s.lines-1 {
		s.cursor.Y++
	}
}

// ReverseIndex is Index's mirror: moves up, scrolling down at the top margin.
func (s *Screen) ReverseIndex() {
	top, bottom := s.marginsOrFull()
	if s.cursor.Y == top {
		s.scrollDown(top, bottom, 1)
		s.markAllDirty()
		return
	}
	if s.cursor.Y > 0 {
		s.cursor.Y--
	}
}

// Linefeed is Index, followed by a carriage return iff LNM is set.
func (s *Screen) Linefeed() {
	s.Index()
	if s.modes.has(ModeLNM, false) {
		s.CarriageReturn()
	}
}

func (s *Screen) Backspace() {
	s.CursorBack(1)
}

// Tab jumps to the next tab stop strictly greater than the cursor, or the
// last column if none remains.
func (s *Screen) Tab() {
	s.cursor.X = s.tabs.next(s.cursor.X, s.columns)
}

func (s *Screen) scrollUp(top, bottom, n int) {
	for y := top; y <= bottom; y++ {
		if src := y + n; src <= bottom {
			s.grid.moveLine(src, y)
		} else {
			s.grid.clearLine(y)
		}
	}
}

func (s *Screen) scrollDown(top, bottom, n int) {
	for y := bottom; y >= top; y-- {
		if src := y - n; src >= top {
			s.grid.moveLine(src, y)
		} else {
			s.grid.clearLine(y)
		}
	}
}

func (s *Screen) CursorUp(n int) {
	n = atLeastOne(n)
	top, _ := s.marginsOrFull()
	s.cursor.Y = max(s.cursor.Y-n, top)
}

func (s *Screen) CursorDown(n int) {
	n = atLeastOne(n)
	_, bottom := s.marginsOrFull()
	s.cursor.Y = min(s.cursor.Y+n, bottom)
}

func (s *Screen) CursorForward(n int) {
	n = atLeastOne(n)
	s.cursor.X = min(s.cursor.X+n, s.columns-1)
}

// CursorBack first collapses wrap-pending (X == columns) by decrementing X
// once, then applies count.
func (s *Screen) CursorBack(n int) {
	n = atLeastOne(n)
	if s.cursor.X == s.columns {
		s.cursor.X--
	}
	s.cursor.X = max(0, s.cursor.X-n)
}

func (s *Screen) CursorUp1(n int) {
	s.CursorUp(n)
	s.CarriageReturn()
}

func (s *Screen) CursorDown1(n int) {
	s.CursorDown(n)
	s.CarriageReturn()
}

// CursorPosition sets the cursor from 1-based (line, column). Under DECOM
// with margins set, line is margins.Top-relative and a move outside the
// region is rejected outright, leaving the cursor unchanged.
func (s *Screen) CursorPosition(line, col int) {
	line, col = atLeastOne(line), atLeastOne(col)
	y, x := line-1, col-1

	if s.modes.has(ModeDECOM, true) && s.margins != nil {
		y += s.margins.Top
		if y < s.margins.Top || y > s.margins.Bottom {
			return
		}
	}

	s.cursor.Y = clampInt(y, 0, s.lines-1)
	s.cursor.X = clampInt(x, 0, s.columns-1)
}

func (s *Screen) CursorToColumn(col int) {
	col = atLeastOne(col)
	s.cursor.X = clampInt(col-1, 0, s.columns-1)
}

// CursorToLine sets the cursor's row from a 1-based line. Under DECOM the
// target is offset by margins.Top but, per the source this is ported from,
// clamped only to the full screen, never to the margins themselves.
func (s *Screen) CursorToLine(line int) {
	line = atLeastOne(line)
	y := line - 1
	if s.modes.has(ModeDECOM, true) && s.margins != nil {
		y += s.margins.Top
	}
	s.cursor.Y = clampInt(y, 0, s.lines-1)
}

func (s *Screen) homeCursor() {
	s.cursor.X = 0
	if s.modes.has(ModeDECOM, true) && s.margins != nil {
		s.cursor.Y = s.margins.Top
	} else {
		s.cursor.Y = 0
	}
}

// SetMargins sets a 1-based, inclusive scrolling region. A call with both
// arguments zero clears margins back to the full screen. Either way, the
// cursor is homed afterward.
func (s *Screen) SetMargins(top, bottom int) {
	if top == 0 && bottom == 0 {
		s.margins = nil
		s.homeCursor()
		return
	}
	top = atLeastOne(top)
	t, b := top-1, bottom-1
	if bottom == 0 || b > s.lines-1 {
		b = s.lines - 1
	}
	if b-t < 1 {
		return
	}
	s.margins = &Margins{Top: t, Bottom: b}
	s.homeCursor()
}

// InsertLines shifts lines within [cursor.Y, bottom] down by n, dropping
// whatever is pushed past bottom; it is a no-op when the cursor sits
// outside the margin region.
func (s *Screen) InsertLines(n int) {
	n = atLeastOne(n)
	top, bottom := s.marginsOrFull()
	if s.cursor.Y < top || s.cursor.Y > bottom {
		return
	}
	for y := bottom; y >= s.cursor.Y; y-- {
		if y+n <= bottom {
			s.grid.moveLine(y, y+n)
		} else {
			s.grid.clearLine(y)
		}
	}
	for y := s.cursor.Y; y < s.cursor.Y+n && y <= bottom; y++ {
		s.grid.clearLine(y)
	}
	s.CarriageReturn()
	s.markDirtyRange(s.cursor.Y, bottom)
}

// DeleteLines is InsertLines's mirror: shifts lines up from cursor.Y.
func (s *Screen) DeleteLines(n int) {
	n = atLeastOne(n)
	top, bottom := s.marginsOrFull()
	if s.cursor.Y < top || s.cursor.Y > bottom {
		return
	}
	for y := s.cursor.Y; y <= bottom; y++ {
		if y+n <= bottom {
			s.grid.moveLine(y+n, y)
		} else {
			s.grid.clearLine(y)
		}
	}
	s.CarriageReturn()
	s.markDirtyRange(s.cursor.Y, bottom)
}

func (s *Screen) eraseFillCell() Cell {
	c := s.cursor.Attrs
	c.Data = " "
	return c
}

func (s *Screen) EraseCharacters(n int) {
	n = atLeastOne(n)
	end := min(s.cursor.X+n, s.columns)
	cell := s.eraseFillCell()
	for x := s.cursor.X; x < end; x++ {
		s.grid.set(s.cursor.Y, x, cell)
	}
	s.markDirty(s.cursor.Y)
}

// EraseInLine erases part or all of the cursor's line with cursor.attrs:
// how=0 cursor through end of line, how=1 start through cursor inclusive,
// how=2 the whole line.
func (s *Screen) EraseInLine(how int) {
	cell := s.eraseFillCell()
	switch how {
	case 0:
		for x := s.cursor.X; x < s.columns; x++ {
			s.grid.set(s.cursor.Y, x, cell)
		}
	case 1:
		for x := 0; x <= s.cursor.X && x < s.columns; x++ {
			s.grid.set(s.cursor.Y, x, cell)
		}
	case 2:
		for x := 0; x < s.columns; x++ {
			s.grid.set(s.cursor.Y, x, cell)
		}
	}
	s.markDirty(s.cursor.Y)
}

// EraseInDisplay erases part or all of the screen: how=0 cursor to end of
// screen, how=1 start to cursor, how=2/3 the whole screen. For 0 and 1 the
// cursor's own line is additionally finished off via EraseInLine.
func (s *Screen) EraseInDisplay(how int) {
	switch how {
	case 0:
		for y := s.cursor.Y + 1; y < s.lines; y++ {
			s.grid.clearLine(y)
			s.markDirty(y)
		}
		s.EraseInLine(0)
	case 1:
		for y := 0; y < s.cursor.Y; y++ {
			s.grid.clearLine(y)
			s.markDirty(y)
		}
		s.EraseInLine(1)
	case 2, 3:
		s.grid.clearAll()
		s.markAllDirty()
	}
}

func (s *Screen) InsertCharacters(n int) {
	n = atLeastOne(n)
	s.grid.shiftRight(s.cursor.Y, s.cursor.X, n, s.eraseFillCell())
	s.markDirty(s.cursor.Y)
}

func (s *Screen) DeleteCharacters(n int) {
	n = atLeastOne(n)
	s.grid.shiftLeft(s.cursor.Y, s.cursor.X, n, s.eraseFillCell())
	s.markDirty(s.cursor.Y)
}

func (s *Screen) SetTabStop() {
	s.tabs.set(s.cursor.X)
}

func (s *Screen) ClearTabStop(how int) {
	s.tabs.clear(s.cursor.X, how)
}

// DefineCharset updates g0 (mode "(") or g1 (mode ")") from the fixed
// table named by code. Unknown codes are ignored.
func (s *Screen) DefineCharset(code byte, mode string) {
	table, ok := charsetByCode(code)
	if !ok {
		return
	}
	switch mode {
	case "(":
		s.g0 = table
	case ")":
		s.g1 = table
	}
}

func (s *Screen) ShiftIn()  { s.charset = false }
func (s *Screen) ShiftOut() { s.charset = true }

func (s *Screen) SetMode(private bool, codes ...int) {
	for _, code := range codes {
		s.modes.set(code, private)
		s.applyModeSideEffect(code, private, true)
	}
}

func (s *Screen) ResetMode(private bool, codes ...int) {
	for _, code := range codes {
		s.modes.reset(code, private)
		s.applyModeSideEffect(code, private, false)
	}
}

func (s *Screen) applyModeSideEffect(code int, private, enabling bool) {
	if !private {
		return
	}
	switch code {
	case ModeDECCOLM:
		if enabling {
			s.savedColumns = s.columns
			s.Resize(s.lines, 132)
		} else if s.columns == 132 {
			s.Resize(s.lines, s.savedColumns)
		}
		s.EraseInDisplay(2)
		s.homeCursor()
	case ModeDECOM:
		s.homeCursor()
	case ModeDECSCNM:
		s.applyScreenReverse(enabling)
	case ModeDECTCEM:
		s.cursor.Hidden = !enabling
	}
}

func (s *Screen) applyScreenReverse(reverse bool) {
	for _, row := range s.grid.rows {
		for x, c := range row {
			c.Reverse = reverse
			row[x] = c
		}
	}
	s.markAllDirty()
	if reverse {
		s.SelectGraphicRendition([]int{7})
	} else {
		s.SelectGraphicRendition([]int{27})
	}
}

// SaveCursor pushes a copy of the cursor, charset state, and the current
// origin/wrap flags onto the savepoint stack.
func (s *Screen) SaveCursor() {
	s.savepoints = append(s.savepoints, Savepoint{
		Cursor:  s.cursor,
		G0:      s.g0,
		G1:      s.g1,
		Charset: s.charset,
		Origin:  s.modes.has(ModeDECOM, true),
		Wrap:    s.modes.has(ModeDECAWM, true),
	})
}

// RestoreCursor pops the last savepoint. Origin and wrap are reapplied only
// when the savepoint had them set — never cleared when it had them unset,
// an asymmetry inherited from the source this is ported from. An empty
// stack homes the cursor and resets origin mode.
func (s *Screen) RestoreCursor() {
	if len(s.savepoints) == 0 {
		s.modes.reset(ModeDECOM, true)
		s.cursor.X, s.cursor.Y = 0, 0
		return
	}

	sp := s.savepoints[len(s.savepoints)-1]
	s.savepoints = s.savepoints[:len(s.savepoints)-1]

	s.cursor = sp.Cursor
	s.g0, s.g1, s.charset = sp.G0, sp.G1, sp.Charset
	if sp.Origin {
		s.modes.set(ModeDECOM, true)
	}
	if sp.Wrap {
		s.modes.set(ModeDECAWM, true)
	}
	s.cursor.clamp(s.columns, s.lines)
}

// Resize changes the screen's dimensions. Shrinking vertically drops lines
// from the top; shrinking horizontally drops overflow columns. Margins are
// always cleared to the new extent, which also homes the cursor.
func (s *Screen) Resize(lines, columns int) {
	if lines == s.lines && columns == s.columns {
		return
	}

	if lines < s.lines {
		delta := s.lines - lines
		saved := s.cursor
		for y := 0; y < s.lines; y++ {
			if src := y + delta; src < s.lines {
				s.grid.moveLine(src, y)
			} else {
				s.grid.clearLine(y)
			}
		}
		s.cursor = saved
	}

	if columns < s.columns {
		for y := range s.grid.rows {
			s.grid.trimLine(y, columns)
		}
		for col := range s.tabs {
			if col >= columns {
				delete(s.tabs, col)
			}
		}
	}

	s.lines, s.columns = lines, columns
	s.grid.columns = columns
	s.SetMargins(0, 0)
	s.markAllDirty()
}

// AlignmentDisplay fills every cell with "E", preserving each cell's prior
// style. Used to implement DECALN.
func (s *Screen) AlignmentDisplay() {
	def := s.defaultCell()
	for y := 0; y < s.lines; y++ {
		for x := 0; x < s.columns; x++ {
			cell := s.grid.at(y, x, def)
			cell.Data = "E"
			s.grid.set(y, x, cell)
		}
	}
	s.markAllDirty()
}

// ReportDeviceAttributes answers a primary DA request (mode 0, non-private)
// with the fixed VT102 identification string.
func (s *Screen) ReportDeviceAttributes(mode int, private bool) {
	if private || mode != 0 {
		return
	}
	s.WriteProcessInput("\x1b[?6c")
}

// ReportDeviceStatus answers DSR 5 (device OK) and DSR 6 (cursor position
// report, 1-based, DECOM-relative when origin mode is active).
func (s *Screen) ReportDeviceStatus(mode int) {
	switch mode {
	case 5:
		s.WriteProcessInput("\x1b[0n")
	case 6:
		y := s.cursor.Y
		if s.modes.has(ModeDECOM, true) && s.margins != nil {
			y -= s.margins.Top
		}
		x := s.cursor.collapseWrapPending(s.columns)
		s.WriteProcessInput(fmt.Sprintf("\x1b[%d;%dR", y+1, x+1))
	}
}

func atLeastOne(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
