package vtscreen

import "math"

// savedLine is one scrollback entry: the column-indexed cells a line had
// when it scrolled off-screen, plus the default cell that was in effect at
// the time (unwritten columns read as this when the line is restored).
type savedLine struct {
	cells map[int]Cell
	def   Cell
}

// History holds the two bounded scrollback deques and the paging cursor.
// top collects lines scrolled off the top margin (by Index); bottom
// collects lines scrolled off the bottom margin (by ReverseIndex). Both
// are stored oldest-first; the entry adjacent to the live screen is always
// at the end of the slice.
type History struct {
	top, bottom []savedLine
	capacity    int
	ratio       float64
	position    int
}

func newHistory(capacity int, ratio float64) *History {
	return &History{capacity: capacity, ratio: ratio, position: capacity}
}

func (h *History) pushTop(sl savedLine) {
	h.top = append(h.top, sl)
	if len(h.top) > h.capacity {
		h.top = h.top[len(h.top)-h.capacity:]
	}
}

func (h *History) pushBottom(sl savedLine) {
	h.bottom = append(h.bottom, sl)
	if len(h.bottom) > h.capacity {
		h.bottom = h.bottom[len(h.bottom)-h.capacity:]
	}
}

// popTop removes and returns the n most recently pushed lines, oldest of
// the n first — the order they should be written back into the top of the
// screen, top row first.
func (h *History) popTop(n int) []savedLine {
	if n > len(h.top) {
		n = len(h.top)
	}
	out := append([]savedLine(nil), h.top[len(h.top)-n:]...)
	h.top = h.top[:len(h.top)-n]
	return out
}

func (h *History) popBottom(n int) []savedLine {
	if n > len(h.bottom) {
		n = len(h.bottom)
	}
	out := append([]savedLine(nil), h.bottom[len(h.bottom)-n:]...)
	h.bottom = h.bottom[:len(h.bottom)-n]
	return out
}

func (h *History) reset() {
	h.top = nil
	h.bottom = nil
	h.position = h.capacity
}

func pageStep(lines int, ratio float64, available int) int {
	mid := int(math.Ceil(float64(lines) * ratio))
	if mid > available {
		mid = available
	}
	return mid
}

// HistoryScreen wraps a Screen with bounded top/bottom scrollback and a
// position cursor, reshaping the grid under PrevPage/NextPage. It
// re-implements pyte's HistoryScreen, whose Python original intercepts
// every method call via __getattribute__ to re-anchor at the live bottom
// before any non-paging operation and to trim/refresh cursor visibility
// after one; Dispatch is the explicit equivalent for this port.
type HistoryScreen struct {
	*Screen
	history *History
}

// NewHistoryScreen returns a Screen with scrollback: capacity lines of
// history per direction, stepping by ceil(lines*ratio) rows per page.
func NewHistoryScreen(columns, lines, capacity int, ratio float64) *HistoryScreen {
	return &HistoryScreen{
		Screen:  NewScreen(columns, lines),
		history: newHistory(capacity, ratio),
	}
}

// Dispatch is the explicit middleware every non-paging operation should be
// routed through: it re-anchors to the live bottom first (if paged back)
// and refreshes line widths and cursor visibility after. Paging operations
// (PrevPage/NextPage themselves) pass isPageNav=true to skip both.
func (hs *HistoryScreen) Dispatch(isPageNav bool, fn func()) {
	if !isPageNav {
		hs.beforeEvent()
	}
	fn()
	if !isPageNav {
		hs.afterEvent()
	}
}

// Dispatch on a plain Screen (no history) is a direct passthrough, so code
// written against either type can route all calls through Dispatch
// uniformly.
func (s *Screen) Dispatch(isPageNav bool, fn func()) {
	fn()
}

func (hs *HistoryScreen) beforeEvent() {
	for hs.history.position < hs.history.capacity {
		hs.nextPage()
	}
}

func (hs *HistoryScreen) afterEvent() {
	for y := 0; y < hs.Lines(); y++ {
		hs.grid.trimLine(y, hs.Columns())
	}
	hs.cursor.Hidden = !(hs.history.position == hs.history.capacity && hs.modes.has(ModeDECTCEM, true))
}

func (hs *HistoryScreen) snapshotLine(y int) savedLine {
	row := hs.grid.line(y)
	cells := make(map[int]Cell, len(row))
	for x, c := range row {
		cells[x] = c
	}
	return savedLine{cells: cells, def: hs.defaultCell()}
}

func (hs *HistoryScreen) restoreLine(y int, sl savedLine) {
	hs.grid.clearLine(y)
	for x, c := range sl.cells {
		hs.grid.set(y, x, c)
	}
	if sl.def != hs.defaultCell() {
		for x := 0; x < hs.Columns(); x++ {
			if _, ok := sl.cells[x]; !ok {
				hs.grid.set(y, x, sl.def)
			}
		}
	}
}

// Position reports the history paging cursor; Position() == Size() means
// the live screen is showing.
func (hs *HistoryScreen) Position() int { return hs.history.position }

// Size reports the per-direction scrollback capacity.
func (hs *HistoryScreen) Size() int { return hs.history.capacity }

// PrevPage pages back toward older scrollback content.
func (hs *HistoryScreen) PrevPage() {
	hs.Dispatch(true, hs.prevPage)
}

// NextPage pages forward, back toward the live screen.
func (hs *HistoryScreen) NextPage() {
	hs.Dispatch(true, hs.nextPage)
}

func (hs *HistoryScreen) prevPage() {
	if hs.history.position <= hs.Lines() || len(hs.history.top) == 0 {
		return
	}
	mid := pageStep(hs.Lines(), hs.history.ratio, len(hs.history.top))
	if mid <= 0 {
		return
	}

	for y := hs.Lines() - 1; y >= hs.Lines()-mid; y-- {
		hs.history.pushBottom(hs.snapshotLine(y))
	}
	for y := hs.Lines() - 1; y >= mid; y-- {
		hs.grid.moveLine(y-mid, y)
	}
	for i, sl := range hs.history.popTop(mid) {
		hs.restoreLine(i, sl)
	}

	hs.history.position -= mid
	hs.markAllDirty()
}

func (hs *HistoryScreen) nextPage() {
	if hs.history.position >= hs.history.capacity || len(hs.history.bottom) == 0 {
		return
	}
	mid := pageStep(hs.Lines(), hs.history.ratio, len(hs.history.bottom))
	if mid <= 0 {
		return
	}

	for y := 0; y < mid; y++ {
		hs.history.pushTop(hs.snapshotLine(y))
	}
	for y := 0; y < hs.Lines()-mid; y++ {
		hs.grid.moveLine(y+mid, y)
	}
	for i, sl := range hs.history.popBottom(mid) {
		hs.restoreLine(hs.Lines()-1-i, sl)
	}

	hs.history.position += mid
	hs.markAllDirty()
}

// Index is Screen.Index, additionally pushing the line about to be
// discarded from the top margin onto history.top.
func (hs *HistoryScreen) Index() {
	hs.Dispatch(false, func() {
		top, bottom := hs.marginsOrFull()
		if hs.cursor.Y == bottom {
			hs.history.pushTop(hs.snapshotLine(top))
		}
		hs.Screen.Index()
	})
}

// ReverseIndex is Index's mirror, pushing onto history.bottom.
func (hs *HistoryScreen) ReverseIndex() {
	hs.Dispatch(false, func() {
		top, bottom := hs.marginsOrFull()
		if hs.cursor.Y == top {
			hs.history.pushBottom(hs.snapshotLine(bottom))
		}
		hs.Screen.ReverseIndex()
	})
}

// EraseInDisplay is Screen.EraseInDisplay; how==3 additionally clears both
// history deques and resets the paging position.
func (hs *HistoryScreen) EraseInDisplay(how int) {
	hs.Dispatch(false, func() {
		hs.Screen.EraseInDisplay(how)
		if how == 3 {
			hs.history.reset()
		}
	})
}

// Reset is Screen.Reset, additionally clearing scrollback.
func (hs *HistoryScreen) Reset() {
	hs.Dispatch(true, func() {
		hs.Screen.Reset()
		hs.history.reset()
	})
}

// The methods below exist only to route every remaining Screen operation
// through Dispatch. Embedding *Screen promotes these for free, but
// promotion resolves at compile time against the embedded type's own
// methods, so a call through a HistoryScreen value never reaches
// HistoryScreen.Dispatch that way: a paged-back view would never
// re-anchor before Draw, CursorPosition, SetMode, and so on ran against
// it. pyte avoids this by intercepting every attribute access
// (__getattribute__); re-declaring each operation here is the explicit
// Go equivalent.

func (hs *HistoryScreen) Draw(text string) {
	hs.Dispatch(false, func() { hs.Screen.Draw(text) })
}

func (hs *HistoryScreen) CarriageReturn() {
	hs.Dispatch(false, hs.Screen.CarriageReturn)
}

func (hs *HistoryScreen) Linefeed() {
	hs.Dispatch(false, hs.Screen.Linefeed)
}

func (hs *HistoryScreen) Backspace() {
	hs.Dispatch(false, hs.Screen.Backspace)
}

func (hs *HistoryScreen) Tab() {
	hs.Dispatch(false, hs.Screen.Tab)
}

func (hs *HistoryScreen) Bell() {
	hs.Dispatch(false, hs.Screen.Bell)
}

func (hs *HistoryScreen) CursorUp(n int) {
	hs.Dispatch(false, func() { hs.Screen.CursorUp(n) })
}

func (hs *HistoryScreen) CursorDown(n int) {
	hs.Dispatch(false, func() { hs.Screen.CursorDown(n) })
}

func (hs *HistoryScreen) CursorUp1(n int) {
	hs.Dispatch(false, func() { hs.Screen.CursorUp1(n) })
}

func (hs *HistoryScreen) CursorDown1(n int) {
	hs.Dispatch(false, func() { hs.Screen.CursorDown1(n) })
}

func (hs *HistoryScreen) CursorForward(n int) {
	hs.Dispatch(false, func() { hs.Screen.CursorForward(n) })
}

func (hs *HistoryScreen) CursorBack(n int) {
	hs.Dispatch(false, func() { hs.Screen.CursorBack(n) })
}

func (hs *HistoryScreen) CursorPosition(line, col int) {
	hs.Dispatch(false, func() { hs.Screen.CursorPosition(line, col) })
}

func (hs *HistoryScreen) CursorToColumn(col int) {
	hs.Dispatch(false, func() { hs.Screen.CursorToColumn(col) })
}

func (hs *HistoryScreen) CursorToLine(line int) {
	hs.Dispatch(false, func() { hs.Screen.CursorToLine(line) })
}

func (hs *HistoryScreen) SetMargins(top, bottom int) {
	hs.Dispatch(false, func() { hs.Screen.SetMargins(top, bottom) })
}

func (hs *HistoryScreen) InsertLines(n int) {
	hs.Dispatch(false, func() { hs.Screen.InsertLines(n) })
}

func (hs *HistoryScreen) DeleteLines(n int) {
	hs.Dispatch(false, func() { hs.Screen.DeleteLines(n) })
}

func (hs *HistoryScreen) EraseCharacters(n int) {
	hs.Dispatch(false, func() { hs.Screen.EraseCharacters(n) })
}

func (hs *HistoryScreen) EraseInLine(how int) {
	hs.Dispatch(false, func() { hs.Screen.EraseInLine(how) })
}

func (hs *HistoryScreen) InsertCharacters(n int) {
	hs.Dispatch(false, func() { hs.Screen.InsertCharacters(n) })
}

func (hs *HistoryScreen) DeleteCharacters(n int) {
	hs.Dispatch(false, func() { hs.Screen.DeleteCharacters(n) })
}

func (hs *HistoryScreen) SetTabStop() {
	hs.Dispatch(false, hs.Screen.SetTabStop)
}

func (hs *HistoryScreen) ClearTabStop(how int) {
	hs.Dispatch(false, func() { hs.Screen.ClearTabStop(how) })
}

func (hs *HistoryScreen) DefineCharset(code byte, mode string) {
	hs.Dispatch(false, func() { hs.Screen.DefineCharset(code, mode) })
}

func (hs *HistoryScreen) ShiftIn() {
	hs.Dispatch(false, hs.Screen.ShiftIn)
}

func (hs *HistoryScreen) ShiftOut() {
	hs.Dispatch(false, hs.Screen.ShiftOut)
}

func (hs *HistoryScreen) SetMode(private bool, codes ...int) {
	hs.Dispatch(false, func() { hs.Screen.SetMode(private, codes...) })
}

func (hs *HistoryScreen) ResetMode(private bool, codes ...int) {
	hs.Dispatch(false, func() { hs.Screen.ResetMode(private, codes...) })
}

func (hs *HistoryScreen) SelectGraphicRendition(params []int) {
	hs.Dispatch(false, func() { hs.Screen.SelectGraphicRendition(params) })
}

func (hs *HistoryScreen) SaveCursor() {
	hs.Dispatch(false, hs.Screen.SaveCursor)
}

func (hs *HistoryScreen) RestoreCursor() {
	hs.Dispatch(false, hs.Screen.RestoreCursor)
}

func (hs *HistoryScreen) Resize(lines, columns int) {
	hs.Dispatch(false, func() { hs.Screen.Resize(lines, columns) })
}

func (hs *HistoryScreen) AlignmentDisplay() {
	hs.Dispatch(false, hs.Screen.AlignmentDisplay)
}

func (hs *HistoryScreen) ReportDeviceAttributes(mode int, private bool) {
	hs.Dispatch(false, func() { hs.Screen.ReportDeviceAttributes(mode, private) })
}

func (hs *HistoryScreen) ReportDeviceStatus(mode int) {
	hs.Dispatch(false, func() { hs.Screen.ReportDeviceStatus(mode) })
}

func (hs *HistoryScreen) SetTitle(title string) {
	hs.Dispatch(false, func() { hs.Screen.SetTitle(title) })
}

func (hs *HistoryScreen) SetIconName(name string) {
	hs.Dispatch(false, func() { hs.Screen.SetIconName(name) })
}

func (hs *HistoryScreen) WriteProcessInput(data string) {
	hs.Dispatch(false, func() { hs.Screen.WriteProcessInput(data) })
}

func (hs *HistoryScreen) Debug(args ...interface{}) {
	hs.Dispatch(false, func() { hs.Screen.Debug(args...) })
}
