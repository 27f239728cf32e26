package vtscreen

// Reset returns the screen to its initial state: empty grid, full-screen
// margins, default modes, reset charsets and tab stops, home cursor. Every
// line is marked dirty so a consumer repaints the whole display.
func (s *Screen) Reset() {
	s.grid = newGrid(s.columns)
	s.margins = nil
	s.modes = newModeSet()
	s.title = ""
	s.iconName = ""
	s.g0 = identityCharset()
	s.g1 = vt100Charset()
	s.charset = false
	s.tabs = newTabStops(s.columns)
	s.savepoints = nil
	s.savedColumns = 0
	s.cursor = Cursor{Attrs: s.defaultCell()}
	s.markAllDirty()
}
