package vtscreen

// grid is the sparse lines x columns matrix: a line index maps to a
// column-indexed cell map. A missing line, or a missing column within an
// existing line, both resolve to whatever default the caller supplies —
// the grid itself carries no notion of "the" default cell, since that
// notion depends on screen-reverse mode (see (*Screen).defaultCell).
type grid struct {
	columns int
	rows    map[int]map[int]Cell
}

func newGrid(columns int) *grid {
	return &grid{columns: columns, rows: map[int]map[int]Cell{}}
}

// at returns the cell at (y,x), or def if the line or column is unset.
// Callers MUST NOT mutate the returned value expecting it to persist.
func (g *grid) at(y, x int, def Cell) Cell {
	row := g.rows[y]
	if row == nil {
		return def
	}
	if c, ok := row[x]; ok {
		return c
	}
	return def
}

func (g *grid) set(y, x int, c Cell) {
	row := g.rows[y]
	if row == nil {
		row = map[int]Cell{}
		g.rows[y] = row
	}
	row[x] = c
}

// clearCell removes any stored value at (y,x), letting it fall back to the
// line's default on next read.
func (g *grid) clearCell(y, x int) {
	row := g.rows[y]
	if row == nil {
		return
	}
	delete(row, x)
}

// clearLine removes every stored cell on line y.
func (g *grid) clearLine(y int) {
	delete(g.rows, y)
}

// clearAll empties the grid entirely.
func (g *grid) clearAll() {
	g.rows = map[int]map[int]Cell{}
}

// moveLine relocates all cells of line src to line dst, clearing src.
// A no-op if src == dst.
func (g *grid) moveLine(src, dst int) {
	if src == dst {
		return
	}
	row := g.rows[src]
	delete(g.rows, src)
	if row == nil {
		delete(g.rows, dst)
		return
	}
	g.rows[dst] = row
}

// trimLine drops any stored column >= columns on line y, used after a
// resize narrows the grid.
func (g *grid) trimLine(y, columns int) {
	row := g.rows[y]
	if row == nil {
		return
	}
	for x := range row {
		if x >= columns {
			delete(row, x)
		}
	}
}

// line returns the raw column map for y, or nil if the line has never been
// written to. Read-only: callers must not mutate the result.
func (g *grid) line(y int) map[int]Cell {
	return g.rows[y]
}

// maxColumn returns the highest stored column index on line y, or -1 if the
// line is empty or unset.
func (g *grid) maxColumn(y int) int {
	row := g.rows[y]
	max := -1
	for x := range row {
		if x > max {
			max = x
		}
	}
	return max
}

// shiftRight moves every cell at or after column x on line y rightward by
// n, dropping anything that would land at or past g.columns, then fills
// the vacated [x, x+n) span with fill. Used by IRM insertion and
// insert_characters.
func (g *grid) shiftRight(y, x, n int, fill Cell) {
	row := g.rows[y]
	newRow := map[int]Cell{}
	for cx, c := range row {
		if cx < x {
			newRow[cx] = c
			continue
		}
		if nx := cx + n; nx < g.columns {
			newRow[nx] = c
		}
	}
	end := x + n
	if end > g.columns {
		end = g.columns
	}
	for cx := x; cx < end; cx++ {
		newRow[cx] = fill
	}
	if len(newRow) == 0 {
		delete(g.rows, y)
		return
	}
	g.rows[y] = newRow
}

// shiftLeft moves every cell at or after column x+n on line y leftward by
// n, and fills the vacated tail with fill. Used by delete_characters.
func (g *grid) shiftLeft(y, x, n int, fill Cell) {
	row := g.rows[y]
	newRow := map[int]Cell{}
	for cx, c := range row {
		switch {
		case cx < x:
			newRow[cx] = c
		case cx >= x+n:
			newRow[cx-n] = c
		}
	}
	start := g.columns - n
	if start < x {
		start = x
	}
	for cx := start; cx < g.columns; cx++ {
		newRow[cx] = fill
	}
	if len(newRow) == 0 {
		delete(g.rows, y)
		return
	}
	g.rows[y] = newRow
}
