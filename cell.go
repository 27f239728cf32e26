package vtscreen

// Cell is an immutable styled character. Every "update" to a Cell produces a
// new value; nothing in this package mutates a Cell in place.
//
// Data holds the grapheme cluster occupying this column. The empty string is
// the sentinel for the right half of a wide (2-cell) character: the lead
// cell at column c carries the full cluster, and the stub at c+1 carries "".
type Cell struct {
	Data          string
	Foreground    string
	Background    string
	Bold          bool
	Italics       bool
	Underscore    bool
	Strikethrough bool
	Reverse       bool
	Blink         bool
}

// defaultColor is the named token for "no color set", per spec §1.
const defaultColor = "default"

// blankCell returns the screen default cell: a single space with Reverse
// set iff screen-reverse mode (DECSCNM) is active. Per-line defaults and
// freshly-read missing columns both resolve to this.
func blankCell(reverse bool) Cell {
	return Cell{
		Data:       " ",
		Foreground: defaultColor,
		Background: defaultColor,
		Reverse:    reverse,
	}
}

// stubCell is the empty-data right half of a wide character, carrying the
// same style as its lead so a renderer skipping stubs still sees consistent
// attributes if it doesn't.
func stubCell(attrs Cell) Cell {
	c := attrs
	c.Data = ""
	return c
}

// withData returns a copy of c with Data replaced, leaving style untouched.
func (c Cell) withData(data string) Cell {
	c.Data = data
	return c
}

// isWideStub reports whether c is the empty right half of a wide character.
func (c Cell) isWideStub() bool {
	return c.Data == ""
}
