package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVT100CharsetTranslatesLineDrawingRange(t *testing.T) {
	table := vt100Charset()
	assert.Equal(t, "─", table.translate("q"))
	assert.Equal(t, "┌", table.translate("l"))
	assert.Equal(t, "A", table.translate("A"), "bytes outside 0x5f-0x7e pass through unchanged")
}

func TestBritishCharsetOnlyRemapsPoundSign(t *testing.T) {
	table := britishCharset()
	assert.Equal(t, "£", table.translate("#"))
	assert.Equal(t, "abc", table.translate("abc"))
}

func TestCharsetByCodeUnknownIsRejected(t *testing.T) {
	_, ok := charsetByCode('Z')
	assert.False(t, ok)
}

func TestDefineCharsetSelectsG0OrG1ByMode(t *testing.T) {
	s := NewScreen(10, 3)
	s.DefineCharset('0', "(")
	assert.Equal(t, vt100Charset(), s.g0)
	assert.Equal(t, vt100Charset(), s.g1, "g1 keeps its VT100 default")

	s.DefineCharset('A', ")")
	assert.Equal(t, britishCharset(), s.g1)
}

func TestShiftInAndShiftOutSwitchActiveCharset(t *testing.T) {
	s := NewScreen(10, 3)
	s.DefineCharset('0', ")")
	s.ShiftOut()
	s.Draw("q")
	assert.Equal(t, "─", s.CellAt(0, 0).Data)

	s.ShiftIn()
	s.Draw("q")
	assert.Equal(t, "q", s.CellAt(0, 1).Data)
}
