package vtscreen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankRow(columns int) string {
	return strings.Repeat(" ", columns)
}

func TestDrawBasicText(t *testing.T) {
	s := NewScreen(10, 3)
	s.Draw("hi")
	assert.Equal(t, "hi"+strings.Repeat(" ", 8), s.Display()[0])
	assert.Equal(t, 2, s.cursor.X)
}

func TestDrawWrapsAtRightMarginUnderDECAWM(t *testing.T) {
	s := NewScreen(5, 3)
	s.Draw("abcde")
	assert.Equal(t, s.columns, s.cursor.X, "cursor should be wrap-pending, not yet wrapped")
	s.Draw("f")
	assert.Equal(t, "abcde", s.Display()[0])
	assert.Equal(t, "f"+strings.Repeat(" ", 4), s.Display()[1])
	assert.Equal(t, 1, s.cursor.Y)
	assert.Equal(t, 1, s.cursor.X)
}

func TestDrawWideCharacterWritesStub(t *testing.T) {
	s := NewScreen(10, 3)
	s.Draw("a")
	s.Draw("あ")
	assert.Equal(t, "aあ"+strings.Repeat(" ", 7), s.Display()[0])
	cell := s.CellAt(0, 2)
	assert.True(t, cell.isWideStub())
	assert.Equal(t, 3, s.cursor.X)
}

func TestDrawWideCharacterAtLineEndSkipsStub(t *testing.T) {
	s := NewScreen(2, 3)
	s.Draw("a")
	s.Draw("あ")
	// the lead cell is written into the last column even though there is no
	// room for its stub; Draw only wraps when cursor.X was already at
	// columns when the cluster's turn came, not when a wide cluster won't
	// fit in what remains.
	assert.Equal(t, "aあ", s.Display()[0])
	assert.Equal(t, blankRow(2), s.Display()[1])
	assert.Equal(t, s.columns, s.cursor.X)
}

func TestDrawCombiningMarkJoinsPreviousCell(t *testing.T) {
	s := NewScreen(10, 3)
	s.Draw("e")
	s.Draw("́")
	assert.Equal(t, "é", s.CellAt(0, 0).Data)
	assert.Equal(t, 1, s.cursor.X)
}

func TestInsertReplaceModeShiftsExistingCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.Draw("abc")
	s.SetMode(false, ModeIRM)
	s.CursorToColumn(1)
	s.Draw("X")
	assert.Equal(t, "Xabc", s.Display()[0][:4])
}

func TestCarriageReturnAndLinefeed(t *testing.T) {
	s := NewScreen(10, 3)
	s.Draw("ab")
	s.CarriageReturn()
	assert.Equal(t, 0, s.cursor.X)
	s.Linefeed()
	assert.Equal(t, 1, s.cursor.Y)
	assert.Equal(t, 0, s.cursor.X)
}

func TestIndexScrollsAtBottomMargin(t *testing.T) {
	s := NewScreen(5, 3)
	s.Draw("a")
	s.CursorPosition(3, 1)
	s.Draw("c")
	s.Index()
	assert.Equal(t, blankRow(5), s.Display()[0])
	assert.Equal(t, "c"+strings.Repeat(" ", 4), s.Display()[1])
}

func TestReverseIndexScrollsAtTopMargin(t *testing.T) {
	s := NewScreen(5, 3)
	s.CursorPosition(1, 1)
	s.Draw("a")
	s.CursorPosition(1, 1)
	s.ReverseIndex()
	assert.Equal(t, blankRow(5), s.Display()[0])
	assert.Equal(t, "a"+strings.Repeat(" ", 4), s.Display()[1])
}

func TestSetMarginsStoresZeroBasedRegionAndHomesCursor(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetMargins(2, 4)
	require.NotNil(t, s.margins)
	assert.Equal(t, 1, s.margins.Top)
	assert.Equal(t, 3, s.margins.Bottom)
	assert.Equal(t, 0, s.cursor.X)
	assert.Equal(t, 0, s.cursor.Y, "without origin mode, home is the top-left corner of the screen")
}

func TestSetMarginsZeroZeroClearsRegion(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetMargins(2, 4)
	s.SetMargins(0, 0)
	assert.Nil(t, s.margins)
}

func TestInsertLinesShiftsWithinMargins(t *testing.T) {
	s := NewScreen(5, 5)
	for i := 1; i <= 5; i++ {
		s.CursorPosition(i, 1)
		s.Draw(string(rune('0' + i)))
	}
	s.CursorPosition(2, 1)
	s.InsertLines(1)
	disp := s.Display()
	assert.Equal(t, "1"+strings.Repeat(" ", 4), disp[0])
	assert.Equal(t, blankRow(5), disp[1])
	assert.Equal(t, "2"+strings.Repeat(" ", 4), disp[2])
	assert.Equal(t, "3"+strings.Repeat(" ", 4), disp[3])
	assert.Equal(t, "4"+strings.Repeat(" ", 4), disp[4])
}

func TestDeleteLinesShiftsWithinMargins(t *testing.T) {
	s := NewScreen(5, 5)
	for i := 1; i <= 5; i++ {
		s.CursorPosition(i, 1)
		s.Draw(string(rune('0' + i)))
	}
	s.CursorPosition(2, 1)
	s.DeleteLines(1)
	disp := s.Display()
	assert.Equal(t, "1"+strings.Repeat(" ", 4), disp[0])
	assert.Equal(t, "3"+strings.Repeat(" ", 4), disp[1])
	assert.Equal(t, "4"+strings.Repeat(" ", 4), disp[2])
	assert.Equal(t, "5"+strings.Repeat(" ", 4), disp[3])
	assert.Equal(t, blankRow(5), disp[4])
}

func TestEraseInLineModes(t *testing.T) {
	s := NewScreen(5, 1)
	s.Draw("abcde")
	s.CursorToColumn(3)
	s.EraseInLine(0)
	assert.Equal(t, "ab"+strings.Repeat(" ", 3), s.Display()[0])

	s2 := NewScreen(5, 1)
	s2.Draw("abcde")
	s2.CursorToColumn(3)
	s2.EraseInLine(1)
	assert.Equal(t, strings.Repeat(" ", 3)+"de", s2.Display()[0])

	s3 := NewScreen(5, 1)
	s3.Draw("abcde")
	s3.EraseInLine(2)
	assert.Equal(t, blankRow(5), s3.Display()[0])
}

func TestEraseInDisplayModes(t *testing.T) {
	s := NewScreen(3, 3)
	s.Draw("abc")
	s.CursorPosition(2, 1)
	s.Draw("def")
	s.CursorPosition(3, 1)
	s.Draw("ghi")

	s.CursorPosition(2, 2)
	s.EraseInDisplay(0)
	disp := s.Display()
	assert.Equal(t, "abc", disp[0])
	assert.Equal(t, "d"+strings.Repeat(" ", 2), disp[1])
	assert.Equal(t, blankRow(3), disp[2])
}

func TestSaveRestoreCursorRoundTrip(t *testing.T) {
	s := NewScreen(10, 5)
	s.CursorPosition(3, 4)
	s.SelectGraphicRendition([]int{1, 31})
	s.SaveCursor()

	s.CursorPosition(1, 1)
	s.SelectGraphicRendition(nil)

	s.RestoreCursor()
	assert.Equal(t, 3, s.cursor.Y+1)
	assert.Equal(t, 4, s.cursor.X+1)
	assert.True(t, s.cursor.Attrs.Bold)
	assert.Equal(t, "red", s.cursor.Attrs.Foreground)
}

func TestRestoreCursorWithEmptyStackHomesCursorAndResetsOrigin(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetMode(true, ModeDECOM)
	s.CursorPosition(2, 2)
	require.NotEqual(t, 0, s.cursor.X)
	require.NotEqual(t, 0, s.cursor.Y)

	s.RestoreCursor()
	assert.Equal(t, 0, s.cursor.X)
	assert.Equal(t, 0, s.cursor.Y)
	assert.False(t, s.modes.has(ModeDECOM, true))
}

func TestResizeShrinkDropsLinesFromTop(t *testing.T) {
	s := NewScreen(10, 5)
	s.Draw("hello")
	s.Resize(3, 6)
	assert.Equal(t, 3, s.Lines())
	assert.Equal(t, 6, s.Columns())
	assert.Equal(t, blankRow(6), s.Display()[0], "shrinking from 5 to 3 lines drops the top two, including \"hello\"")
}

func TestResetClearsGridAndModes(t *testing.T) {
	s := NewScreen(5, 3)
	s.Draw("abc")
	s.SetMode(false, ModeIRM)
	s.Reset()
	assert.Equal(t, blankRow(5), s.Display()[0])
	assert.False(t, s.modes.has(ModeIRM, false))
	assert.Equal(t, 0, s.cursor.X)
	assert.Equal(t, 0, s.cursor.Y)
}

func TestAlignmentDisplayFillsScreenWithE(t *testing.T) {
	s := NewScreen(4, 2)
	s.AlignmentDisplay()
	assert.Equal(t, "EEEE", s.Display()[0])
	assert.Equal(t, "EEEE", s.Display()[1])
}

func TestCursorToLineUnderDECOMClampsOnlyToFullScreen(t *testing.T) {
	s := NewScreen(5, 10)
	s.SetMargins(3, 7)
	s.SetMode(true, ModeDECOM)
	s.CursorToLine(20)
	assert.Equal(t, s.lines-1, s.cursor.Y, "clamps to the full screen, not the margin region")
}

func TestDirtyTrackingReportsWrittenLines(t *testing.T) {
	s := NewScreen(5, 3)
	s.ClearDirty()
	s.CursorPosition(2, 1)
	s.Draw("x")
	assert.Contains(t, s.Dirty(), 1)
	s.ClearDirty()
	assert.Empty(t, s.Dirty())
}
