// Package escseq turns a raw byte stream into the semantic operation calls
// a vtscreen.Screen (or vtscreen.HistoryScreen) expects. It is the upstream
// parser the core presentation engine declares external to itself.
package escseq

// Target is the operation set a Parser drives. Both *vtscreen.Screen and
// *vtscreen.HistoryScreen satisfy it; HistoryScreen re-declares every
// operation so each one runs through its Dispatch, and Index,
// ReverseIndex, EraseInDisplay and Reset additionally do scrollback
// bookkeeping.
type Target interface {
	Draw(text string)

	CarriageReturn()
	Index()
	ReverseIndex()
	Linefeed()
	Backspace()
	Tab()
	Bell()

	CursorUp(n int)
	CursorDown(n int)
	CursorUp1(n int)
	CursorDown1(n int)
	CursorForward(n int)
	CursorBack(n int)
	CursorPosition(line, col int)
	CursorToColumn(col int)
	CursorToLine(line int)

	SetMargins(top, bottom int)
	InsertLines(n int)
	DeleteLines(n int)

	EraseCharacters(n int)
	EraseInLine(how int)
	EraseInDisplay(how int)
	InsertCharacters(n int)
	DeleteCharacters(n int)

	SetTabStop()
	ClearTabStop(how int)

	DefineCharset(code byte, mode string)
	ShiftIn()
	ShiftOut()

	SetMode(private bool, codes ...int)
	ResetMode(private bool, codes ...int)
	SelectGraphicRendition(params []int)

	SaveCursor()
	RestoreCursor()
	Reset()
	Resize(lines, columns int)
	AlignmentDisplay()

	ReportDeviceAttributes(mode int, private bool)
	ReportDeviceStatus(mode int)

	SetTitle(title string)
	SetIconName(name string)
	WriteProcessInput(data string)
	Debug(args ...interface{})

	Dispatch(isPageNav bool, fn func())
}
