// Package vtscreen implements the presentation-engine core of a VT-family
// terminal emulator: a styled character grid, cursor, scroll region, mode
// flags, character sets, tab stops, a saved-cursor stack, and optional
// scrollback with pagination.
//
// Screen consumes already-decoded operations (Draw, CursorPosition,
// SelectGraphicRendition, and so on) rather than raw bytes; turning a byte
// stream into those calls is an upstream concern — see internal/escseq for
// one such driver. Screen is single-threaded and synchronous: every
// operation runs to completion with no internal concurrency, and a Screen
// value must not be shared across goroutines without external
// serialization.
//
// # Basic usage
//
//	s := vtscreen.NewScreen(80, 24)
//	s.Draw("hello")
//	for _, line := range s.Display() {
//	    fmt.Println(line)
//	}
//
// HistoryScreen adds bounded scrollback on top of a Screen:
//
//	hs := vtscreen.NewHistoryScreen(80, 24, 1000, 0.5)
//	hs.Draw("...")
//	hs.PrevPage()
package vtscreen
