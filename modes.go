package vtscreen

// ANSI and DEC private mode numbers this package knows about. DEC private
// codes share numeric values with unrelated ANSI modes (e.g. private 6 is
// DECOM, ANSI 6 is unused but the collision is real for other codes), so
// private codes are stored left-shifted by 5 bits — see modeKey.
const (
	ModeDECCOLM = 3  // private: 132-column mode
	ModeIRM     = 4  // ANSI: insert/replace
	ModeDECSCNM = 5  // private: screen reverse video
	ModeDECOM   = 6  // private: origin mode
	ModeDECAWM  = 7  // private: auto-wrap
	ModeDECTCEM = 25 // private: text cursor enable
	ModeLNM     = 20 // ANSI: linefeed/newline
)

// modeKey folds a mode code and its private/ANSI namespace into a single
// map key by shifting private codes left by 5 bits, per spec's modes
// namespace design.
func modeKey(code int, private bool) int {
	if private {
		return code << 5
	}
	return code
}

// modeSet is a small set of active mode keys (see modeKey).
type modeSet map[int]bool

// newModeSet returns the initial mode set: DECAWM and DECTCEM enabled.
func newModeSet() modeSet {
	m := modeSet{}
	m[modeKey(ModeDECAWM, true)] = true
	m[modeKey(ModeDECTCEM, true)] = true
	return m
}

func (m modeSet) has(code int, private bool) bool {
	return m[modeKey(code, private)]
}

func (m modeSet) set(code int, private bool) {
	m[modeKey(code, private)] = true
}

func (m modeSet) reset(code int, private bool) {
	delete(m, modeKey(code, private))
}

// resetToDefault restores m to the initial default set in place.
func (m modeSet) resetToDefault() {
	for k := range m {
		delete(m, k)
	}
	m[modeKey(ModeDECAWM, true)] = true
	m[modeKey(ModeDECTCEM, true)] = true
}
