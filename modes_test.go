package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewModeSetEnablesDECAWMAndDECTCEMByDefault(t *testing.T) {
	m := newModeSet()
	assert.True(t, m.has(ModeDECAWM, true))
	assert.True(t, m.has(ModeDECTCEM, true))
	assert.False(t, m.has(ModeIRM, false))
}

func TestModeKeyNamespacesPrivateAndAnsiCodesSeparately(t *testing.T) {
	assert.NotEqual(t, modeKey(6, true), modeKey(6, false), "private mode 6 (DECOM) must not collide with ANSI mode 6")
}

func TestModeSetSetAndReset(t *testing.T) {
	m := modeSet{}
	m.set(ModeIRM, false)
	assert.True(t, m.has(ModeIRM, false))
	m.reset(ModeIRM, false)
	assert.False(t, m.has(ModeIRM, false))
}

func TestModeSetResetToDefaultRestoresInitialModes(t *testing.T) {
	m := newModeSet()
	m.set(ModeIRM, false)
	m.reset(ModeDECAWM, true)
	m.resetToDefault()
	assert.True(t, m.has(ModeDECAWM, true))
	assert.True(t, m.has(ModeDECTCEM, true))
	assert.False(t, m.has(ModeIRM, false))
}

func TestSetModeAndResetModeOnScreen(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetMode(false, ModeIRM)
	assert.True(t, s.modes.has(ModeIRM, false))
	s.ResetMode(false, ModeIRM)
	assert.False(t, s.modes.has(ModeIRM, false))
}

func TestSetModeDECOMMovesCursorHome(t *testing.T) {
	s := NewScreen(10, 5)
	s.CursorPosition(3, 3)
	s.SetMargins(2, 4)
	s.SetMode(true, ModeDECOM)
	assert.Equal(t, s.margins.Top, s.cursor.Y)
	assert.Equal(t, 0, s.cursor.X)
}
