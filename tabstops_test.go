package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTabStopsEveryEighthColumn(t *testing.T) {
	stops := newTabStops(40)
	assert.True(t, stops[8])
	assert.True(t, stops[16])
	assert.False(t, stops[0])
	assert.False(t, stops[40])
}

func TestTabStopsNextFindsClosestStopAfterX(t *testing.T) {
	stops := newTabStops(40)
	assert.Equal(t, 8, stops.next(3, 40))
	assert.Equal(t, 16, stops.next(8, 40))
}

func TestTabStopsNextFallsBackToLastColumn(t *testing.T) {
	stops := tabStops{}
	assert.Equal(t, 39, stops.next(0, 40))
}

func TestTabStopsClearSingleAndAll(t *testing.T) {
	stops := newTabStops(40)
	stops.clear(8, 0)
	assert.False(t, stops[8])
	assert.True(t, stops[16])

	stops.clear(0, 3)
	assert.Empty(t, stops)
}

func TestScreenTabAdvancesToNextStop(t *testing.T) {
	s := NewScreen(40, 3)
	s.Tab()
	assert.Equal(t, 8, s.cursor.X)
	s.Tab()
	assert.Equal(t, 16, s.cursor.X)
}

func TestScreenSetAndClearTabStop(t *testing.T) {
	s := NewScreen(40, 3)
	s.CursorToColumn(5)
	s.SetTabStop()
	assert.True(t, s.tabs[4])

	s.ClearTabStop(0)
	assert.False(t, s.tabs[4])
}
