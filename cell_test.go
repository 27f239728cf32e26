package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankCell(t *testing.T) {
	c := blankCell(false)
	assert.Equal(t, " ", c.Data)
	assert.Equal(t, defaultColor, c.Foreground)
	assert.Equal(t, defaultColor, c.Background)
	assert.False(t, c.Reverse)

	c = blankCell(true)
	assert.True(t, c.Reverse)
}

func TestStubCellCarriesLeadStyle(t *testing.T) {
	lead := Cell{Data: "あ", Foreground: "red", Bold: true}
	stub := stubCell(lead)
	assert.Equal(t, "", stub.Data)
	assert.Equal(t, "red", stub.Foreground)
	assert.True(t, stub.Bold)
	assert.True(t, stub.isWideStub())
	assert.False(t, lead.isWideStub())
}

func TestWithDataLeavesStyleAlone(t *testing.T) {
	c := Cell{Data: "a", Foreground: "blue"}
	c2 := c.withData("b")
	assert.Equal(t, "b", c2.Data)
	assert.Equal(t, "blue", c2.Foreground)
	assert.Equal(t, "a", c.Data, "original cell must not be mutated")
}
