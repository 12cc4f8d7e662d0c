package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasSet(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 4)
	c.Set(0, 0)
	assert.Equal(t, rune(0x2801), c.Grid[0][0])

	c.Set(1, 3)
	assert.Equal(t, rune(0x2801|0x80), c.Grid[0][0])

	c.Set(7, 9)
	assert.Equal(t, rune(0x2800|0x10), c.Grid[2][3])
}

func TestCanvasSetOutOfRange(t *testing.T) {
	t.Parallel()

	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)

	for _, row := range c.Grid {
		for _, r := range row {
			assert.Equal(t, rune(0x2800), r)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	t.Parallel()

	c := NewCanvas(3, 3)
	c.Set(0, 0)
	c.Set(5, 11)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			assert.Equal(t, rune(0x2800), r)
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)

	for col := 0; col < 4; col++ {
		assert.Equal(t, rune(0x2800|0x1|0x8), c.Grid[0][col], "col %d", col)
	}
}

func TestCanvasDrawRect(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 2)
	c.DrawRect(0, 0, 7, 7)

	assert.NotEqual(t, rune(0x2800), c.Grid[0][0])
	assert.NotEqual(t, rune(0x2800), c.Grid[0][3])
	assert.NotEqual(t, rune(0x2800), c.Grid[1][0])
	assert.NotEqual(t, rune(0x2800), c.Grid[1][3])

	// Inner cells carry the top edge only, no fill below it
	assert.Equal(t, rune(0x2809), c.Grid[0][1])
	assert.Equal(t, rune(0x2809), c.Grid[0][2])
}

func TestCanvasString(t *testing.T) {
	t.Parallel()

	c := NewCanvas(2, 2)
	out := c.String()
	assert.Equal(t, 2, strings.Count(out, "\n"))

	c.Set(0, 0)
	assert.True(t, strings.HasPrefix(c.String(), "⠁"))
}
