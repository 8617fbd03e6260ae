package canvas_test

import (
	"testing"

	"github.com/katalvlaran/neuron/canvas"
)

// TestStrokes_Conn4 counts separate inked regions; falloff never bridges them.
func TestStrokes_Conn4(t *testing.T) {
	c, _ := canvas.New(3, 5, canvas.DefaultOptions())
	c.Enable(0, 0)
	c.Enable(1, 0)
	c.Enable(0, 3)
	c.Enable(2, 4)

	strokes := c.Strokes()
	if len(strokes) != 3 {
		t.Fatalf("Strokes() = %d; want 3 (%v)", len(strokes), strokes)
	}
	if len(strokes[0]) != 2 {
		t.Errorf("first stroke has %d cells; want 2", len(strokes[0]))
	}
	r, col := c.Coordinate(strokes[2][0])
	if r != 2 || col != 4 {
		t.Errorf("last stroke starts at (%d,%d); want (2,4)", r, col)
	}
}

// TestStrokes_Conn8 joins diagonal neighbours.
func TestStrokes_Conn8(t *testing.T) {
	opts := canvas.DefaultOptions()
	opts.Conn = canvas.Conn8
	c, _ := canvas.New(3, 3, opts)
	c.Enable(0, 0)
	c.Enable(1, 1)
	c.Enable(2, 2)
	if n := len(c.Strokes()); n != 1 {
		t.Errorf("Strokes() = %d; want 1", n)
	}

	c4, _ := canvas.New(3, 3, canvas.DefaultOptions())
	c4.Enable(0, 0)
	c4.Enable(1, 1)
	c4.Enable(2, 2)
	if n := len(c4.Strokes()); n != 3 {
		t.Errorf("Conn4 Strokes() = %d; want 3", n)
	}
}

// TestStrokes_Blank returns nothing for a blank canvas.
func TestStrokes_Blank(t *testing.T) {
	c, _ := canvas.New(4, 4, canvas.DefaultOptions())
	if s := c.Strokes(); len(s) != 0 {
		t.Errorf("Strokes() = %v; want none", s)
	}
}
