package canvas_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/neuron/canvas"
	"github.com/katalvlaran/neuron/matrix"
)

//----------------------------------------------------------------------------//
// New, FromVector and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty sizes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := canvas.New(tc.rows, tc.cols, canvas.DefaultOptions())
			if !errors.Is(err, canvas.ErrEmptyCanvas) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, canvas.ErrEmptyCanvas)
			}
		})
	}
}

// TestFromVector_Size checks the length contract of FromVector.
func TestFromVector_Size(t *testing.T) {
	_, err := canvas.FromVector(2, 2, []float64{1, 2, 3}, canvas.DefaultOptions())
	if !errors.Is(err, canvas.ErrVectorSize) {
		t.Fatalf("FromVector error = %v; want %v", err, canvas.ErrVectorSize)
	}
	c, err := canvas.FromVector(2, 2, []float64{0, 0.5, 1, 0}, canvas.DefaultOptions())
	if err != nil {
		t.Fatalf("FromVector error: %v", err)
	}
	if got := c.String(); got != ".+\n#.\n" {
		t.Errorf("String() = %q; want %q", got, ".+\n#.\n")
	}
}

// TestInBounds checks InBounds on a 2×3 canvas.
func TestInBounds(t *testing.T) {
	c, err := canvas.New(2, 3, canvas.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		if !c.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		if c.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Enable / Reset / Vector Tests
//----------------------------------------------------------------------------//

// TestEnable_Falloff inks the centre of a 3×3 canvas under Conn4.
func TestEnable_Falloff(t *testing.T) {
	c, _ := canvas.New(3, 3, canvas.DefaultOptions())
	if !c.Enable(1, 1) {
		t.Fatal("Enable(1,1) = false; want true")
	}
	want := []float64{
		0, 0.8, 0,
		0.8, 1, 0.8,
		0, 0.8, 0,
	}
	assertVector(t, c.Vector(), want)

	// Inking a neighbour keeps existing ink and only softens blank cells.
	c.Enable(0, 1)
	want = []float64{
		0.8, 1, 0.8,
		0.8, 1, 0.8,
		0, 0.8, 0,
	}
	assertVector(t, c.Vector(), want)
}

// TestEnable_ZeroOptions gives the zero Options the default soft edge.
func TestEnable_ZeroOptions(t *testing.T) {
	c, err := canvas.New(2, 2, canvas.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Enable(0, 0)
	assertVector(t, c.Vector(), []float64{1, canvas.DefaultFalloff, canvas.DefaultFalloff, 0})
}

// TestEnable_NoFalloff inks only the target cell.
func TestEnable_NoFalloff(t *testing.T) {
	c, _ := canvas.New(2, 2, canvas.Options{Conn: canvas.Conn8, Falloff: canvas.NoFalloff})
	c.Enable(1, 1)
	assertVector(t, c.Vector(), []float64{0, 0, 0, 1})
}

// TestEnable_Conn8 softens diagonals too.
func TestEnable_Conn8(t *testing.T) {
	opts := canvas.DefaultOptions()
	opts.Conn = canvas.Conn8
	c, _ := canvas.New(2, 2, opts)
	c.Enable(0, 0)
	assertVector(t, c.Vector(), []float64{1, 0.8, 0.8, 0.8})
}

// TestEnable_OutOfRangeIgnored leaves the canvas untouched.
func TestEnable_OutOfRangeIgnored(t *testing.T) {
	c, _ := canvas.New(2, 2, canvas.DefaultOptions())
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 2}} {
		if c.Enable(rc[0], rc[1]) {
			t.Errorf("Enable(%d,%d) = true; want false", rc[0], rc[1])
		}
	}
	assertVector(t, c.Vector(), []float64{0, 0, 0, 0})
}

// TestReset blanks the canvas.
func TestReset(t *testing.T) {
	c, _ := canvas.New(2, 3, canvas.DefaultOptions())
	c.Enable(0, 0)
	c.Enable(1, 2)
	c.Reset()
	assertVector(t, c.Vector(), make([]float64, 6))
}

// TestCell reports bounds errors from the backing matrix.
func TestCell(t *testing.T) {
	c, _ := canvas.New(2, 2, canvas.DefaultOptions())
	c.Enable(1, 0)
	if v, err := c.Cell(1, 0); err != nil || v != 1 {
		t.Errorf("Cell(1,0) = %v, %v; want 1, nil", v, err)
	}
	if _, err := c.Cell(2, 0); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Errorf("Cell(2,0) error = %v; want %v", err, matrix.ErrOutOfRange)
	}
}

// TestVector_IsCopy ensures callers cannot mutate the canvas through Vector.
func TestVector_IsCopy(t *testing.T) {
	c, _ := canvas.New(1, 2, canvas.DefaultOptions())
	v := c.Vector()
	v[0] = 9
	if got, _ := c.Cell(0, 0); got != 0 {
		t.Errorf("Cell(0,0) = %v after mutating Vector(); want 0", got)
	}
}

// TestFromPointer maps pixels to cells.
func TestFromPointer(t *testing.T) {
	c, _ := canvas.New(28, 28, canvas.DefaultOptions())
	cases := []struct {
		x, y, block int
		row, col    int
		ok          bool
	}{
		{0, 0, 20, 0, 0, true},
		{39, 21, 20, 1, 1, true},
		{559, 559, 20, 27, 27, true},
		{560, 0, 20, 0, 28, false},
		{-1, 0, 20, 0, 0, false},
		{5, 5, 0, 0, 0, false},
	}
	for _, tc := range cases {
		r, cc, ok := c.FromPointer(tc.x, tc.y, tc.block)
		if ok != tc.ok || (ok && (r != tc.row || cc != tc.col)) {
			t.Errorf("FromPointer(%d,%d,%d) = (%d,%d,%v); want (%d,%d,%v)",
				tc.x, tc.y, tc.block, r, cc, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func assertVector(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v; want %v (got %v)", i, got[i], want[i], got)
			return
		}
	}
}
