package core

import "testing"

func TestNewGridStartsAsWalls(t *testing.T) {
	g := NewGrid(4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("unexpected dims %dx%d", g.W, g.H)
	}
	if got := g.Count(Wall); got != 12 {
		t.Fatalf("expected 12 walls, got %d", got)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestGridRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 1, Path)
	if idx := g.Index(2, 1); idx != 5 {
		t.Fatalf("Index(2,1) = %d, want 5", idx)
	}
	if g.Cells()[5] != Path {
		t.Fatal("Set did not write row-major slot")
	}
	if g.At(2, 1) != Path {
		t.Fatal("At did not read back Path")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(-1, 0, Path)
	g.Set(2, 0, Path)
	if g.Count(Path) != 0 {
		t.Fatal("out of bounds Set must be ignored")
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.InBounds(p.X, p.Y) {
			t.Fatalf("%v reported in bounds", p)
		}
		if g.At(p.X, p.Y) != Wall {
			t.Fatalf("%v should read as Wall", p)
		}
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Path)
	cp := g.Clone()
	cp.Set(1, 1, Path)
	if g.At(1, 1) != Wall {
		t.Fatal("Clone shares backing storage")
	}
	if cp.At(0, 0) != Path {
		t.Fatal("Clone lost original content")
	}
}

func TestGridBinary(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(1, 0, Path)
	bin := g.Binary()
	if bin[0] != 0 || bin[1] != 1 {
		t.Fatalf("unexpected binary layout %v", bin)
	}
}
