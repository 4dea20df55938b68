package world

import "testing"

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (Point{}) {
			t.Errorf("Deltas of %v and its opposite do not cancel: %v", d, sum)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}

	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(\"up\") should fail")
	}
}

func TestPointAdjacent(t *testing.T) {
	p := Point{3, 3}
	if !p.Adjacent(Point{3, 4}) || !p.Adjacent(Point{2, 3}) {
		t.Error("Orthogonal neighbours should be adjacent")
	}
	if p.Adjacent(Point{4, 4}) || p.Adjacent(p) || p.Adjacent(Point{3, 5}) {
		t.Error("Diagonal, identical and distant points should not be adjacent")
	}
}
