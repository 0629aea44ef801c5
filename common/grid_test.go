package common

import (
	"errors"
	"image/color"
	"testing"
)

func TestCoordRoundTrip(t *testing.T) {
	sizes := []struct {
		name          string
		width, height int
	}{
		{"single", 1, 1},
		{"wide", 7, 2},
		{"tall", 2, 9},
		{"square", 16, 16},
	}

	for _, s := range sizes {
		t.Run(s.name, func(t *testing.T) {
			for y := 0; y < s.height; y++ {
				for x := 0; x < s.width; x++ {
					id := ToCoordID(x, y, s.width)
					if got, want := ToPoint(id, s.width), (Point{X: x, Y: y}); got != want {
						t.Fatalf("ToPoint(ToCoordID(%d, %d)) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestToCoordIDRowMajor(t *testing.T) {
	if got := ToCoordID(3, 2, 5); got != 13 {
		t.Fatalf("ToCoordID(3, 2, 5) = %d, want 13", got)
	}
	if got := ToPoint(13, 5); got != (Point{X: 3, Y: 2}) {
		t.Fatalf("ToPoint(13, 5) = %v, want 3,2", got)
	}
}

func TestAtlasPixelPosition(t *testing.T) {
	cases := []struct {
		name                                 string
		tileID, cols, cell, padding, spacing int
		want                                 Point
	}{
		{"origin", 0, 4, 16, 0, 0, Point{0, 0}},
		{"second_row", 5, 4, 16, 0, 0, Point{16, 16}},
		{"end_of_row", 3, 4, 16, 0, 0, Point{48, 0}},
		{"padding", 0, 4, 16, 2, 0, Point{2, 2}},
		{"padding_and_spacing", 5, 4, 16, 2, 1, Point{19, 19}},
		{"wide_atlas", 9, 8, 8, 0, 0, Point{8, 8}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AtlasPixelPosition(c.tileID, c.cols, c.cell, c.padding, c.spacing)
			if got != c.want {
				t.Fatalf("AtlasPixelPosition(%d, %d, %d, %d, %d) = %v, want %v",
					c.tileID, c.cols, c.cell, c.padding, c.spacing, got, c.want)
			}
		})
	}
}

func TestZeroWidthPanics(t *testing.T) {
	calls := map[string]func(){
		"ToCoordID":          func() { ToCoordID(1, 1, 0) },
		"ToPoint":            func() { ToPoint(3, 0) },
		"AtlasCell":          func() { AtlasCell(3, 0) },
		"AtlasPixelPosition": func() { AtlasPixelPosition(3, 0, 16, 0, 0) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%s with zero width did not panic", name)
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("panic value = %v, want ErrInvalidArgument", r)
				}
			}()
			call()
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("Lerp(2, 4, 0.5) = %v, want 3", got)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#7F8093", color.RGBA{R: 0x7f, G: 0x80, B: 0x93, A: 0xff}, true},
		{"#000000", color.RGBA{A: 0xff}, true},
		{"7F8093", color.RGBA{}, false},
		{"#7F80", color.RGBA{}, false},
		{"#GG0000", color.RGBA{}, false},
	}
	for _, c := range cases {
		got, ok := ParseHexColor(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseHexColor(%q) = %v, %v, want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}
