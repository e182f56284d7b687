package main

import (
	"testing"

	"treepaint/internal/geometry"
)

func TestParseTrunk(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		wantStart geometry.Point
		wantEnd   geometry.Point
		wantErr   bool
	}{
		{"explicit", "10,20,30,40", geometry.Pt(10, 20), geometry.Pt(30, 40), false},
		{"spaces tolerated", " 1, 2, 3, 4 ", geometry.Pt(1, 2), geometry.Pt(3, 4), false},
		{"too few parts", "1,2,3", geometry.Point{}, geometry.Point{}, true},
		{"not a number", "1,2,three,4", geometry.Point{}, geometry.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseTrunk(tt.flag, 700, 900)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("parseTrunk = %v..%v, want %v..%v", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParseTrunkDefault(t *testing.T) {
	start, end, err := parseTrunk("", 700, 900)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if start == end {
		t.Fatal("default trunk is degenerate")
	}
	if start.X != 350 || end.X != 350 {
		t.Errorf("default trunk not centered: %v..%v", start, end)
	}
	if end.Y >= start.Y {
		t.Errorf("default trunk does not rise: %v..%v", start, end)
	}
}
