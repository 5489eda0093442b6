package display

import "testing"

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		in   []Bounds
		want Bounds
	}{
		{
			name: "empty",
			in:   nil,
			want: Bounds{},
		},
		{
			name: "single",
			in:   []Bounds{{X: 0, Y: 0, Width: 1920, Height: 1080}},
			want: Bounds{X: 0, Y: 0, Width: 1920, Height: 1080},
		},
		{
			name: "side by side",
			in: []Bounds{
				{X: 0, Y: 0, Width: 1920, Height: 1080},
				{X: 1920, Y: 0, Width: 1280, Height: 1024},
			},
			want: Bounds{X: 0, Y: 0, Width: 3200, Height: 1080},
		},
		{
			name: "negative origin secondary",
			in: []Bounds{
				{X: 0, Y: 0, Width: 1920, Height: 1080},
				{X: -1280, Y: -200, Width: 1280, Height: 1024},
			},
			want: Bounds{X: -1280, Y: -200, Width: 3200, Height: 1280},
		},
	}

	for _, tt := range tests {
		if got := Union(tt.in); got != tt.want {
			t.Errorf("%s: Union = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	screen := Bounds{X: 0, Y: 0, Width: 1920, Height: 1080}

	tests := []struct {
		name         string
		b            Bounds
		x, y, w, h   int
		wantX, wantY int
	}{
		{"inside untouched", screen, 100, 200, 300, 100, 100, 200},
		{"right overflow", screen, 1900, 0, 300, 100, 1620, 0},
		{"bottom overflow", screen, 0, 1050, 300, 100, 0, 980},
		{"negative position", screen, -50, -20, 300, 100, 0, 0},
		{"larger than screen keeps origin", screen, 100, 100, 2500, 100, 0, 100},
		{"zero bounds passthrough", Bounds{}, -500, 9999, 300, 100, -500, 9999},
		{
			"offset virtual screen",
			Bounds{X: -1280, Y: 0, Width: 3200, Height: 1080},
			-1400, 10, 300, 100, -1280, 10,
		},
	}

	for _, tt := range tests {
		gotX, gotY := Clamp(tt.b, tt.x, tt.y, tt.w, tt.h)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("%s: Clamp = (%d, %d), want (%d, %d)", tt.name, gotX, gotY, tt.wantX, tt.wantY)
		}
	}
}
