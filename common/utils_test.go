package common

import "testing"

func TestSign(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"positive wheel notch", 120, 1},
		{"negative wheel notch", -120, -1},
		{"fractional trackpad", 0.25, 1},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sign(tt.in); got != tt.want {
				t.Errorf("Sign(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 4, 8); got != 4 {
		t.Errorf("Coalesce(0, 0, 4, 8) = %d, want 4", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("Coalesce(\"\", \"\") = %q, want empty", got)
	}
}

func TestColorNormalized(t *testing.T) {
	r, g, b := Color{R: 255, G: 0, B: 51}.Normalized()
	if r != 1 || g != 0 || b != 0.2 {
		t.Errorf("Normalized() = (%v, %v, %v), want (1, 0, 0.2)", r, g, b)
	}
}
