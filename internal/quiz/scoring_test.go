package quiz

import "testing"

func TestPoints(t *testing.T) {
	tests := []struct {
		name      string
		correct   bool
		remaining float64
		want      int
	}{
		{"full time", true, 20, 200},
		{"no time left", true, 0, 100},
		{"half time", true, 10, 150},
		{"half second rounds up", true, 12.5, 163},
		{"quarter second rounds down", true, 0.25, 101},
		{"incorrect", false, 20, 0},
		{"incorrect timeout", false, 0, 0},
		{"clamped above", true, 25, 200},
		{"clamped below", true, -3, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.correct, tt.remaining); got != tt.want {
				t.Errorf("Points(%v, %v) = %d, want %d", tt.correct, tt.remaining, got, tt.want)
			}
		})
	}
}

func TestMaxPoints(t *testing.T) {
	if got := MaxPoints(10); got != 2000 {
		t.Fatalf("MaxPoints(10) = %d, want 2000", got)
	}
}
