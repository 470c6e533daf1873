package renderer

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func TestUniformSquareOffset(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		sample int
		wantX  float32
		wantY  float32
	}{
		{"single sample hits pixel center", 1, 0, 0, 0},
		{"two samples: left of center line", 2, 0, -0.25, 0},
		{"two samples: right of center line", 2, 1, 0.25, 0},
		{"grid of four: bottom-left", 4, 0, -0.25, -0.25},
		{"grid of four: bottom-right", 4, 1, 0.25, -0.25},
		{"grid of four: top-left", 4, 2, -0.25, 0.25},
		{"grid of four: top-right", 4, 3, 0.25, 0.25},
		{"three samples round up to a 2x2 grid", 3, 2, -0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := uniformSquareOffset(tt.sample, tt.total)
			if math32.Abs(x-tt.wantX) > 1e-6 || math32.Abs(y-tt.wantY) > 1e-6 {
				t.Errorf("Expected offset (%f, %f), got (%f, %f)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestUniformSquareOffset_StaysInsidePixel(t *testing.T) {
	for _, total := range []int{1, 2, 3, 4, 5, 9, 16, 25, 100} {
		for sample := 0; sample < total; sample++ {
			x, y := uniformSquareOffset(sample, total)
			if x < -0.5 || x >= 0.5 || y < -0.5 || y >= 0.5 {
				t.Fatalf("total=%d sample=%d: offset (%f, %f) escapes the pixel", total, sample, x, y)
			}
		}
	}
}

func TestSampleOffset_RandomSquare(t *testing.T) {
	r := New(4, 4, make([]uint32, 16), FormatXRGB8888{})
	r.SetSampleMode(SampleRandomSquare)

	random := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		x, y := r.sampleOffset(i, random)
		if x < -0.5 || x >= 0.5 || y < -0.5 || y >= 0.5 {
			t.Fatalf("Random offset (%f, %f) escapes the pixel", x, y)
		}
	}
}

func TestParseModes(t *testing.T) {
	if m, err := ParseSampleMode("random-square"); err != nil || m != SampleRandomSquare {
		t.Errorf("Expected random-square, got %v (%v)", m, err)
	}
	if _, err := ParseSampleMode("bogus"); err == nil {
		t.Error("Expected error for unknown sample mode")
	}
	if m, err := ParseLightMode("observed-area"); err != nil || m != LightObservedArea {
		t.Errorf("Expected observed-area, got %v (%v)", m, err)
	}
	if _, err := ParseLightMode("bogus"); err == nil {
		t.Error("Expected error for unknown light mode")
	}
}
