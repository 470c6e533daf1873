package renderer

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
)

// SampleMode selects how subpixel offsets are generated
type SampleMode uint8

const (
	SampleRandomSquare SampleMode = iota
	SampleUniformSquare

	sampleModeCount
)

// String returns the mode name for logs and overlays
func (m SampleMode) String() string {
	switch m {
	case SampleRandomSquare:
		return "random-square"
	case SampleUniformSquare:
		return "uniform-square"
	}
	return "unknown"
}

// ParseSampleMode converts a config string into a SampleMode
func ParseSampleMode(name string) (SampleMode, error) {
	switch name {
	case "random-square":
		return SampleRandomSquare, nil
	case "uniform-square", "":
		return SampleUniformSquare, nil
	}
	return SampleUniformSquare, fmt.Errorf("unknown sample mode %q", name)
}

// sampleOffset returns the subpixel offset in (-0.5, 0.5) for the given
// sample index
func (r *Renderer) sampleOffset(sample int, random *rand.Rand) (float32, float32) {
	switch r.sampleMode {
	case SampleRandomSquare:
		return random.Float32() - 0.5, random.Float32() - 0.5

	case SampleUniformSquare:
		return uniformSquareOffset(sample, r.sampleCount)
	}

	return 0, 0
}

// uniformSquareOffset places sample s of n on a centered ceil(√n) grid.
// One sample sits exactly at the pixel center; two lie on the horizontal
// center line.
func uniformSquareOffset(sample, total int) (float32, float32) {
	if total == 1 {
		return 0, 0
	}

	if total == 2 {
		return (float32(sample)+0.5)/2 - 0.5, 0
	}

	gridSize := int(math32.Sqrt(float32(total)))
	if gridSize*gridSize < total {
		gridSize++
	}

	subpixel := 1 / float32(gridSize)

	sampleX := sample % gridSize
	sampleY := sample / gridSize

	return (float32(sampleX)+0.5)*subpixel - 0.5,
		(float32(sampleY)+0.5)*subpixel - 0.5
}
