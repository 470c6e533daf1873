package renderer

import (
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
	"github.com/dverhaert/go-direct-raytracer/pkg/scene"
)

func TestRender_TwoSpheresCenterPixel(t *testing.T) {
	const width, height = 640, 480

	// The scene itself is unlit; a head-on directional light plus BRDF mode
	// shows the raw solid colors
	s := scene.NewTwoSpheresScene()
	s.AddDirectionalLight(math.NewVec3(0, 0, 1), 1, color.White)

	buffer := make([]uint32, width*height)
	r := New(width, height, buffer, FormatXRGB8888{})
	r.SetLightMode(LightBRDF)
	r.SetShadowsEnabled(false)
	r.Render(s)

	// The center pixel's primary ray is within half a pixel of the view
	// axis, so it must land on one of the solid-color spheres (red or blue,
	// never a wall color)
	center := buffer[320+240*width]
	red := uint8(center >> 16)
	green := uint8(center >> 8)
	blue := uint8(center)

	if green != 0 {
		t.Errorf("Expected a pure red or blue sphere at the center, got rgb(%d,%d,%d)", red, green, blue)
	}
	if red == 0 && blue == 0 {
		t.Errorf("Expected a lit solid color at the center, got rgb(%d,%d,%d)", red, green, blue)
	}
}

func TestRender_CenterRayDirection(t *testing.T) {
	// With one uniform sample the ray goes through the pixel center; at the
	// middle of a 640x480 / 90° image that is within a fraction of a degree
	// of straight ahead
	const width, height = 640, 480
	camera := scene.NewCamera(math.Vec3{}, 90)
	cameraToWorld := camera.CalculateCameraToWorld()

	aspect := float32(width) / float32(height)
	fov := math32.Tan(90 * math.ToRadians / 2)

	x := (2*(320+0.5)/float32(width) - 1) * aspect * fov
	y := (1 - 2*(240+0.5)/float32(height)) * fov

	dir := cameraToWorld.TransformVector(math.NewVec3(x, y, 1)).Normalize()

	if math32.Abs(dir.X) > 3e-3 || math32.Abs(dir.Y) > 3e-3 || dir.Z < 0.9999 {
		t.Errorf("Expected near-axial center ray, got %v", dir)
	}
}

func TestRender_ShadowsOnlyDarken(t *testing.T) {
	const width, height = 64, 48

	// Dim single light keeps every accumulated channel below 1, so MaxToOne
	// never rescales and per-channel monotonicity holds exactly
	s := floorScene()
	s.Lights[0].Intensity = 10
	s.Camera = scene.NewCamera(math.NewVec3(0, 2, -6), 60)
	s.AddSphere(math.NewVec3(1.5, 1, 0), 1, 1)

	renderPixels := func(shadows bool) []uint32 {
		buffer := make([]uint32, width*height)
		r := New(width, height, buffer, FormatXRGB8888{})
		r.SetShadowsEnabled(shadows)
		r.Render(s)
		return buffer
	}

	lit := renderPixels(false)
	shadowed := renderPixels(true)

	darker := 0
	for i := range lit {
		for shift := 0; shift <= 16; shift += 8 {
			litChannel := uint8(lit[i] >> shift)
			shadowedChannel := uint8(shadowed[i] >> shift)
			if shadowedChannel > litChannel+1 {
				t.Fatalf("Pixel %d: shadowed channel %d brighter than lit %d", i, shadowedChannel, litChannel)
			}
			if shadowedChannel < litChannel {
				darker++
			}
		}
	}

	if darker == 0 {
		t.Error("Expected shadows to darken at least one pixel")
	}
}

func TestRender_UniformSamplingIsDeterministic(t *testing.T) {
	const width, height = 64, 48

	s := scene.NewCookTorranceScene()

	render := func() []uint32 {
		buffer := make([]uint32, width*height)
		r := New(width, height, buffer, FormatXRGB8888{})
		r.SetSampleMode(SampleUniformSquare)
		r.SetSampleCount(4)
		r.SetWorkers(4)
		r.Render(s)
		return buffer
	}

	first := render()
	second := render()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Pixel %d differs between identical renders: %08x vs %08x", i, first[i], second[i])
		}
	}
}

func TestRender_MoreSamplesKeepConstantRegionsStable(t *testing.T) {
	const width, height = 32, 24

	s := scene.NewTwoSpheresScene()
	s.AddDirectionalLight(math.NewVec3(0, 0, 1), 1, color.White)

	render := func(samples int) []uint32 {
		buffer := make([]uint32, width*height)
		r := New(width, height, buffer, FormatXRGB8888{})
		r.SetLightMode(LightBRDF)
		r.SetShadowsEnabled(false)
		r.SetSampleCount(samples)
		r.Render(s)
		return buffer
	}

	one := render(1)
	four := render(4)

	// The solid sphere interior is constant; the centered grid must average
	// to the same color there
	center := 16 + 12*width
	if one[center] != four[center] {
		t.Errorf("Expected constant region unchanged by supersampling: %08x vs %08x", one[center], four[center])
	}
}

func TestRenderer_Toggles(t *testing.T) {
	r := New(4, 4, make([]uint32, 16), FormatXRGB8888{})

	if !r.ShadowsEnabled() {
		t.Error("Expected shadows on by default")
	}
	r.ToggleShadows()
	if r.ShadowsEnabled() {
		t.Error("Expected shadows off after toggle")
	}

	if r.LightMode() != LightCombined {
		t.Errorf("Expected combined mode by default, got %v", r.LightMode())
	}
	r.CycleLightMode()
	if r.LightMode() != LightObservedArea {
		t.Errorf("Expected cycling to wrap to observed-area, got %v", r.LightMode())
	}

	r.SetSampleCount(1)
	r.DecreaseSamples()
	if r.SampleCount() != 1 {
		t.Errorf("Expected sample count floor of 1, got %d", r.SampleCount())
	}
	r.IncreaseSamples()
	r.IncreaseSamples()
	if r.SampleCount() != 4 {
		t.Errorf("Expected doubling twice to 4, got %d", r.SampleCount())
	}
}

func TestRenderer_SaveBuffer(t *testing.T) {
	const width, height = 16, 12

	s := scene.NewTwoSpheresScene()

	buffer := make([]uint32, width*height)
	r := New(width, height, buffer, FormatXRGB8888{})
	r.Render(s)

	path := filepath.Join(t.TempDir(), "frame.bmp")
	if err := r.SaveBuffer(path); err != nil {
		t.Fatalf("SaveBuffer failed: %v", err)
	}
}
