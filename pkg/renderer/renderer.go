// Package renderer casts primary rays over the pixel grid in parallel,
// evaluates direct illumination and writes the packed result to the bound
// pixel buffer.
package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync/atomic"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"

	"github.com/dverhaert/go-direct-raytracer/pkg/color"
	"github.com/dverhaert/go-direct-raytracer/pkg/geometry"
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
	"github.com/dverhaert/go-direct-raytracer/pkg/scene"
)

// pixelChunk is how many consecutive pixels a worker claims per fetch
const pixelChunk = 64

// maxSampleCount bounds the doubling toggle
const maxSampleCount = 1024

// Renderer renders frames of a scene into an externally owned pixel buffer.
// Scene data must not be mutated while Render runs.
type Renderer struct {
	width  int
	height int
	buffer []uint32
	format PixelFormat
	shadow *image.RGBA

	lightMode      LightMode
	sampleMode     SampleMode
	shadowsEnabled bool
	sampleCount    int
	lightSamples   int

	workers int
	seed    int64
}

// New binds a renderer to a W×H pixel buffer with the given word format
func New(width, height int, buffer []uint32, format PixelFormat) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		buffer: buffer,
		format: format,
		shadow: newShadowImage(width, height),

		lightMode:      LightCombined,
		sampleMode:     SampleUniformSquare,
		shadowsEnabled: true,
		sampleCount:    1,
		lightSamples:   10,

		workers: runtime.NumCPU(),
		seed:    1,
	}
}

// ToggleShadows flips shadow casting for the next frame
func (r *Renderer) ToggleShadows() {
	r.shadowsEnabled = !r.shadowsEnabled
}

// CycleLightMode steps through observed-area, radiance, BRDF and combined
func (r *Renderer) CycleLightMode() {
	r.lightMode = (r.lightMode + 1) % lightModeCount
}

// CycleSampleMode steps through the subpixel sampling strategies
func (r *Renderer) CycleSampleMode() {
	r.sampleMode = (r.sampleMode + 1) % sampleModeCount
}

// IncreaseSamples doubles the per-pixel sample count
func (r *Renderer) IncreaseSamples() {
	if r.sampleCount*2 <= maxSampleCount {
		r.sampleCount *= 2
	}
}

// DecreaseSamples halves the per-pixel sample count, with a floor of one
func (r *Renderer) DecreaseSamples() {
	r.sampleCount = max(r.sampleCount/2, 1)
}

// ShadowsEnabled reports the current shadow toggle
func (r *Renderer) ShadowsEnabled() bool { return r.shadowsEnabled }

// LightMode returns the current light mode
func (r *Renderer) LightMode() LightMode { return r.lightMode }

// SampleMode returns the current sample mode
func (r *Renderer) SampleMode() SampleMode { return r.sampleMode }

// SampleCount returns the current per-pixel sample count
func (r *Renderer) SampleCount() int { return r.sampleCount }

// SetSampleCount sets the per-pixel sample count (minimum one)
func (r *Renderer) SetSampleCount(n int) {
	r.sampleCount = max(n, 1)
}

// SetSampleMode sets the subpixel sampling strategy
func (r *Renderer) SetSampleMode(m SampleMode) { r.sampleMode = m }

// SetLightMode sets the illumination composition mode
func (r *Renderer) SetLightMode(m LightMode) { r.lightMode = m }

// SetShadowsEnabled sets the shadow toggle
func (r *Renderer) SetShadowsEnabled(enabled bool) { r.shadowsEnabled = enabled }

// SetLightSamples sets the shadow-ray count for area lights (minimum one)
func (r *Renderer) SetLightSamples(n int) {
	r.lightSamples = max(n, 1)
}

// SetWorkers sets the render worker count. One worker with a fixed seed
// gives reproducible random-square output.
func (r *Renderer) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	r.workers = n
}

// SetSeed sets the base seed for the per-worker generators
func (r *Renderer) SetSeed(seed int64) { r.seed = seed }

// Render produces one frame of the scene into the bound buffer. Pixels are
// dispatched to workers in chunks of a flat index range; each worker owns
// its scratch record and generator, so the scene is only read.
func (r *Renderer) Render(s *scene.Scene) {
	camera := &s.Camera

	aspectRatio := float32(r.width) / float32(r.height)
	fov := math32.Tan(camera.FOVAngle * math.ToRadians / 2)

	cameraToWorld := camera.CalculateCameraToWorld()
	origin := cameraToWorld.Translation()

	totalPixels := int64(r.width * r.height)

	var next atomic.Int64
	var group errgroup.Group

	for workerID := 0; workerID < r.workers; workerID++ {
		seed := r.seed + int64(workerID)
		group.Go(func() error {
			random := rand.New(rand.NewSource(seed))
			hit := geometry.NewHitRecord()

			for {
				start := next.Add(pixelChunk) - pixelChunk
				if start >= totalPixels {
					return nil
				}

				end := min(start+pixelChunk, totalPixels)
				for idx := start; idx < end; idx++ {
					px := int(idx) % r.width
					py := int(idx) / r.width
					r.renderPixel(s, px, py, aspectRatio, fov, cameraToWorld, origin, &hit, random)
				}
			}
		})
	}

	// Workers never return errors; the group only joins them.
	_ = group.Wait()
}

// renderPixel accumulates the configured sample count for one pixel,
// box-filters, clamps and packs it
func (r *Renderer) renderPixel(s *scene.Scene, px, py int, aspectRatio, fov float32, cameraToWorld math.Matrix, origin math.Vec3, hit *geometry.HitRecord, random *rand.Rand) {
	var finalColor color.RGB

	for sample := 0; sample < r.sampleCount; sample++ {
		offsetX, offsetY := r.sampleOffset(sample, random)

		x := (2*(float32(px)+0.5+offsetX)/float32(r.width) - 1) * aspectRatio * fov
		y := (1 - 2*(float32(py)+0.5+offsetY)/float32(r.height)) * fov

		dirViewSpace := math.NewVec3(x, y, 1)
		dirWorldSpace := cameraToWorld.TransformVector(dirViewSpace).Normalize()

		viewRay := math.NewRay(origin, dirWorldSpace)

		s.ClosestHit(viewRay, hit)
		if !hit.DidHit {
			continue
		}

		for i := range s.Lights {
			finalColor = finalColor.Add(r.calculateIllumination(s, &s.Lights[i], hit, viewRay.Direction, random))
		}
	}

	finalColor = finalColor.Divide(float32(r.sampleCount))
	finalColor = finalColor.MaxToOne()

	r.writePixel(px, py,
		uint8(finalColor.R*255),
		uint8(finalColor.G*255),
		uint8(finalColor.B*255))
}
