// Command viewer opens an interactive SDL2 window on the renderer.
//
// Keybinds: F2 shadows on/off, F3 cycle light mode, F4 cycle sample mode,
// F5 halve samples, F6 double samples, X screenshot.
// WASD moves the camera; hold LMB and move the mouse to look around.
package main

import (
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/dverhaert/go-direct-raytracer/pkg/config"
	"github.com/dverhaert/go-direct-raytracer/pkg/logger"
	"github.com/dverhaert/go-direct-raytracer/pkg/renderer"
	"github.com/dverhaert/go-direct-raytracer/pkg/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", "")
		logger.Log.Fatal("loading config", zap.Error(err))
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Fatal("viewer failed", zap.Error(err))
	}
}

// surfaceFormat adapts the SDL surface's pixel format to the renderer
type surfaceFormat struct {
	format *sdl.PixelFormat
}

func (f surfaceFormat) MapRGB(r, g, b uint8) uint32 {
	return sdl.MapRGB(f.format, r, g, b)
}

// sdlInput implements scene.InputState over the SDL keyboard and mouse
type sdlInput struct {
	keys    []uint8
	deltaX  float32
	deltaY  float32
	looking bool
}

// poll refreshes the cached device state once per frame
func (in *sdlInput) poll() {
	in.keys = sdl.GetKeyboardState()

	mouseX, mouseY, mouseState := sdl.GetRelativeMouseState()
	in.deltaX = float32(mouseX)
	in.deltaY = float32(mouseY)
	in.looking = mouseState&sdl.Button(sdl.BUTTON_LEFT) != 0
}

func (in *sdlInput) MoveForward() bool  { return in.keys[sdl.SCANCODE_W] != 0 }
func (in *sdlInput) MoveBackward() bool { return in.keys[sdl.SCANCODE_S] != 0 }
func (in *sdlInput) MoveLeft() bool     { return in.keys[sdl.SCANCODE_A] != 0 }
func (in *sdlInput) MoveRight() bool    { return in.keys[sdl.SCANCODE_D] != 0 }
func (in *sdlInput) Looking() bool      { return in.looking }

func (in *sdlInput) LookDelta() (float32, float32) { return in.deltaX, in.deltaY }

func run(cfg *config.Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	width, height := cfg.Render.Width, cfg.Render.Height

	window, err := sdl.CreateWindow(
		"Direct Raytracer",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), 0)
	if err != nil {
		return err
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		return err
	}

	// The surface owns the pixel memory; the renderer writes 32-bit words
	// straight into it.
	pixels := surface.Pixels()
	buffer := unsafe.Slice((*uint32)(unsafe.Pointer(&pixels[0])), width*height)

	selectedScene, err := scene.ByName(cfg.Scene.Name, cfg.Scene.AssetPath)
	if err != nil {
		return err
	}

	selectedScene.Camera.MovementSpeed = cfg.Camera.MovementSpeed
	selectedScene.Camera.RotationSpeed = cfg.Camera.RotationSpeed

	rt := renderer.New(width, height, buffer, surfaceFormat{format: surface.Format})
	rt.SetSampleCount(cfg.Render.SampleCount)
	rt.SetLightSamples(cfg.Render.LightSamples)
	rt.SetShadowsEnabled(cfg.Render.Shadows)
	rt.SetWorkers(cfg.Render.Workers)

	logger.Log.Info("viewer started",
		zap.String("scene", selectedScene.Name),
		zap.Int("width", width),
		zap.Int("height", height))
	logKeybinds()

	input := &sdlInput{}

	start := time.Now()
	previous := start
	var frames int
	var fpsTimer float32

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYUP {
					break
				}
				switch e.Keysym.Scancode {
				case sdl.SCANCODE_X:
					if err := rt.SaveBuffer(cfg.Output.Path); err != nil {
						logger.Log.Error("screenshot failed", zap.Error(err))
					} else {
						logger.Log.Info("screenshot saved", zap.String("path", cfg.Output.Path))
					}
				case sdl.SCANCODE_F2:
					rt.ToggleShadows()
					logger.Log.Info("shadows", zap.Bool("enabled", rt.ShadowsEnabled()))
				case sdl.SCANCODE_F3:
					rt.CycleLightMode()
					logger.Log.Info("light mode", zap.Stringer("mode", rt.LightMode()))
				case sdl.SCANCODE_F4:
					rt.CycleSampleMode()
					logger.Log.Info("sample mode", zap.Stringer("mode", rt.SampleMode()))
				case sdl.SCANCODE_F5:
					rt.DecreaseSamples()
					logger.Log.Info("samples", zap.Int("count", rt.SampleCount()))
				case sdl.SCANCODE_F6:
					rt.IncreaseSamples()
					logger.Log.Info("samples", zap.Int("count", rt.SampleCount()))
				}
			}
		}

		now := time.Now()
		deltaTime := float32(now.Sub(previous).Seconds())
		previous = now

		input.poll()
		selectedScene.Camera.Update(input, deltaTime)
		selectedScene.Update(float32(now.Sub(start).Seconds()))

		rt.Render(selectedScene)

		if err := window.UpdateSurface(); err != nil {
			return err
		}

		frames++
		fpsTimer += deltaTime
		if fpsTimer >= 1 {
			logger.Log.Info("fps", zap.Float32("value", float32(frames)/fpsTimer))
			frames = 0
			fpsTimer = 0
		}
	}
}

func logKeybinds() {
	logger.Log.Info("keybinds: X screenshot | F2 shadows | F3 light mode | F4 sample mode | F5/F6 samples | WASD move | LMB-drag look")
}
