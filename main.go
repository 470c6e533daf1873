package main

import (
	"os"
	"time"

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
		logger.Log.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	selectedScene, err := scene.ByName(cfg.Scene.Name, cfg.Scene.AssetPath)
	if err != nil {
		return err
	}

	selectedScene.Camera.MovementSpeed = cfg.Camera.MovementSpeed
	selectedScene.Camera.RotationSpeed = cfg.Camera.RotationSpeed

	width, height := cfg.Render.Width, cfg.Render.Height
	buffer := make([]uint32, width*height)

	rt := renderer.New(width, height, buffer, renderer.FormatXRGB8888{})
	rt.SetSampleCount(cfg.Render.SampleCount)
	rt.SetLightSamples(cfg.Render.LightSamples)
	rt.SetShadowsEnabled(cfg.Render.Shadows)
	rt.SetWorkers(cfg.Render.Workers)
	rt.SetSeed(cfg.Render.Seed)

	sampleMode, err := renderer.ParseSampleMode(cfg.Render.SampleMode)
	if err != nil {
		return err
	}
	rt.SetSampleMode(sampleMode)

	lightMode, err := renderer.ParseLightMode(cfg.Render.LightMode)
	if err != nil {
		return err
	}
	rt.SetLightMode(lightMode)

	logger.Log.Info("rendering",
		zap.String("scene", selectedScene.Name),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("samples", rt.SampleCount()),
		zap.Stringer("sample_mode", rt.SampleMode()),
		zap.Stringer("light_mode", rt.LightMode()),
		zap.Bool("shadows", rt.ShadowsEnabled()))

	start := time.Now()
	rt.Render(selectedScene)
	logger.Log.Info("frame complete", zap.Duration("took", time.Since(start)))

	if err := rt.SaveBuffer(cfg.Output.Path); err != nil {
		return err
	}

	logger.Log.Info("saved", zap.String("path", cfg.Output.Path))
	return nil
}
