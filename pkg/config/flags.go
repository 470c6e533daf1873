package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagScene   = flag.String("scene", "", "Scene name to render")
	flagAsset   = flag.String("asset", "", "OBJ asset path for mesh scenes")
	flagWidth   = flag.Int("width", 0, "Frame width")
	flagHeight  = flag.Int("height", 0, "Frame height")
	flagSamples = flag.Int("samples", 0, "Samples per pixel")
	flagOut     = flag.String("out", "", "Output BMP path")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagScene != "" {
		cfg.Scene.Name = *flagScene
	}
	if *flagAsset != "" {
		cfg.Scene.AssetPath = *flagAsset
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagSamples > 0 {
		cfg.Render.SampleCount = *flagSamples
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
}
