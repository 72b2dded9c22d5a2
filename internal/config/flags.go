package config

import "flag"

// overrides holds the command-line values that sit above both the
// defaults and the config file.
type overrides struct {
	config     string
	debug      bool
	windowed   bool
	fullscreen bool
	width      int
	height     int
	fov        float64
	save       bool
}

var opts overrides

func init() {
	flag.StringVar(&opts.config, "config", "", "config file path (skips the search path)")
	flag.BoolVar(&opts.debug, "debug", false, "debug logging plus the FPS counter")
	flag.BoolVar(&opts.windowed, "windowed", false, "force windowed mode")
	flag.BoolVar(&opts.fullscreen, "fullscreen", false, "force fullscreen mode")
	flag.IntVar(&opts.width, "width", 0, "window width in pixels")
	flag.IntVar(&opts.height, "height", 0, "window height in pixels")
	flag.Float64Var(&opts.fov, "fov", 0, "vertical field of view in degrees")
	flag.BoolVar(&opts.save, "save-config", false, "write the effective config and exit")
}

// ParseFlags parses the command line. Call it once, before Load.
func ParseFlags() {
	flag.Parse()
}

// SaveRequested reports whether -save-config was passed.
func SaveRequested() bool {
	return opts.save
}

// apply folds the parsed flags into cfg. Fullscreen beats windowed
// when both are given.
func (o *overrides) apply(cfg *Config) {
	if o.debug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	switch {
	case o.fullscreen:
		cfg.Graphics.Fullscreen = true
	case o.windowed:
		cfg.Graphics.Fullscreen = false
	}
	if o.width > 0 {
		cfg.Graphics.Width = o.width
	}
	if o.height > 0 {
		cfg.Graphics.Height = o.height
	}
	if o.fov > 0 {
		cfg.Camera.FOV = float32(o.fov)
	}
}
