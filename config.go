package spin3d

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"fortio.org/struct2env"
)

// EnvPrefix is prepended to the upper snake case field names of Config when
// reading overrides from the environment (SPIN3D_FPS, SPIN3D_MESH, ...).
const EnvPrefix = "SPIN3D_"

type Config struct {
	Mode             string
	Mesh             string
	Width            int
	Height           int
	FPS              int
	RadiansPerSecond float64
	DepthOffset      float64
	Tilt             float64
	Cull             bool
	Occlude          bool
	LineWidth        float64
	Wrap             bool
	Frames           int
	Duration         time.Duration
	Output           string
	HUD              bool
	Reverse          bool
	Seed             int64
	LogLevel         string
}

func DefaultConfig() Config {
	return Config{
		Mode:             "window",
		Mesh:             "cube",
		Width:            800,
		Height:           800,
		FPS:              30,
		RadiansPerSecond: 1,
		DepthOffset:      4,
		Tilt:             0.45,
		Cull:             true,
		Occlude:          true,
		LineWidth:        1.5,
		Wrap:             true,
		Output:           "spin3d.gif",
		HUD:              true,
		Seed:             1,
		LogLevel:         "info",
	}
}

// RegisterFlags binds every field to a flag on fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "output: window, terminal, gif or headless")
	fs.StringVar(&c.Mesh, "mesh", c.Mesh, "cube, torus, sphere, terrain or a .ply/.dxf file")
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.Float64Var(&c.RadiansPerSecond, "speed", c.RadiansPerSecond, "rotation speed in radians per second")
	fs.Float64Var(&c.DepthOffset, "depth", c.DepthOffset, "distance from the camera to the mesh centre")
	fs.Float64Var(&c.Tilt, "tilt", c.Tilt, "fixed tilt towards the camera in radians, applied once at load")
	fs.BoolVar(&c.Cull, "cull", c.Cull, "back-face culling")
	fs.BoolVar(&c.Occlude, "occlude", c.Occlude, "fill faces with the background to hide edges behind them")
	fs.Float64Var(&c.LineWidth, "line-width", c.LineWidth, "wireframe line width")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "keep the rotation angle in [0, 2π)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "stop after this many frames (0: forever, gif: one turn)")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "stop after this long (0: no limit)")
	fs.StringVar(&c.Output, "o", c.Output, "gif output file")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "draw the status line")
	fs.BoolVar(&c.Reverse, "reverse", c.Reverse, "reverse the winding of every loaded face")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain noise seed")
	fs.StringVar(&c.LogLevel, "loglevel", c.LogLevel, "log level (debug, verbose, info, warning, error)")
}

// ApplyEnv overrides fields from SPIN3D_* environment variables.
func (c *Config) ApplyEnv() error {
	return errors.Join(struct2env.SetFromEnv(EnvPrefix, c)...)
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if !(c.DepthOffset > 0) {
		errs = append(errs, fmt.Errorf("depth offset must be positive, got %g", c.DepthOffset))
	}
	if c.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("line width must not be negative, got %g", c.LineWidth))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	switch c.Mode {
	case "window", "terminal", "gif", "headless":
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	return errors.Join(errs...)
}

// Options returns the renderer options described by the config.
func (c Config) Options() Options {
	o := DefaultOptions()
	o.Cull = c.Cull
	o.Occlude = c.Occlude
	o.DepthOffset = c.DepthOffset
	o.LineWidth = float32(c.LineWidth)
	return o
}

// Spinner returns a spinner ticking FPS times per second.
func (c Config) Spinner() *Spinner {
	s := NewSpinner(c.RadiansPerSecond, float64(c.FPS))
	s.Wrap = c.Wrap
	return s
}

// RevolutionFrames is the number of frames in one full turn, at least 1.
func (c Config) RevolutionFrames() int {
	if c.RadiansPerSecond == 0 {
		return 1
	}
	return max(1, int(math.Ceil(2*math.Pi*float64(c.FPS)/math.Abs(c.RadiansPerSecond))))
}
