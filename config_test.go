package spin3d

import (
	"flag"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	o := cfg.Options()
	if !o.Cull || !o.Occlude || o.DepthOffset != cfg.DepthOffset || o.LineWidth != float32(cfg.LineWidth) {
		t.Errorf("Options = %+v", o)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"camera inside the mesh plane", func(c *Config) { c.DepthOffset = 0 }},
		{"negative line width", func(c *Config) { c.LineWidth = -1 }},
		{"negative frames", func(c *Config) { c.Frames = -3 }},
		{"unknown mode", func(c *Config) { c.Mode = "opengl" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected a validation error")
			}
		})
	}
}

func TestConfigFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("spin3d", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	err := fs.Parse([]string{"-mode", "gif", "-mesh", "torus", "-fps", "12", "-cull=false", "-speed", "0.5", "-duration", "3s"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "gif" || cfg.Mesh != "torus" || cfg.FPS != 12 || cfg.Cull || cfg.RadiansPerSecond != 0.5 || cfg.Duration != 3*time.Second {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Width != 800 {
		t.Errorf("unset flag changed width to %d", cfg.Width)
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("SPIN3D_FPS", "24")
	t.Setenv("SPIN3D_MESH", "sphere")
	t.Setenv("SPIN3D_OCCLUDE", "false")
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.FPS != 24 || cfg.Mesh != "sphere" || cfg.Occlude {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestRevolutionFrames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 10
	cfg.RadiansPerSecond = 3.14159265
	if got := cfg.RevolutionFrames(); got != 21 {
		t.Errorf("RevolutionFrames = %d, want 21", got)
	}
	cfg.RadiansPerSecond = 0
	if got := cfg.RevolutionFrames(); got != 1 {
		t.Errorf("RevolutionFrames without rotation = %d, want 1", got)
	}
}

func TestConfigSpinner(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 20
	cfg.RadiansPerSecond = 2
	s := cfg.Spinner()
	if !almostEqual(s.Step(), 0.1) || !s.Wrap {
		t.Errorf("Spinner step = %v wrap = %v", s.Step(), s.Wrap)
	}
}
