package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"time"

	"fortio.org/log"
	"github.com/smasonuk/spin3d"
	"github.com/smasonuk/spin3d/terminal"
	"github.com/smasonuk/spin3d/window"
)

func main() {
	cfg := spin3d.DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Bad environment: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := log.SetLogLevelStr(cfg.LogLevel); err != nil {
		log.Fatalf("Bad -loglevel: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	mesh, err := spin3d.LoadMesh(cfg)
	if err != nil {
		log.Fatalf("Error loading mesh %s: %v", cfg.Mesh, err)
	}
	renderer := spin3d.NewRenderer(mesh, cfg.Options())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if cfg.Duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	switch cfg.Mode {
	case "window":
		err = window.Run(ctx, cfg, renderer)
	case "terminal":
		err = terminal.Run(ctx, cfg, renderer)
	case "gif":
		err = writeGIF(cfg, renderer)
	case "headless":
		err = runHeadless(ctx, cfg, renderer)
	}
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		log.Errf("%s mode failed: %v", cfg.Mode, err)
		os.Exit(1)
	}
}

func writeGIF(cfg spin3d.Config, renderer *spin3d.Renderer) error {
	frames := cfg.Frames
	if frames == 0 {
		frames = cfg.RevolutionFrames()
	}
	rec := spin3d.NewGIFRecorder(cfg.FPS, renderer.Options().Background)
	start := time.Now()
	spin3d.RecordFrames(rec, renderer, cfg.Spinner(), cfg.Width, cfg.Height, frames, cfg.HUD)

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := rec.Encode(f); err != nil {
		return err
	}
	log.Infof("Wrote %d frames to %s in %v", rec.Len(), cfg.Output, time.Since(start))
	return nil
}

// runHeadless renders in real time to an offscreen surface, logging frame
// stats, until the frame limit or the context ends.
func runHeadless(ctx context.Context, cfg spin3d.Config, renderer *spin3d.Renderer) error {
	surface := spin3d.NewRasterSurface(cfg.Width, cfg.Height)
	loop := spin3d.NewLoopScheduler()
	driver := spin3d.NewFrameDriver(loop, cfg.Spinner(), cfg.FPS, func(angle float64) {
		stats := renderer.RenderFrame(surface, angle)
		log.Debugf("angle %.3f: %d of %d faces drawn", angle, stats.Drawn, stats.Faces)
	})
	driver.MaxFrames = cfg.Frames
	driver.Start()
	log.Infof("Headless %dx%d at %d fps", cfg.Width, cfg.Height, cfg.FPS)
	err := loop.Run(ctx)
	log.Infof("Rendered %d frames", driver.Frames())
	return err
}
