package spin3d

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTickSchedulerDelays(t *testing.T) {
	testCases := []struct {
		name  string
		delay time.Duration
		ticks int
	}{
		{"zero waits one tick", 0, 1},
		{"one frame", time.Second / 30, 1},
		{"exactly three frames", 100 * time.Millisecond, 3},
		{"rounds up", 110 * time.Millisecond, 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewTickScheduler(30)
			ran := false
			s.Schedule(tc.delay, func() { ran = true })
			for i := 1; i <= tc.ticks; i++ {
				s.Tick()
				if ran != (i == tc.ticks) {
					t.Fatalf("after %d ticks ran = %v, want it to run on tick %d", i, ran, tc.ticks)
				}
			}
			if s.Pending() != 0 {
				t.Errorf("Pending = %d after the callback ran", s.Pending())
			}
		})
	}
}

func TestTickSchedulerRunsInOrder(t *testing.T) {
	s := NewTickScheduler(10)
	var order []int
	for i := 0; i < 4; i++ {
		s.Schedule(0, func() { order = append(order, i) })
	}
	if n := s.Tick(); n != 4 {
		t.Fatalf("Tick ran %d callbacks, want 4", n)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v", order)
		}
	}
}

func TestFrameDriverOnTicks(t *testing.T) {
	s := NewTickScheduler(20)
	spinner := NewSpinner(2, 20)
	var angles []float64
	d := NewFrameDriver(s, spinner, 20, func(angle float64) {
		angles = append(angles, angle)
	})
	d.MaxFrames = 5
	stopped := 0
	d.OnStop = func() { stopped++ }
	d.Start()

	for i := 0; i < 20; i++ {
		s.Tick()
	}
	if len(angles) != 5 || d.Frames() != 5 {
		t.Fatalf("rendered %d frames (driver says %d), want 5", len(angles), d.Frames())
	}
	for i, a := range angles {
		if !almostEqual(a, 0.1*float64(i)) {
			t.Errorf("frame %d angle = %v, want %v", i, a, 0.1*float64(i))
		}
	}
	if stopped != 1 {
		t.Errorf("OnStop called %d times, want 1", stopped)
	}
	if !almostEqual(spinner.Angle(), 0.5) {
		t.Errorf("final angle = %v, want 0.5", spinner.Angle())
	}
	if s.Pending() != 0 {
		t.Errorf("driver still scheduled after stopping")
	}
}

func TestFrameDriverStop(t *testing.T) {
	s := NewTickScheduler(60)
	frames := 0
	d := NewFrameDriver(s, NewSpinner(1, 60), 60, func(float64) { frames++ })
	d.Start()
	s.Tick()
	s.Tick()
	d.Stop()
	s.Tick()
	s.Tick()
	if frames != 2 {
		t.Errorf("rendered %d frames, want 2", frames)
	}
}

func TestFrameInterval(t *testing.T) {
	if got := FrameInterval(50); got != 20*time.Millisecond {
		t.Errorf("FrameInterval(50) = %v", got)
	}
	if got := FrameInterval(0); got != 0 {
		t.Errorf("FrameInterval(0) = %v", got)
	}
}

func TestLoopSchedulerRunsFrames(t *testing.T) {
	loop := NewLoopScheduler()
	var angles []float64
	d := NewFrameDriver(loop, NewSpinner(1, 500), 500, func(angle float64) {
		angles = append(angles, angle)
	})
	d.MaxFrames = 10
	d.Start()

	start := time.Now()
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(angles) != 10 {
		t.Fatalf("rendered %d frames, want 10", len(angles))
	}
	if elapsed := time.Since(start); elapsed < 9*2*time.Millisecond {
		t.Errorf("10 frames at 500 fps took only %v", elapsed)
	}
}

func TestLoopSchedulerOrdersByDueTime(t *testing.T) {
	loop := NewLoopScheduler()
	var order []string
	loop.Schedule(20*time.Millisecond, func() { order = append(order, "late") })
	loop.Schedule(0, func() { order = append(order, "first") })
	loop.Schedule(0, func() { order = append(order, "second") })
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "second", "late"}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestLoopSchedulerCancel(t *testing.T) {
	loop := NewLoopScheduler()
	frames := 0
	d := NewFrameDriver(loop, NewSpinner(1, 100), 100, func(float64) { frames++ })
	d.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := loop.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want deadline exceeded", err)
	}
	if frames == 0 {
		t.Errorf("no frames rendered before the deadline")
	}
	if loop.Pending() != 1 {
		t.Errorf("Pending = %d, want the next frame still queued", loop.Pending())
	}
}
