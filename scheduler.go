package spin3d

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"fortio.org/log"
)

// Scheduler runs fn once, after delay. Implementations run every callback on
// a single goroutine, one at a time.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// FrameDriver runs one render pass per scheduled callback and then schedules
// the next one, Interval later.
type FrameDriver struct {
	Scheduler Scheduler
	Spinner   *Spinner
	Render    func(angle float64)
	Interval  time.Duration
	// MaxFrames stops the driver after that many frames; 0 runs forever.
	MaxFrames int
	// OnStop is called once when MaxFrames is reached.
	OnStop func()

	frames  int
	stopped bool
}

// NewFrameDriver returns a driver rendering at fps frames per second.
func NewFrameDriver(s Scheduler, spinner *Spinner, fps int, render func(angle float64)) *FrameDriver {
	return &FrameDriver{
		Scheduler: s,
		Spinner:   spinner,
		Render:    render,
		Interval:  FrameInterval(fps),
	}
}

// FrameInterval is the delay between frames at fps frames per second.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

func (d *FrameDriver) Frames() int {
	return d.frames
}

// Start schedules the first frame immediately.
func (d *FrameDriver) Start() {
	d.Scheduler.Schedule(0, d.tick)
}

// Stop prevents any further frame from being scheduled.
func (d *FrameDriver) Stop() {
	d.stopped = true
}

// Step renders one frame at the current angle and advances the angle,
// without scheduling anything.
func (d *FrameDriver) Step() {
	d.Render(d.Spinner.Angle())
	d.Spinner.Advance()
	d.frames++
}

func (d *FrameDriver) tick() {
	if d.stopped {
		return
	}
	d.Step()
	if d.MaxFrames > 0 && d.frames >= d.MaxFrames {
		log.LogVf("frame driver done after %d frames", d.frames)
		d.stopped = true
		if d.OnStop != nil {
			d.OnStop()
		}
		return
	}
	d.Scheduler.Schedule(d.Interval, d.tick)
}

type timedCall struct {
	due time.Time
	seq uint64
	fn  func()
}

// LoopScheduler runs callbacks in real time on the goroutine calling Run.
type LoopScheduler struct {
	mu    sync.Mutex
	queue []timedCall
	seq   uint64
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

func (l *LoopScheduler) Schedule(delay time.Duration, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.queue = append(l.queue, timedCall{due: time.Now().Add(delay), seq: l.seq, fn: fn})
	sort.Slice(l.queue, func(i, j int) bool {
		if l.queue[i].due.Equal(l.queue[j].due) {
			return l.queue[i].seq < l.queue[j].seq
		}
		return l.queue[i].due.Before(l.queue[j].due)
	})
}

func (l *LoopScheduler) peek() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return time.Time{}, false
	}
	return l.queue[0].due, true
}

func (l *LoopScheduler) pop() timedCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.queue[0]
	l.queue = l.queue[1:]
	return c
}

func (l *LoopScheduler) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Run executes callbacks as they fall due. It returns nil once nothing is
// left to run, or ctx.Err() when the context ends first; callbacks not yet
// due stay queued.
func (l *LoopScheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()
	for {
		due, ok := l.peek()
		if !ok {
			return nil
		}
		if wait := time.Until(due); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		l.pop().fn()
	}
}

type tickCall struct {
	due uint64
	fn  func()
}

// TickScheduler converts delays into ticks of an external fixed-rate source
// (a game loop Update, a terminal frame ticker) and runs callbacks from Tick.
type TickScheduler struct {
	tps     float64
	now     uint64
	pending []tickCall
}

func NewTickScheduler(tps float64) *TickScheduler {
	return &TickScheduler{tps: tps}
}

// Schedule queues fn for the first tick at or after delay. Callbacks always
// wait for at least the next tick.
func (t *TickScheduler) Schedule(delay time.Duration, fn func()) {
	ticks := uint64(1)
	if n := math.Ceil(delay.Seconds()*t.tps - 1e-9); n > 1 {
		ticks = uint64(n)
	}
	t.pending = append(t.pending, tickCall{due: t.now + ticks, fn: fn})
}

// Tick advances one tick and runs every callback due, in scheduling order.
// It returns how many ran.
func (t *TickScheduler) Tick() int {
	t.now++
	var due []tickCall
	kept := t.pending[:0]
	for _, c := range t.pending {
		if c.due <= t.now {
			due = append(due, c)
		} else {
			kept = append(kept, c)
		}
	}
	t.pending = kept
	for _, c := range due {
		c.fn()
	}
	return len(due)
}

func (t *TickScheduler) Pending() int {
	return len(t.pending)
}
