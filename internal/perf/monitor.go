// Package perf tracks frame timing for the HUD readout.
package perf

import "time"

// Monitor accumulates frame times and exposes a once-per-second FPS and
// average frame duration. It is owned by the render loop goroutine and is
// not safe for concurrent use.
type Monitor struct {
	windowStart time.Time
	frameStart  time.Time
	frames      int
	accum       time.Duration

	fps     float64
	avgCost time.Duration
}

// NewMonitor returns a monitor ready for the first frame.
func NewMonitor() *Monitor {
	return &Monitor{windowStart: time.Now()}
}

// BeginFrame marks the start of a frame's work.
func (m *Monitor) BeginFrame() {
	m.frameStart = time.Now()
}

// EndFrame closes the current frame and rolls the sampling window once a
// second has passed.
func (m *Monitor) EndFrame() {
	m.accum += time.Since(m.frameStart)
	m.frames++

	elapsed := time.Since(m.windowStart)
	if elapsed < time.Second {
		return
	}
	m.fps = float64(m.frames) / elapsed.Seconds()
	if m.frames > 0 {
		m.avgCost = m.accum / time.Duration(m.frames)
	}
	m.windowStart = time.Now()
	m.frames = 0
	m.accum = 0
}

// FPS returns the frame rate measured over the last completed window.
func (m *Monitor) FPS() float64 { return m.fps }

// AvgFrameCost returns the average render duration over the last window.
func (m *Monitor) AvgFrameCost() time.Duration { return m.avgCost }
