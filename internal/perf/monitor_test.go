package perf

import (
	"testing"
	"time"
)

func TestMonitorReportsAfterWindow(t *testing.T) {
	m := NewMonitor()

	m.BeginFrame()
	m.EndFrame()
	if m.FPS() != 0 {
		t.Fatalf("FPS reported before the first window closed: %v", m.FPS())
	}

	// Pretend the window opened over a second ago so the next frame
	// closes it.
	m.windowStart = time.Now().Add(-2 * time.Second)
	m.BeginFrame()
	m.EndFrame()

	if m.FPS() <= 0 {
		t.Errorf("FPS = %v, want > 0", m.FPS())
	}
	if m.frames != 0 || m.accum != 0 {
		t.Errorf("window state not reset: frames=%d accum=%v", m.frames, m.accum)
	}
}

func TestMonitorAvgFrameCost(t *testing.T) {
	m := NewMonitor()
	m.windowStart = time.Now().Add(-2 * time.Second)

	m.BeginFrame()
	m.frameStart = m.frameStart.Add(-10 * time.Millisecond)
	m.EndFrame()

	if m.AvgFrameCost() < 10*time.Millisecond {
		t.Errorf("AvgFrameCost = %v, want >= 10ms", m.AvgFrameCost())
	}
}
