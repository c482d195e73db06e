package main

import (
	"fmt"
	"time"

	"github.com/hubastard/glrender/engine/core"
	"github.com/hubastard/glrender/engine/logx"
)

// ------- Once a second: FPS and state-application counters -------
type LayerStats struct {
	frames int
	since  time.Time
}

func (l *LayerStats) OnAttach(e *core.Engine) { l.since = time.Now() }
func (l *LayerStats) OnDetach(e *core.Engine) {}

func (l *LayerStats) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerStats) OnRender(e *core.Engine, alpha float64) {
	l.frames++
	elapsed := time.Since(l.since)
	if elapsed < time.Second {
		return
	}
	fps := float64(l.frames) / elapsed.Seconds()
	st := e.Context.Stats()

	e.Window.SetTitle(fmt.Sprintf("%s | %.0f FPS | groups applied %d, skipped %d",
		e.Config.Title, fps, st.GroupsApplied, st.GroupsSkipped))
	logx.Logger().Debug("frame stats",
		"fps", fps,
		"passes", st.Passes,
		"full_passes", st.FullPasses,
		"groups_applied", st.GroupsApplied,
		"groups_skipped", st.GroupsSkipped)

	e.Context.ResetStats()
	l.frames = 0
	l.since = time.Now()
}

func (l *LayerStats) OnEvent(e *core.Engine, ev core.Event) bool { return false }
