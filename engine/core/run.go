package core

import (
	"runtime"
	"time"

	"github.com/hubastard/glrender/engine/gfx/rendering"
	"github.com/hubastard/glrender/engine/logx"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	if d, ok := win.(interface{ Destroy() }); ok {
		defer d.Destroy()
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := newEngine(win, rend, cfg)
	win.SetEventCallback(func(ev Event) { eng.handleEvent(app, ev) })

	app.OnStart(eng)
	logx.Logger().Info("engine started", "width", w, "height", h)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			eng.Input.EndTick()
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		win.SwapBuffers()
	}

	eng.Layers.Clear(eng)
	app.OnShutdown(eng)
	st := eng.Context.Stats()
	logx.Logger().Info("engine exit",
		"uptime", eng.Uptime().Round(time.Millisecond),
		"passes", st.Passes,
		"groups_applied", st.GroupsApplied,
		"groups_skipped", st.GroupsSkipped)
	return nil
}

func newEngine(win Window, rend Renderer, cfg Config) *Engine {
	return &Engine{
		Window:   win,
		Renderer: rend,
		Context:  rendering.NewContext(rend),
		Input:    NewInput(),
		Config:   cfg,
		start:    time.Now(),
	}
}

func (e *Engine) handleEvent(app App, ev Event) {
	e.Input.Handle(ev)
	if !e.Layers.Dispatch(e, ev) {
		app.OnEvent(e, ev)
	}
	if _, ok := ev.(EventResize); ok {
		fw, fh := e.Window.FramebufferSize()
		if fw < 1 || fh < 1 {
			return
		}
		e.Renderer.Resize(fw, fh)
	}
}
