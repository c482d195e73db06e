package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/glrender/engine/core"
	glbackend "github.com/hubastard/glrender/engine/gfx/gl"
	"github.com/hubastard/glrender/engine/logx"
	"github.com/hubastard/glrender/engine/platform"
)

type App struct {
	scene *LayerScene
	stats *LayerStats
}

func (a *App) OnStart(e *core.Engine) {
	a.scene = &LayerScene{}
	e.Layers.Push(e, a.scene)

	a.stats = &LayerStats{}
	e.Layers.Push(e, a.stats)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.WasPressed(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if _, ok := ev.(core.EventCloseRequested); ok {
		logx.Logger().Info("close requested")
	}
}
func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	configPath := flag.String("config", "glrender.yml", "path to the YAML config")
	flag.Parse()

	// config problems are reported before the configured logger exists
	logx.SetLogger(logx.NewTextLogger(os.Stderr, logx.DefaultLevel))
	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		logx.Logger().Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := logx.ParseLevel(cfg.LogLevel) // validated by LoadConfig
	logx.SetLogger(logx.NewTextLogger(os.Stderr, level))
	slog.SetDefault(logx.Logger())

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(&App{}, cfg, newWindow, newRenderer); err != nil {
		logx.Logger().Error("engine run", "error", err)
		os.Exit(1)
	}
}
