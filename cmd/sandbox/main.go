package main

import (
	"log"

	"github.com/seberle/lantern/engine/assets"
	"github.com/seberle/lantern/engine/colors"
	"github.com/seberle/lantern/engine/core"
	glbackend "github.com/seberle/lantern/engine/gfx/gl"
	"github.com/seberle/lantern/engine/gfx/renderer2d"
	"github.com/seberle/lantern/engine/platform"
	"github.com/seberle/lantern/engine/profiler"
	"github.com/seberle/lantern/engine/text"
	"github.com/seberle/lantern/engine/ui"
	"github.com/seberle/lantern/engine/ui/backend"
)

type App struct {
	r2d   *renderer2d.Renderer2D
	font  *text.Font
	stats renderer2d.Statistics

	board *BoardLayer
	debug *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10)

	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		panic(err)
	}

	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		panic(err)
	}

	a.font, err = text.LoadTTF(e.Renderer, assets.FontPath("RobotoMono.ttf"), 32)
	if err != nil {
		panic(err)
	}

	r, ts := backend.New(a.r2d, a.font)
	ctx := ui.New(r, ts)
	if th, err := ui.LoadTheme(assets.ThemePath("dark.toml")); err != nil {
		log.Printf("theme: %v (using default)", err)
	} else {
		ctx.SetTheme(th)
	}

	a.board = NewBoardLayer(a.r2d, ctx)
	e.Layers.Push(a.board)

	a.debug = &LayerDebug{r2d: a.r2d, font: a.font, stats: &a.stats}
	e.Layers.Push(a.debug)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Close()
}

func main() {
	cfg := core.Config{
		Title:                "Lantern Sandbox",
		Width:                1280,
		Height:               720,
		VSync:                true,
		ClearColor:           colors.DarkGray,
		ScratchAllocCapacity: 4096,
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
