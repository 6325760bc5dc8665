package main

import (
	"fmt"

	"github.com/seberle/lantern/engine/colors"
	"github.com/seberle/lantern/engine/core"
	"github.com/seberle/lantern/engine/gfx/renderer2d"
	"github.com/seberle/lantern/engine/profiler"
	"github.com/seberle/lantern/engine/scene"
	"github.com/seberle/lantern/engine/scratch"
	"github.com/seberle/lantern/engine/text"
)

// LayerDebug draws renderer statistics in the corner, toggled with Ctrl+D.
// It bypasses the UI context and draws through the text renderer directly.
type LayerDebug struct {
	r2d     *renderer2d.Renderer2D
	font    *text.Font
	stats   *renderer2d.Statistics
	visible bool
}

func (l *LayerDebug) OnAttach(e *core.Engine) {}
func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if !l.visible {
		return
	}
	scopeRender := profiler.Start("LayerDebug.OnRender")
	defer scopeRender()

	w, h := e.Window.FramebufferSize()
	l.r2d.BeginScene(scene.ScreenProjection(w, h))

	x := float32(w) - 300
	y := float32(16)
	const size = 14
	line := func(s string) {
		text.DrawText(l.r2d, l.font, x, y, s, size, colors.Yellow)
		y += size + 4
	}

	line("2D Renderer")
	m := scratch.Mark()
	scratch.F().S("  draw calls: ").I(l.stats.DrawCalls)
	line(scratch.StringFrom(m))

	m = scratch.Mark()
	scratch.F().S("  quads: ").I(l.stats.QuadCount)
	line(scratch.StringFrom(m))

	m = scratch.Mark()
	scratch.F().S("  vertices: ").I(l.stats.TotalVertexCount())
	line(scratch.StringFrom(m))

	m = scratch.Mark()
	scratch.F().S("  textures: ").I(l.stats.TextureCount)
	line(scratch.StringFrom(m))

	line("Memory")
	m = scratch.Mark()
	scratch.F().S("  usage: ").F32(float32(profiler.MemoryUsage())/(1<<20), 3).S(" MB")
	line(scratch.StringFrom(m))

	m = scratch.Mark()
	scratch.F().S("  goroutines: ").I(profiler.NumGoroutine())
	line(scratch.StringFrom(m))

	line("GPU")
	line("  " + e.Renderer.GPUVendor())
	line("  " + e.Renderer.GPURenderer())

	l.r2d.EndScene()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down {
		switch {
		case k.Key == core.KeyD && k.Mods&core.ModCtrl != 0:
			l.visible = !l.visible
			return true
		case k.Key == core.KeyS && k.Mods&core.ModCtrl != 0:
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				fmt.Println("speedscope dump:", path)
			} else {
				fmt.Println("profiler dump error:", err)
			}
			return true
		}
	}
	return false
}
