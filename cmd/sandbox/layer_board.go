package main

import (
	"github.com/seberle/lantern/engine/colors"
	"github.com/seberle/lantern/engine/core"
	"github.com/seberle/lantern/engine/gfx/renderer2d"
	"github.com/seberle/lantern/engine/profiler"
	"github.com/seberle/lantern/engine/scene"
	"github.com/seberle/lantern/engine/scratch"
	"github.com/seberle/lantern/engine/ui"
)

// BoardLayer is a small task-board exercising the whole widget surface:
// text input, combo, checkbox, slider, buttons, a resizable side panel,
// and one scroll area per board column.
type BoardLayer struct {
	r2d *renderer2d.Renderer2D
	ctx *ui.Context
	in  *ui.Collector

	columns   []boardColumn
	backlog   []string
	newCard   string
	targetCol int
	compact   bool
	cardW     float32

	swatch int
}

type boardColumn struct {
	Title string
	Cards []string
}

func NewBoardLayer(r2d *renderer2d.Renderer2D, ctx *ui.Context) *BoardLayer {
	return &BoardLayer{
		r2d: r2d,
		ctx: ctx,
		in:  ui.NewCollector(),
		columns: []boardColumn{
			{Title: "Todo", Cards: []string{"Sketch layout", "Pick palette"}},
			{Title: "Doing", Cards: []string{"Wire renderer"}},
			{Title: "Done", Cards: []string{"Project setup"}},
		},
		backlog: []string{"Sound pass", "Gamepad input", "Save format", "Localization"},
		cardW:   200,
	}
}

func (l *BoardLayer) OnAttach(e *core.Engine) {}
func (l *BoardLayer) OnDetach(e *core.Engine) {}

func (l *BoardLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *BoardLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	l.in.Handle(ev)
	return false
}

func (l *BoardLayer) OnRender(e *core.Engine, alpha float64) {
	scopeRender := profiler.Start("BoardLayer.OnRender")
	defer scopeRender()

	w, h := e.Window.FramebufferSize()
	l.r2d.BeginScene(scene.ScreenProjection(w, h))

	ctx := l.ctx
	viewport := ui.Rect{X: 0, Y: 0, W: float32(w), H: float32(h)}
	ctx.BeginFrame(l.in.Snapshot(), viewport, 1.0/60)

	l.toolbar(ctx)

	// Left side: backlog in a resizable panel.
	panelTop := ui.Vec2{X: 16, Y: 96}
	panelW := ctx.BeginResizablePanel("backlog", panelTop, float32(h)-112, 240, 160, 420, 8)
	ctx.Label("Backlog")
	for i, item := range l.backlog {
		m := scratch.Mark()
		scratch.F().S("bk-").I(i)
		if ctx.Button(scratch.ViewFrom(m), item) {
			l.columns[0].Cards = append(l.columns[0].Cards, item)
			l.backlog = append(l.backlog[:i], l.backlog[i+1:]...)
			break
		}
	}
	ctx.Spacer(ui.Vec2{Y: 12})
	l.palette(ctx)
	ctx.EndResizablePanel()

	// Board columns to the right of the panel.
	colX := panelTop.X + panelW + 16
	colH := float32(h) - 112
	for ci := range l.columns {
		l.column(ctx, ci, ui.Vec2{X: colX, Y: panelTop.Y}, colH)
		colX += l.cardW + 16
	}

	ctx.EndFrame()
	l.r2d.EndScene()
}

func (l *BoardLayer) toolbar(ctx *ui.Context) {
	ctx.BeginHBox("toolbar", ui.Vec2{X: 16, Y: 16}, 10)
	ctx.Label("Task Board")
	ctx.Spacer(ui.Vec2{X: 14})

	ctx.InputText("new-card", &l.newCard, 240, ui.TextOpts{
		MaxLength:   96,
		Placeholder: "New card title",
	})

	names := make([]string, len(l.columns))
	for i, c := range l.columns {
		names[i] = c.Title
	}
	ctx.Combo("target-col", names, &l.targetCol, 130)

	canAdd := l.newCard != ""
	if ctx.ButtonEx("add-card", "Add", !canAdd) {
		c := &l.columns[l.targetCol]
		c.Cards = append(c.Cards, l.newCard)
		l.newCard = ""
	}

	ctx.Checkbox("compact", "Compact", &l.compact)
	ctx.Slider("card-width", &l.cardW, 160, 320, 120)
	ctx.EndHBox()
}

// column renders one board column as a scroll area of card buttons; clicking
// a card moves it to the next column, or clears it from the last one.
func (l *BoardLayer) column(ctx *ui.Context, ci int, pos ui.Vec2, height float32) {
	col := &l.columns[ci]
	gap := float32(8)
	if l.compact {
		gap = 3
	}

	ctx.BeginVBox(col.Title, pos, 6)
	ctx.Label(col.Title)

	ctx.BeginScrollArea("scroll-"+col.Title, ui.Vec2{}, ui.Vec2{X: l.cardW, Y: height - 28}, gap)
	for i, card := range col.Cards {
		m := scratch.Mark()
		scratch.F().S(col.Title).C('-').I(i)
		if ctx.Button(scratch.ViewFrom(m), card) {
			col.Cards = append(col.Cards[:i], col.Cards[i+1:]...)
			if ci+1 < len(l.columns) {
				next := &l.columns[ci+1]
				next.Cards = append(next.Cards, card)
			}
			break
		}
	}
	ctx.EndScrollArea()
	ctx.EndVBox()
}

// palette is a grid of color swatches; mostly here to put the grid container
// through its paces at a visible place.
func (l *BoardLayer) palette(ctx *ui.Context) {
	swatches := []colors.Color{
		colors.Red, colors.Green, colors.Blue, colors.Yellow,
		colors.Cyan, colors.Magenta, colors.Gray, colors.White,
	}
	const cell = 22
	ctx.Label("Accent")
	ctx.BeginGrid("palette", ui.Vec2{}, 4, cell, 4, 4)
	for i, c := range swatches {
		pos := ctx.CursorPos()
		r := ui.RectFromSize(pos, ui.Vec2{X: cell, Y: cell})
		st := ui.BoxStyle{Fill: c}
		if i == l.swatch {
			st.Border = colors.White
			st.BorderWidth = 2
		}
		m := scratch.Mark()
		scratch.F().S("swatch-").I(i)
		status := ctx.ItemBehavior(ui.Hash(scratch.ViewFrom(m)), r, false)
		if status.Clicked {
			l.swatch = i
		}
		ctx.R.DrawBox(r, st)
		ctx.Advance(ui.Vec2{X: cell, Y: cell})
	}
	ctx.EndGrid()
}
