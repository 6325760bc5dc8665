package ui

import "github.com/seberle/lantern/engine/core"

// Input is the immutable per-frame snapshot the UI core reads. The host
// builds one per frame (see Collector) and passes it to BeginFrame; widgets
// never see the live event stream.
type Input struct {
	MousePos      Vec2
	MouseDown     bool // held this frame
	MousePressed  bool // went down this frame
	MouseReleased bool // went up this frame
	Wheel         float32
	Mods          core.Mod
	Chars         []rune // typed characters, in arrival order

	pressed map[core.Key]bool
	held    map[core.Key]bool
}

func (in *Input) KeyPressed(k core.Key) bool { return in.pressed[k] }
func (in *Input) KeyHeld(k core.Key) bool    { return in.held[k] }

func (in *Input) ShiftHeld() bool { return in.Mods&core.ModShift != 0 }

// WordModHeld reports the word-navigation modifier (Ctrl, Super on mac hosts
// that map it there).
func (in *Input) WordModHeld() bool {
	return in.Mods&(core.ModCtrl|core.ModSuper) != 0
}

// Collector accumulates core events between frames and produces snapshots.
type Collector struct {
	mouse    Vec2
	down     bool
	pressed  bool
	released bool
	wheel    float32
	mods     core.Mod
	chars    []rune
	kPressed map[core.Key]bool
	kHeld    map[core.Key]bool
}

func NewCollector() *Collector {
	return &Collector{
		kPressed: make(map[core.Key]bool, 16),
		kHeld:    make(map[core.Key]bool, 16),
	}
}

func (c *Collector) Handle(ev core.Event) {
	switch e := ev.(type) {
	case core.EventMouseMove:
		c.mouse = Vec2{float32(e.X), float32(e.Y)}
	case core.EventMouseButton:
		if e.Button != core.MouseLeft {
			return
		}
		c.mods = e.Mods
		if e.Down {
			c.down = true
			c.pressed = true
		} else {
			c.down = false
			c.released = true
		}
	case core.EventScroll:
		c.wheel += float32(e.Yoff)
	case core.EventChar:
		c.chars = append(c.chars, e.Char)
	case core.EventKey:
		c.mods = e.Mods
		if e.Down {
			c.kPressed[e.Key] = true
			c.kHeld[e.Key] = true
		} else {
			delete(c.kHeld, e.Key)
		}
	}
}

// Snapshot freezes the accumulated state into a frame Input and clears the
// per-frame accumulators (edges, wheel, chars). Held state carries over.
func (c *Collector) Snapshot() Input {
	pressed := make(map[core.Key]bool, len(c.kPressed))
	for k := range c.kPressed {
		pressed[k] = true
	}
	held := make(map[core.Key]bool, len(c.kHeld))
	for k := range c.kHeld {
		held[k] = true
	}
	chars := make([]rune, len(c.chars))
	copy(chars, c.chars)

	in := Input{
		MousePos:      c.mouse,
		MouseDown:     c.down,
		MousePressed:  c.pressed,
		MouseReleased: c.released,
		Wheel:         c.wheel,
		Mods:          c.mods,
		Chars:         chars,
		pressed:       pressed,
		held:          held,
	}

	c.pressed = false
	c.released = false
	c.wheel = 0
	c.chars = c.chars[:0]
	for k := range c.kPressed {
		delete(c.kPressed, k)
	}
	return in
}
