// Package scratch is a frame-scoped formatting buffer. Widget code formats
// transient labels (slider values, debug counters) into one reusable byte
// slice instead of allocating strings every frame. Single-threaded by
// contract, like the rest of the engine.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

var buf []byte

// Init sets up the buffer. Call once at startup; capacity is in bytes.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
}

// Reset clears the buffer without freeing memory. Call once per frame,
// before the UI pass.
func Reset() { buf = buf[:0] }

func Cap() int { return cap(buf) }
func Len() int { return len(buf) }

// Mark bookmarks the current position so a formatted run can be sliced out.
func Mark() int { return len(buf) }

// StringFrom copies the bytes since mark into a new string.
func StringFrom(mark int) string { return string(buf[mark:]) }

// ViewFrom returns a zero-copy string over the bytes since mark. Valid only
// until the next append or Reset; hand it to immediate draw calls, never
// store it.
func ViewFrom(mark int) string {
	b := buf[mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// ----- chainable append builder -----

type Builder struct{}

// F returns a builder over the shared buffer.
func F() Builder { return Builder{} }

func (Builder) S(s string) Builder {
	buf = append(buf, s...)
	return Builder{}
}

func (Builder) C(c byte) Builder {
	buf = append(buf, c)
	return Builder{}
}

func (Builder) R(r rune) Builder {
	buf = utf8.AppendRune(buf, r)
	return Builder{}
}

// I appends a base-10 integer.
func (Builder) I(v int) Builder {
	buf = strconv.AppendInt(buf, int64(v), 10)
	return Builder{}
}

// F32 appends a float with the given number of decimals.
func (Builder) F32(v float32, decimals int) Builder {
	buf = strconv.AppendFloat(buf, float64(v), 'f', decimals, 32)
	return Builder{}
}
