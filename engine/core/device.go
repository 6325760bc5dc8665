package core

import "errors"

// ErrDeviceLost signals the graphics device went away mid-frame. The host is
// expected to recreate graphics resources; the UI simply stops drawing for
// the remainder of the frame and retries next frame.
var ErrDeviceLost = errors.New("render device lost")

// Renderer is the low-level device abstraction implemented by backends
// (engine/gfx/gl). Higher layers (renderer2d, text) build on it.
type Renderer interface {
	Init() error
	Shutdown()
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreateTexture(desc TextureDesc) (Texture, error)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)

	// SetScissor restricts rasterization to a framebuffer-space rect.
	// Coordinates are top-left origin; the backend converts as needed.
	SetScissor(x, y, w, h int)
	ClearScissor()

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// Opaque handles owned by the backend.
type (
	Texture  interface{ IsTexture() }
	Pipeline interface{ IsPipeline() }
	Mesh     interface{ IsMesh() }
)

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU         string // "clamp" | "repeat"
	WrapV         string
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
	// IndexCount limits the draw to the first N indices; 0 draws all.
	IndexCount int
}
