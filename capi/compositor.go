package capi

// CompositorLayerType orders layers during composition.
type CompositorLayerType int

const (
	LayerBase CompositorLayerType = iota
	LayerOverlay
	LayerDiagnostic
)

// AlphaMode selects how the alpha channel of submitted textures is treated.
type AlphaMode int

const (
	AlphaAuto AlphaMode = iota
	AlphaOne
	AlphaSample
)

// GraphicsAPI identifies the API a submitted texture belongs to.
type GraphicsAPI int

const (
	GraphicsDirectX GraphicsAPI = iota
	GraphicsOpenGL
	GraphicsMetal
)

// CompositorLayerCreateInfo is the requested configuration for a new layer.
type CompositorLayerCreateInfo struct {
	Type CompositorLayerType
	// DisableTimeWarp turns off reprojection for this layer.
	DisableTimeWarp   bool
	AlphaMode         AlphaMode
	DisableFading     bool
	DisableDistortion bool
}

// CompositorLayer holds the runtime-assigned settings of a created layer.
type CompositorLayer struct {
	LayerID uint32
	// IdealResolutionPerEye is the optimal render target size for one eye.
	IdealResolutionPerEye Vec2i
}

// CompositorTexture is the graphics-API-tagged handle of a texture to
// submit. Exactly one of the pointers matching GraphicsAPI is meaningful.
type CompositorTexture struct {
	GraphicsAPI GraphicsAPI
	// DX11Texture is an ID3D11Texture2D pointer when GraphicsAPI is DirectX.
	DX11Texture uintptr
	// GLTextureID and GLContext identify an OpenGL texture when GraphicsAPI
	// is OpenGL.
	GLTextureID uint32
	GLContext   uintptr
	// MetalTexture is an MTLTexture pointer when GraphicsAPI is Metal.
	MetalTexture uintptr
}

// TextureBounds selects the portion of a texture used for one eye, in
// normalized [0, 1] coordinates.
type TextureBounds struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// CompositorLayerEyeSubmitInfo is the per-eye half of a layer submission.
// A nil texture skips that eye (at least one eye must be submitted).
type CompositorLayerEyeSubmitInfo struct {
	Texture *CompositorTexture
	Bounds  TextureBounds
}

// CompositorLayerSubmitInfo conglomerates the texture settings submitted for
// one layer on one frame.
type CompositorLayerSubmitInfo struct {
	LayerID uint32
	// Pose used to draw this layer, usually from Compositor_waitForRenderPose.
	Pose  Pose
	Left  CompositorLayerEyeSubmitInfo
	Right CompositorLayerEyeSubmitInfo
}

// AdapterID identifies the GPU the compositor runs on. On Windows the two
// parts form a LUID. Submitted textures must come from this adapter.
type AdapterID struct {
	LowPart  uint32
	HighPart int32
}
