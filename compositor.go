package fove

import (
	"fmt"

	"github.com/fovesdk/fove-go/capi"
)

// Compositor is a connection to the runtime compositor. It is created from a
// Headset but holds its own native handle and may outlive it.
type Compositor struct {
	lib    capi.Library
	handle capi.CompositorHandle
}

// CreateCompositor opens a compositor connection. The connection is
// established asynchronously; Ready reports when layers can be created. The
// returned Compositor must be released with Close.
func (h *Headset) CreateCompositor() (*Compositor, error) {
	handle, code := h.lib.CreateCompositor(h.handle)
	if err := code.Err(); err != nil {
		return nil, fmt.Errorf("creating compositor: %w", err)
	}
	logger.Debug("compositor created")
	return &Compositor{lib: h.lib, handle: handle}, nil
}

// Close releases the compositor connection. Close is idempotent.
func (c *Compositor) Close() error {
	if c.handle == 0 {
		return nil
	}
	code := c.lib.DestroyCompositor(c.handle)
	c.handle = 0
	logger.Debug("compositor destroyed")
	return code.Err()
}

// Ready reports whether the compositor connection is established. Layers
// created before that return an error.
func (c *Compositor) Ready() Result[bool] {
	return resultOf(c.lib.IsCompositorReady(c.handle))
}

// CreateLayer requests a new layer to submit frames to. The returned layer
// carries the runtime's ideal per-eye render resolution.
func (c *Compositor) CreateLayer(info capi.CompositorLayerCreateInfo) Result[capi.CompositorLayer] {
	return resultOf(c.lib.CreateLayer(c.handle, info))
}

// Submit hands rendered textures for one frame to the compositor. At least
// one eye of each layer must carry a texture.
func (c *Compositor) Submit(layers ...capi.CompositorLayerSubmitInfo) Status {
	return statusOf(c.lib.Submit(c.handle, layers))
}

// WaitForRenderPose blocks until the compositor wants the next frame and
// returns the pose to render it with. API_Timeout is the retryable case: the
// compositor is not running yet or no frame is due, and the caller should
// simply call again. Any other non-None code is a real failure.
func (c *Compositor) WaitForRenderPose() Result[capi.Pose] {
	return resultOf(c.lib.WaitForRenderPose(c.handle))
}

// LastRenderPose returns the pose from the last WaitForRenderPose without
// blocking.
func (c *Compositor) LastRenderPose() Result[capi.Pose] {
	return resultOf(c.lib.GetLastRenderPose(c.handle))
}

// AdapterID returns the GPU the compositor runs on. Submitted textures must
// be created on this adapter.
func (c *Compositor) AdapterID() Result[capi.AdapterID] {
	return resultOf(c.lib.QueryAdapterID(c.handle))
}
