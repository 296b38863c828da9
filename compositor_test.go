package fove

import (
	"testing"

	"github.com/fovesdk/fove-go/capi"
)

type fakeCompositorLibrary struct {
	fakeLibrary

	compositorDestroyed int
	renderPoseCodes     []capi.ErrorCode
}

func (f *fakeCompositorLibrary) CreateCompositor(h capi.HeadsetHandle) (capi.CompositorHandle, capi.ErrorCode) {
	return 2, capi.ErrorNone
}

func (f *fakeCompositorLibrary) DestroyCompositor(c capi.CompositorHandle) capi.ErrorCode {
	f.compositorDestroyed++
	return capi.ErrorNone
}

func (f *fakeCompositorLibrary) WaitForRenderPose(c capi.CompositorHandle) (capi.Pose, capi.ErrorCode) {
	code := f.renderPoseCodes[0]
	if len(f.renderPoseCodes) > 1 {
		f.renderPoseCodes = f.renderPoseCodes[1:]
	}
	return capi.Pose{ID: 7}, code
}

func newTestCompositor(t *testing.T, lib *fakeCompositorLibrary) *Compositor {
	t.Helper()
	h, err := newHeadset(lib, capi.CapOrientationTracking)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { h.Close() })
	c, err := h.CreateCompositor()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCompositor_CloseIdempotent(t *testing.T) {
	lib := &fakeCompositorLibrary{}
	c := newTestCompositor(t, lib)
	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if lib.compositorDestroyed != 1 {
		t.Errorf("native destroy called %d times, want 1", lib.compositorDestroyed)
	}
}

func TestCompositor_OutlivesHeadset(t *testing.T) {
	lib := &fakeCompositorLibrary{
		renderPoseCodes: []capi.ErrorCode{capi.ErrorNone},
	}
	h, err := newHeadset(lib, capi.CapOrientationTracking)
	if err != nil {
		t.Fatal(err)
	}
	c, err := h.CreateCompositor()
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	if r := c.WaitForRenderPose(); !r.Succeeded() || r.Value().ID != 7 {
		t.Errorf("WaitForRenderPose() after headset close = %v (%v)", r.Value(), r.Code())
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestCompositor_WaitForRenderPoseTimeoutIsRetryable(t *testing.T) {
	lib := &fakeCompositorLibrary{
		renderPoseCodes: []capi.ErrorCode{capi.ErrorAPITimeout, capi.ErrorNone},
	}
	c := newTestCompositor(t, lib)
	defer c.Close()

	first := c.WaitForRenderPose()
	if first.Code() != capi.ErrorAPITimeout {
		t.Fatalf("first Code() = %v, want API_Timeout", first.Code())
	}
	second := c.WaitForRenderPose()
	if !second.Succeeded() {
		t.Fatalf("retry Code() = %v, want None", second.Code())
	}
	if second.Value().ID != 7 {
		t.Errorf("retry pose = %v", second.Value())
	}
}
