package fove

import (
	"errors"
	"testing"

	"github.com/fovesdk/fove-go/capi"
)

// fakeLibrary stands in for the native runtime. Only the methods a test
// exercises are implemented; the embedded nil Library panics on anything
// else, which flags an unexpected native call.
type fakeLibrary struct {
	capi.Library

	createCode capi.ErrorCode
	destroyed  int

	hardwareConnected func() (bool, capi.ErrorCode)
	eyeFetchCode      func() capi.ErrorCode
	poseFetchCode     func() capi.ErrorCode

	gazeVector capi.Vec3
	gazeCode   capi.ErrorCode

	registerCode capi.ErrorCode
}

func (f *fakeLibrary) CreateHeadset(caps capi.ClientCapabilities) (capi.HeadsetHandle, capi.ErrorCode) {
	if f.createCode != capi.ErrorNone {
		return 0, f.createCode
	}
	return 1, capi.ErrorNone
}

func (f *fakeLibrary) DestroyHeadset(h capi.HeadsetHandle) capi.ErrorCode {
	f.destroyed++
	return capi.ErrorNone
}

func (f *fakeLibrary) IsHardwareConnected(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	if f.hardwareConnected == nil {
		return true, capi.ErrorNone
	}
	return f.hardwareConnected()
}

func (f *fakeLibrary) FetchEyeTrackingData(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	if f.eyeFetchCode == nil {
		return capi.FrameTimestamp{}, capi.ErrorNone
	}
	return capi.FrameTimestamp{}, f.eyeFetchCode()
}

func (f *fakeLibrary) FetchPoseData(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	if f.poseFetchCode == nil {
		return capi.FrameTimestamp{}, capi.ErrorNone
	}
	return capi.FrameTimestamp{}, f.poseFetchCode()
}

func (f *fakeLibrary) GetGazeVector(h capi.HeadsetHandle, eye capi.Eye) (capi.Vec3, capi.ErrorCode) {
	return f.gazeVector, f.gazeCode
}

func (f *fakeLibrary) RegisterCapabilities(h capi.HeadsetHandle, caps capi.ClientCapabilities) capi.ErrorCode {
	return f.registerCode
}

func (f *fakeLibrary) UnregisterCapabilities(h capi.HeadsetHandle, caps capi.ClientCapabilities) capi.ErrorCode {
	return f.registerCode
}

func TestCreateHeadset_NoNativeLibrary(t *testing.T) {
	saved := capi.NewLibraryFunc
	capi.NewLibraryFunc = nil
	defer func() { capi.NewLibraryFunc = saved }()

	_, err := CreateHeadset(capi.CapEyeTracking)
	if !errors.Is(err, capi.ErrUnavailable) {
		t.Errorf("CreateHeadset() error = %v, want ErrUnavailable", err)
	}
}

func TestCreateHeadset_NativeError(t *testing.T) {
	lib := &fakeLibrary{createCode: capi.ErrorConnectNotConnected}
	_, err := newHeadset(lib, capi.CapEyeTracking)
	if err == nil {
		t.Fatal("expected error")
	}
	var callErr *capi.CallError
	if !errors.As(err, &callErr) || callErr.Code != capi.ErrorConnectNotConnected {
		t.Errorf("error = %v, want Connect_NotConnected", err)
	}
}

func TestHeadset_CloseIdempotent(t *testing.T) {
	lib := &fakeLibrary{}
	h, err := newHeadset(lib, capi.CapEyeTracking)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if lib.destroyed != 1 {
		t.Errorf("native destroy called %d times, want 1", lib.destroyed)
	}
}

func TestHeadset_GazeVectorQuality(t *testing.T) {
	lib := &fakeLibrary{
		gazeVector: capi.Vec3{Z: 1},
		gazeCode:   capi.ErrorDataLowAccuracy,
	}
	h, err := newHeadset(lib, capi.CapEyeTracking)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	r := h.GazeVector(capi.EyeLeft)
	if r.Reliable() {
		t.Error("low-accuracy data must not be Reliable")
	}
	if !r.Valid() {
		t.Error("low-accuracy data must be Valid")
	}
	if r.Value() != (capi.Vec3{Z: 1}) {
		t.Errorf("Value() = %v", r.Value())
	}
}

func TestHeadset_RegisterCapabilitiesTracksSet(t *testing.T) {
	lib := &fakeLibrary{}
	h, err := newHeadset(lib, capi.CapOrientationTracking)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if s := h.RegisterCapabilities(capi.CapEyeTracking); !s.Succeeded() {
		t.Fatalf("RegisterCapabilities() = %v", s.Code())
	}
	if !h.Capabilities().Has(capi.CapOrientationTracking | capi.CapEyeTracking) {
		t.Errorf("Capabilities() = %v", h.Capabilities())
	}

	if s := h.UnregisterCapabilities(capi.CapOrientationTracking); !s.Succeeded() {
		t.Fatalf("UnregisterCapabilities() = %v", s.Code())
	}
	if h.Capabilities().Has(capi.CapOrientationTracking) {
		t.Errorf("Capabilities() still has OrientationTracking: %v", h.Capabilities())
	}
}

func TestHeadset_RegisterCapabilitiesFailureKeepsSet(t *testing.T) {
	lib := &fakeLibrary{registerCode: capi.ErrorConnectNotConnected}
	h, err := newHeadset(lib, capi.CapOrientationTracking)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if s := h.RegisterCapabilities(capi.CapEyeTracking); s.Succeeded() {
		t.Fatal("expected failure")
	}
	if h.Capabilities().Has(capi.CapEyeTracking) {
		t.Errorf("failed registration must not extend the set: %v", h.Capabilities())
	}
}
