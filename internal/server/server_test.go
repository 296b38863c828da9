package server

import (
	"testing"

	"github.com/fovesdk/fove-go"
	"github.com/fovesdk/fove-go/capi"
)

// fakeLibrary stands in for the native runtime. Only the methods a test
// exercises are implemented; the embedded nil Library panics on anything
// else, which flags an unexpected native call.
type fakeLibrary struct {
	capi.Library

	hardwareConnected bool
	calibrated        bool
	versionsCode      capi.ErrorCode
	versions          capi.Versions
	fetchCode         capi.ErrorCode
	gazeRay           capi.Ray
	gazeCode          capi.ErrorCode
}

func (f *fakeLibrary) CreateHeadset(caps capi.ClientCapabilities) (capi.HeadsetHandle, capi.ErrorCode) {
	return 1, capi.ErrorNone
}

func (f *fakeLibrary) DestroyHeadset(h capi.HeadsetHandle) capi.ErrorCode {
	return capi.ErrorNone
}

func (f *fakeLibrary) IsHardwareConnected(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	return f.hardwareConnected, capi.ErrorNone
}

func (f *fakeLibrary) IsMotionReady(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	return false, capi.ErrorHardwareDisconnected
}

func (f *fakeLibrary) IsPositionReady(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	return false, capi.ErrorNone
}

func (f *fakeLibrary) IsEyeTrackingEnabled(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	return true, capi.ErrorNone
}

func (f *fakeLibrary) IsEyeTrackingReady(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	return f.hardwareConnected, capi.ErrorNone
}

func (f *fakeLibrary) IsEyeTrackingCalibrated(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	return f.calibrated, capi.ErrorNone
}

func (f *fakeLibrary) CheckSoftwareVersions(h capi.HeadsetHandle) capi.ErrorCode {
	return f.versionsCode
}

func (f *fakeLibrary) QuerySoftwareVersions(h capi.HeadsetHandle) (capi.Versions, capi.ErrorCode) {
	return f.versions, capi.ErrorNone
}

func (f *fakeLibrary) QueryHardwareInfo(h capi.HeadsetHandle) (capi.HeadsetHardwareInfo, capi.ErrorCode) {
	return capi.HeadsetHardwareInfo{}, capi.ErrorConnectNotConnected
}

func (f *fakeLibrary) QueryLicenses(h capi.HeadsetHandle) ([]capi.LicenseInfo, capi.ErrorCode) {
	return nil, capi.ErrorNone
}

func (f *fakeLibrary) FetchEyeTrackingData(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	return capi.FrameTimestamp{ID: 5, Timestamp: 100}, f.fetchCode
}

func (f *fakeLibrary) GetGazeVectors(h capi.HeadsetHandle) (capi.Vec3, capi.Vec3, capi.ErrorCode) {
	return capi.Vec3{Z: 1}, capi.Vec3{Z: 1}, f.gazeCode
}

func (f *fakeLibrary) GetCombinedGazeRay(h capi.HeadsetHandle) (capi.Ray, capi.ErrorCode) {
	return f.gazeRay, f.gazeCode
}

func (f *fakeLibrary) GetCombinedGazeDepth(h capi.HeadsetHandle) (float32, capi.ErrorCode) {
	return 1.5, f.gazeCode
}

func testHeadset(t *testing.T, lib capi.Library) *fove.Headset {
	t.Helper()
	saved := capi.NewLibraryFunc
	capi.NewLibraryFunc = func() (capi.Library, error) { return lib, nil }
	t.Cleanup(func() { capi.NewLibraryFunc = saved })

	h, err := fove.CreateHeadset(capi.CapEyeTracking)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestCollectStatus(t *testing.T) {
	lib := &fakeLibrary{
		hardwareConnected: true,
		calibrated:        true,
		versionsCode:      capi.ErrorConnectRuntimeVersionTooOld,
		versions:          capi.Versions{RuntimeMajor: 1, RuntimeMinor: 3},
	}
	h := testHeadset(t, lib)

	res := CollectStatus(h)
	if !res.HardwareConnected {
		t.Error("hardwareConnected should be true")
	}
	// MotionReady query failed, so the field stays at its zero value
	if res.MotionReady {
		t.Error("motionReady should be false when the query fails")
	}
	if !res.Calibrated {
		t.Error("calibrated should be true")
	}
	if res.VersionsCompatible {
		t.Error("versionsCompatible should be false")
	}
	if res.VersionsError != "Connect_RuntimeVersionTooOld" {
		t.Errorf("versionsError = %q", res.VersionsError)
	}
	if res.Versions == nil || res.Versions.RuntimeMinor != 3 {
		t.Errorf("versions = %+v", res.Versions)
	}
	// HardwareInfo query failed, pointer stays nil
	if res.Hardware != nil {
		t.Errorf("hardware = %+v, want nil", res.Hardware)
	}
}

func TestSampleGaze(t *testing.T) {
	lib := &fakeLibrary{
		fetchCode: capi.ErrorDataLowAccuracy,
		gazeRay:   capi.Ray{Direction: capi.Vec3{Z: 1}},
		gazeCode:  capi.ErrorDataLowAccuracy,
	}
	h := testHeadset(t, lib)

	sample := SampleGaze(h)
	if sample.FrameID != 5 {
		t.Errorf("frameId = %d, want 5", sample.FrameID)
	}
	if sample.Quality != "Data_LowAccuracy" {
		t.Errorf("quality = %q", sample.Quality)
	}
	// Low accuracy still carries values
	if sample.Ray == nil || sample.Ray.Direction.Z != 1 {
		t.Errorf("ray = %+v", sample.Ray)
	}
	if sample.Depth == nil || *sample.Depth != 1.5 {
		t.Errorf("depth = %v", sample.Depth)
	}
}

func TestSampleGaze_NoUpdate(t *testing.T) {
	lib := &fakeLibrary{
		fetchCode: capi.ErrorDataNoUpdate,
		gazeCode:  capi.ErrorDataNoUpdate,
	}
	h := testHeadset(t, lib)

	sample := SampleGaze(h)
	if sample.FrameID != 0 {
		t.Errorf("frameId = %d, want 0 before the first frame", sample.FrameID)
	}
	if sample.Quality != "Data_NoUpdate" {
		t.Errorf("quality = %q", sample.Quality)
	}
	if sample.Ray != nil || sample.Left != nil || sample.Depth != nil {
		t.Error("no-update sample must not carry values")
	}
}
