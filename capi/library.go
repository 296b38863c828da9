package capi

import (
	"fmt"
	"runtime"
)

// HeadsetHandle is an opaque native headset handle. It is only meaningful to
// the Library implementation that issued it.
type HeadsetHandle uintptr

// CompositorHandle is an opaque native compositor handle.
type CompositorHandle uintptr

// Library is the native entry-point table: one method per C function, with
// out-parameters turned into ordinary return values. All calls are blocking
// and synchronous; the runtime service owns all concurrency behind them.
type Library interface {
	// Lifecycle
	CreateHeadset(caps ClientCapabilities) (HeadsetHandle, ErrorCode)
	DestroyHeadset(h HeadsetHandle) ErrorCode

	// Connection and versioning
	IsHardwareConnected(h HeadsetHandle) (bool, ErrorCode)
	IsMotionReady(h HeadsetHandle) (bool, ErrorCode)
	CheckSoftwareVersions(h HeadsetHandle) ErrorCode
	QuerySoftwareVersions(h HeadsetHandle) (Versions, ErrorCode)
	QueryHardwareInfo(h HeadsetHandle) (HeadsetHardwareInfo, ErrorCode)

	// Licensing
	QueryLicenses(h HeadsetHandle) ([]LicenseInfo, ErrorCode)
	HasAccessToFeature(h HeadsetHandle, featureName string) (bool, ErrorCode)
	ActivateLicense(h HeadsetHandle, licenseKey string) ErrorCode
	DeactivateLicense(h HeadsetHandle, licenseData string) ErrorCode

	// Capability registration
	RegisterCapabilities(h HeadsetHandle, caps ClientCapabilities) ErrorCode
	RegisterPassiveCapabilities(h HeadsetHandle, caps ClientCapabilities) ErrorCode
	UnregisterCapabilities(h HeadsetHandle, caps ClientCapabilities) ErrorCode
	UnregisterPassiveCapabilities(h HeadsetHandle, caps ClientCapabilities) ErrorCode

	// Eye tracking frames
	WaitForProcessedEyeFrame(h HeadsetHandle) ErrorCode
	FetchEyeTrackingData(h HeadsetHandle) (FrameTimestamp, ErrorCode)
	FetchEyesImage(h HeadsetHandle) (FrameTimestamp, ErrorCode)
	GetEyeTrackingDataTimestamp(h HeadsetHandle) (FrameTimestamp, ErrorCode)
	GetEyesImageTimestamp(h HeadsetHandle) (FrameTimestamp, ErrorCode)

	// Gaze
	GetGazeVector(h HeadsetHandle, eye Eye) (Vec3, ErrorCode)
	GetGazeVectorRaw(h HeadsetHandle, eye Eye) (Vec3, ErrorCode)
	GetGazeVectors(h HeadsetHandle) (Vec3, Vec3, ErrorCode)
	GetGazeScreenPosition(h HeadsetHandle, eye Eye) (Vec2, ErrorCode)
	GetGazeScreenPositionCombined(h HeadsetHandle) (Vec2, ErrorCode)
	GetCombinedGazeRay(h HeadsetHandle) (Ray, ErrorCode)
	GetCombinedGazeDepth(h HeadsetHandle) (float32, ErrorCode)

	// User state
	IsUserShiftingAttention(h HeadsetHandle) (bool, ErrorCode)
	GetEyeState(h HeadsetHandle, eye Eye) (EyeState, ErrorCode)
	IsEyeBlinking(h HeadsetHandle, eye Eye) (bool, ErrorCode)
	GetEyeBlinkCount(h HeadsetHandle, eye Eye) (int, ErrorCode)
	IsUserPresent(h HeadsetHandle) (bool, ErrorCode)

	// Eye tracking status
	IsEyeTrackingEnabled(h HeadsetHandle) (bool, ErrorCode)
	IsEyeTrackingCalibrated(h HeadsetHandle) (bool, ErrorCode)
	IsEyeTrackingCalibrating(h HeadsetHandle) (bool, ErrorCode)
	IsEyeTrackingCalibratedForGlasses(h HeadsetHandle) (bool, ErrorCode)
	IsEyeTrackingReady(h HeadsetHandle) (bool, ErrorCode)
	IsHmdAdjustmentGuiVisible(h HeadsetHandle) (bool, ErrorCode)
	HasHmdAdjustmentGuiTimeout(h HeadsetHandle) (bool, ErrorCode)

	// Eye measurements
	GetEyesImage(h HeadsetHandle) (BitmapImage, ErrorCode)
	GetUserIPD(h HeadsetHandle) (float32, ErrorCode)
	GetUserIOD(h HeadsetHandle) (float32, ErrorCode)
	GetPupilRadius(h HeadsetHandle, eye Eye) (float32, ErrorCode)
	GetIrisRadius(h HeadsetHandle, eye Eye) (float32, ErrorCode)
	GetEyeballRadius(h HeadsetHandle, eye Eye) (float32, ErrorCode)
	GetEyeTorsion(h HeadsetHandle, eye Eye) (float32, ErrorCode)
	GetEyeShape(h HeadsetHandle, eye Eye) (EyeShape, ErrorCode)
	GetPupilShape(h HeadsetHandle, eye Eye) (PupilShape, ErrorCode)

	// Calibration
	StartEyeTrackingCalibration(h HeadsetHandle, options CalibrationOptions) ErrorCode
	StopEyeTrackingCalibration(h HeadsetHandle) ErrorCode
	GetEyeTrackingCalibrationState(h HeadsetHandle) (CalibrationState, ErrorCode)
	GetEyeTrackingCalibrationStateDetails(h HeadsetHandle) (CalibrationData, ErrorCode)
	TickEyeTrackingCalibration(h HeadsetHandle, deltaTime float32, isVisible bool) (CalibrationData, ErrorCode)

	// HMD adjustment
	StartHmdAdjustmentProcess(h HeadsetHandle, lazy bool) ErrorCode
	TickHmdAdjustmentProcess(h HeadsetHandle, deltaTime float32, isVisible bool) (HmdAdjustmentData, ErrorCode)

	// Gazable objects
	GetGazedObjectID(h HeadsetHandle) (int, ErrorCode)
	RegisterGazableObject(h HeadsetHandle, object GazableObject) ErrorCode
	UpdateGazableObject(h HeadsetHandle, objectID int, pose ObjectPose) ErrorCode
	RemoveGazableObject(h HeadsetHandle, objectID int) ErrorCode
	RegisterCameraObject(h HeadsetHandle, camera CameraObject) ErrorCode
	UpdateCameraObject(h HeadsetHandle, cameraID int, pose ObjectPose) ErrorCode
	RemoveCameraObject(h HeadsetHandle, cameraID int) ErrorCode

	// Pose tracking
	TareOrientationSensor(h HeadsetHandle) ErrorCode
	IsPositionReady(h HeadsetHandle) (bool, ErrorCode)
	TarePositionSensors(h HeadsetHandle) ErrorCode
	FetchPoseData(h HeadsetHandle) (FrameTimestamp, ErrorCode)
	FetchPositionImage(h HeadsetHandle) (FrameTimestamp, ErrorCode)
	GetPoseDataTimestamp(h HeadsetHandle) (FrameTimestamp, ErrorCode)
	GetPose(h HeadsetHandle) (Pose, ErrorCode)
	GetPositionImage(h HeadsetHandle) (BitmapImage, ErrorCode)
	GetPositionImageTimestamp(h HeadsetHandle) (FrameTimestamp, ErrorCode)

	// Rendering geometry
	GetProjectionMatricesLH(h HeadsetHandle, zNear, zFar float32) (Matrix44, Matrix44, ErrorCode)
	GetProjectionMatricesRH(h HeadsetHandle, zNear, zFar float32) (Matrix44, Matrix44, ErrorCode)
	GetRawProjectionValues(h HeadsetHandle) (ProjectionParams, ProjectionParams, ErrorCode)
	GetEyeToHeadMatrices(h HeadsetHandle) (Matrix44, Matrix44, ErrorCode)
	GetRenderIOD(h HeadsetHandle) (float32, ErrorCode)

	// Profiles
	CreateProfile(h HeadsetHandle, name string) ErrorCode
	RenameProfile(h HeadsetHandle, oldName, newName string) ErrorCode
	DeleteProfile(h HeadsetHandle, name string) ErrorCode
	ListProfiles(h HeadsetHandle) ([]string, ErrorCode)
	SetCurrentProfile(h HeadsetHandle, name string) ErrorCode
	QueryCurrentProfile(h HeadsetHandle) (string, ErrorCode)
	QueryProfileDataPath(h HeadsetHandle, name string) (string, ErrorCode)

	// Compositor
	CreateCompositor(h HeadsetHandle) (CompositorHandle, ErrorCode)
	DestroyCompositor(c CompositorHandle) ErrorCode
	CreateLayer(c CompositorHandle, info CompositorLayerCreateInfo) (CompositorLayer, ErrorCode)
	Submit(c CompositorHandle, layers []CompositorLayerSubmitInfo) ErrorCode
	WaitForRenderPose(c CompositorHandle) (Pose, ErrorCode)
	GetLastRenderPose(c CompositorHandle) (Pose, ErrorCode)
	IsCompositorReady(c CompositorHandle) (bool, ErrorCode)
	QueryAdapterID(c CompositorHandle) (AdapterID, ErrorCode)

	// Diagnostics
	LogText(level LogLevel, text string) ErrorCode
}

// ErrUnavailable is returned when no native library implementation is linked
// into the binary.
var ErrUnavailable = fmt.Errorf("fove native client library is not available on %s/%s (build with cgo and the FOVE SDK installed)", runtime.GOOS, runtime.GOARCH)

// NewLibraryFunc is set by the native implementation package via init().
// See capi/native for the cgo registration.
var NewLibraryFunc func() (Library, error)

// NewLibrary returns the native Library for this binary.
func NewLibrary() (Library, error) {
	if NewLibraryFunc == nil {
		return nil, ErrUnavailable
	}
	return NewLibraryFunc()
}
