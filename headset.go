package fove

import (
	"fmt"

	"github.com/fovesdk/fove-go/capi"
)

// Stereo holds one value per eye for calls that report both at once.
type Stereo[T any] struct {
	Left  T
	Right T
}

// Headset is a client connection to the runtime service. It owns a native
// handle and the capability set requested at creation. Methods must not be
// called after Close.
//
// A Headset is not safe for concurrent use; the runtime serializes native
// calls itself, but the handle lifetime is managed by the caller.
type Headset struct {
	lib    capi.Library
	handle capi.HeadsetHandle
	caps   capi.ClientCapabilities
}

// CreateHeadset connects to the runtime and registers caps. The returned
// Headset must be released with Close.
//
// Most data queries need the matching capability registered here (or later
// via RegisterCapabilities); querying without it yields API_NotRegistered,
// and Data_NoUpdate is normal for a few frames after registration while the
// service spins the capability up.
func CreateHeadset(caps capi.ClientCapabilities) (*Headset, error) {
	lib, err := capi.NewLibrary()
	if err != nil {
		return nil, err
	}
	return newHeadset(lib, caps)
}

func newHeadset(lib capi.Library, caps capi.ClientCapabilities) (*Headset, error) {
	handle, code := lib.CreateHeadset(caps)
	if err := code.Err(); err != nil {
		return nil, fmt.Errorf("creating headset: %w", err)
	}
	logger.Debug("headset created", "capabilities", caps.String())
	return &Headset{lib: lib, handle: handle, caps: caps}, nil
}

// Capabilities returns the capability set requested at creation plus any
// registered since.
func (h *Headset) Capabilities() capi.ClientCapabilities {
	return h.caps
}

// Close releases the native handle. Further calls on the Headset are
// invalid. Close is idempotent; Compositors created from this Headset stay
// usable.
func (h *Headset) Close() error {
	if h.handle == 0 {
		return nil
	}
	code := h.lib.DestroyHeadset(h.handle)
	h.handle = 0
	logger.Debug("headset destroyed")
	return code.Err()
}

// Connection and versioning

// IsHardwareConnected reports whether a headset is plugged in.
func (h *Headset) IsHardwareConnected() Result[bool] {
	return resultOf(h.lib.IsHardwareConnected(h.handle))
}

// IsMotionReady reports whether the motion sensors are delivering data.
func (h *Headset) IsMotionReady() Result[bool] {
	return resultOf(h.lib.IsMotionReady(h.handle))
}

// CheckSoftwareVersions verifies that client and runtime versions are
// compatible. Connect_RuntimeVersionTooOld means the runtime should be
// upgraded.
func (h *Headset) CheckSoftwareVersions() Status {
	return statusOf(h.lib.CheckSoftwareVersions(h.handle))
}

// SoftwareVersions reports the client and runtime version details.
func (h *Headset) SoftwareVersions() Result[capi.Versions] {
	return resultOf(h.lib.QuerySoftwareVersions(h.handle))
}

// HardwareInfo reports the attached headset's serial number, manufacturer
// and model.
func (h *Headset) HardwareInfo() Result[capi.HeadsetHardwareInfo] {
	return resultOf(h.lib.QueryHardwareInfo(h.handle))
}

// Licensing

// Licenses lists the currently activated licenses.
func (h *Headset) Licenses() Result[[]capi.LicenseInfo] {
	return resultOf(h.lib.QueryLicenses(h.handle))
}

// HasAccessToFeature reports whether any activated license unlocks the named
// feature.
func (h *Headset) HasAccessToFeature(featureName string) Result[bool] {
	return resultOf(h.lib.HasAccessToFeature(h.handle, featureName))
}

// ActivateLicense activates the license key on this machine.
func (h *Headset) ActivateLicense(licenseKey string) Status {
	return statusOf(h.lib.ActivateLicense(h.handle, licenseKey))
}

// DeactivateLicense deactivates a license identified by its key or UUID.
func (h *Headset) DeactivateLicense(licenseData string) Status {
	return statusOf(h.lib.DeactivateLicense(h.handle, licenseData))
}

// Capability registration

// RegisterCapabilities adds caps to the set kept running for this client.
func (h *Headset) RegisterCapabilities(caps capi.ClientCapabilities) Status {
	s := statusOf(h.lib.RegisterCapabilities(h.handle, caps))
	if s.Succeeded() {
		h.caps = h.caps.Add(caps)
	}
	return s
}

// RegisterPassiveCapabilities declares interest in caps without forcing the
// runtime to keep them running.
func (h *Headset) RegisterPassiveCapabilities(caps capi.ClientCapabilities) Status {
	return statusOf(h.lib.RegisterPassiveCapabilities(h.handle, caps))
}

// UnregisterCapabilities removes caps from this client's registered set.
func (h *Headset) UnregisterCapabilities(caps capi.ClientCapabilities) Status {
	s := statusOf(h.lib.UnregisterCapabilities(h.handle, caps))
	if s.Succeeded() {
		h.caps = h.caps.Remove(caps)
	}
	return s
}

// UnregisterPassiveCapabilities removes caps from the passive set.
func (h *Headset) UnregisterPassiveCapabilities(caps capi.ClientCapabilities) Status {
	return statusOf(h.lib.UnregisterPassiveCapabilities(h.handle, caps))
}

// Eye tracking frames
//
// The runtime produces frames continuously; a client blocks on
// WaitForProcessedEyeFrame for pacing, then calls a Fetch method to latch the
// newest frame locally. All gaze and eye getters read the latched frame, so
// values within one fetch are mutually consistent.

// WaitForProcessedEyeFrame blocks until the next eye frame has been
// processed. It does not fetch; call FetchEyeTrackingData afterwards.
func (h *Headset) WaitForProcessedEyeFrame() Status {
	return statusOf(h.lib.WaitForProcessedEyeFrame(h.handle))
}

// FetchEyeTrackingData latches the newest eye tracking frame and returns its
// timestamp.
func (h *Headset) FetchEyeTrackingData() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.FetchEyeTrackingData(h.handle))
}

// FetchEyesImage latches the newest eyes-camera image.
func (h *Headset) FetchEyesImage() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.FetchEyesImage(h.handle))
}

// EyeTrackingDataTimestamp returns the timestamp of the latched eye frame.
func (h *Headset) EyeTrackingDataTimestamp() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.GetEyeTrackingDataTimestamp(h.handle))
}

// EyesImageTimestamp returns the timestamp of the latched eyes image.
func (h *Headset) EyesImageTimestamp() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.GetEyesImageTimestamp(h.handle))
}

// Gaze

// GazeVector returns the gaze direction of one eye, in HMD coordinates.
// Needs CapEyeTracking.
func (h *Headset) GazeVector(eye capi.Eye) Result[capi.Vec3] {
	return resultOf(h.lib.GetGazeVector(h.handle, eye))
}

// GazeVectorRaw returns the unfiltered gaze direction of one eye.
func (h *Headset) GazeVectorRaw(eye capi.Eye) Result[capi.Vec3] {
	return resultOf(h.lib.GetGazeVectorRaw(h.handle, eye))
}

// GazeVectors returns both gaze directions in one call.
func (h *Headset) GazeVectors() Result[Stereo[capi.Vec3]] {
	l, r, code := h.lib.GetGazeVectors(h.handle)
	return resultOf(Stereo[capi.Vec3]{Left: l, Right: r}, code)
}

// GazeScreenPosition projects one eye's gaze onto the HMD screen, in [-1, 1]
// view coordinates.
func (h *Headset) GazeScreenPosition(eye capi.Eye) Result[capi.Vec2] {
	return resultOf(h.lib.GetGazeScreenPosition(h.handle, eye))
}

// GazeScreenPositionCombined projects the combined gaze onto the screen.
func (h *Headset) GazeScreenPositionCombined() Result[capi.Vec2] {
	return resultOf(h.lib.GetGazeScreenPositionCombined(h.handle))
}

// CombinedGazeRay returns the single ray best describing where the user
// looks, in HMD coordinates.
func (h *Headset) CombinedGazeRay() Result[capi.Ray] {
	return resultOf(h.lib.GetCombinedGazeRay(h.handle))
}

// CombinedGazeDepth returns the distance of the gazed point along the
// combined ray, in meters. Needs CapGazeDepth.
func (h *Headset) CombinedGazeDepth() Result[float32] {
	return resultOf(h.lib.GetCombinedGazeDepth(h.handle))
}

// User state

// IsUserShiftingAttention reports whether the gaze is in a saccade and
// should not be trusted for interaction. Needs CapUserAttentionShift.
func (h *Headset) IsUserShiftingAttention() Result[bool] {
	return resultOf(h.lib.IsUserShiftingAttention(h.handle))
}

// EyeState reports whether the eye is opened, closed or not detected.
func (h *Headset) EyeState(eye capi.Eye) Result[capi.EyeState] {
	return resultOf(h.lib.GetEyeState(h.handle, eye))
}

// IsEyeBlinking reports whether the eye is in the middle of a blink.
// Needs CapEyeBlink.
func (h *Headset) IsEyeBlinking(eye capi.Eye) Result[bool] {
	return resultOf(h.lib.IsEyeBlinking(h.handle, eye))
}

// EyeBlinkCount returns the number of blinks since eye tracking started.
func (h *Headset) EyeBlinkCount(eye capi.Eye) Result[int] {
	return resultOf(h.lib.GetEyeBlinkCount(h.handle, eye))
}

// IsUserPresent reports whether a user is wearing the headset. Needs
// CapUserPresence.
func (h *Headset) IsUserPresent() Result[bool] {
	return resultOf(h.lib.IsUserPresent(h.handle))
}

// Eye tracking status

// IsEyeTrackingEnabled reports whether any client holds CapEyeTracking.
func (h *Headset) IsEyeTrackingEnabled() Result[bool] {
	return resultOf(h.lib.IsEyeTrackingEnabled(h.handle))
}

// IsEyeTrackingCalibrated reports whether a calibration is in place.
func (h *Headset) IsEyeTrackingCalibrated() Result[bool] {
	return resultOf(h.lib.IsEyeTrackingCalibrated(h.handle))
}

// IsEyeTrackingCalibrating reports whether a calibration run is in progress.
func (h *Headset) IsEyeTrackingCalibrating() Result[bool] {
	return resultOf(h.lib.IsEyeTrackingCalibrating(h.handle))
}

// IsEyeTrackingCalibratedForGlasses reports whether the active calibration
// was made while the user wore glasses.
func (h *Headset) IsEyeTrackingCalibratedForGlasses() Result[bool] {
	return resultOf(h.lib.IsEyeTrackingCalibratedForGlasses(h.handle))
}

// IsEyeTrackingReady reports whether gaze data can be expected.
func (h *Headset) IsEyeTrackingReady() Result[bool] {
	return resultOf(h.lib.IsEyeTrackingReady(h.handle))
}

// IsHmdAdjustmentGuiVisible reports whether the runtime is showing the
// headset positioning GUI.
func (h *Headset) IsHmdAdjustmentGuiVisible() Result[bool] {
	return resultOf(h.lib.IsHmdAdjustmentGuiVisible(h.handle))
}

// HasHmdAdjustmentGuiTimeout reports whether the positioning GUI was hidden
// after a timeout.
func (h *Headset) HasHmdAdjustmentGuiTimeout() Result[bool] {
	return resultOf(h.lib.HasHmdAdjustmentGuiTimeout(h.handle))
}

// Eye measurements

// EyesImage returns the latched eyes-camera frame as a BMP buffer. Needs
// CapEyesImage and a prior FetchEyesImage.
func (h *Headset) EyesImage() Result[capi.BitmapImage] {
	return resultOf(h.lib.GetEyesImage(h.handle))
}

// UserIPD returns the user's interpupillary distance in meters. Needs
// CapUserIPD.
func (h *Headset) UserIPD() Result[float32] {
	return resultOf(h.lib.GetUserIPD(h.handle))
}

// UserIOD returns the user's interocular distance in meters. Needs
// CapUserIOD.
func (h *Headset) UserIOD() Result[float32] {
	return resultOf(h.lib.GetUserIOD(h.handle))
}

// PupilRadius returns the pupil radius in meters. Needs CapPupilRadius.
func (h *Headset) PupilRadius(eye capi.Eye) Result[float32] {
	return resultOf(h.lib.GetPupilRadius(h.handle, eye))
}

// IrisRadius returns the iris radius in meters. Needs CapIrisRadius.
func (h *Headset) IrisRadius(eye capi.Eye) Result[float32] {
	return resultOf(h.lib.GetIrisRadius(h.handle, eye))
}

// EyeballRadius returns the eyeball radius in meters. Needs CapEyeballRadius.
func (h *Headset) EyeballRadius(eye capi.Eye) Result[float32] {
	return resultOf(h.lib.GetEyeballRadius(h.handle, eye))
}

// EyeTorsion returns the eye's rotation around the gaze axis, in degrees.
// Needs CapEyeTorsion and a torsion-enabled license.
func (h *Headset) EyeTorsion(eye capi.Eye) Result[float32] {
	return resultOf(h.lib.GetEyeTorsion(h.handle, eye))
}

// EyeShape returns the eye outline in eyes-image coordinates. Needs
// CapEyeShape.
func (h *Headset) EyeShape(eye capi.Eye) Result[capi.EyeShape] {
	return resultOf(h.lib.GetEyeShape(h.handle, eye))
}

// PupilShape returns the pupil ellipse in eyes-image coordinates. Needs
// CapPupilShape.
func (h *Headset) PupilShape(eye capi.Eye) Result[capi.PupilShape] {
	return resultOf(h.lib.GetPupilShape(h.handle, eye))
}

// Calibration

// StartEyeTrackingCalibration starts a calibration run.
func (h *Headset) StartEyeTrackingCalibration(options capi.CalibrationOptions) Status {
	return statusOf(h.lib.StartEyeTrackingCalibration(h.handle, options))
}

// StopEyeTrackingCalibration aborts the calibration run in progress.
func (h *Headset) StopEyeTrackingCalibration() Status {
	return statusOf(h.lib.StopEyeTrackingCalibration(h.handle))
}

// EyeTrackingCalibrationState returns the state of the current or last run.
func (h *Headset) EyeTrackingCalibrationState() Result[capi.CalibrationState] {
	return resultOf(h.lib.GetEyeTrackingCalibrationState(h.handle))
}

// EyeTrackingCalibrationStateDetails returns the full calibration data
// without ticking the run.
func (h *Headset) EyeTrackingCalibrationStateDetails() Result[capi.CalibrationData] {
	return resultOf(h.lib.GetEyeTrackingCalibrationStateDetails(h.handle))
}

// TickEyeTrackingCalibration advances a client-rendered calibration by
// deltaTime seconds and returns what to draw. Clients rendering the
// calibration call this every frame; isVisible tells the runtime whether the
// targets are actually shown.
func (h *Headset) TickEyeTrackingCalibration(deltaTime float32, isVisible bool) Result[capi.CalibrationData] {
	return resultOf(h.lib.TickEyeTrackingCalibration(h.handle, deltaTime, isVisible))
}

// HMD adjustment

// StartHmdAdjustmentProcess starts the headset positioning process. With
// lazy set it does nothing if the headset is already well positioned.
func (h *Headset) StartHmdAdjustmentProcess(lazy bool) Status {
	return statusOf(h.lib.StartHmdAdjustmentProcess(h.handle, lazy))
}

// TickHmdAdjustmentProcess advances a client-rendered positioning GUI and
// returns the feedback to draw.
func (h *Headset) TickHmdAdjustmentProcess(deltaTime float32, isVisible bool) Result[capi.HmdAdjustmentData] {
	return resultOf(h.lib.TickHmdAdjustmentProcess(h.handle, deltaTime, isVisible))
}

// Gazable objects

// GazedObjectID returns the ID of the registered object the user looks at,
// or capi.ObjectIDInvalid. Needs CapGazedObjectDetection.
func (h *Headset) GazedObjectID() Result[int] {
	return resultOf(h.lib.GetGazedObjectID(h.handle))
}

// RegisterGazableObject registers a world object for gaze detection.
// Registering an ID twice yields Object_AlreadyRegistered.
func (h *Headset) RegisterGazableObject(object capi.GazableObject) Status {
	return statusOf(h.lib.RegisterGazableObject(h.handle, object))
}

// UpdateGazableObject moves a registered object.
func (h *Headset) UpdateGazableObject(objectID int, pose capi.ObjectPose) Status {
	return statusOf(h.lib.UpdateGazableObject(h.handle, objectID, pose))
}

// RemoveGazableObject unregisters an object.
func (h *Headset) RemoveGazableObject(objectID int) Status {
	return statusOf(h.lib.RemoveGazableObject(h.handle, objectID))
}

// RegisterCameraObject registers the camera the scene is rendered from.
func (h *Headset) RegisterCameraObject(camera capi.CameraObject) Status {
	return statusOf(h.lib.RegisterCameraObject(h.handle, camera))
}

// UpdateCameraObject moves a registered camera.
func (h *Headset) UpdateCameraObject(cameraID int, pose capi.ObjectPose) Status {
	return statusOf(h.lib.UpdateCameraObject(h.handle, cameraID, pose))
}

// RemoveCameraObject unregisters a camera.
func (h *Headset) RemoveCameraObject(cameraID int) Status {
	return statusOf(h.lib.RemoveCameraObject(h.handle, cameraID))
}

// Pose tracking

// TareOrientationSensor re-zeroes the orientation sensor.
func (h *Headset) TareOrientationSensor() Status {
	return statusOf(h.lib.TareOrientationSensor(h.handle))
}

// IsPositionReady reports whether position tracking is delivering data.
func (h *Headset) IsPositionReady() Result[bool] {
	return resultOf(h.lib.IsPositionReady(h.handle))
}

// TarePositionSensors re-zeroes the position tracking origin.
func (h *Headset) TarePositionSensors() Status {
	return statusOf(h.lib.TarePositionSensors(h.handle))
}

// FetchPoseData latches the newest pose frame and returns its timestamp.
func (h *Headset) FetchPoseData() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.FetchPoseData(h.handle))
}

// FetchPositionImage latches the newest position-camera image.
func (h *Headset) FetchPositionImage() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.FetchPositionImage(h.handle))
}

// PoseDataTimestamp returns the timestamp of the latched pose frame.
func (h *Headset) PoseDataTimestamp() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.GetPoseDataTimestamp(h.handle))
}

// Pose returns the latched headset pose. Needs CapOrientationTracking, and
// CapPositionTracking for the positional fields.
func (h *Headset) Pose() Result[capi.Pose] {
	return resultOf(h.lib.GetPose(h.handle))
}

// PositionImage returns the latched position-camera frame as a BMP buffer.
// Needs CapPositionImage and a prior FetchPositionImage.
func (h *Headset) PositionImage() Result[capi.BitmapImage] {
	return resultOf(h.lib.GetPositionImage(h.handle))
}

// PositionImageTimestamp returns the timestamp of the latched position
// image.
func (h *Headset) PositionImageTimestamp() Result[capi.FrameTimestamp] {
	return resultOf(h.lib.GetPositionImageTimestamp(h.handle))
}

// Rendering geometry

// ProjectionMatricesLH returns left-handed projection matrices for both
// eyes.
func (h *Headset) ProjectionMatricesLH(zNear, zFar float32) Result[Stereo[capi.Matrix44]] {
	l, r, code := h.lib.GetProjectionMatricesLH(h.handle, zNear, zFar)
	return resultOf(Stereo[capi.Matrix44]{Left: l, Right: r}, code)
}

// ProjectionMatricesRH returns right-handed projection matrices for both
// eyes.
func (h *Headset) ProjectionMatricesRH(zNear, zFar float32) Result[Stereo[capi.Matrix44]] {
	l, r, code := h.lib.GetProjectionMatricesRH(h.handle, zNear, zFar)
	return resultOf(Stereo[capi.Matrix44]{Left: l, Right: r}, code)
}

// RawProjectionValues returns the per-eye view frustum planes at 1 unit.
func (h *Headset) RawProjectionValues() Result[Stereo[capi.ProjectionParams]] {
	l, r, code := h.lib.GetRawProjectionValues(h.handle)
	return resultOf(Stereo[capi.ProjectionParams]{Left: l, Right: r}, code)
}

// EyeToHeadMatrices returns the per-eye offset transforms for rendering.
func (h *Headset) EyeToHeadMatrices() Result[Stereo[capi.Matrix44]] {
	l, r, code := h.lib.GetEyeToHeadMatrices(h.handle)
	return resultOf(Stereo[capi.Matrix44]{Left: l, Right: r}, code)
}

// RenderIOD returns the interocular distance to render with, in meters.
func (h *Headset) RenderIOD() Result[float32] {
	return resultOf(h.lib.GetRenderIOD(h.handle))
}

// Profiles
//
// Profiles hold per-user data, most importantly calibrations. Exactly one
// profile is current at a time.

// CreateProfile creates an empty profile without making it current.
func (h *Headset) CreateProfile(name string) Status {
	return statusOf(h.lib.CreateProfile(h.handle, name))
}

// RenameProfile renames an existing profile.
func (h *Headset) RenameProfile(oldName, newName string) Status {
	return statusOf(h.lib.RenameProfile(h.handle, oldName, newName))
}

// DeleteProfile deletes a profile and its data. Deleting the current
// profile leaves no profile current.
func (h *Headset) DeleteProfile(name string) Status {
	return statusOf(h.lib.DeleteProfile(h.handle, name))
}

// ListProfiles lists all profile names.
func (h *Headset) ListProfiles() Result[[]string] {
	return resultOf(h.lib.ListProfiles(h.handle))
}

// SetCurrentProfile makes the named profile current, loading its data.
func (h *Headset) SetCurrentProfile(name string) Status {
	return statusOf(h.lib.SetCurrentProfile(h.handle, name))
}

// CurrentProfile returns the current profile name, empty if none is set.
func (h *Headset) CurrentProfile() Result[string] {
	return resultOf(h.lib.QueryCurrentProfile(h.handle))
}

// ProfileDataPath returns the directory where the named profile stores its
// data.
func (h *Headset) ProfileDataPath(name string) Result[string] {
	return resultOf(h.lib.QueryProfileDataPath(h.handle, name))
}

// LogText writes a line into the runtime's log, useful for correlating
// client events with runtime diagnostics.
func (h *Headset) LogText(level capi.LogLevel, text string) Status {
	return statusOf(h.lib.LogText(level, text))
}
