//go:build cgo && (windows || linux)

package native

/*
#cgo LDFLAGS: -lFoveClient
#include <fove/FoveAPI.h>
#include <stdlib.h>

extern void foveGoCollectString(char const* s, void* data);

static Fove_ErrorCode foveListProfiles(Fove_Headset* headset, void* data) {
	return fove_Headset_listProfiles(headset, foveGoCollectString, data);
}

static Fove_ErrorCode foveQueryCurrentProfile(Fove_Headset* headset, void* data) {
	return fove_Headset_queryCurrentProfile(headset, foveGoCollectString, data);
}

static Fove_ErrorCode foveQueryProfileDataPath(Fove_Headset* headset, char const* name, void* data) {
	return fove_Headset_queryProfileDataPath(headset, name, foveGoCollectString, data);
}

extern void foveGoCollectCalibrationData(Fove_CalibrationData const* d, void* data);

static Fove_ErrorCode foveGetCalibrationStateDetails(Fove_Headset* headset, void* data) {
	return fove_Headset_getEyeTrackingCalibrationStateDetails(headset, foveGoCollectCalibrationData, data);
}

static Fove_ErrorCode foveTickCalibration(Fove_Headset* headset, float deltaTime, bool isVisible, void* data) {
	return fove_Headset_tickEyeTrackingCalibration(headset, deltaTime, isVisible, foveGoCollectCalibrationData, data);
}
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"

	"github.com/fovesdk/fove-go/capi"
)

// library implements capi.Library by forwarding every call to the C ABI.
type library struct{}

func hs(h capi.HeadsetHandle) *C.Fove_Headset {
	return (*C.Fove_Headset)(unsafe.Pointer(h))
}

func cp(c capi.CompositorHandle) *C.Fove_Compositor {
	return (*C.Fove_Compositor)(unsafe.Pointer(c))
}

func goVec2(v C.Fove_Vec2) capi.Vec2 {
	return capi.Vec2{X: float32(v.x), Y: float32(v.y)}
}

func goVec3(v C.Fove_Vec3) capi.Vec3 {
	return capi.Vec3{X: float32(v.x), Y: float32(v.y), Z: float32(v.z)}
}

func cVec3(v capi.Vec3) C.Fove_Vec3 {
	return C.Fove_Vec3{x: C.float(v.X), y: C.float(v.Y), z: C.float(v.Z)}
}

func goQuat(q C.Fove_Quaternion) capi.Quaternion {
	return capi.Quaternion{X: float32(q.x), Y: float32(q.y), Z: float32(q.z), W: float32(q.w)}
}

func cQuat(q capi.Quaternion) C.Fove_Quaternion {
	return C.Fove_Quaternion{x: C.float(q.X), y: C.float(q.Y), z: C.float(q.Z), w: C.float(q.W)}
}

func goMatrix(m C.Fove_Matrix44) capi.Matrix44 {
	var out capi.Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Mat[i][j] = float32(m.mat[i][j])
		}
	}
	return out
}

func goPose(p C.Fove_Pose) capi.Pose {
	return capi.Pose{
		ID:                  uint64(p.id),
		Timestamp:           uint64(p.timestamp),
		Orientation:         goQuat(p.orientation),
		AngularVelocity:     goVec3(p.angularVelocity),
		AngularAcceleration: goVec3(p.angularAcceleration),
		Position:            goVec3(p.position),
		StandingPosition:    goVec3(p.standingPosition),
		Velocity:            goVec3(p.velocity),
		Acceleration:        goVec3(p.acceleration),
	}
}

func cObjectPose(p capi.ObjectPose) C.Fove_ObjectPose {
	return C.Fove_ObjectPose{
		scale:    cVec3(p.Scale),
		rotation: cQuat(p.Rotation),
		position: cVec3(p.Position),
		velocity: cVec3(p.Velocity),
	}
}

func goTimestamp(t C.Fove_FrameTimestamp) capi.FrameTimestamp {
	return capi.FrameTimestamp{ID: uint64(t.id), Timestamp: uint64(t.timestamp)}
}

func goBitmap(b C.Fove_BitmapImage) capi.BitmapImage {
	return capi.BitmapImage{
		Timestamp: uint64(b.timestamp),
		Data:      C.GoBytes(unsafe.Pointer(b.image.data), C.int(b.image.length)),
	}
}

func (l *library) CreateHeadset(caps capi.ClientCapabilities) (capi.HeadsetHandle, capi.ErrorCode) {
	var h *C.Fove_Headset
	err := C.fove_createHeadset(cCaps(caps), &h)
	return capi.HeadsetHandle(unsafe.Pointer(h)), code(err)
}

func (l *library) DestroyHeadset(h capi.HeadsetHandle) capi.ErrorCode {
	return code(C.fove_Headset_destroy(hs(h)))
}

func (l *library) IsHardwareConnected(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isHardwareConnected(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) IsMotionReady(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isMotionReady(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) CheckSoftwareVersions(h capi.HeadsetHandle) capi.ErrorCode {
	return code(C.fove_Headset_checkSoftwareVersions(hs(h)))
}

func (l *library) QuerySoftwareVersions(h capi.HeadsetHandle) (capi.Versions, capi.ErrorCode) {
	var v C.Fove_Versions
	err := C.fove_Headset_querySoftwareVersions(hs(h), &v)
	return capi.Versions{
		ClientMajor:            int(v.clientMajor),
		ClientMinor:            int(v.clientMinor),
		ClientBuild:            int(v.clientBuild),
		ClientProtocol:         int(v.clientProtocol),
		ClientHash:             C.GoString(&v.clientHash[0]),
		RuntimeMajor:           int(v.runtimeMajor),
		RuntimeMinor:           int(v.runtimeMinor),
		RuntimeBuild:           int(v.runtimeBuild),
		RuntimeHash:            C.GoString(&v.runtimeHash[0]),
		Firmware:               int(v.firmware),
		MaxFirmware:            int(v.maxFirmware),
		MinFirmware:            int(v.minFirmware),
		TooOldHeadsetConnected: bool(v.tooOldHeadsetConnected),
	}, code(err)
}

func (l *library) QueryHardwareInfo(h capi.HeadsetHandle) (capi.HeadsetHardwareInfo, capi.ErrorCode) {
	var info C.Fove_HeadsetHardwareInfo
	err := C.fove_Headset_queryHardwareInfo(hs(h), &info)
	return capi.HeadsetHardwareInfo{
		SerialNumber: C.GoString(&info.serialNumber[0]),
		Manufacturer: C.GoString(&info.manufacturer[0]),
		ModelName:    C.GoString(&info.modelName[0]),
	}, code(err)
}

// QueryLicenses uses the two-call protocol of the native side: a first call
// with a nil buffer yields the count, a second fills the array.
func (l *library) QueryLicenses(h capi.HeadsetHandle) ([]capi.LicenseInfo, capi.ErrorCode) {
	var n C.size_t
	if err := code(C.fove_Headset_queryLicenses(hs(h), nil, &n)); err != capi.ErrorNone {
		return nil, err
	}
	if n == 0 {
		return nil, capi.ErrorNone
	}
	buf := make([]C.Fove_LicenseInfo, n)
	if err := code(C.fove_Headset_queryLicenses(hs(h), &buf[0], &n)); err != capi.ErrorNone {
		return nil, err
	}
	out := make([]capi.LicenseInfo, int(n))
	for i := range out {
		out[i] = goLicense(buf[i])
	}
	return out, capi.ErrorNone
}

func goLicense(info C.Fove_LicenseInfo) capi.LicenseInfo {
	var lic capi.LicenseInfo
	for i := 0; i < len(lic.UUID); i++ {
		lic.UUID[i] = byte(info.uuid[i])
	}
	lic.ExpirationYear = int(info.expirationYear)
	lic.ExpirationMonth = int(info.expirationMonth)
	lic.ExpirationDay = int(info.expirationDay)
	lic.LicenseType = C.GoString(&info.licenseType[0])
	lic.Licensee = C.GoString(&info.licensee[0])
	return lic
}

func (l *library) HasAccessToFeature(h capi.HeadsetHandle, featureName string) (bool, capi.ErrorCode) {
	cName := C.CString(featureName)
	defer C.free(unsafe.Pointer(cName))
	var b C.bool
	err := C.fove_Headset_hasAccessToFeature(hs(h), cName, &b)
	return bool(b), code(err)
}

func (l *library) ActivateLicense(h capi.HeadsetHandle, licenseKey string) capi.ErrorCode {
	cKey := C.CString(licenseKey)
	defer C.free(unsafe.Pointer(cKey))
	return code(C.fove_Headset_activateLicense(hs(h), cKey))
}

func (l *library) DeactivateLicense(h capi.HeadsetHandle, licenseData string) capi.ErrorCode {
	cData := C.CString(licenseData)
	defer C.free(unsafe.Pointer(cData))
	return code(C.fove_Headset_deactivateLicense(hs(h), cData))
}

func (l *library) RegisterCapabilities(h capi.HeadsetHandle, caps capi.ClientCapabilities) capi.ErrorCode {
	return code(C.fove_Headset_registerCapabilities(hs(h), cCaps(caps)))
}

func (l *library) RegisterPassiveCapabilities(h capi.HeadsetHandle, caps capi.ClientCapabilities) capi.ErrorCode {
	return code(C.fove_Headset_registerPassiveCapabilities(hs(h), cCaps(caps)))
}

func (l *library) UnregisterCapabilities(h capi.HeadsetHandle, caps capi.ClientCapabilities) capi.ErrorCode {
	return code(C.fove_Headset_unregisterCapabilities(hs(h), cCaps(caps)))
}

func (l *library) UnregisterPassiveCapabilities(h capi.HeadsetHandle, caps capi.ClientCapabilities) capi.ErrorCode {
	return code(C.fove_Headset_unregisterPassiveCapabilities(hs(h), cCaps(caps)))
}

func (l *library) WaitForProcessedEyeFrame(h capi.HeadsetHandle) capi.ErrorCode {
	return code(C.fove_Headset_waitForProcessedEyeFrame(hs(h)))
}

func (l *library) FetchEyeTrackingData(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_fetchEyeTrackingData(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) FetchEyesImage(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_fetchEyesImage(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) GetEyeTrackingDataTimestamp(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_getEyeTrackingDataTimestamp(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) GetEyesImageTimestamp(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_getEyesImageTimestamp(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) GetGazeVector(h capi.HeadsetHandle, eye capi.Eye) (capi.Vec3, capi.ErrorCode) {
	var v C.Fove_Vec3
	err := C.fove_Headset_getGazeVector(hs(h), cEye(eye), &v)
	return goVec3(v), code(err)
}

func (l *library) GetGazeVectorRaw(h capi.HeadsetHandle, eye capi.Eye) (capi.Vec3, capi.ErrorCode) {
	var v C.Fove_Vec3
	err := C.fove_Headset_getGazeVectorRaw(hs(h), cEye(eye), &v)
	return goVec3(v), code(err)
}

func (l *library) GetGazeVectors(h capi.HeadsetHandle) (capi.Vec3, capi.Vec3, capi.ErrorCode) {
	var lv, rv C.Fove_Vec3
	err := C.fove_Headset_getGazeVectors(hs(h), &lv, &rv)
	return goVec3(lv), goVec3(rv), code(err)
}

func (l *library) GetGazeScreenPosition(h capi.HeadsetHandle, eye capi.Eye) (capi.Vec2, capi.ErrorCode) {
	var v C.Fove_Vec2
	err := C.fove_Headset_getGazeScreenPosition(hs(h), cEye(eye), &v)
	return goVec2(v), code(err)
}

func (l *library) GetGazeScreenPositionCombined(h capi.HeadsetHandle) (capi.Vec2, capi.ErrorCode) {
	var v C.Fove_Vec2
	err := C.fove_Headset_getGazeScreenPositionCombined(hs(h), &v)
	return goVec2(v), code(err)
}

func (l *library) GetCombinedGazeRay(h capi.HeadsetHandle) (capi.Ray, capi.ErrorCode) {
	var r C.Fove_Ray
	err := C.fove_Headset_getCombinedGazeRay(hs(h), &r)
	return capi.Ray{Origin: goVec3(r.origin), Direction: goVec3(r.direction)}, code(err)
}

func (l *library) GetCombinedGazeDepth(h capi.HeadsetHandle) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getCombinedGazeDepth(hs(h), &f)
	return float32(f), code(err)
}

func (l *library) IsUserShiftingAttention(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isUserShiftingAttention(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) GetEyeState(h capi.HeadsetHandle, eye capi.Eye) (capi.EyeState, capi.ErrorCode) {
	var s C.Fove_EyeState
	err := C.fove_Headset_getEyeState(hs(h), cEye(eye), &s)
	return goEyeState(s), code(err)
}

func (l *library) IsEyeBlinking(h capi.HeadsetHandle, eye capi.Eye) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isEyeBlinking(hs(h), cEye(eye), &b)
	return bool(b), code(err)
}

func (l *library) GetEyeBlinkCount(h capi.HeadsetHandle, eye capi.Eye) (int, capi.ErrorCode) {
	var n C.int
	err := C.fove_Headset_getEyeBlinkCount(hs(h), cEye(eye), &n)
	return int(n), code(err)
}

func (l *library) IsUserPresent(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isUserPresent(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) IsEyeTrackingEnabled(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isEyeTrackingEnabled(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) IsEyeTrackingCalibrated(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isEyeTrackingCalibrated(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) IsEyeTrackingCalibrating(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isEyeTrackingCalibrating(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) IsEyeTrackingCalibratedForGlasses(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isEyeTrackingCalibratedForGlasses(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) IsEyeTrackingReady(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isEyeTrackingReady(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) IsHmdAdjustmentGuiVisible(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isHmdAdjustmentGuiVisible(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) HasHmdAdjustmentGuiTimeout(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_hasHmdAdjustmentGuiTimeout(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) GetEyesImage(h capi.HeadsetHandle) (capi.BitmapImage, capi.ErrorCode) {
	var img C.Fove_BitmapImage
	err := C.fove_Headset_getEyesImage(hs(h), &img)
	return goBitmap(img), code(err)
}

func (l *library) GetUserIPD(h capi.HeadsetHandle) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getUserIPD(hs(h), &f)
	return float32(f), code(err)
}

func (l *library) GetUserIOD(h capi.HeadsetHandle) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getUserIOD(hs(h), &f)
	return float32(f), code(err)
}

func (l *library) GetPupilRadius(h capi.HeadsetHandle, eye capi.Eye) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getPupilRadius(hs(h), cEye(eye), &f)
	return float32(f), code(err)
}

func (l *library) GetIrisRadius(h capi.HeadsetHandle, eye capi.Eye) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getIrisRadius(hs(h), cEye(eye), &f)
	return float32(f), code(err)
}

func (l *library) GetEyeballRadius(h capi.HeadsetHandle, eye capi.Eye) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getEyeballRadius(hs(h), cEye(eye), &f)
	return float32(f), code(err)
}

func (l *library) GetEyeTorsion(h capi.HeadsetHandle, eye capi.Eye) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getEyeTorsion(hs(h), cEye(eye), &f)
	return float32(f), code(err)
}

func (l *library) GetEyeShape(h capi.HeadsetHandle, eye capi.Eye) (capi.EyeShape, capi.ErrorCode) {
	var s C.Fove_EyeShape
	err := C.fove_Headset_getEyeShape(hs(h), cEye(eye), &s)
	var out capi.EyeShape
	for i := 0; i < capi.EyeShapeOutlinePoints; i++ {
		out.Outline[i] = goVec2(s.outline[i])
	}
	return out, code(err)
}

func (l *library) GetPupilShape(h capi.HeadsetHandle, eye capi.Eye) (capi.PupilShape, capi.ErrorCode) {
	var s C.Fove_PupilShape
	err := C.fove_Headset_getPupilShape(hs(h), cEye(eye), &s)
	return capi.PupilShape{
		Center: goVec2(s.center),
		Size:   goVec2(s.size),
		Angle:  float32(s.angle),
	}, code(err)
}

func (l *library) StartEyeTrackingCalibration(h capi.HeadsetHandle, options capi.CalibrationOptions) capi.ErrorCode {
	opts := C.Fove_CalibrationOptions{
		lazy:       C.bool(options.Lazy),
		restart:    C.bool(options.Restart),
		eyeByEye:   cEyeByEye(options.EyeByEye),
		method:     cCalibrationMethod(options.Method),
		eyeTorsion: cEyeTorsion(options.EyeTorsion),
	}
	return code(C.fove_Headset_startEyeTrackingCalibration(hs(h), &opts))
}

func (l *library) StopEyeTrackingCalibration(h capi.HeadsetHandle) capi.ErrorCode {
	return code(C.fove_Headset_stopEyeTrackingCalibration(hs(h)))
}

func (l *library) GetEyeTrackingCalibrationState(h capi.HeadsetHandle) (capi.CalibrationState, capi.ErrorCode) {
	var s C.Fove_CalibrationState
	err := C.fove_Headset_getEyeTrackingCalibrationState(hs(h), &s)
	return goCalibrationState(s), code(err)
}

func goCalibrationTarget(t C.Fove_CalibrationTarget) capi.CalibrationTarget {
	return capi.CalibrationTarget{
		Position:        goVec3(t.position),
		RecommendedSize: float32(t.recommendedSize),
	}
}

func goCalibrationData(d C.Fove_CalibrationData) capi.CalibrationData {
	return capi.CalibrationData{
		Method:    goCalibrationMethod(d.method),
		State:     goCalibrationState(d.state),
		StateInfo: C.GoString(d.stateInfo),
		TargetL:   goCalibrationTarget(d.targetL),
		TargetR:   goCalibrationTarget(d.targetR),
	}
}

// calibrationDataCollector receives the calibration snapshot delivered by
// the native callback.
type calibrationDataCollector struct {
	data capi.CalibrationData
}

func (l *library) GetEyeTrackingCalibrationStateDetails(h capi.HeadsetHandle) (capi.CalibrationData, capi.ErrorCode) {
	var col calibrationDataCollector
	handle := cgo.NewHandle(&col)
	defer handle.Delete()
	err := C.foveGetCalibrationStateDetails(hs(h), unsafe.Pointer(uintptr(handle)))
	return col.data, code(err)
}

func (l *library) TickEyeTrackingCalibration(h capi.HeadsetHandle, deltaTime float32, isVisible bool) (capi.CalibrationData, capi.ErrorCode) {
	var col calibrationDataCollector
	handle := cgo.NewHandle(&col)
	defer handle.Delete()
	err := C.foveTickCalibration(hs(h), C.float(deltaTime), C.bool(isVisible), unsafe.Pointer(uintptr(handle)))
	return col.data, code(err)
}

func (l *library) StartHmdAdjustmentProcess(h capi.HeadsetHandle, lazy bool) capi.ErrorCode {
	return code(C.fove_Headset_startHmdAdjustmentProcess(hs(h), C.bool(lazy)))
}

func (l *library) TickHmdAdjustmentProcess(h capi.HeadsetHandle, deltaTime float32, isVisible bool) (capi.HmdAdjustmentData, capi.ErrorCode) {
	var d C.Fove_HmdAdjustmentData
	err := C.fove_Headset_tickHmdAdjustmentProcess(hs(h), C.float(deltaTime), C.bool(isVisible), &d)
	return capi.HmdAdjustmentData{
		Translation:        goVec2(d.translation),
		Rotation:           float32(d.rotation),
		AdjustmentNeeded:   bool(d.adjustmentNeeded),
		HasTimeout:         bool(d.hasTimeout),
		IdealPositionL:     goVec2(d.idealPositionL),
		IdealPositionR:     goVec2(d.idealPositionR),
		IdealPositionSpanL: float32(d.idealPositionSpanL),
		IdealPositionSpanR: float32(d.idealPositionSpanR),
		EstimatedPositionL: goVec2(d.estimatedPositionL),
		EstimatedPositionR: goVec2(d.estimatedPositionR),
	}, code(err)
}

func (l *library) GetGazedObjectID(h capi.HeadsetHandle) (int, capi.ErrorCode) {
	var id C.int
	err := C.fove_Headset_getGazedObjectId(hs(h), &id)
	return int(id), code(err)
}

// cAlloc tracks C allocations made while marshalling a call and releases
// them after the native side has copied the data.
type cAlloc struct {
	ptrs []unsafe.Pointer
}

func (a *cAlloc) malloc(size uintptr) unsafe.Pointer {
	p := C.malloc(C.size_t(size))
	a.ptrs = append(a.ptrs, p)
	return p
}

func (a *cAlloc) free() {
	for _, p := range a.ptrs {
		C.free(p)
	}
}

func (l *library) RegisterGazableObject(h capi.HeadsetHandle, object capi.GazableObject) capi.ErrorCode {
	var alloc cAlloc
	defer alloc.free()

	cObj := C.Fove_GazableObject{
		id:            C.int(object.ID),
		pose:          cObjectPose(object.Pose),
		group:         cObjectGroup(object.Group),
		colliderCount: C.int(len(object.Colliders)),
	}
	if n := len(object.Colliders); n > 0 {
		colliders := (*C.Fove_ObjectCollider)(alloc.malloc(uintptr(n) * unsafe.Sizeof(C.Fove_ObjectCollider{})))
		slice := unsafe.Slice(colliders, n)
		for i, col := range object.Colliders {
			slice[i] = cCollider(col, &alloc)
		}
		cObj.colliders = colliders
	}
	return code(C.fove_Headset_registerGazableObject(hs(h), &cObj))
}

func cCollider(col capi.ObjectCollider, alloc *cAlloc) C.Fove_ObjectCollider {
	out := C.Fove_ObjectCollider{
		center:    cVec3(col.Center),
		shapeType: cColliderType(col.Type),
	}
	// shapeDefinition is a C union; cgo exposes it as raw bytes.
	switch col.Type {
	case capi.ColliderCube:
		cube := (*C.Fove_ColliderCube)(unsafe.Pointer(&out.shapeDefinition[0]))
		cube.size = cVec3(col.Cube.Size)
	case capi.ColliderSphere:
		sphere := (*C.Fove_ColliderSphere)(unsafe.Pointer(&out.shapeDefinition[0]))
		sphere.radius = C.float(col.Sphere.Radius)
	case capi.ColliderMesh:
		mesh := (*C.Fove_ColliderMesh)(unsafe.Pointer(&out.shapeDefinition[0]))
		// The C side takes the vertex buffer as a flat float array with
		// three components per vertex, and counts indices in triangles.
		if n := len(col.Mesh.Vertices); n > 0 {
			vertices := (*C.float)(alloc.malloc(uintptr(n) * 3 * C.sizeof_float))
			vslice := unsafe.Slice(vertices, n*3)
			for i, v := range col.Mesh.Vertices {
				vslice[i*3] = C.float(v.X)
				vslice[i*3+1] = C.float(v.Y)
				vslice[i*3+2] = C.float(v.Z)
			}
			mesh.vertices = vertices
			mesh.vertexCount = C.uint(n * 3)
		}
		if n := len(col.Mesh.Indices); n > 0 {
			indices := (*C.uint)(alloc.malloc(uintptr(n) * C.sizeof_uint))
			islice := unsafe.Slice(indices, n)
			for i, idx := range col.Mesh.Indices {
				islice[i] = C.uint(idx)
			}
			mesh.indices = indices
			mesh.triangleCount = C.uint(n / 3)
		}
		mesh.boundingBox = C.Fove_BoundingBox{
			center: cVec3(col.Mesh.BoundingBox.Center),
			extend: cVec3(col.Mesh.BoundingBox.Extend),
		}
	}
	return out
}

func (l *library) UpdateGazableObject(h capi.HeadsetHandle, objectID int, pose capi.ObjectPose) capi.ErrorCode {
	cPose := cObjectPose(pose)
	return code(C.fove_Headset_updateGazableObject(hs(h), C.int(objectID), &cPose))
}

func (l *library) RemoveGazableObject(h capi.HeadsetHandle, objectID int) capi.ErrorCode {
	return code(C.fove_Headset_removeGazableObject(hs(h), C.int(objectID)))
}

func (l *library) RegisterCameraObject(h capi.HeadsetHandle, camera capi.CameraObject) capi.ErrorCode {
	cCam := C.Fove_CameraObject{
		id:        C.int(camera.ID),
		pose:      cObjectPose(camera.Pose),
		groupMask: cObjectGroup(camera.GroupMask),
	}
	return code(C.fove_Headset_registerCameraObject(hs(h), &cCam))
}

func (l *library) UpdateCameraObject(h capi.HeadsetHandle, cameraID int, pose capi.ObjectPose) capi.ErrorCode {
	cPose := cObjectPose(pose)
	return code(C.fove_Headset_updateCameraObject(hs(h), C.int(cameraID), &cPose))
}

func (l *library) RemoveCameraObject(h capi.HeadsetHandle, cameraID int) capi.ErrorCode {
	return code(C.fove_Headset_removeCameraObject(hs(h), C.int(cameraID)))
}

func (l *library) TareOrientationSensor(h capi.HeadsetHandle) capi.ErrorCode {
	return code(C.fove_Headset_tareOrientationSensor(hs(h)))
}

func (l *library) IsPositionReady(h capi.HeadsetHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Headset_isPositionReady(hs(h), &b)
	return bool(b), code(err)
}

func (l *library) TarePositionSensors(h capi.HeadsetHandle) capi.ErrorCode {
	return code(C.fove_Headset_tarePositionSensors(hs(h)))
}

func (l *library) FetchPoseData(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_fetchPoseData(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) FetchPositionImage(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_fetchPositionImage(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) GetPoseDataTimestamp(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_getPoseDataTimestamp(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) GetPose(h capi.HeadsetHandle) (capi.Pose, capi.ErrorCode) {
	var p C.Fove_Pose
	err := C.fove_Headset_getPose(hs(h), &p)
	return goPose(p), code(err)
}

func (l *library) GetPositionImage(h capi.HeadsetHandle) (capi.BitmapImage, capi.ErrorCode) {
	var img C.Fove_BitmapImage
	err := C.fove_Headset_getPositionImage(hs(h), &img)
	return goBitmap(img), code(err)
}

func (l *library) GetPositionImageTimestamp(h capi.HeadsetHandle) (capi.FrameTimestamp, capi.ErrorCode) {
	var t C.Fove_FrameTimestamp
	err := C.fove_Headset_getPositionImageTimestamp(hs(h), &t)
	return goTimestamp(t), code(err)
}

func (l *library) GetProjectionMatricesLH(h capi.HeadsetHandle, zNear, zFar float32) (capi.Matrix44, capi.Matrix44, capi.ErrorCode) {
	var lm, rm C.Fove_Matrix44
	err := C.fove_Headset_getProjectionMatricesLH(hs(h), C.float(zNear), C.float(zFar), &lm, &rm)
	return goMatrix(lm), goMatrix(rm), code(err)
}

func (l *library) GetProjectionMatricesRH(h capi.HeadsetHandle, zNear, zFar float32) (capi.Matrix44, capi.Matrix44, capi.ErrorCode) {
	var lm, rm C.Fove_Matrix44
	err := C.fove_Headset_getProjectionMatricesRH(hs(h), C.float(zNear), C.float(zFar), &lm, &rm)
	return goMatrix(lm), goMatrix(rm), code(err)
}

func (l *library) GetRawProjectionValues(h capi.HeadsetHandle) (capi.ProjectionParams, capi.ProjectionParams, capi.ErrorCode) {
	var lp, rp C.Fove_ProjectionParams
	err := C.fove_Headset_getRawProjectionValues(hs(h), &lp, &rp)
	conv := func(p C.Fove_ProjectionParams) capi.ProjectionParams {
		return capi.ProjectionParams{
			Left:   float32(p.left),
			Right:  float32(p.right),
			Top:    float32(p.top),
			Bottom: float32(p.bottom),
		}
	}
	return conv(lp), conv(rp), code(err)
}

func (l *library) GetEyeToHeadMatrices(h capi.HeadsetHandle) (capi.Matrix44, capi.Matrix44, capi.ErrorCode) {
	var lm, rm C.Fove_Matrix44
	err := C.fove_Headset_getEyeToHeadMatrices(hs(h), &lm, &rm)
	return goMatrix(lm), goMatrix(rm), code(err)
}

func (l *library) GetRenderIOD(h capi.HeadsetHandle) (float32, capi.ErrorCode) {
	var f C.float
	err := C.fove_Headset_getRenderIOD(hs(h), &f)
	return float32(f), code(err)
}

func (l *library) CreateProfile(h capi.HeadsetHandle, name string) capi.ErrorCode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return code(C.fove_Headset_createProfile(hs(h), cName))
}

func (l *library) RenameProfile(h capi.HeadsetHandle, oldName, newName string) capi.ErrorCode {
	cOld := C.CString(oldName)
	defer C.free(unsafe.Pointer(cOld))
	cNew := C.CString(newName)
	defer C.free(unsafe.Pointer(cNew))
	return code(C.fove_Headset_renameProfile(hs(h), cOld, cNew))
}

func (l *library) DeleteProfile(h capi.HeadsetHandle, name string) capi.ErrorCode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return code(C.fove_Headset_deleteProfile(hs(h), cName))
}

// stringCollector accumulates strings delivered by enumeration callbacks.
type stringCollector struct {
	items []string
}

func (l *library) ListProfiles(h capi.HeadsetHandle) ([]string, capi.ErrorCode) {
	var col stringCollector
	handle := cgo.NewHandle(&col)
	defer handle.Delete()
	err := C.foveListProfiles(hs(h), unsafe.Pointer(uintptr(handle)))
	return col.items, code(err)
}

func (l *library) SetCurrentProfile(h capi.HeadsetHandle, name string) capi.ErrorCode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return code(C.fove_Headset_setCurrentProfile(hs(h), cName))
}

func (l *library) QueryCurrentProfile(h capi.HeadsetHandle) (string, capi.ErrorCode) {
	var col stringCollector
	handle := cgo.NewHandle(&col)
	defer handle.Delete()
	err := C.foveQueryCurrentProfile(hs(h), unsafe.Pointer(uintptr(handle)))
	if len(col.items) == 0 {
		return "", code(err)
	}
	return col.items[0], code(err)
}

func (l *library) QueryProfileDataPath(h capi.HeadsetHandle, name string) (string, capi.ErrorCode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var col stringCollector
	handle := cgo.NewHandle(&col)
	defer handle.Delete()
	err := C.foveQueryProfileDataPath(hs(h), cName, unsafe.Pointer(uintptr(handle)))
	if len(col.items) == 0 {
		return "", code(err)
	}
	return col.items[0], code(err)
}

func (l *library) CreateCompositor(h capi.HeadsetHandle) (capi.CompositorHandle, capi.ErrorCode) {
	var c *C.Fove_Compositor
	err := C.fove_Headset_createCompositor(hs(h), &c)
	return capi.CompositorHandle(unsafe.Pointer(c)), code(err)
}

func (l *library) DestroyCompositor(c capi.CompositorHandle) capi.ErrorCode {
	return code(C.fove_Compositor_destroy(cp(c)))
}

func (l *library) CreateLayer(c capi.CompositorHandle, info capi.CompositorLayerCreateInfo) (capi.CompositorLayer, capi.ErrorCode) {
	cInfo := C.Fove_CompositorLayerCreateInfo{
		layerType:         cLayerType(info.Type),
		disableTimeWarp:   C.bool(info.DisableTimeWarp),
		alphaMode:         cAlphaMode(info.AlphaMode),
		disableFading:     C.bool(info.DisableFading),
		disableDistortion: C.bool(info.DisableDistortion),
	}
	var layer C.Fove_CompositorLayer
	err := C.fove_Compositor_createLayer(cp(c), &cInfo, &layer)
	return capi.CompositorLayer{
		LayerID: uint32(layer.layerId),
		IdealResolutionPerEye: capi.Vec2i{
			X: int32(layer.idealResolutionPerEye.x),
			Y: int32(layer.idealResolutionPerEye.y),
		},
	}, code(err)
}

func (l *library) Submit(c capi.CompositorHandle, layers []capi.CompositorLayerSubmitInfo) capi.ErrorCode {
	if len(layers) == 0 {
		return capi.ErrorAPIMissingArgument
	}
	var alloc cAlloc
	defer alloc.free()

	cLayers := make([]C.Fove_CompositorLayerSubmitInfo, len(layers))
	for i, layer := range layers {
		cLayers[i] = C.Fove_CompositorLayerSubmitInfo{
			layerId: C.uint32_t(layer.LayerID),
			pose:    cPose(layer.Pose),
		}
		if layer.Left.Texture != nil {
			cLayers[i].left = C.Fove_CompositorLayerEyeSubmitInfo{
				texInfo: cTexture(*layer.Left.Texture, &alloc),
				bounds:  cBounds(layer.Left.Bounds),
			}
		}
		if layer.Right.Texture != nil {
			cLayers[i].right = C.Fove_CompositorLayerEyeSubmitInfo{
				texInfo: cTexture(*layer.Right.Texture, &alloc),
				bounds:  cBounds(layer.Right.Bounds),
			}
		}
	}
	return code(C.fove_Compositor_submit(cp(c), &cLayers[0], C.int(len(cLayers))))
}

func cPose(p capi.Pose) C.Fove_Pose {
	return C.Fove_Pose{
		id:                  C.uint64_t(p.ID),
		timestamp:           C.uint64_t(p.Timestamp),
		orientation:         cQuat(p.Orientation),
		angularVelocity:     cVec3(p.AngularVelocity),
		angularAcceleration: cVec3(p.AngularAcceleration),
		position:            cVec3(p.Position),
		standingPosition:    cVec3(p.StandingPosition),
		velocity:            cVec3(p.Velocity),
		acceleration:        cVec3(p.Acceleration),
	}
}

// cTexture builds the graphics-API variant struct the compositor expects.
// The variants embed Fove_CompositorTexture as their first member, so the
// submit info points at C-allocated variant memory reinterpreted as the base.
func cTexture(t capi.CompositorTexture, alloc *cAlloc) *C.Fove_CompositorTexture {
	switch t.GraphicsAPI {
	case capi.GraphicsOpenGL:
		gl := (*C.Fove_GLTexture)(alloc.malloc(unsafe.Sizeof(C.Fove_GLTexture{})))
		gl.parent = C.Fove_CompositorTexture{graphicsAPI: C.Fove_GraphicsAPI_OpenGL}
		gl.textureId = C.uint32_t(t.GLTextureID)
		gl.context = unsafe.Pointer(t.GLContext)
		return &gl.parent
	case capi.GraphicsMetal:
		mtl := (*C.Fove_MetalTexture)(alloc.malloc(unsafe.Sizeof(C.Fove_MetalTexture{})))
		mtl.parent = C.Fove_CompositorTexture{graphicsAPI: C.Fove_GraphicsAPI_Metal}
		mtl.texture = unsafe.Pointer(t.MetalTexture)
		return &mtl.parent
	default:
		dx := (*C.Fove_DX11Texture)(alloc.malloc(unsafe.Sizeof(C.Fove_DX11Texture{})))
		dx.parent = C.Fove_CompositorTexture{graphicsAPI: C.Fove_GraphicsAPI_DirectX}
		dx.texture = unsafe.Pointer(t.DX11Texture)
		return &dx.parent
	}
}

func cBounds(b capi.TextureBounds) C.Fove_TextureBounds {
	return C.Fove_TextureBounds{
		left:   C.float(b.Left),
		top:    C.float(b.Top),
		right:  C.float(b.Right),
		bottom: C.float(b.Bottom),
	}
}

func (l *library) WaitForRenderPose(c capi.CompositorHandle) (capi.Pose, capi.ErrorCode) {
	var p C.Fove_Pose
	err := C.fove_Compositor_waitForRenderPose(cp(c), &p)
	return goPose(p), code(err)
}

func (l *library) GetLastRenderPose(c capi.CompositorHandle) (capi.Pose, capi.ErrorCode) {
	var p C.Fove_Pose
	err := C.fove_Compositor_getLastRenderPose(cp(c), &p)
	return goPose(p), code(err)
}

func (l *library) IsCompositorReady(c capi.CompositorHandle) (bool, capi.ErrorCode) {
	var b C.bool
	err := C.fove_Compositor_isReady(cp(c), &b)
	return bool(b), code(err)
}

func (l *library) QueryAdapterID(c capi.CompositorHandle) (capi.AdapterID, capi.ErrorCode) {
	var id C.Fove_AdapterId
	err := C.fove_Compositor_queryAdapterId(cp(c), &id)
	return capi.AdapterID{
		LowPart:  uint32(id.lowPart),
		HighPart: int32(id.highPart),
	}, code(err)
}

func (l *library) LogText(level capi.LogLevel, text string) capi.ErrorCode {
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))
	return code(C.fove_logText(cLogLevel(level), cText))
}
