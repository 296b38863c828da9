//go:build cgo && (windows || linux)

package native

/*
#include <fove/FoveAPI.h>
*/
import "C"
import "github.com/fovesdk/fove-go/capi"

// The Go-side enums carry their own numeric values, so every value crossing
// the cgo boundary is converted by name against the header's constants,
// never by numeric cast.

func code(e C.Fove_ErrorCode) capi.ErrorCode {
	switch e {
	case C.Fove_ErrorCode_None:
		return capi.ErrorNone
	case C.Fove_ErrorCode_Connect_NotConnected:
		return capi.ErrorConnectNotConnected
	case C.Fove_ErrorCode_Connect_RuntimeVersionTooOld:
		return capi.ErrorConnectRuntimeVersionTooOld
	case C.Fove_ErrorCode_Connect_ClientVersionTooOld:
		return capi.ErrorConnectClientVersionTooOld
	case C.Fove_ErrorCode_API_InvalidArgument:
		return capi.ErrorAPIInvalidArgument
	case C.Fove_ErrorCode_API_NotRegistered:
		return capi.ErrorAPINotRegistered
	case C.Fove_ErrorCode_API_NullInPointer:
		return capi.ErrorAPINullInPointer
	case C.Fove_ErrorCode_API_InvalidEnumValue:
		return capi.ErrorAPIInvalidEnumValue
	case C.Fove_ErrorCode_API_NullOutPointersOnly:
		return capi.ErrorAPINullOutPointersOnly
	case C.Fove_ErrorCode_API_OverlappingOutPointers:
		return capi.ErrorAPIOverlappingOutPointers
	case C.Fove_ErrorCode_API_MissingArgument:
		return capi.ErrorAPIMissingArgument
	case C.Fove_ErrorCode_API_Timeout:
		return capi.ErrorAPITimeout
	case C.Fove_ErrorCode_API_AlreadyInTheDesiredState:
		return capi.ErrorAPIAlreadyInTheDesiredState
	case C.Fove_ErrorCode_Data_Unreadable:
		return capi.ErrorDataUnreadable
	case C.Fove_ErrorCode_Data_NoUpdate:
		return capi.ErrorDataNoUpdate
	case C.Fove_ErrorCode_Data_Uncalibrated:
		return capi.ErrorDataUncalibrated
	case C.Fove_ErrorCode_Data_Unreliable:
		return capi.ErrorDataUnreliable
	case C.Fove_ErrorCode_Data_LowAccuracy:
		return capi.ErrorDataLowAccuracy
	case C.Fove_ErrorCode_Hardware_Disconnected:
		return capi.ErrorHardwareDisconnected
	case C.Fove_ErrorCode_Hardware_WrongFirmwareVersion:
		return capi.ErrorHardwareWrongFirmwareVersion
	case C.Fove_ErrorCode_Code_NotImplementedYet:
		return capi.ErrorCodeNotImplementedYet
	case C.Fove_ErrorCode_Code_FunctionDeprecated:
		return capi.ErrorCodeFunctionDeprecated
	case C.Fove_ErrorCode_Position_ObjectNotTracked:
		return capi.ErrorPositionObjectNotTracked
	case C.Fove_ErrorCode_Compositor_NotSwapped:
		return capi.ErrorCompositorNotSwapped
	case C.Fove_ErrorCode_Compositor_UnableToCreateDeviceAndContext:
		return capi.ErrorCompositorUnableToCreateDeviceAndContext
	case C.Fove_ErrorCode_Compositor_UnableToUseTexture:
		return capi.ErrorCompositorUnableToUseTexture
	case C.Fove_ErrorCode_Compositor_DeviceMismatch:
		return capi.ErrorCompositorDeviceMismatch
	case C.Fove_ErrorCode_Compositor_DisconnectedFromRuntime:
		return capi.ErrorCompositorDisconnectedFromRuntime
	case C.Fove_ErrorCode_Compositor_ErrorCreatingTexturesOnDevice:
		return capi.ErrorCompositorErrorCreatingTexturesOnDevice
	case C.Fove_ErrorCode_Compositor_NoEyeSpecifiedForSubmit:
		return capi.ErrorCompositorNoEyeSpecifiedForSubmit
	case C.Fove_ErrorCode_Object_AlreadyRegistered:
		return capi.ErrorObjectAlreadyRegistered
	case C.Fove_ErrorCode_Render_OtherRendererPrioritized:
		return capi.ErrorRenderOtherRendererPrioritized
	case C.Fove_ErrorCode_License_FeatureAccessDenied:
		return capi.ErrorLicenseFeatureAccessDenied
	case C.Fove_ErrorCode_Profile_DoesntExist:
		return capi.ErrorProfileDoesntExist
	case C.Fove_ErrorCode_Profile_NotAvailable:
		return capi.ErrorProfileNotAvailable
	case C.Fove_ErrorCode_Profile_InvalidName:
		return capi.ErrorProfileInvalidName
	case C.Fove_ErrorCode_Config_DoesntExist:
		return capi.ErrorConfigDoesntExist
	case C.Fove_ErrorCode_Config_TypeMismatch:
		return capi.ErrorConfigTypeMismatch
	case C.Fove_ErrorCode_System_UnknownError:
		return capi.ErrorSystemUnknownError
	case C.Fove_ErrorCode_System_PathNotFound:
		return capi.ErrorSystemPathNotFound
	case C.Fove_ErrorCode_System_AccessDenied:
		return capi.ErrorSystemAccessDenied
	default:
		return capi.ErrorUnknown
	}
}

var capBits = []struct {
	g capi.ClientCapabilities
	c C.Fove_ClientCapabilities
}{
	{capi.CapOrientationTracking, C.Fove_ClientCapabilities_OrientationTracking},
	{capi.CapPositionTracking, C.Fove_ClientCapabilities_PositionTracking},
	{capi.CapPositionImage, C.Fove_ClientCapabilities_PositionImage},
	{capi.CapEyeTracking, C.Fove_ClientCapabilities_EyeTracking},
	{capi.CapGazeDepth, C.Fove_ClientCapabilities_GazeDepth},
	{capi.CapUserPresence, C.Fove_ClientCapabilities_UserPresence},
	{capi.CapUserAttentionShift, C.Fove_ClientCapabilities_UserAttentionShift},
	{capi.CapUserIOD, C.Fove_ClientCapabilities_UserIOD},
	{capi.CapUserIPD, C.Fove_ClientCapabilities_UserIPD},
	{capi.CapEyeTorsion, C.Fove_ClientCapabilities_EyeTorsion},
	{capi.CapEyeShape, C.Fove_ClientCapabilities_EyeShape},
	{capi.CapEyesImage, C.Fove_ClientCapabilities_EyesImage},
	{capi.CapEyeballRadius, C.Fove_ClientCapabilities_EyeballRadius},
	{capi.CapIrisRadius, C.Fove_ClientCapabilities_IrisRadius},
	{capi.CapPupilRadius, C.Fove_ClientCapabilities_PupilRadius},
	{capi.CapGazedObjectDetection, C.Fove_ClientCapabilities_GazedObjectDetection},
	{capi.CapDirectScreenAccess, C.Fove_ClientCapabilities_DirectScreenAccess},
	{capi.CapPupilShape, C.Fove_ClientCapabilities_PupilShape},
	{capi.CapEyeBlink, C.Fove_ClientCapabilities_EyeBlink},
}

func cCaps(caps capi.ClientCapabilities) C.Fove_ClientCapabilities {
	out := C.Fove_ClientCapabilities(C.Fove_ClientCapabilities_None)
	for _, b := range capBits {
		if caps.Has(b.g) {
			out |= b.c
		}
	}
	return out
}

func cEye(e capi.Eye) C.Fove_Eye {
	if e == capi.EyeRight {
		return C.Fove_Eye_Right
	}
	return C.Fove_Eye_Left
}

func goEyeState(s C.Fove_EyeState) capi.EyeState {
	switch s {
	case C.Fove_EyeState_Opened:
		return capi.EyeStateOpened
	case C.Fove_EyeState_Closed:
		return capi.EyeStateClosed
	default:
		return capi.EyeStateNotDetected
	}
}

func goCalibrationState(s C.Fove_CalibrationState) capi.CalibrationState {
	switch s {
	case C.Fove_CalibrationState_HeadsetAdjustment:
		return capi.CalibrationHeadsetAdjustment
	case C.Fove_CalibrationState_WaitingForUser:
		return capi.CalibrationWaitingForUser
	case C.Fove_CalibrationState_CollectingData:
		return capi.CalibrationCollectingData
	case C.Fove_CalibrationState_ProcessingData:
		return capi.CalibrationProcessingData
	case C.Fove_CalibrationState_Successful_HighQuality:
		return capi.CalibrationSuccessfulHighQuality
	case C.Fove_CalibrationState_Successful_MediumQuality:
		return capi.CalibrationSuccessfulMediumQuality
	case C.Fove_CalibrationState_Successful_LowQuality:
		return capi.CalibrationSuccessfulLowQuality
	case C.Fove_CalibrationState_Failed_Unknown:
		return capi.CalibrationFailedUnknown
	case C.Fove_CalibrationState_Failed_InaccurateData:
		return capi.CalibrationFailedInaccurateData
	case C.Fove_CalibrationState_Failed_NoRenderer:
		return capi.CalibrationFailedNoRenderer
	case C.Fove_CalibrationState_Failed_NoUser:
		return capi.CalibrationFailedNoUser
	case C.Fove_CalibrationState_Failed_Aborted:
		return capi.CalibrationFailedAborted
	default:
		return capi.CalibrationNotStarted
	}
}

func cCalibrationMethod(m capi.CalibrationMethod) C.Fove_CalibrationMethod {
	switch m {
	case capi.CalibrationMethodOnePoint:
		return C.Fove_CalibrationMethod_OnePoint
	case capi.CalibrationMethodSpiral:
		return C.Fove_CalibrationMethod_Spiral
	case capi.CalibrationMethodOnePointWithNoGlassesSpiralWithGlasses:
		return C.Fove_CalibrationMethod_OnePointWithNoGlassesSpiralWithGlasses
	case capi.CalibrationMethodZeroPoint:
		return C.Fove_CalibrationMethod_ZeroPoint
	default:
		return C.Fove_CalibrationMethod_Default
	}
}

func goCalibrationMethod(m C.Fove_CalibrationMethod) capi.CalibrationMethod {
	switch m {
	case C.Fove_CalibrationMethod_OnePoint:
		return capi.CalibrationMethodOnePoint
	case C.Fove_CalibrationMethod_Spiral:
		return capi.CalibrationMethodSpiral
	case C.Fove_CalibrationMethod_OnePointWithNoGlassesSpiralWithGlasses:
		return capi.CalibrationMethodOnePointWithNoGlassesSpiralWithGlasses
	case C.Fove_CalibrationMethod_ZeroPoint:
		return capi.CalibrationMethodZeroPoint
	default:
		return capi.CalibrationMethodDefault
	}
}

func cEyeByEye(v capi.EyeByEyeCalibration) C.Fove_EyeByEyeCalibration {
	switch v {
	case capi.EyeByEyeDisabled:
		return C.Fove_EyeByEyeCalibration_Disabled
	case capi.EyeByEyeEnabled:
		return C.Fove_EyeByEyeCalibration_Enabled
	default:
		return C.Fove_EyeByEyeCalibration_Default
	}
}

func cEyeTorsion(v capi.EyeTorsionCalibration) C.Fove_EyeTorsionCalibration {
	switch v {
	case capi.EyeTorsionCalibrationIfEnabled:
		return C.Fove_EyeTorsionCalibration_IfEnabled
	case capi.EyeTorsionCalibrationAlways:
		return C.Fove_EyeTorsionCalibration_Always
	default:
		return C.Fove_EyeTorsionCalibration_Default
	}
}

func cLayerType(t capi.CompositorLayerType) C.Fove_CompositorLayerType {
	switch t {
	case capi.LayerOverlay:
		return C.Fove_CompositorLayerType_Overlay
	case capi.LayerDiagnostic:
		return C.Fove_CompositorLayerType_Diagnostic
	default:
		return C.Fove_CompositorLayerType_Base
	}
}

func cAlphaMode(m capi.AlphaMode) C.Fove_AlphaMode {
	switch m {
	case capi.AlphaOne:
		return C.Fove_AlphaMode_One
	case capi.AlphaSample:
		return C.Fove_AlphaMode_Sample
	default:
		return C.Fove_AlphaMode_Auto
	}
}

func cColliderType(t capi.ColliderType) C.Fove_ColliderType {
	switch t {
	case capi.ColliderSphere:
		return C.Fove_ColliderType_Sphere
	case capi.ColliderMesh:
		return C.Fove_ColliderType_Mesh
	default:
		return C.Fove_ColliderType_Cube
	}
}

func cLogLevel(l capi.LogLevel) C.Fove_LogLevel {
	switch l {
	case capi.LogLevelWarning:
		return C.Fove_LogLevel_Warning
	case capi.LogLevelError:
		return C.Fove_LogLevel_Error
	default:
		return C.Fove_LogLevel_Debug
	}
}

var objectGroupBits = []struct {
	n uint
	c C.Fove_ObjectGroup
}{
	{0, C.Fove_ObjectGroup_Group0}, {1, C.Fove_ObjectGroup_Group1},
	{2, C.Fove_ObjectGroup_Group2}, {3, C.Fove_ObjectGroup_Group3},
	{4, C.Fove_ObjectGroup_Group4}, {5, C.Fove_ObjectGroup_Group5},
	{6, C.Fove_ObjectGroup_Group6}, {7, C.Fove_ObjectGroup_Group7},
	{8, C.Fove_ObjectGroup_Group8}, {9, C.Fove_ObjectGroup_Group9},
	{10, C.Fove_ObjectGroup_Group10}, {11, C.Fove_ObjectGroup_Group11},
	{12, C.Fove_ObjectGroup_Group12}, {13, C.Fove_ObjectGroup_Group13},
	{14, C.Fove_ObjectGroup_Group14}, {15, C.Fove_ObjectGroup_Group15},
	{16, C.Fove_ObjectGroup_Group16}, {17, C.Fove_ObjectGroup_Group17},
	{18, C.Fove_ObjectGroup_Group18}, {19, C.Fove_ObjectGroup_Group19},
	{20, C.Fove_ObjectGroup_Group20}, {21, C.Fove_ObjectGroup_Group21},
	{22, C.Fove_ObjectGroup_Group22}, {23, C.Fove_ObjectGroup_Group23},
	{24, C.Fove_ObjectGroup_Group24}, {25, C.Fove_ObjectGroup_Group25},
	{26, C.Fove_ObjectGroup_Group26}, {27, C.Fove_ObjectGroup_Group27},
	{28, C.Fove_ObjectGroup_Group28}, {29, C.Fove_ObjectGroup_Group29},
	{30, C.Fove_ObjectGroup_Group30}, {31, C.Fove_ObjectGroup_Group31},
}

func cObjectGroup(g capi.ObjectGroup) C.Fove_ObjectGroup {
	var out C.Fove_ObjectGroup
	for _, b := range objectGroupBits {
		if g&capi.Group(b.n) != 0 {
			out |= b.c
		}
	}
	return out
}
