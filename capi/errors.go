package capi

import "fmt"

// ErrorCode is the error vocabulary of the FOVE runtime. Every native call
// returns one. The numeric values are grouped in stable per-subsystem blocks;
// clients should compare symbolically, never arithmetically.
type ErrorCode int

const (
	ErrorNone ErrorCode = 0

	// Connection errors
	ErrorConnectNotConnected         ErrorCode = 1
	ErrorConnectRuntimeVersionTooOld ErrorCode = 2
	ErrorConnectClientVersionTooOld  ErrorCode = 3

	// API usage errors
	ErrorAPIInvalidArgument          ErrorCode = 100
	ErrorAPINotRegistered            ErrorCode = 101
	ErrorAPINullInPointer            ErrorCode = 102
	ErrorAPIInvalidEnumValue         ErrorCode = 103
	ErrorAPINullOutPointersOnly      ErrorCode = 104
	ErrorAPIOverlappingOutPointers   ErrorCode = 105
	ErrorAPIMissingArgument          ErrorCode = 106
	ErrorAPITimeout                  ErrorCode = 107
	ErrorAPIAlreadyInTheDesiredState ErrorCode = 108

	// Data errors: these describe the quality of a returned value. A call
	// returning LowAccuracy or Unreliable still carries a value.
	ErrorDataUnreadable   ErrorCode = 200
	ErrorDataNoUpdate     ErrorCode = 201
	ErrorDataUncalibrated ErrorCode = 202
	ErrorDataUnreliable   ErrorCode = 203
	ErrorDataLowAccuracy  ErrorCode = 204

	// Hardware errors
	ErrorHardwareDisconnected         ErrorCode = 300
	ErrorHardwareWrongFirmwareVersion ErrorCode = 301

	// Code/implementation errors
	ErrorCodeNotImplementedYet  ErrorCode = 400
	ErrorCodeFunctionDeprecated ErrorCode = 401

	// Position tracking errors
	ErrorPositionObjectNotTracked ErrorCode = 500

	// Compositor errors
	ErrorCompositorNotSwapped                    ErrorCode = 600
	ErrorCompositorUnableToCreateDeviceAndContext ErrorCode = 601
	ErrorCompositorUnableToUseTexture            ErrorCode = 602
	ErrorCompositorDeviceMismatch                ErrorCode = 603
	ErrorCompositorDisconnectedFromRuntime       ErrorCode = 604
	ErrorCompositorErrorCreatingTexturesOnDevice ErrorCode = 605
	ErrorCompositorNoEyeSpecifiedForSubmit       ErrorCode = 606

	// Gazable object errors
	ErrorObjectAlreadyRegistered ErrorCode = 1000

	// Rendering errors
	ErrorRenderOtherRendererPrioritized ErrorCode = 1100

	// License errors
	ErrorLicenseFeatureAccessDenied ErrorCode = 1200

	// Profile errors
	ErrorProfileDoesntExist  ErrorCode = 1300
	ErrorProfileNotAvailable ErrorCode = 1301
	ErrorProfileInvalidName  ErrorCode = 1302

	// Config errors
	ErrorConfigDoesntExist  ErrorCode = 1400
	ErrorConfigTypeMismatch ErrorCode = 1401

	// System errors
	ErrorSystemUnknownError ErrorCode = 1500
	ErrorSystemPathNotFound ErrorCode = 1501
	ErrorSystemAccessDenied ErrorCode = 1502

	ErrorUnknown ErrorCode = 9000
)

var errorNames = map[ErrorCode]string{
	ErrorNone:                                     "None",
	ErrorConnectNotConnected:                      "Connect_NotConnected",
	ErrorConnectRuntimeVersionTooOld:              "Connect_RuntimeVersionTooOld",
	ErrorConnectClientVersionTooOld:               "Connect_ClientVersionTooOld",
	ErrorAPIInvalidArgument:                       "API_InvalidArgument",
	ErrorAPINotRegistered:                         "API_NotRegistered",
	ErrorAPINullInPointer:                         "API_NullInPointer",
	ErrorAPIInvalidEnumValue:                      "API_InvalidEnumValue",
	ErrorAPINullOutPointersOnly:                   "API_NullOutPointersOnly",
	ErrorAPIOverlappingOutPointers:                "API_OverlappingOutPointers",
	ErrorAPIMissingArgument:                       "API_MissingArgument",
	ErrorAPITimeout:                               "API_Timeout",
	ErrorAPIAlreadyInTheDesiredState:              "API_AlreadyInTheDesiredState",
	ErrorDataUnreadable:                           "Data_Unreadable",
	ErrorDataNoUpdate:                             "Data_NoUpdate",
	ErrorDataUncalibrated:                         "Data_Uncalibrated",
	ErrorDataUnreliable:                           "Data_Unreliable",
	ErrorDataLowAccuracy:                          "Data_LowAccuracy",
	ErrorHardwareDisconnected:                     "Hardware_Disconnected",
	ErrorHardwareWrongFirmwareVersion:             "Hardware_WrongFirmwareVersion",
	ErrorCodeNotImplementedYet:                    "Code_NotImplementedYet",
	ErrorCodeFunctionDeprecated:                   "Code_FunctionDeprecated",
	ErrorPositionObjectNotTracked:                 "Position_ObjectNotTracked",
	ErrorCompositorNotSwapped:                     "Compositor_NotSwapped",
	ErrorCompositorUnableToCreateDeviceAndContext: "Compositor_UnableToCreateDeviceAndContext",
	ErrorCompositorUnableToUseTexture:             "Compositor_UnableToUseTexture",
	ErrorCompositorDeviceMismatch:                 "Compositor_DeviceMismatch",
	ErrorCompositorDisconnectedFromRuntime:        "Compositor_DisconnectedFromRuntime",
	ErrorCompositorErrorCreatingTexturesOnDevice:  "Compositor_ErrorCreatingTexturesOnDevice",
	ErrorCompositorNoEyeSpecifiedForSubmit:        "Compositor_NoEyeSpecifiedForSubmit",
	ErrorObjectAlreadyRegistered:                  "Object_AlreadyRegistered",
	ErrorRenderOtherRendererPrioritized:           "Render_OtherRendererPrioritized",
	ErrorLicenseFeatureAccessDenied:               "License_FeatureAccessDenied",
	ErrorProfileDoesntExist:                       "Profile_DoesntExist",
	ErrorProfileNotAvailable:                      "Profile_NotAvailable",
	ErrorProfileInvalidName:                       "Profile_InvalidName",
	ErrorConfigDoesntExist:                        "Config_DoesntExist",
	ErrorConfigTypeMismatch:                       "Config_TypeMismatch",
	ErrorSystemUnknownError:                       "System_UnknownError",
	ErrorSystemPathNotFound:                       "System_PathNotFound",
	ErrorSystemAccessDenied:                       "System_AccessDenied",
	ErrorUnknown:                                  "UnknownError",
}

// String returns the native name of the error code.
func (e ErrorCode) String() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(e))
}

// Err converts the code to a Go error. ErrorNone maps to nil so native
// returns can be forwarded directly in error positions.
func (e ErrorCode) Err() error {
	if e == ErrorNone {
		return nil
	}
	return &CallError{Code: e}
}

// CallError wraps an ErrorCode as a Go error.
type CallError struct {
	Code ErrorCode
}

func (e *CallError) Error() string {
	return fmt.Sprintf("fove: %s", e.Code)
}

// Is allows errors.Is comparisons against another *CallError.
func (e *CallError) Is(target error) bool {
	t, ok := target.(*CallError)
	return ok && t.Code == e.Code
}
