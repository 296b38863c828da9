package capi

// CalibrationState tracks a calibration run. A run starts at NotStarted, may
// bounce between WaitingForUser and CollectingData, then moves through
// ProcessingData to one of the Successful_* states. A failure stops the run
// wherever it was. From ProcessingData onward no rendering is required, but
// the new calibration only takes effect on reaching a Successful_* state.
type CalibrationState int

const (
	CalibrationNotStarted CalibrationState = iota
	CalibrationHeadsetAdjustment
	CalibrationWaitingForUser
	CalibrationCollectingData
	CalibrationProcessingData
	CalibrationSuccessfulHighQuality
	CalibrationSuccessfulMediumQuality
	CalibrationSuccessfulLowQuality
	CalibrationFailedUnknown
	CalibrationFailedInaccurateData
	CalibrationFailedNoRenderer
	CalibrationFailedNoUser
	CalibrationFailedAborted
)

var calibrationStateNames = map[CalibrationState]string{
	CalibrationNotStarted:              "NotStarted",
	CalibrationHeadsetAdjustment:       "HeadsetAdjustment",
	CalibrationWaitingForUser:          "WaitingForUser",
	CalibrationCollectingData:          "CollectingData",
	CalibrationProcessingData:          "ProcessingData",
	CalibrationSuccessfulHighQuality:   "Successful_HighQuality",
	CalibrationSuccessfulMediumQuality: "Successful_MediumQuality",
	CalibrationSuccessfulLowQuality:    "Successful_LowQuality",
	CalibrationFailedUnknown:           "Failed_Unknown",
	CalibrationFailedInaccurateData:    "Failed_InaccurateData",
	CalibrationFailedNoRenderer:        "Failed_NoRenderer",
	CalibrationFailedNoUser:            "Failed_NoUser",
	CalibrationFailedAborted:           "Failed_Aborted",
}

func (s CalibrationState) String() string {
	if name, ok := calibrationStateNames[s]; ok {
		return name
	}
	return "CalibrationState(?)"
}

// Succeeded reports whether the state is one of the Successful_* states.
func (s CalibrationState) Succeeded() bool {
	return s >= CalibrationSuccessfulHighQuality && s <= CalibrationSuccessfulLowQuality
}

// Failed reports whether the state is one of the Failed_* states.
func (s CalibrationState) Failed() bool {
	return s >= CalibrationFailedUnknown && s <= CalibrationFailedAborted
}

// Done reports whether the run has finished, successfully or not.
func (s CalibrationState) Done() bool {
	return s.Succeeded() || s.Failed()
}

// CalibrationMethod selects the calibration procedure.
type CalibrationMethod int

const (
	CalibrationMethodDefault CalibrationMethod = iota
	CalibrationMethodOnePoint
	CalibrationMethodSpiral
	CalibrationMethodOnePointWithNoGlassesSpiralWithGlasses
	CalibrationMethodZeroPoint
)

func (m CalibrationMethod) String() string {
	switch m {
	case CalibrationMethodDefault:
		return "Default"
	case CalibrationMethodOnePoint:
		return "OnePoint"
	case CalibrationMethodSpiral:
		return "Spiral"
	case CalibrationMethodOnePointWithNoGlassesSpiralWithGlasses:
		return "OnePointWithNoGlassesSpiralWithGlasses"
	case CalibrationMethodZeroPoint:
		return "ZeroPoint"
	default:
		return "CalibrationMethod(?)"
	}
}

// EyeByEyeCalibration controls whether eyes are calibrated separately.
type EyeByEyeCalibration int

const (
	EyeByEyeDefault EyeByEyeCalibration = iota
	EyeByEyeDisabled
	EyeByEyeEnabled
)

// EyeTorsionCalibration controls whether eye torsion calibration runs.
type EyeTorsionCalibration int

const (
	EyeTorsionCalibrationDefault EyeTorsionCalibration = iota
	EyeTorsionCalibrationIfEnabled
	EyeTorsionCalibrationAlways
)

// CalibrationOptions configures a calibration run.
type CalibrationOptions struct {
	// Lazy skips the run entirely if the system is already calibrated.
	Lazy bool
	// Restart restarts from the beginning if a run is already in progress.
	Restart    bool
	EyeByEye   EyeByEyeCalibration
	Method     CalibrationMethod
	EyeTorsion EyeTorsionCalibration
}

// CalibrationTarget is one target to display during calibration.
type CalibrationTarget struct {
	// Position of the target in world space.
	Position Vec3
	// RecommendedSize is the suggested diameter of the rendered target, in
	// world units. Zero means the target should not be displayed.
	RecommendedSize float32
}

// CalibrationData carries everything a client renderer needs to draw the
// current state of the calibration process.
type CalibrationData struct {
	// Method currently used, or Default if reported by a newer runtime.
	Method CalibrationMethod
	State  CalibrationState
	// StateInfo is human-readable extra information about the state.
	StateInfo string
	TargetL   CalibrationTarget
	TargetR   CalibrationTarget
}

// HmdAdjustmentData carries the positioning feedback needed to render the
// headset adjustment GUI.
type HmdAdjustmentData struct {
	// Translation of the HMD in eyes-camera relative units, [-1, 1].
	Translation Vec2
	// Rotation of the HMD relative to the eye line, in radians.
	Rotation float32
	// AdjustmentNeeded indicates the GUI should be shown to the user.
	AdjustmentNeeded bool
	// HasTimeout indicates the adjustment process timed out and the GUI
	// should close.
	HasTimeout         bool
	IdealPositionL     Vec2
	IdealPositionR     Vec2
	IdealPositionSpanL float32
	IdealPositionSpanR float32
	EstimatedPositionL Vec2
	EstimatedPositionR Vec2
}
