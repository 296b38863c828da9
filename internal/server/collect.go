package server

import (
	"github.com/fovesdk/fove-go"
	"github.com/fovesdk/fove-go/internal/output"
)

// CollectStatus gathers the full runtime/headset status snapshot. Individual
// queries that fail leave their field at the zero value.
func CollectStatus(h *fove.Headset) output.StatusResult {
	var res output.StatusResult
	res.HardwareConnected = h.IsHardwareConnected().ValueOr(false)
	res.MotionReady = h.IsMotionReady().ValueOr(false)
	res.PositionReady = h.IsPositionReady().ValueOr(false)
	res.EyeTrackingEnabled = h.IsEyeTrackingEnabled().ValueOr(false)
	res.EyeTrackingReady = h.IsEyeTrackingReady().ValueOr(false)
	res.Calibrated = h.IsEyeTrackingCalibrated().ValueOr(false)

	if s := h.CheckSoftwareVersions(); s.Succeeded() {
		res.VersionsCompatible = true
	} else {
		res.VersionsError = s.Code().String()
	}
	if r := h.SoftwareVersions(); r.Succeeded() {
		v := r.Value()
		res.Versions = &v
	}
	if r := h.HardwareInfo(); r.Succeeded() {
		hw := r.Value()
		res.Hardware = &hw
	}
	if r := h.Licenses(); r.Succeeded() {
		res.Licenses = r.Value()
	}
	return res
}

// SampleGaze latches one eye tracking frame and reads the gaze data off it.
// Degraded or missing values are dropped from the sample and the frame's
// quality code is recorded.
func SampleGaze(h *fove.Headset) output.GazeSample {
	var sample output.GazeSample

	fetch := h.FetchEyeTrackingData()
	if fetch.Acceptable() {
		ts := fetch.Value()
		sample.FrameID = ts.ID
		sample.Timestamp = ts.Timestamp
	}
	if !fetch.Succeeded() {
		sample.Quality = fetch.Code().String()
	}

	if r := h.GazeVectors(); r.Valid() {
		v := r.Value()
		sample.Left, sample.Right = &v.Left, &v.Right
	}
	if r := h.CombinedGazeRay(); r.Valid() {
		ray := r.Value()
		sample.Ray = &ray
	}
	if r := h.CombinedGazeDepth(); r.Valid() {
		depth := r.Value()
		sample.Depth = &depth
	}
	return sample
}
