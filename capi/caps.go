package capi

import "strings"

// ClientCapabilities is a bit set of the features a client wants the runtime
// to keep running. Most data queries require the matching capability to be
// registered first; querying without it yields API_NotRegistered, and for a
// few frames after registration Data_NoUpdate while the service bootstraps
// the capability. The runtime keeps a capability's hardware/software running
// as long as at least one client registers it.
type ClientCapabilities uint32

// CapNone requests no capabilities.
const CapNone ClientCapabilities = 0

const (
	CapOrientationTracking ClientCapabilities = 1 << iota
	CapPositionTracking
	CapPositionImage
	CapEyeTracking
	CapGazeDepth
	CapUserPresence
	CapUserAttentionShift
	CapUserIOD
	CapUserIPD
	CapEyeTorsion
	CapEyeShape
	CapEyesImage
	CapEyeballRadius
	CapIrisRadius
	CapPupilRadius
	CapGazedObjectDetection
	CapDirectScreenAccess
	CapPupilShape
	CapEyeBlink
)

var capNames = []struct {
	cap  ClientCapabilities
	name string
}{
	{CapOrientationTracking, "OrientationTracking"},
	{CapPositionTracking, "PositionTracking"},
	{CapPositionImage, "PositionImage"},
	{CapEyeTracking, "EyeTracking"},
	{CapGazeDepth, "GazeDepth"},
	{CapUserPresence, "UserPresence"},
	{CapUserAttentionShift, "UserAttentionShift"},
	{CapUserIOD, "UserIOD"},
	{CapUserIPD, "UserIPD"},
	{CapEyeTorsion, "EyeTorsion"},
	{CapEyeShape, "EyeShape"},
	{CapEyesImage, "EyesImage"},
	{CapEyeballRadius, "EyeballRadius"},
	{CapIrisRadius, "IrisRadius"},
	{CapPupilRadius, "PupilRadius"},
	{CapGazedObjectDetection, "GazedObjectDetection"},
	{CapDirectScreenAccess, "DirectScreenAccess"},
	{CapPupilShape, "PupilShape"},
	{CapEyeBlink, "EyeBlink"},
}

// CapsEyeTracking is the set of all eye-tracking related capabilities.
const CapsEyeTracking = CapEyeTracking | CapGazeDepth | CapUserPresence |
	CapUserAttentionShift | CapUserIOD | CapUserIPD | CapEyeTorsion |
	CapEyeShape | CapPupilShape | CapEyesImage | CapEyeballRadius |
	CapIrisRadius | CapPupilRadius | CapGazedObjectDetection | CapEyeBlink

// CapsPoseTracking is the set of all head-pose related capabilities.
const CapsPoseTracking = CapOrientationTracking | CapPositionTracking | CapPositionImage

// Has reports whether all bits of other are set.
func (c ClientCapabilities) Has(other ClientCapabilities) bool {
	return c&other == other
}

// Intersects reports whether any bit of other is set.
func (c ClientCapabilities) Intersects(other ClientCapabilities) bool {
	return c&other != 0
}

// Add returns the set with the bits of other added.
func (c ClientCapabilities) Add(other ClientCapabilities) ClientCapabilities {
	return c | other
}

// Remove returns the set with the bits of other cleared.
func (c ClientCapabilities) Remove(other ClientCapabilities) ClientCapabilities {
	return c &^ other
}

// String renders the set as "EyeTracking|GazeDepth", or "None" when empty.
func (c ClientCapabilities) String() string {
	if c == CapNone {
		return "None"
	}
	var parts []string
	for _, e := range capNames {
		if c.Has(e.cap) {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}
