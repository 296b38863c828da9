package capi

import "testing"

func TestClientCapabilities_SetOps(t *testing.T) {
	caps := CapEyeTracking.Add(CapGazeDepth)

	if !caps.Has(CapEyeTracking) {
		t.Error("expected EyeTracking to be set")
	}
	if !caps.Has(CapEyeTracking | CapGazeDepth) {
		t.Error("expected combined set to be present")
	}
	if caps.Has(CapPositionTracking) {
		t.Error("PositionTracking should not be set")
	}

	caps = caps.Remove(CapGazeDepth)
	if caps.Has(CapGazeDepth) {
		t.Error("GazeDepth should have been removed")
	}
	if !caps.Has(CapEyeTracking) {
		t.Error("removing GazeDepth should not touch EyeTracking")
	}
}

func TestClientCapabilities_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b ClientCapabilities
		want bool
	}{
		{"disjoint", CapEyeTracking, CapPositionTracking, false},
		{"overlap", CapEyeTracking | CapGazeDepth, CapGazeDepth | CapUserIPD, true},
		{"empty", CapEyeTracking, CapNone, false},
		{"et group", CapEyeTracking, CapsEyeTracking, true},
		{"pose group", CapOrientationTracking, CapsPoseTracking, true},
	}
	for _, tt := range tests {
		if got := tt.a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClientCapabilities_String(t *testing.T) {
	tests := []struct {
		caps ClientCapabilities
		want string
	}{
		{CapNone, "None"},
		{CapEyeTracking, "EyeTracking"},
		{CapEyeTracking | CapGazeDepth, "EyeTracking|GazeDepth"},
		{CapOrientationTracking | CapEyeBlink, "OrientationTracking|EyeBlink"},
	}
	for _, tt := range tests {
		if got := tt.caps.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.caps, got, tt.want)
		}
	}
}

func TestClientCapabilities_BitsAreDistinct(t *testing.T) {
	seen := map[ClientCapabilities]string{}
	for _, e := range capNames {
		if e.cap == 0 {
			t.Errorf("capability %s has zero bit", e.name)
		}
		if e.cap&(e.cap-1) != 0 {
			t.Errorf("capability %s is not a single bit: %b", e.name, e.cap)
		}
		if prev, dup := seen[e.cap]; dup {
			t.Errorf("capability %s shares a bit with %s", e.name, prev)
		}
		seen[e.cap] = e.name
	}
}
