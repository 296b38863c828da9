// Package fove is a Go client for the FOVE eye and head tracking runtime.
//
// The runtime service owns the hardware; this package talks to it through the
// native client library. A Headset is created with the set of capabilities
// the program needs, data queries return a Result carrying both the value and
// the runtime's quality verdict, and a Compositor submits rendered frames:
//
//	h, err := fove.CreateHeadset(capi.CapOrientationTracking | capi.CapEyeTracking)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer h.Close()
//
//	h.WaitForProcessedEyeFrame()
//	h.FetchEyeTrackingData()
//	if gaze := h.CombinedGazeRay(); gaze.Valid() {
//		fmt.Println(gaze.Value().Direction)
//	}
//
// Binaries that should talk to real hardware must link the native binding:
//
//	import _ "github.com/fovesdk/fove-go/capi/native"
package fove
