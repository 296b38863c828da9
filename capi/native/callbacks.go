//go:build cgo && (windows || linux)

package native

/*
#include <fove/FoveAPI.h>
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// The collector callbacks below are passed to native enumeration functions.
// The void* context carries a cgo.Handle to the Go-side collector; the
// native side invokes the callbacks synchronously during the call.

//export foveGoCollectString
func foveGoCollectString(s *C.char, data unsafe.Pointer) {
	col := cgo.Handle(uintptr(data)).Value().(*stringCollector)
	col.items = append(col.items, C.GoString(s))
}

//export foveGoCollectCalibrationData
func foveGoCollectCalibrationData(d *C.Fove_CalibrationData, data unsafe.Pointer) {
	col := cgo.Handle(uintptr(data)).Value().(*calibrationDataCollector)
	col.data = goCalibrationData(*d)
}
