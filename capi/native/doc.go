// Package native binds the capi.Library interface to the FOVE client C
// library (libFoveClient) via cgo. It registers itself with capi on import:
//
//	import _ "github.com/fovesdk/fove-go/capi/native"
//
// The package only builds where cgo is enabled and the FOVE SDK is
// installed; everywhere else capi.NewLibrary reports ErrUnavailable.
package native
