//go:build cgo && (windows || linux)

package native

import "github.com/fovesdk/fove-go/capi"

func init() {
	capi.NewLibraryFunc = func() (capi.Library, error) {
		return &library{}, nil
	}
}
