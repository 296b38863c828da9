// Package capi defines the call-for-call surface of the FOVE native client
// library: the data structures, enums and error codes of the C ABI, and the
// Library interface with one method per native entry point.
//
// Nothing in this package talks to hardware. The build-tagged capi/native
// package registers a cgo-backed Library via NewLibraryFunc; on platforms
// without the native SDK, NewLibrary returns ErrUnavailable. Tests substitute
// their own Library implementations.
//
// Higher-level code should normally use the root fove package instead, which
// wraps these raw calls in managed object lifetimes and Result values.
package capi
