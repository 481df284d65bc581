package ffi

import (
	"unsafe"
)

// PeerConnectionConfig matches ShimPeerConnectionConfig in shim.h
type PeerConnectionConfig struct {
	ICEServers           uintptr // Pointer to array of ICEServerConfig
	ICEServerCount       int32
	ICECandidatePoolSize int32
	BundlePolicy         *byte // C string
	RTCPMuxPolicy        *byte // C string
	SDPSemantics         *byte // C string
}

// Ptr returns a pointer to the config as uintptr for FFI calls.
func (c *PeerConnectionConfig) Ptr() uintptr {
	return uintptr(unsafe.Pointer(c))
}

// ByteSlicePtr returns a uintptr to the first element of a byte slice.
// Returns 0 if the slice is empty.
func ByteSlicePtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// UintptrPtr returns a uintptr to a uintptr variable. The variable must
// stay pinned while native code may write through the result.
func UintptrPtr(p *uintptr) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// Int32Ptr returns a uintptr to an int32 variable. The variable must stay
// pinned while native code may write through the result.
func Int32Ptr(p *int32) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// CString allocates a null-terminated C string from a Go string.
// The caller is responsible for keeping the returned byte slice alive
// for as long as the C code needs it.
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	b[len(s)] = 0
	return b
}

// CStringPtr returns a pointer to a null-terminated C string.
func CStringPtr(s string) *byte {
	b := CString(s)
	return &b[0]
}

// GoString copies a null-terminated C string into a Go string.
// It does not free the C memory.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// copySlice copies n elements of C memory starting at ptr into a new Go
// slice. It never returns nil and does not free the C memory.
func copySlice[T any](ptr uintptr, n int) []T {
	if ptr == 0 || n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	copy(out, unsafe.Slice((*T)(unsafe.Pointer(ptr)), n))
	return out
}
