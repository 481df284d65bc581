// Package ffi provides FFI bindings to the statistics API of the libwebrtc
// shim library. Symbols are bound with purego, so no cgo toolchain is needed.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

var (
	// ErrLibraryNotLoaded is returned when the shim library hasn't been loaded.
	ErrLibraryNotLoaded = errors.New("libwebrtc_shim library not loaded")

	// ErrLibraryNotFound is returned when the shim library cannot be found.
	ErrLibraryNotFound = errors.New("libwebrtc_shim library not found")

	// FFI error sentinels - these match shim error codes and support errors.Is().
	ErrInvalidParam   = errors.New("invalid parameter")
	ErrInitFailed     = errors.New("initialization failed")
	ErrOutOfMemory    = errors.New("out of memory")
	ErrNotSupported   = errors.New("not supported")
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrNotFound       = errors.New("not found")
	ErrTimeout        = errors.New("timed out")
)

// Error codes from shim (int32 to match C int)
const (
	ShimOK                int32 = 0
	ShimErrInvalidParam   int32 = -1
	ShimErrInitFailed     int32 = -2
	ShimErrOutOfMemory    int32 = -5
	ShimErrNotSupported   int32 = -6
	ShimErrBufferTooSmall int32 = -8
	ShimErrNotFound       int32 = -9
	ShimErrTimeout        int32 = -11
)

const envShimPath = "LIBWEBRTC_SHIM_PATH"

var (
	libHandle uintptr
	libLoaded atomic.Bool // Use atomic for lock-free reads
	libMu     sync.Mutex  // Still used for load/unload operations
)

// LoadLibrary loads the libwebrtc_shim shared library.
// It searches in the following locations:
// 1. Path specified by LIBWEBRTC_SHIM_PATH environment variable
// 2. ./lib/{os}_{arch}/ (executable, working directory and module relative)
// 3. System library paths
func LoadLibrary() error {
	libMu.Lock()
	defer libMu.Unlock()

	if libLoaded.Load() {
		return nil
	}

	libPath := resolveLibrary()
	handle, err := dlopenLibrary(libPath, RTLD_NOW|RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, libPath, err)
	}

	libHandle = handle
	if err := registerFunctions(); err != nil {
		_ = dlcloseLibrary(handle)
		libHandle = 0
		return err
	}

	libLoaded.Store(true)
	return nil
}

// MustLoadLibrary loads the library and panics on failure.
func MustLoadLibrary() {
	if err := LoadLibrary(); err != nil {
		panic(fmt.Sprintf("rtcstats: %v", err))
	}
}

// IsLoaded returns true if the shim library is loaded.
// Thread-safe due to atomic.Bool.
func IsLoaded() bool {
	return libLoaded.Load()
}

// Close unloads the shim library.
func Close() error {
	libMu.Lock()
	defer libMu.Unlock()

	if !libLoaded.Load() {
		return nil
	}

	if err := dlcloseLibrary(libHandle); err != nil {
		return err
	}

	libLoaded.Store(false)
	libHandle = 0
	clearFunctions()
	return nil
}

// ExpectedShimVersion is the shim API version this Go code expects.
// Must match kShimVersion in shim/shim_common.cc.
const ExpectedShimVersion = "0.2.0"

// ErrVersionMismatch is returned when the shim version doesn't match.
var ErrVersionMismatch = errors.New("shim version mismatch")

// ShimVersion returns the shim library version.
// Returns empty string if library is not loaded.
func ShimVersion() string {
	if !libLoaded.Load() {
		return ""
	}
	ptr := shimVersion()
	if ptr == 0 {
		return ""
	}
	return GoString(unsafe.Pointer(ptr))
}

// LibWebRTCVersion returns the libwebrtc version the shim was built with.
// Returns empty string if library is not loaded.
func LibWebRTCVersion() string {
	if !libLoaded.Load() {
		return ""
	}
	ptr := shimLibwebrtcVersion()
	if ptr == 0 {
		return ""
	}
	return GoString(unsafe.Pointer(ptr))
}

// CheckVersion verifies the shim version matches what this Go code expects.
// Returns nil if versions match, ErrVersionMismatch otherwise.
func CheckVersion() error {
	if !libLoaded.Load() {
		return ErrLibraryNotLoaded
	}

	if shimVer := ShimVersion(); shimVer != ExpectedShimVersion {
		return fmt.Errorf("%w: shim version %q, expected %q", ErrVersionMismatch, shimVer, ExpectedShimVersion)
	}
	return nil
}

// resolveLibrary returns a path for a locally installed shim, or the bare
// library name so the dynamic loader searches the system paths.
func resolveLibrary() string {
	if path, ok := findLocalLibrary(); ok {
		return path
	}
	return getLibraryName()
}

func findLocalLibrary() (string, bool) {
	// Check environment variable first
	if path := os.Getenv(envShimPath); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	for _, path := range librarySearchPaths() {
		if _, err := os.Stat(path); err == nil {
			absPath, _ := filepath.Abs(path)
			return absPath, true
		}
	}

	return "", false
}

func librarySearchPaths() []string {
	libName := getLibraryName()
	platformDir := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)

	var searchPaths []string

	// Check relative to executable
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths, filepath.Join(execDir, "lib", platformDir, libName))
	}

	// Check working directory
	if wd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths,
			filepath.Join(wd, "lib", platformDir, libName),
			filepath.Join(wd, "..", "lib", platformDir, libName),
			filepath.Join(wd, "..", "..", "lib", platformDir, libName),
		)
	}

	// thisFile is .../internal/ffi/lib.go, go up to module root
	if _, thisFile, _, ok := runtime.Caller(0); ok {
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
		searchPaths = append(searchPaths, filepath.Join(moduleRoot, "lib", platformDir, libName))
	}

	return searchPaths
}

func getLibraryName() string {
	return getLibraryNameFor(runtime.GOOS)
}

func getLibraryNameFor(goos string) string {
	switch goos {
	case "darwin":
		return "libwebrtc_shim.dylib"
	case "windows":
		return "libwebrtc_shim.dll"
	default:
		return "libwebrtc_shim.so"
	}
}

// ShimError converts a shim error code to a Go error.
// Returns sentinel errors that support errors.Is() comparisons.
func ShimError(code int32) error {
	switch code {
	case ShimOK:
		return nil
	case ShimErrInvalidParam:
		return ErrInvalidParam
	case ShimErrInitFailed:
		return ErrInitFailed
	case ShimErrOutOfMemory:
		return ErrOutOfMemory
	case ShimErrNotSupported:
		return ErrNotSupported
	case ShimErrBufferTooSmall:
		return ErrBufferTooSmall
	case ShimErrNotFound:
		return ErrNotFound
	case ShimErrTimeout:
		return ErrTimeout
	default:
		return fmt.Errorf("unknown shim error: %d", code)
	}
}
