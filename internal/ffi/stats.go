package ffi

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

// statsAPI is the shim's statistics surface. Strings and arrays returned
// by the member getters, the record id and json getters, and the list
// buffers are owned by the caller and released with free. Record and
// member handles are owned by their report.
type statsAPI struct {
	free func(ptr uintptr)

	getStatsAsync func(pc, callback, ctx uintptr) int32
	releaseReport func(report uintptr)
	reportList    func(report, outTags, outRecords, outCount uintptr) int32

	recordType      func(rec uintptr) uint32
	recordID        func(rec uintptr) uintptr
	recordTimestamp func(rec uintptr) int64
	recordJSON      func(rec uintptr) uintptr
	recordMembers   func(rec, outMembers, outCount uintptr) int32

	memberName   func(m uintptr) uintptr
	memberKind   func(m uintptr) uint32
	memberBool   func(m uintptr) bool
	memberInt32  func(m uintptr) int32
	memberUint32 func(m uintptr) uint32
	memberInt64  func(m uintptr) int64
	memberUint64 func(m uintptr) uint64
	memberDouble func(m uintptr) float64
	memberString func(m uintptr) uintptr

	memberBoolArray   func(m, outCount uintptr) uintptr
	memberInt32Array  func(m, outCount uintptr) uintptr
	memberUint32Array func(m, outCount uintptr) uintptr
	memberInt64Array  func(m, outCount uintptr) uintptr
	memberUint64Array func(m, outCount uintptr) uintptr
	memberDoubleArray func(m, outCount uintptr) uintptr
	memberStringArray func(m, outCount uintptr) uintptr
}

func (a *statsAPI) freeBuffer(ptr uintptr) {
	if ptr != 0 {
		a.free(ptr)
	}
}

// takeString copies a caller-owned C string and frees it.
func (a *statsAPI) takeString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	defer a.free(ptr)
	return GoString(unsafe.Pointer(ptr))
}

// outParams receives values the shim writes through pointers. It is heap
// allocated and pinned until release, so the addresses passed as uintptr
// stay valid while the calling goroutine's stack grows or moves.
type outParams struct {
	first  uintptr
	second uintptr
	count  int32

	pin runtime.Pinner
}

func newOutParams() *outParams {
	out := new(outParams)
	out.pin.Pin(out)
	return out
}

func (o *outParams) firstPtr() uintptr  { return UintptrPtr(&o.first) }
func (o *outParams) secondPtr() uintptr { return UintptrPtr(&o.second) }
func (o *outParams) countPtr() uintptr  { return Int32Ptr(&o.count) }

func (o *outParams) release() {
	o.pin.Unpin()
}

// takeArray copies a caller-owned C array returned by get and frees it.
func takeArray[T any](a *statsAPI, get func(m, outCount uintptr) uintptr, m uintptr) []T {
	out := newOutParams()
	defer out.release()

	ptr := get(m, out.countPtr())
	if ptr == 0 {
		return []T{}
	}
	defer a.free(ptr)
	return copySlice[T](ptr, int(out.count))
}

// takeStringArray copies a caller-owned array of caller-owned C strings
// and frees every element and the array itself.
func (a *statsAPI) takeStringArray(m uintptr) []string {
	out := newOutParams()
	defer out.release()

	ptr := a.memberStringArray(m, out.countPtr())
	if ptr == 0 {
		return []string{}
	}
	elems := copySlice[uintptr](ptr, int(out.count))
	defer func() {
		for _, e := range elems {
			a.freeBuffer(e)
		}
		a.free(ptr)
	}()

	strs := make([]string, len(elems))
	for i, e := range elems {
		strs[i] = GoString(unsafe.Pointer(e))
	}
	return strs
}

// safeCallback wraps a callback invocation with panic recovery.
// This prevents panics in Go callbacks from unwinding through C stack frames,
// which would cause undefined behavior.
func safeCallback(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[rtcstats] panic recovered in callback: %v", r)
		}
	}()
	fn()
}

type statsResult struct {
	report uintptr
	code   int32
}

// Registry of in-flight stats requests keyed by the ctx value handed to the
// shim.
var (
	statsWaitersMu sync.Mutex
	statsWaiters   = make(map[uintptr]chan statsResult)
	statsNextID    uintptr

	// purego callback function pointer (must be kept alive)
	statsCallbackPtr  uintptr
	statsCallbackOnce sync.Once
)

// initStatsCallback creates the purego callback the shim invokes once a
// stats report is ready.
// Signature: void(ctx, report, error_code)
func initStatsCallback() uintptr {
	statsCallbackOnce.Do(func() {
		statsCallbackPtr = purego.NewCallback(func(ctx, report uintptr, code int32) {
			safeCallback(func() {
				deliverStats(ctx, report, code)
			})
		})
	})
	return statsCallbackPtr
}

func registerStatsWaiter() (uintptr, chan statsResult) {
	statsWaitersMu.Lock()
	defer statsWaitersMu.Unlock()

	statsNextID++
	id := statsNextID
	ch := make(chan statsResult, 1)
	statsWaiters[id] = ch
	return id, ch
}

func unregisterStatsWaiter(id uintptr) bool {
	statsWaitersMu.Lock()
	defer statsWaitersMu.Unlock()

	_, ok := statsWaiters[id]
	delete(statsWaiters, id)
	return ok
}

// deliverStats hands a finished report to its waiter. Reports for requests
// that were abandoned are released immediately.
func deliverStats(id, report uintptr, code int32) {
	statsWaitersMu.Lock()
	ch, ok := statsWaiters[id]
	delete(statsWaiters, id)
	statsWaitersMu.Unlock()

	if !ok {
		if report != 0 && shimStats.releaseReport != nil {
			shimStats.releaseReport(report)
		}
		return
	}
	ch <- statsResult{report: report, code: code}
}

// PeerConnectionGetStats requests a stats report for pc and waits for the
// shim to deliver it. The returned Snapshot must be released.
func PeerConnectionGetStats(ctx context.Context, pc uintptr) (*Snapshot, error) {
	if !libLoaded.Load() || shimStats.getStatsAsync == nil {
		return nil, ErrLibraryNotLoaded
	}
	return getStats(ctx, &shimStats, initStatsCallback(), pc)
}

func getStats(ctx context.Context, api *statsAPI, callback, pc uintptr) (*Snapshot, error) {
	if pc == 0 {
		return nil, ErrInvalidParam
	}

	id, ch := registerStatsWaiter()
	if err := ShimError(api.getStatsAsync(pc, callback, id)); err != nil {
		unregisterStatsWaiter(id)
		return nil, err
	}

	select {
	case res := <-ch:
		return newSnapshot(api, res)
	case <-ctx.Done():
		if !unregisterStatsWaiter(id) {
			// Delivered concurrently; the result is already buffered.
			res := <-ch
			if res.report != 0 {
				api.releaseReport(res.report)
			}
		}
		return nil, ctx.Err()
	}
}

func newSnapshot(api *statsAPI, res statsResult) (*Snapshot, error) {
	if err := ShimError(res.code); err != nil {
		if res.report != 0 {
			api.releaseReport(res.report)
		}
		return nil, err
	}
	if res.report == 0 {
		return nil, fmt.Errorf("%w: shim delivered no report", ErrNotFound)
	}
	return &Snapshot{api: api, report: res.report}, nil
}

// Snapshot is a native stats report. It implements stats.SnapshotHandle;
// every read copies out of native memory, so values obtained before
// Release stay valid afterwards.
type Snapshot struct {
	api *statsAPI

	mu     sync.RWMutex
	report uintptr
}

// Release frees the native report. It is safe to call more than once.
func (s *Snapshot) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.report != 0 {
		s.api.releaseReport(s.report)
		s.report = 0
	}
}

// List returns the report's records and their parallel type tags.
func (s *Snapshot) List() ([]uint32, []stats.RecordHandle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == 0 {
		return nil, nil, stats.ErrReleased
	}

	out := newOutParams()
	defer out.release()

	code := s.api.reportList(s.report, out.firstPtr(), out.secondPtr(), out.countPtr())
	defer s.api.freeBuffer(out.first)
	defer s.api.freeBuffer(out.second)
	if err := ShimError(code); err != nil {
		return nil, nil, fmt.Errorf("list stats: %w", err)
	}

	tags := copySlice[uint32](out.first, int(out.count))
	ptrs := copySlice[uintptr](out.second, int(out.count))
	records := make([]stats.RecordHandle, len(ptrs))
	for i, p := range ptrs {
		records[i] = &statsRecord{snap: s, ptr: p}
	}
	return tags, records, nil
}

// DebugJSON returns the engine's own JSON rendering of every record,
// keyed by record id.
func (s *Snapshot) DebugJSON() (map[string]string, error) {
	_, records, err := s.List()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(records))
	for _, rh := range records {
		rec := rh.(*statsRecord)
		js, err := rec.JSON()
		if err != nil {
			return nil, err
		}
		out[rec.ID()] = js
	}
	return out, nil
}

// live runs fn with the report pinned, or reports false once released.
func (s *Snapshot) live(fn func(api *statsAPI)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == 0 {
		return false
	}
	fn(s.api)
	return true
}

// read is live for getters that cannot return an error. Reading after
// Release panics with an error wrapping stats.ErrReleased.
func (s *Snapshot) read(fn func(api *statsAPI)) {
	if !s.live(fn) {
		panic(fmt.Errorf("read native stats: %w", stats.ErrReleased))
	}
}

type statsRecord struct {
	snap *Snapshot
	ptr  uintptr
}

func (r *statsRecord) TypeTag() (tag uint32) {
	r.snap.read(func(api *statsAPI) { tag = api.recordType(r.ptr) })
	return tag
}

func (r *statsRecord) ID() (id string) {
	r.snap.read(func(api *statsAPI) { id = api.takeString(api.recordID(r.ptr)) })
	return id
}

func (r *statsRecord) Timestamp() (ts int64) {
	r.snap.read(func(api *statsAPI) { ts = api.recordTimestamp(r.ptr) })
	return ts
}

// JSON returns the engine's diagnostic JSON for the record.
func (r *statsRecord) JSON() (js string, err error) {
	if !r.snap.live(func(api *statsAPI) { js = api.takeString(api.recordJSON(r.ptr)) }) {
		return "", stats.ErrReleased
	}
	return js, nil
}

func (r *statsRecord) Fields() (fields []stats.FieldHandle, err error) {
	ok := r.snap.live(func(api *statsAPI) {
		out := newOutParams()
		defer out.release()

		code := api.recordMembers(r.ptr, out.firstPtr(), out.countPtr())
		defer api.freeBuffer(out.first)
		if err = ShimError(code); err != nil {
			err = fmt.Errorf("list members: %w", err)
			return
		}

		ptrs := copySlice[uintptr](out.first, int(out.count))
		fields = make([]stats.FieldHandle, len(ptrs))
		for i, p := range ptrs {
			fields[i] = &statsMember{
				snap: r.snap,
				ptr:  p,
				name: api.takeString(api.memberName(p)),
				kind: api.memberKind(p),
			}
		}
	})
	if !ok {
		return nil, stats.ErrReleased
	}
	return fields, err
}

// statsMember is one member of a native record. Name and kind are read
// when the member list is fetched; values are read on demand.
type statsMember struct {
	snap *Snapshot
	ptr  uintptr
	name string
	kind uint32
}

func (m *statsMember) Name() string    { return m.name }
func (m *statsMember) KindTag() uint32 { return m.kind }

func (m *statsMember) Bool() (v bool) {
	m.snap.read(func(api *statsAPI) { v = api.memberBool(m.ptr) })
	return v
}

func (m *statsMember) Int32() (v int32) {
	m.snap.read(func(api *statsAPI) { v = api.memberInt32(m.ptr) })
	return v
}

func (m *statsMember) Uint32() (v uint32) {
	m.snap.read(func(api *statsAPI) { v = api.memberUint32(m.ptr) })
	return v
}

func (m *statsMember) Int64() (v int64) {
	m.snap.read(func(api *statsAPI) { v = api.memberInt64(m.ptr) })
	return v
}

func (m *statsMember) Uint64() (v uint64) {
	m.snap.read(func(api *statsAPI) { v = api.memberUint64(m.ptr) })
	return v
}

func (m *statsMember) Double() (v float64) {
	m.snap.read(func(api *statsAPI) { v = api.memberDouble(m.ptr) })
	return v
}

func (m *statsMember) String() (v string) {
	m.snap.read(func(api *statsAPI) { v = api.takeString(api.memberString(m.ptr)) })
	return v
}

func (m *statsMember) BoolArray() (v []bool) {
	m.snap.read(func(api *statsAPI) { v = takeArray[bool](api, api.memberBoolArray, m.ptr) })
	return v
}

func (m *statsMember) Int32Array() (v []int32) {
	m.snap.read(func(api *statsAPI) { v = takeArray[int32](api, api.memberInt32Array, m.ptr) })
	return v
}

func (m *statsMember) Uint32Array() (v []uint32) {
	m.snap.read(func(api *statsAPI) { v = takeArray[uint32](api, api.memberUint32Array, m.ptr) })
	return v
}

func (m *statsMember) Int64Array() (v []int64) {
	m.snap.read(func(api *statsAPI) { v = takeArray[int64](api, api.memberInt64Array, m.ptr) })
	return v
}

func (m *statsMember) Uint64Array() (v []uint64) {
	m.snap.read(func(api *statsAPI) { v = takeArray[uint64](api, api.memberUint64Array, m.ptr) })
	return v
}

func (m *statsMember) DoubleArray() (v []float64) {
	m.snap.read(func(api *statsAPI) { v = takeArray[float64](api, api.memberDoubleArray, m.ptr) })
	return v
}

func (m *statsMember) StringArray() (v []string) {
	m.snap.read(func(api *statsAPI) { v = api.takeStringArray(m.ptr) })
	return v
}
