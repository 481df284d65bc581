package ffi

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
)

// Shim function pointers, populated by registerFunctions.
var (
	shimVersion          func() uintptr
	shimLibwebrtcVersion func() uintptr
	shimFreeBuffer       func(ptr uintptr)

	shimPeerConnectionCreate            func(config uintptr) uintptr
	shimPeerConnectionCreateDataChannel func(pc, label uintptr, ordered, maxRetransmits int32, protocol uintptr) uintptr
	shimPeerConnectionClose             func(pc uintptr)
	shimPeerConnectionDestroy           func(pc uintptr)

	// shimStats is the stats API used by PeerConnectionGetStats.
	shimStats statsAPI
)

type symbol struct {
	name string
	fptr any
}

func symbols() []symbol {
	return []symbol{
		{"shim_version", &shimVersion},
		{"shim_libwebrtc_version", &shimLibwebrtcVersion},
		{"shim_free_buffer", &shimFreeBuffer},

		{"shim_peer_connection_create", &shimPeerConnectionCreate},
		{"shim_peer_connection_create_data_channel", &shimPeerConnectionCreateDataChannel},
		{"shim_peer_connection_close", &shimPeerConnectionClose},
		{"shim_peer_connection_destroy", &shimPeerConnectionDestroy},

		{"shim_peer_connection_get_stats_async", &shimStats.getStatsAsync},
		{"shim_stats_report_release", &shimStats.releaseReport},
		{"shim_stats_report_get_list", &shimStats.reportList},
		{"shim_stats_get_type", &shimStats.recordType},
		{"shim_stats_get_id", &shimStats.recordID},
		{"shim_stats_get_timestamp", &shimStats.recordTimestamp},
		{"shim_stats_get_json", &shimStats.recordJSON},
		{"shim_stats_get_members", &shimStats.recordMembers},
		{"shim_stats_member_get_name", &shimStats.memberName},
		{"shim_stats_member_get_type", &shimStats.memberKind},
		{"shim_stats_member_get_bool", &shimStats.memberBool},
		{"shim_stats_member_get_int32", &shimStats.memberInt32},
		{"shim_stats_member_get_uint32", &shimStats.memberUint32},
		{"shim_stats_member_get_int64", &shimStats.memberInt64},
		{"shim_stats_member_get_uint64", &shimStats.memberUint64},
		{"shim_stats_member_get_double", &shimStats.memberDouble},
		{"shim_stats_member_get_string", &shimStats.memberString},
		{"shim_stats_member_get_bool_array", &shimStats.memberBoolArray},
		{"shim_stats_member_get_int32_array", &shimStats.memberInt32Array},
		{"shim_stats_member_get_uint32_array", &shimStats.memberUint32Array},
		{"shim_stats_member_get_int64_array", &shimStats.memberInt64Array},
		{"shim_stats_member_get_uint64_array", &shimStats.memberUint64Array},
		{"shim_stats_member_get_double_array", &shimStats.memberDoubleArray},
		{"shim_stats_member_get_string_array", &shimStats.memberStringArray},
	}
}

// registerFunctions resolves every shim symbol. A missing symbol fails the
// load so that a stale shim is reported up front rather than at first use.
func registerFunctions() error {
	syms := symbols()
	for _, s := range syms {
		addr, err := dlsymLibrary(libHandle, s.name)
		if err != nil || addr == 0 {
			clearFunctions()
			return fmt.Errorf("%w: missing symbol %s: %v", ErrLibraryNotFound, s.name, err)
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	shimStats.free = shimFreeBuffer
	return nil
}

func clearFunctions() {
	for _, s := range symbols() {
		v := reflect.ValueOf(s.fptr).Elem()
		v.Set(reflect.Zero(v.Type()))
	}
	shimStats.free = nil
}
