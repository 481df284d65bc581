// Package pionstats converts pion/webrtc statistics into stats reports.
//
// pion exposes one Go struct per record type. Members are read through
// their json tags, so a pion record and a libwebrtc record of the same
// type carry the same member names:
//
//	report, err := pionstats.Collect(pc)
//	if err != nil {
//		return err
//	}
//	if pair, ok := report.CandidatePair(); ok {
//		rtt, _ := pair.CurrentRoundTripTime()
//		...
//	}
package pionstats

import (
	"encoding"
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/pion/webrtc/v4"
	"github.com/pkg/errors"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

var (
	// ErrUnsupported is returned for stats values that are not structs with
	// id, type and timestamp members.
	ErrUnsupported = errors.New("unsupported pion stats value")

	// ErrNilPeerConnection is returned by Collect for a nil connection.
	ErrNilPeerConnection = errors.New("nil peer connection")
)

// unknownTag marks type names that have no record type.
const unknownTag = math.MaxUint32

// canonicalKinds lists members whose pion Go type differs from the kind
// libwebrtc reports for them.
var canonicalKinds = map[stats.RecordType]map[string]stats.ValueKind{
	stats.TypeTransport: {
		"packetsSent":     stats.KindUint64,
		"packetsReceived": stats.KindUint64,
	},
	stats.TypeRemoteInboundRTP: {
		"roundTripTimeMeasurements": stats.KindInt32,
	},
}

// Collect gathers the current statistics of pc.
func Collect(pc *webrtc.PeerConnection, opts ...stats.Option) (*stats.Report, error) {
	if pc == nil {
		return nil, ErrNilPeerConnection
	}
	return FromReport(pc.GetStats(), opts...)
}

// FromReport converts a pion stats report. Records are ordered by id.
func FromReport(report webrtc.StatsReport, opts ...stats.Option) (*stats.Report, error) {
	snap, err := Snapshot(report)
	if err != nil {
		return nil, err
	}
	return stats.Construct(snap, opts...)
}

// Snapshot converts a pion stats report without constructing it, leaving
// unknown type names as out-of-range tags for stats.Construct.
func Snapshot(report webrtc.StatsReport) (*stats.StaticSnapshot, error) {
	ids := make([]string, 0, len(report))
	for id := range report {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	snap := &stats.StaticSnapshot{}
	for _, key := range ids {
		if err := add(snap, report[key]); err != nil {
			return nil, errors.Wrapf(err, "stats %q", key)
		}
	}
	return snap, nil
}

func add(snap *stats.StaticSnapshot, s webrtc.Stats) error {
	v := reflect.ValueOf(s)
	if !v.IsValid() {
		return errors.Wrap(ErrUnsupported, "nil")
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return errors.Wrap(ErrUnsupported, "nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.Wrapf(ErrUnsupported, "%s", v.Type())
	}

	layout := layoutOf(v.Type())
	if layout.id < 0 || layout.typ < 0 || layout.timestamp < 0 {
		return errors.Wrapf(ErrUnsupported, "%s: missing header members", v.Type())
	}

	id := v.Field(layout.id).String()
	tag := uint32(unknownTag)
	var kinds map[string]stats.ValueKind
	if typ, err := stats.ParseRecordType(v.Field(layout.typ).String()); err == nil {
		tag = uint32(typ)
		kinds = canonicalKinds[typ]
	}
	timestamp := microseconds(v.Field(layout.timestamp).Float())

	fields := make([]stats.Field, 0, len(layout.members))
	for _, m := range layout.members {
		fv := v.Field(m.index)
		if m.omitEmpty && fv.IsZero() {
			continue
		}
		val, ok, err := convert(fv)
		if err != nil {
			return errors.Wrapf(err, "member %q", m.name)
		}
		if !ok {
			continue
		}
		if want, found := kinds[m.name]; found {
			if c, ok := coerce(fv, want); ok {
				val = c
			}
		}
		fields = append(fields, stats.Field{Name: m.name, Value: val})
	}
	snap.Add(tag, id, timestamp, fields...)
	return nil
}

// microseconds converts a pion timestamp in milliseconds.
func microseconds(ms float64) int64 {
	return int64(math.Round(ms * 1e3))
}

type member struct {
	index     int
	name      string
	omitEmpty bool
}

type layout struct {
	id, typ, timestamp int
	members            []member
}

var layouts sync.Map // reflect.Type -> *layout

func layoutOf(t reflect.Type) *layout {
	if l, ok := layouts.Load(t); ok {
		return l.(*layout)
	}

	l := &layout{id: -1, typ: -1, timestamp: -1}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag, ok := f.Tag.Lookup("json")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			continue
		}
		switch name {
		case "id":
			l.id = i
		case "type":
			l.typ = i
		case "timestamp":
			l.timestamp = i
		default:
			l.members = append(l.members, member{
				index:     i,
				name:      name,
				omitEmpty: slices.Contains(strings.Split(opts, ","), "omitempty"),
			})
		}
	}

	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*layout)
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// convert maps a struct member onto a stats value. Members with no value
// kind (maps, nested structs) report ok == false.
func convert(v reflect.Value) (stats.Value, bool, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return stats.Value{}, false, nil
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.String && v.Type().Implements(textMarshalerType) {
		b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return stats.Value{}, false, err
		}
		return stats.StringValue(string(b)), true, nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return stats.BoolValue(v.Bool()), true, nil
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return stats.Int32Value(int32(v.Int())), true, nil
	case reflect.Int, reflect.Int64:
		return stats.Int64Value(v.Int()), true, nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return stats.Uint32Value(uint32(v.Uint())), true, nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return stats.Uint64Value(v.Uint()), true, nil
	case reflect.Float32, reflect.Float64:
		return stats.DoubleValue(v.Float()), true, nil
	case reflect.String:
		return stats.StringValue(v.String()), true, nil
	case reflect.Slice, reflect.Array:
		return convertSlice(v)
	}
	return stats.Value{}, false, nil
}

func convertSlice(v reflect.Value) (stats.Value, bool, error) {
	n := v.Len()
	elem := v.Type().Elem()

	if elem.Kind() != reflect.String && elem.Implements(textMarshalerType) {
		out := make([]string, n)
		for i := range n {
			b, err := v.Index(i).Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return stats.Value{}, false, errors.Wrapf(err, "element %d", i)
			}
			out[i] = string(b)
		}
		return stats.StringArrayValue(out), true, nil
	}

	switch elem.Kind() {
	case reflect.Bool:
		return stats.BoolArrayValue(collect(v, reflect.Value.Bool)), true, nil
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return stats.Int32ArrayValue(collect(v, func(e reflect.Value) int32 { return int32(e.Int()) })), true, nil
	case reflect.Int, reflect.Int64:
		return stats.Int64ArrayValue(collect(v, reflect.Value.Int)), true, nil
	case reflect.Uint16, reflect.Uint32:
		return stats.Uint32ArrayValue(collect(v, func(e reflect.Value) uint32 { return uint32(e.Uint()) })), true, nil
	case reflect.Uint, reflect.Uint64:
		return stats.Uint64ArrayValue(collect(v, reflect.Value.Uint)), true, nil
	case reflect.Float32, reflect.Float64:
		return stats.DoubleArrayValue(collect(v, reflect.Value.Float)), true, nil
	case reflect.String:
		return stats.StringArrayValue(collect(v, reflect.Value.String)), true, nil
	}
	// Byte slices and slices of structs have no array kind.
	return stats.Value{}, false, nil
}

func collect[T any](v reflect.Value, get func(reflect.Value) T) []T {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = get(v.Index(i))
	}
	return out
}

// coerce converts an integer member to want, saturating at its bounds.
func coerce(v reflect.Value, want stats.ValueKind) (stats.Value, bool) {
	var (
		i      int64
		u      uint64
		signed bool
	)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, signed = v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u = v.Uint()
	default:
		return stats.Value{}, false
	}

	switch want {
	case stats.KindInt32:
		if signed {
			return stats.Int32Value(int32(max(min(i, math.MaxInt32), math.MinInt32))), true
		}
		return stats.Int32Value(int32(min(u, math.MaxInt32))), true
	case stats.KindUint32:
		if signed {
			return stats.Uint32Value(uint32(max(min(i, math.MaxUint32), 0))), true
		}
		return stats.Uint32Value(uint32(min(u, math.MaxUint32))), true
	case stats.KindInt64:
		if signed {
			return stats.Int64Value(i), true
		}
		return stats.Int64Value(int64(min(u, math.MaxInt64))), true
	case stats.KindUint64:
		if signed {
			return stats.Uint64Value(uint64(max(i, 0))), true
		}
		return stats.Uint64Value(u), true
	case stats.KindDouble:
		if signed {
			return stats.DoubleValue(float64(i)), true
		}
		return stats.DoubleValue(float64(u)), true
	}
	return stats.Value{}, false
}
