// Package fixture reads and writes statistics snapshots as YAML documents.
//
// A fixture is a stats.SnapshotHandle, so it goes through the same
// stats.Construct path as a native snapshot:
//
//	records:
//	  - type: codec
//	    id: RTCCodec_0_Inbound_111
//	    timestamp: 1700000000000000
//	    fields:
//	      - {name: payloadType, kind: uint32, value: 111}
//	      - {name: mimeType, kind: string, value: audio/opus}
//
// A record may give a raw "tag" instead of a "type" name, and a field a raw
// "kindTag" instead of a "kind" name. Names this package does not know are
// kept as out-of-range tags so that Construct reports a schema mismatch.
package fixture

import (
	"bytes"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

// ErrInvalid is returned for fixtures that are malformed YAML or whose
// values do not match their declared kind.
var ErrInvalid = errors.New("invalid stats fixture")

// unknownTag stands in for type and kind names that have no tag.
const unknownTag = math.MaxUint32

// Document is the YAML layout of a fixture.
type Document struct {
	Records []RecordSpec `yaml:"records"`
}

// RecordSpec is one record of a fixture. Either Type (a wire name) or
// Tag (a raw type tag) is set.
type RecordSpec struct {
	Type      string      `yaml:"type,omitempty"`
	Tag       *uint32     `yaml:"tag,omitempty"`
	ID        string      `yaml:"id"`
	Timestamp int64       `yaml:"timestamp"`
	Fields    []FieldSpec `yaml:"fields,omitempty"`
}

// FieldSpec is one field. Either Kind (a kind name) or KindTag is set;
// Value is decoded according to the kind.
type FieldSpec struct {
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind,omitempty"`
	KindTag *uint32   `yaml:"kindTag,omitempty"`
	Value   yaml.Node `yaml:"value"`
}

// Load reads a fixture file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read fixture")
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return snap, nil
}

// LoadReport reads a fixture file and constructs a report from it.
func LoadReport(path string, opts ...stats.Option) (*stats.Report, error) {
	snap, err := Load(path)
	if err != nil {
		return nil, err
	}
	return stats.Construct(snap, opts...)
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Snapshot, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrInvalid, "decode: %v", err)
	}
	return FromDocument(&doc)
}

// FromDocument converts a decoded document into a snapshot, checking every
// value against its kind.
func FromDocument(doc *Document) (*Snapshot, error) {
	snap := &Snapshot{}
	for i, rs := range doc.Records {
		tag, err := recordTag(rs)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}

		rec := &record{tag: tag, id: rs.ID, ts: rs.Timestamp}
		for _, fs := range rs.Fields {
			f, err := decodeField(fs)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d (%q)", i, rs.ID)
			}
			rec.fields = append(rec.fields, f)
		}
		snap.tags = append(snap.tags, tag)
		snap.records = append(snap.records, rec)
	}
	return snap, nil
}

func recordTag(rs RecordSpec) (uint32, error) {
	switch {
	case rs.Tag != nil && rs.Type != "":
		return 0, errors.Wrap(ErrInvalid, "both type and tag given")
	case rs.Tag != nil:
		return *rs.Tag, nil
	case rs.Type == "":
		return 0, errors.Wrap(ErrInvalid, "missing type")
	}
	typ, err := stats.ParseRecordType(rs.Type)
	if err != nil {
		return unknownTag, nil
	}
	return uint32(typ), nil
}

func decodeField(fs FieldSpec) (*field, error) {
	if fs.Name == "" {
		return nil, errors.Wrap(ErrInvalid, "field without name")
	}

	var tag uint32
	switch {
	case fs.KindTag != nil && fs.Kind != "":
		return nil, errors.Wrapf(ErrInvalid, "field %q: both kind and kindTag given", fs.Name)
	case fs.KindTag != nil:
		tag = *fs.KindTag
	case fs.Kind == "":
		return nil, errors.Wrapf(ErrInvalid, "field %q: missing kind", fs.Name)
	default:
		kind, err := stats.ParseValueKind(fs.Kind)
		if err != nil {
			tag = unknownTag
		} else {
			tag = uint32(kind)
		}
	}

	f := &field{name: fs.Name, kind: tag}
	kind, err := stats.ValueKindFromTag(tag)
	if err != nil {
		// Left for Construct to reject.
		return f, nil
	}
	if fs.Value.Kind == 0 {
		return nil, errors.Wrapf(ErrInvalid, "field %q: missing value", fs.Name)
	}
	if hasNull(&fs.Value) {
		return nil, errors.Wrapf(ErrInvalid, "field %q (%s) at line %d: null value", fs.Name, kind, fs.Value.Line)
	}

	v, err := decodeValue(&fs.Value, kind)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "field %q (%s) at line %d: %v", fs.Name, kind, fs.Value.Line, err)
	}
	f.v = v
	return f, nil
}

func decodeValue(n *yaml.Node, kind stats.ValueKind) (any, error) {
	switch kind {
	case stats.KindBool:
		return decodeAs[bool](n)
	case stats.KindInt32:
		return decodeAs[int32](n)
	case stats.KindUint32:
		return decodeAs[uint32](n)
	case stats.KindInt64:
		return decodeAs[int64](n)
	case stats.KindUint64:
		return decodeAs[uint64](n)
	case stats.KindDouble:
		return decodeAs[float64](n)
	case stats.KindString:
		if n.Kind != yaml.ScalarNode {
			return nil, errors.New("not a scalar")
		}
		return n.Value, nil
	case stats.KindBoolArray:
		return decodeAs[[]bool](n)
	case stats.KindInt32Array:
		return decodeAs[[]int32](n)
	case stats.KindUint32Array:
		return decodeAs[[]uint32](n)
	case stats.KindInt64Array:
		return decodeAs[[]int64](n)
	case stats.KindUint64Array:
		return decodeAs[[]uint64](n)
	case stats.KindDoubleArray:
		return decodeAs[[]float64](n)
	case stats.KindStringArray:
		return decodeAs[[]string](n)
	}
	return nil, errors.Errorf("value kind %s", kind)
}

// hasNull reports whether n, or any element of a sequence n, is a YAML
// null. yaml.v3 decodes null into the zero value without an error.
func hasNull(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.SequenceNode:
		for _, elem := range n.Content {
			if hasNull(elem) {
				return true
			}
		}
		return false
	case yaml.AliasNode:
		return n.Alias != nil && hasNull(n.Alias)
	}
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func decodeAs[T any](n *yaml.Node) (T, error) {
	var v T
	err := n.Decode(&v)
	return v, err
}
