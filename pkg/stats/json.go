package stats

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

// MarshalJSON writes the record as a flat object in the layout browsers
// use for RTCStats: id, type and timestamp first, then fields in
// insertion order. The timestamp is emitted in milliseconds. Fields that
// share a name with one of the three header members are left out.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeMember(&buf, "id", r.id)
	buf.WriteByte(',')
	writeMember(&buf, "type", r.typ.String())
	buf.WriteByte(',')
	writeMember(&buf, "timestamp", float64(r.timestamp)/1000)

	var err error
	r.Range(func(name string, v Value) bool {
		if reservedJSONMember(name) {
			return true
		}
		buf.WriteByte(',')
		err = writeMember(&buf, name, jsonValue(v))
		return err == nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s %q", r.typ, r.id)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON returns the diagnostic JSON form of the record. It is not meant
// for persistence or interchange.
func (r *Record) ToJSON() (string, error) {
	b, err := r.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON writes the report as an object keyed by record ID, in
// snapshot order. A repeated ID keeps its first record, as ByID does.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	seen := make(map[string]struct{}, len(r.records))
	for _, rec := range r.records {
		if _, dup := seen[rec.id]; dup {
			continue
		}
		if len(seen) > 0 {
			buf.WriteByte(',')
		}
		seen[rec.id] = struct{}{}
		body, err := rec.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if err := writeMember(&buf, rec.id, json.RawMessage(body)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func reservedJSONMember(name string) bool {
	return name == "id" || name == "type" || name == "timestamp"
}

func writeMember(buf *bytes.Buffer, name string, v any) error {
	k, _ := json.Marshal(name)
	buf.Write(k)
	buf.WriteByte(':')
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// jsonValue maps non-finite doubles to strings, which encoding/json
// cannot represent as numbers.
func jsonValue(v Value) any {
	switch v.kind {
	case KindDouble:
		f := v.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v.String()
		}
		return f
	case KindDoubleArray:
		arr := v.DoubleArray()
		out := make([]any, len(arr))
		for i, f := range arr {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				out[i] = DoubleValue(f).String()
			} else {
				out[i] = f
			}
		}
		return out
	}
	return v.Interface()
}
