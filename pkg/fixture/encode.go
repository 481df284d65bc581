package fixture

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

// ToDocument converts every record of a report, in snapshot order.
func ToDocument(r *stats.Report) (*Document, error) {
	doc := &Document{}
	for _, rec := range r.Records() {
		rs := RecordSpec{
			Type:      rec.Type().String(),
			ID:        rec.ID(),
			Timestamp: rec.Timestamp(),
		}
		for _, f := range rec.Fields() {
			fs := FieldSpec{Name: f.Name, Kind: f.Kind().String()}
			if err := fs.Value.Encode(f.Value.Interface()); err != nil {
				return nil, errors.Wrapf(err, "%s %q: field %q", rec.Type(), rec.ID(), f.Name)
			}
			if f.Kind().IsSequence() {
				fs.Value.Style = yaml.FlowStyle
			}
			rs.Fields = append(rs.Fields, fs)
		}
		doc.Records = append(doc.Records, rs)
	}
	return doc, nil
}

// Encode writes a report as a fixture document that Parse reads back to
// an equal report.
func Encode(r *stats.Report) ([]byte, error) {
	doc, err := ToDocument(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "encode fixture")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode fixture")
	}
	return buf.Bytes(), nil
}
