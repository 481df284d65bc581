package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/thesyncim/rtcstats/pkg/fixture"
	"github.com/thesyncim/rtcstats/pkg/native"
	"github.com/thesyncim/rtcstats/pkg/stats"
)

type dumpCmd struct {
	Source    string        `help:"report source (fixture, loopback, native or rtp), overrides the config"`
	Fixture   string        `help:"fixture file for the fixture source" type:"path"`
	Format    string        `help:"output format" enum:"table,json,yaml" default:"table" short:"f"`
	Type      []string      `help:"only print records of these types, by wire name" short:"t"`
	DebugJSON bool          `help:"print the engine's own JSON for each record (native source only)" name:"debug-json"`
	Timeout   time.Duration `help:"give up after this long" default:"15s"`
}

func (d *dumpCmd) Run(e *env) error {
	c := *e.conf
	if d.Source != "" {
		c.Source = d.Source
	}
	if d.Fixture != "" {
		c.Fixture = d.Fixture
	}
	if err := c.Validate(); err != nil {
		return err
	}

	types, err := parseTypes(d.Type)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	src, err := openSource(ctx, &c, e.logger)
	if err != nil {
		return err
	}
	defer src.close()

	if d.DebugJSON {
		if src.native == nil {
			return errors.New("--debug-json needs the native source")
		}
		out, err := native.RecordJSON(ctx, src.native.Handle())
		if err != nil {
			return err
		}
		return writeDebugJSON(os.Stdout, out)
	}

	report, err := src.snapshot(ctx)
	if err != nil {
		return err
	}
	return writeReport(os.Stdout, filterReport(report, types), d.Format)
}

func parseTypes(names []string) (map[stats.RecordType]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	types := make(map[stats.RecordType]bool, len(names))
	for _, name := range names {
		t, err := stats.ParseRecordType(name)
		if err != nil {
			return nil, err
		}
		types[t] = true
	}
	return types, nil
}

// filterReport keeps the records whose type is in types. A nil set keeps
// everything.
func filterReport(r *stats.Report, types map[stats.RecordType]bool) *stats.Report {
	if types == nil {
		return r
	}
	b := stats.NewBuilder()
	for _, rec := range r.Records() {
		if types[rec.Type()] {
			b.Add(rec)
		}
	}
	return b.Build()
}

func writeReport(w io.Writer, r *stats.Report, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	case "yaml":
		out, err := fixture.Encode(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err

	case "table", "":
		writeTable(w, r)
		return nil
	}
	return errors.Errorf("unknown format %q", format)
}

func writeTable(w io.Writer, r *stats.Report) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Type", "ID", "Field", "Kind", "Value"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, rec := range r.Records() {
		typ, id := rec.Type().String(), rec.ID()
		table.Append([]string{typ, id, "timestamp", "", rec.Time().UTC().Format(time.RFC3339Nano)})
		rec.Range(func(name string, v stats.Value) bool {
			table.Append([]string{typ, id, name, v.Kind().String(), formatValue(name, v)})
			return true
		})
	}
	table.Render()
}

// formatValue renders byte counters in human units, keeping the exact
// count alongside.
func formatValue(name string, v stats.Value) string {
	if strings.Contains(strings.ToLower(name), "bytes") {
		switch v.Kind() {
		case stats.KindUint64:
			return fmt.Sprintf("%s (%d)", humanize.IBytes(v.Uint64()), v.Uint64())
		case stats.KindUint32:
			return fmt.Sprintf("%s (%d)", humanize.IBytes(uint64(v.Uint32())), v.Uint32())
		}
	}
	return v.String()
}

func writeDebugJSON(w io.Writer, byID map[string]string) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	doc := yaml.Node{Kind: yaml.MappingNode}
	for _, id := range ids {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: id},
			&yaml.Node{Kind: yaml.ScalarNode, Value: byID[id], Style: yaml.LiteralStyle})
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
