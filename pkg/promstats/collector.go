// Package promstats exports statistics reports as Prometheus metrics.
//
// Every numeric or boolean member of every record becomes a gauge named
// after the record type and member, labelled with the record id:
//
//	rtcstats_candidate_pair_current_round_trip_time{id="CP1"} 0.012
//	rtcstats_inbound_rtp_packets_lost{id="IT01A1234"} 3
//
// Strings and arrays are not exported.
package promstats

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

const (
	defaultNamespace = "rtcstats"
	defaultTimeout   = 5 * time.Second
)

// SnapshotFunc produces the report exported by one scrape.
type SnapshotFunc func(ctx context.Context) (*stats.Report, error)

// Static always exports r.
func Static(r *stats.Report) SnapshotFunc {
	return func(context.Context) (*stats.Report, error) {
		return r, nil
	}
}

// Option configures a Collector.
type Option func(*Collector)

// WithNamespace replaces the default "rtcstats" metric namespace.
func WithNamespace(ns string) Option {
	return func(c *Collector) {
		c.namespace = ns
	}
}

// WithLogger sets the logger for snapshot failures. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout bounds each snapshot. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithConstLabels attaches labels to every series.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Collector) {
		c.constLabels = labels
	}
}

// Collector is an unchecked prometheus.Collector: the metric set follows
// whatever members the snapshot carries.
type Collector struct {
	source      SnapshotFunc
	namespace   string
	timeout     time.Duration
	constLabels prometheus.Labels
	logger      *zap.Logger

	errDesc     *prometheus.Desc
	recordsDesc *prometheus.Desc

	mu    sync.Mutex
	descs map[descKey]*prometheus.Desc
}

type descKey struct {
	typ   stats.RecordType
	field string
}

var _ prometheus.Collector = (*Collector)(nil)

// New returns a collector that takes one snapshot from source per
// scrape.
func New(source SnapshotFunc, opts ...Option) *Collector {
	c := &Collector{
		source:    source,
		namespace: defaultNamespace,
		timeout:   defaultTimeout,
		logger:    zap.NewNop(),
		descs:     make(map[descKey]*prometheus.Desc),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.errDesc = prometheus.NewDesc(
		prometheus.BuildFQName(c.namespace, "", "snapshot_error"),
		"Statistics snapshot failed.",
		nil, c.constLabels)
	c.recordsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(c.namespace, "", "records"),
		"Number of records in the snapshot by type.",
		[]string{"type"}, c.constLabels)
	return c
}

// Describe sends nothing, which registers the collector as unchecked.
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect takes a snapshot and sends one gauge per numeric or boolean
// field.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	report, err := c.source(ctx)
	if err != nil {
		c.logger.Warn("stats snapshot failed", zap.Error(err))
		ch <- prometheus.NewInvalidMetric(c.errDesc, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool)
	for _, t := range report.Types() {
		n := len(report.RecordsOf(t))
		ch <- prometheus.MustNewConstMetric(c.recordsDesc, prometheus.GaugeValue, float64(n), t.String())
	}
	for _, rec := range report.Records() {
		if seen[rec.ID()] {
			c.logger.Debug("skipping record with repeated id",
				zap.String("id", rec.ID()),
				zap.Stringer("type", rec.Type()))
			continue
		}
		seen[rec.ID()] = true

		rec.Range(func(name string, v stats.Value) bool {
			f, ok := v.Float64()
			if !ok {
				return true
			}
			m, err := prometheus.NewConstMetric(c.desc(rec.Type(), name), prometheus.GaugeValue, f, rec.ID())
			if err != nil {
				c.logger.Warn("invalid metric",
					zap.String("id", rec.ID()),
					zap.String("field", name),
					zap.Error(err))
				return true
			}
			ch <- m
			return true
		})
	}
}

func (c *Collector) desc(t stats.RecordType, field string) *prometheus.Desc {
	key := descKey{t, field}
	if d, ok := c.descs[key]; ok {
		return d
	}
	d := prometheus.NewDesc(
		MetricName(c.namespace, t, field),
		t.String()+"."+field,
		[]string{"id"}, c.constLabels)
	c.descs[key] = d
	return d
}

// MetricName returns the gauge name for a member of a record type.
func MetricName(namespace string, t stats.RecordType, field string) string {
	return prometheus.BuildFQName(namespace, strings.ReplaceAll(t.String(), "-", "_"), snakeCase(field))
}

// snakeCase converts a camelCase member name. A run of capitals stays one
// word: "HTTPPort" becomes "http_port".
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		if r == '-' || r == '.' {
			r = '_'
		}
		b.WriteRune(r)
	}
	return b.String()
}
