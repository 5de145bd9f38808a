package firstfit

import "github.com/prometheus/client_golang/prometheus"

// MetricsSource is anything that can report arena statistics, typically an
// *Arena or a *SafeArena.
type MetricsSource interface {
	Metrics() ArenaMetrics
}

// Collector exports an arena's metrics to Prometheus. Each scrape takes one
// Metrics snapshot; when src is a plain *Arena the caller must serialize
// scrapes with mutations.
type Collector struct {
	src MetricsSource

	capacity    *prometheus.Desc
	inUse       *prometheus.Desc
	free        *prometheus.Desc
	largestFree *prometheus.Desc
	segments    *prometheus.Desc
	tenants     *prometheus.Desc
	utilisation *prometheus.Desc
	ticks       *prometheus.Desc
	placed      *prometheus.Desc
	rejected    *prometheus.Desc
	departed    *prometheus.Desc
}

// NewCollector returns a Collector for src. Every metric carries the constant
// label arena=name.
func NewCollector(name string, src MetricsSource) *Collector {
	labels := prometheus.Labels{"arena": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc("firstfit_"+metric, help, nil, labels)
	}
	return &Collector{
		src:         src,
		capacity:    desc("capacity", "Total length managed by the arena."),
		inUse:       desc("in_use", "Length held by tenants."),
		free:        desc("free", "Total length of free segments."),
		largestFree: desc("largest_free", "Length of the largest free segment."),
		segments:    desc("segments", "Number of segments."),
		tenants:     desc("tenants", "Number of tenants currently placed."),
		utilisation: desc("utilisation", "Share of capacity held by tenants."),
		ticks:       desc("ticks_total", "Ticks elapsed."),
		placed:      desc("placed_total", "Tenants admitted."),
		rejected:    desc("rejected_total", "Tenants rejected for lack of space."),
		departed:    desc("departed_total", "Tenants evicted on expiry."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.inUse
	ch <- c.free
	ch <- c.largestFree
	ch <- c.segments
	ch <- c.tenants
	ch <- c.utilisation
	ch <- c.ticks
	ch <- c.placed
	ch <- c.rejected
	ch <- c.departed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	gauge := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v)
	}
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	gauge(c.capacity, float64(m.Capacity))
	gauge(c.inUse, float64(m.SizeInUse))
	gauge(c.free, float64(m.FreeLength))
	gauge(c.largestFree, float64(m.LargestFree))
	gauge(c.segments, float64(m.NumSegments))
	gauge(c.tenants, float64(m.NumTenants))
	gauge(c.utilisation, m.Utilisation)
	counter(c.ticks, m.Ticks)
	counter(c.placed, m.Placed)
	counter(c.rejected, m.Rejected)
	counter(c.departed, m.Departed)
}
