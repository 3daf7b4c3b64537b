// Package metrics exposes an objpool.Allocator's Stats as Prometheus
// collectors, for pools that run inside a long-lived process with a scrape
// endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/objpool"
)

// Collector adapts an *objpool.Allocator to prometheus.Collector. Stats are
// read fresh on every Collect call, so registering a Collector imposes no
// polling loop of its own.
type Collector struct {
	alloc *objpool.Allocator
	name  string

	freeObjects   *prometheus.Desc
	objectsInUse  *prometheus.Desc
	pagesInUse    *prometheus.Desc
	mostObjects   *prometheus.Desc
	allocations   *prometheus.Desc
	deallocations *prometheus.Desc
}

// NewCollector returns a Collector for alloc. name identifies the pool in
// exported metric labels, e.g. the object type name.
func NewCollector(name string, alloc *objpool.Allocator) *Collector {
	constLabels := prometheus.Labels{"pool": name}
	return &Collector{
		alloc: alloc,
		name:  name,

		freeObjects: prometheus.NewDesc(
			"objpool_free_objects", "Slots currently on the free list.", nil, constLabels),
		objectsInUse: prometheus.NewDesc(
			"objpool_objects_in_use", "Slots currently handed out to callers.", nil, constLabels),
		pagesInUse: prometheus.NewDesc(
			"objpool_pages_in_use", "Pages currently owned by the pool.", nil, constLabels),
		mostObjects: prometheus.NewDesc(
			"objpool_most_objects", "High-water mark of objects in use.", nil, constLabels),
		allocations: prometheus.NewDesc(
			"objpool_allocations_total", "Cumulative successful allocations.", nil, constLabels),
		deallocations: prometheus.NewDesc(
			"objpool_deallocations_total", "Cumulative successful frees.", nil, constLabels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.freeObjects
	ch <- c.objectsInUse
	ch <- c.pagesInUse
	ch <- c.mostObjects
	ch <- c.allocations
	ch <- c.deallocations
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.alloc.GetStats()
	ch <- prometheus.MustNewConstMetric(c.freeObjects, prometheus.GaugeValue, float64(s.FreeObjects))
	ch <- prometheus.MustNewConstMetric(c.objectsInUse, prometheus.GaugeValue, float64(s.ObjectsInUse))
	ch <- prometheus.MustNewConstMetric(c.pagesInUse, prometheus.GaugeValue, float64(s.PagesInUse))
	ch <- prometheus.MustNewConstMetric(c.mostObjects, prometheus.GaugeValue, float64(s.MostObjects))
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(s.Allocations))
	ch <- prometheus.MustNewConstMetric(c.deallocations, prometheus.CounterValue, float64(s.Deallocations))
}
