// Package metrics exposes inventory state to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
)

// StockSource provides the stock rows to report
type StockSource interface {
	Rows() []inventory.StockRow
}

// StockCollector reports one gauge sample per stock row at scrape time
type StockCollector struct {
	source StockSource
	units  *prometheus.Desc
}

// NewStockCollector creates a collector over source
func NewStockCollector(source StockSource) *StockCollector {
	return &StockCollector{
		source: source,
		units: prometheus.NewDesc(
			"kiosk_stock_units",
			"Units left in stock, by product and stock kind.",
			[]string{"product", "kind"},
			nil,
		),
	}
}

func (c *StockCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.units
}

func (c *StockCollector) Collect(ch chan<- prometheus.Metric) {
	for _, row := range c.source.Rows() {
		kind := "general"
		if row.Promotional {
			kind = "promotional"
		}
		ch <- prometheus.MustNewConstMetric(c.units, prometheus.GaugeValue, float64(row.Product.Quantity), row.Product.Name, kind)
	}
}
