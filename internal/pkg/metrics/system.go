// Package metrics exports host and connection pool gauges alongside the
// default Go collector.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const DefaultCollectInterval = 5 * time.Second

var (
	HostCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deliveryhub_host_cpu_usage_percent",
			Help: "Host CPU usage over the last sampling second",
		},
	)

	HostMemoryUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deliveryhub_host_memory_used_bytes",
			Help: "Host memory in use",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deliveryhub_heap_alloc_bytes",
			Help: "Bytes of allocated heap objects",
		},
	)

	DBPoolConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "deliveryhub_db_pool_conns",
			Help: "Postgres pool connections by state",
		},
		[]string{"state"},
	)
)

// PoolStatter is satisfied by *pgxpool.Pool.
type PoolStatter interface {
	Stat() *pgxpool.Stat
}

// StartSystemMetricsCollector samples the gauges every interval until ctx
// is done. pool may be nil.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration, pool PoolStatter) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectHostMetrics()
				if pool != nil {
					collectPoolMetrics(pool.Stat())
				}
			}
		}
	}()
}

func collectHostMetrics() {
	if percent, err := cpu.Percent(time.Second, false); err == nil && len(percent) > 0 {
		HostCPUUsage.Set(percent[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		HostMemoryUsed.Set(float64(vm.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	HeapAlloc.Set(float64(m.Alloc))
}

func collectPoolMetrics(stat *pgxpool.Stat) {
	DBPoolConns.WithLabelValues("acquired").Set(float64(stat.AcquiredConns()))
	DBPoolConns.WithLabelValues("idle").Set(float64(stat.IdleConns()))
	DBPoolConns.WithLabelValues("total").Set(float64(stat.TotalConns()))
}
