package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"switchboard/runtime"
)

// MonitoringWorker periodically logs process health (CPU, RSS, OS status)
// together with fan-out load: how many user channels are registered. It is a
// plain supervised worker; a panic in a gopsutil call only restarts this loop.
type MonitoringWorker struct {
	log      *slog.Logger
	registry *runtime.Registry
	interval time.Duration
}

func NewMonitoringWorker(log *slog.Logger, registry *runtime.Registry, interval time.Duration) *MonitoringWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &MonitoringWorker{log: log, registry: registry, interval: interval}
}

func (w *MonitoringWorker) Run(ctx context.Context) error {
	w.log.Info("Starting monitoring worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("process health",
				"pid", os.Getpid(),
				"status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"channels", w.registry.Len(),
			)
		}
	}
}

// selfStats retrieves memory, CPU, and OS status for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
