// SPDX-License-Identifier: MPL-2.0

package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// ErrFreqUnavailable is reported in CPUFreq.Error when the platform exposes
// no frequency.
var ErrFreqUnavailable = errors.New("CPU frequency information not available")

type (
	// Collector reads raw metrics from the host.
	Collector interface {
		Host(ctx context.Context) (*host.InfoStat, error)
		CPUCounts(ctx context.Context, logical bool) (int, error)
		CPUInfo(ctx context.Context) ([]cpu.InfoStat, error)
		CPUPercent(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error)
		VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
		Partitions(ctx context.Context) ([]disk.PartitionStat, error)
		DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
		Interfaces(ctx context.Context) ([]string, error)
		NetIOCounters(ctx context.Context) (*net.IOCountersStat, error)
	}

	// Options controls Collect.
	Options struct {
		// SampleInterval is the CPU utilisation sampling window.
		SampleInterval time.Duration
		// Now returns the snapshot time. Nil means time.Now.
		Now func() time.Time
		// Logger receives debug output about degraded metrics. Nil discards it.
		Logger *log.Logger
	}

	hostCollector struct{}
)

// NewHostCollector returns a Collector backed by gopsutil.
func NewHostCollector() Collector { return hostCollector{} }

func (hostCollector) Host(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (hostCollector) CPUCounts(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

func (hostCollector) CPUInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (hostCollector) CPUPercent(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error) {
	return cpu.PercentWithContext(ctx, interval, perCPU)
}

func (hostCollector) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (hostCollector) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

func (hostCollector) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (hostCollector) Interfaces(ctx context.Context) ([]string, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return names, nil
}

func (hostCollector) NetIOCounters(ctx context.Context) (*net.IOCountersStat, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(counters) == 0 {
		return &net.IOCountersStat{}, nil
	}
	return &counters[0], nil
}

// Collect builds a Snapshot. Frequency and per-partition usage degrade to an
// error string; any other failure, including cancellation of ctx, aborts.
func Collect(ctx context.Context, c Collector, opts Options) (Snapshot, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	var err error

	if snap.System, err = collectSystem(ctx, c); err != nil {
		return Snapshot{}, err
	}
	if snap.CPU, err = collectCPU(ctx, c, opts.SampleInterval, logger); err != nil {
		return Snapshot{}, err
	}
	if snap.Memory, err = collectMemory(ctx, c); err != nil {
		return Snapshot{}, err
	}
	if snap.Disk, err = collectDisk(ctx, c, logger); err != nil {
		return Snapshot{}, err
	}
	if snap.Network, err = collectNetwork(ctx, c); err != nil {
		return Snapshot{}, err
	}
	snap.Timestamp = now().Format(TimestampLayout)
	return snap, nil
}

func collectSystem(ctx context.Context, c Collector) (System, error) {
	info, err := c.Host(ctx)
	if err != nil {
		return System{}, fmt.Errorf("read host info: %w", err)
	}

	sys := System{
		OS:           info.OS,
		OSVersion:    osVersion(info),
		Architecture: info.KernelArch,
		GoVersion:    runtime.Version(),
		Hostname:     info.Hostname,
	}
	if sys.Architecture == "" {
		sys.Architecture = runtime.GOARCH
	}
	if cpus, err := c.CPUInfo(ctx); err == nil && len(cpus) > 0 {
		sys.Processor = strings.TrimSpace(cpus[0].ModelName)
	}
	return sys, nil
}

func osVersion(info *host.InfoStat) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{info.Platform, info.PlatformVersion} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if info.KernelVersion != "" {
		parts = append(parts, "(kernel "+info.KernelVersion+")")
	}
	return strings.Join(parts, " ")
}

func collectCPU(ctx context.Context, c Collector, interval time.Duration, logger *log.Logger) (CPU, error) {
	var out CPU
	var err error

	if out.PhysicalCores, err = c.CPUCounts(ctx, false); err != nil {
		if ctx.Err() != nil {
			return CPU{}, ctx.Err()
		}
		logger.Debug("physical core count unavailable", "err", err)
		out.PhysicalCores = 0
	}
	if out.TotalCores, err = c.CPUCounts(ctx, true); err != nil {
		return CPU{}, fmt.Errorf("count logical cores: %w", err)
	}

	out.Freq = collectFreq(ctx, c)
	if out.Freq.Error != "" {
		logger.Debug("cpu frequency unavailable", "reason", out.Freq.Error)
	}

	if out.UsagePerCore, err = c.CPUPercent(ctx, interval, true); err != nil {
		return CPU{}, fmt.Errorf("sample per-core usage: %w", err)
	}
	total, err := c.CPUPercent(ctx, interval, false)
	if err != nil {
		return CPU{}, fmt.Errorf("sample total usage: %w", err)
	}
	if len(total) > 0 {
		out.TotalUsage = total[0]
	}
	return out, nil
}

func collectFreq(ctx context.Context, c Collector) CPUFreq {
	cpus, err := c.CPUInfo(ctx)
	if err != nil {
		return CPUFreq{Error: err.Error()}
	}
	if len(cpus) == 0 || cpus[0].Mhz <= 0 {
		return CPUFreq{Error: ErrFreqUnavailable.Error()}
	}
	current := cpus[0].Mhz
	return CPUFreq{Current: &current}
}

func collectMemory(ctx context.Context, c Collector) (Memory, error) {
	vm, err := c.VirtualMemory(ctx)
	if err != nil {
		return Memory{}, fmt.Errorf("read memory: %w", err)
	}
	return Memory{Total: vm.Total, Available: vm.Available, Used: vm.Used, Percentage: vm.UsedPercent}, nil
}

func collectDisk(ctx context.Context, c Collector, logger *log.Logger) (Disk, error) {
	parts, err := c.Partitions(ctx)
	if err != nil {
		return Disk{}, fmt.Errorf("list partitions: %w", err)
	}

	out := Disk{Partitions: make([]Partition, 0, len(parts))}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return Disk{}, err
		}

		part := Partition{Device: p.Device, Mountpoint: p.Mountpoint, Fstype: p.Fstype}
		usage, err := c.DiskUsage(ctx, p.Mountpoint)
		if err != nil {
			logger.Debug("skipping partition usage", "mountpoint", p.Mountpoint, "err", err)
			part.Error = err.Error()
		} else {
			part.Usage = &Usage{Total: usage.Total, Used: usage.Used, Free: usage.Free, Percentage: usage.UsedPercent}
		}
		out.Partitions = append(out.Partitions, part)
	}
	return out, nil
}

func collectNetwork(ctx context.Context, c Collector) (Network, error) {
	names, err := c.Interfaces(ctx)
	if err != nil {
		return Network{}, fmt.Errorf("list interfaces: %w", err)
	}
	counters, err := c.NetIOCounters(ctx)
	if err != nil {
		return Network{}, fmt.Errorf("read network counters: %w", err)
	}
	return Network{
		Interfaces: names,
		IOCounters: IOCounters{BytesSent: counters.BytesSent, BytesRecv: counters.BytesRecv},
	}, nil
}
