// SPDX-License-Identifier: MPL-2.0

// Package sysinfo collects a point-in-time snapshot of host metrics and
// renders it as a text report or JSON.
package sysinfo

// TimestampLayout formats Snapshot.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

type (
	// Snapshot is an immutable record of host metrics.
	Snapshot struct {
		System    System  `json:"system"`
		CPU       CPU     `json:"cpu"`
		Memory    Memory  `json:"memory"`
		Disk      Disk    `json:"disk"`
		Network   Network `json:"network"`
		Timestamp string  `json:"timestamp"`
	}

	// System identifies the host and the running binary.
	System struct {
		OS           string `json:"os"`
		OSVersion    string `json:"os_version"`
		Architecture string `json:"architecture"`
		Processor    string `json:"processor"`
		GoVersion    string `json:"go_version"`
		Hostname     string `json:"hostname"`
	}

	// CPU holds core counts, frequency, and utilisation in percent.
	CPU struct {
		PhysicalCores int       `json:"physical_cores"`
		TotalCores    int       `json:"total_cores"`
		Freq          CPUFreq   `json:"cpu_freq"`
		UsagePerCore  []float64 `json:"cpu_usage_per_core"`
		TotalUsage    float64   `json:"total_cpu_usage"`
	}

	// CPUFreq is in MHz. Nil fields are unknown; Error explains why the
	// frequency could not be read at all.
	CPUFreq struct {
		Current *float64 `json:"current"`
		Min     *float64 `json:"min"`
		Max     *float64 `json:"max"`
		Error   string   `json:"error,omitempty"`
	}

	// Memory sizes are in bytes.
	Memory struct {
		Total      uint64  `json:"total"`
		Available  uint64  `json:"available"`
		Used       uint64  `json:"used"`
		Percentage float64 `json:"percentage"`
	}

	// Disk lists mounted partitions.
	Disk struct {
		Partitions []Partition `json:"partitions"`
	}

	// Partition carries either Usage or Error.
	Partition struct {
		Device     string `json:"device"`
		Mountpoint string `json:"mountpoint"`
		Fstype     string `json:"fstype"`
		*Usage
		Error string `json:"error,omitempty"`
	}

	// Usage sizes are in bytes.
	Usage struct {
		Total      uint64  `json:"total"`
		Used       uint64  `json:"used"`
		Free       uint64  `json:"free"`
		Percentage float64 `json:"percentage"`
	}

	// Network lists interface names and host-wide byte counters.
	Network struct {
		Interfaces []string   `json:"interfaces"`
		IOCounters IOCounters `json:"io_counters"`
	}

	// IOCounters are totals since boot.
	IOCounters struct {
		BytesSent uint64 `json:"bytes_sent"`
		BytesRecv uint64 `json:"bytes_recv"`
	}
)
