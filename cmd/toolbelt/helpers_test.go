// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/toolbelt/toolbelt/internal/config"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/spf13/afero"
)

type (
	stubConfig struct {
		cfg    *config.Config
		source string
		err    error
	}

	stubHost struct{}

	cliResult struct {
		stdout string
		stderr string
		err    error
	}
)

func (s stubConfig) Load(context.Context, config.LoadOptions) (*config.Loaded, error) {
	if s.err != nil {
		return nil, s.err
	}
	cfg := s.cfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &config.Loaded{Config: cfg, Source: s.source}, nil
}

func (stubHost) Host(context.Context) (*host.InfoStat, error) {
	return &host.InfoStat{Hostname: "testhost", OS: "linux", Platform: "debian", KernelArch: "x86_64"}, nil
}

func (stubHost) CPUCounts(_ context.Context, logical bool) (int, error) {
	if logical {
		return 4, nil
	}
	return 2, nil
}

func (stubHost) CPUInfo(context.Context) ([]cpu.InfoStat, error) {
	return []cpu.InfoStat{{ModelName: "Test CPU", Mhz: 1000}}, nil
}

func (stubHost) CPUPercent(_ context.Context, _ time.Duration, perCPU bool) ([]float64, error) {
	if perCPU {
		return []float64{1, 2, 3, 4}, nil
	}
	return []float64{2.5}, nil
}

func (stubHost) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	return &mem.VirtualMemoryStat{Total: 1 << 30, Available: 1 << 29, Used: 1 << 29, UsedPercent: 50}, nil
}

func (stubHost) Partitions(context.Context) ([]disk.PartitionStat, error) {
	return []disk.PartitionStat{{Device: "/dev/vda1", Mountpoint: "/", Fstype: "ext4"}}, nil
}

func (stubHost) DiskUsage(context.Context, string) (*disk.UsageStat, error) {
	return nil, errors.New("usage unavailable")
}

func (stubHost) Interfaces(context.Context) ([]string, error) {
	return []string{"lo"}, nil
}

func (stubHost) NetIOCounters(context.Context) (*net.IOCountersStat, error) {
	return &net.IOCountersStat{}, nil
}

// runCLI executes the command tree against an in-memory filesystem.
func runCLI(t *testing.T, fs afero.Fs, provider config.Provider, args ...string) cliResult {
	t.Helper()

	if provider == nil {
		provider = stubConfig{}
	}
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config:    provider,
		Fs:        fs,
		Collector: stubHost{},
		Now:       func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local) },
		Stdout:    &stdout,
		Stderr:    &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func wantExitError(t *testing.T, err error) {
	t.Helper()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
}
