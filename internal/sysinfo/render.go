// SPDX-License-Identifier: MPL-2.0

package sysinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/toolbelt/toolbelt/internal/fsutil"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is wrapped when a format name is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// Format names a Snapshot rendering.
type Format string

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (valid: text, json)", ErrUnknownFormat, s)
	}
}

// Render writes snap to w in the given format.
func Render(w io.Writer, snap Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, snap)
	case FormatText:
		return RenderText(w, snap)
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

// RenderJSON writes snap as indented JSON followed by a newline.
func RenderJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(snap)
}

// RenderText writes snap as a sectioned report.
func RenderText(w io.Writer, snap Snapshot) error {
	var b strings.Builder

	b.WriteString("=== System Information ===\n")
	fmt.Fprintf(&b, "OS: %s %s\n", snap.System.OS, snap.System.OSVersion)
	fmt.Fprintf(&b, "Architecture: %s\n", snap.System.Architecture)
	fmt.Fprintf(&b, "Processor: %s\n", orNA(snap.System.Processor))
	fmt.Fprintf(&b, "Hostname: %s\n", snap.System.Hostname)
	fmt.Fprintf(&b, "Go version: %s\n", snap.System.GoVersion)

	b.WriteString("\n=== CPU Information ===\n")
	fmt.Fprintf(&b, "Physical cores: %d\n", snap.CPU.PhysicalCores)
	fmt.Fprintf(&b, "Total cores: %d\n", snap.CPU.TotalCores)
	if snap.CPU.Freq.Error != "" {
		fmt.Fprintf(&b, "CPU Frequency: %s\n", snap.CPU.Freq.Error)
	} else {
		b.WriteString("CPU Frequency:\n")
		fmt.Fprintf(&b, "  Current: %s\n", formatFreq(snap.CPU.Freq.Current))
		fmt.Fprintf(&b, "  Min: %s\n", formatFreq(snap.CPU.Freq.Min))
		fmt.Fprintf(&b, "  Max: %s\n", formatFreq(snap.CPU.Freq.Max))
	}
	fmt.Fprintf(&b, "CPU Usage: %s%%\n", formatPercent(snap.CPU.TotalUsage))

	b.WriteString("\n=== Memory Information ===\n")
	fmt.Fprintf(&b, "Total: %s\n", humanize.IBytes(snap.Memory.Total))
	fmt.Fprintf(&b, "Available: %s\n", humanize.IBytes(snap.Memory.Available))
	fmt.Fprintf(&b, "Used: %s (%s%%)\n", humanize.IBytes(snap.Memory.Used), formatPercent(snap.Memory.Percentage))

	b.WriteString("\n=== Disk Information ===\n")
	for _, p := range snap.Disk.Partitions {
		fmt.Fprintf(&b, "\nDevice: %s\n", p.Device)
		fmt.Fprintf(&b, "Mountpoint: %s\n", p.Mountpoint)
		fmt.Fprintf(&b, "File System: %s\n", p.Fstype)
		switch {
		case p.Error != "":
			fmt.Fprintf(&b, "Error: %s\n", p.Error)
		case p.Usage != nil:
			fmt.Fprintf(&b, "Total: %s\n", humanize.IBytes(p.Total))
			fmt.Fprintf(&b, "Used: %s (%s%%)\n", humanize.IBytes(p.Used), formatPercent(p.Percentage))
			fmt.Fprintf(&b, "Free: %s\n", humanize.IBytes(p.Free))
		}
	}

	b.WriteString("\n=== Network Information ===\n")
	fmt.Fprintf(&b, "Interfaces: %s\n", orNA(strings.Join(snap.Network.Interfaces, ", ")))
	fmt.Fprintf(&b, "Bytes sent: %s\n", humanize.IBytes(snap.Network.IOCounters.BytesSent))
	fmt.Fprintf(&b, "Bytes received: %s\n", humanize.IBytes(snap.Network.IOCounters.BytesRecv))

	fmt.Fprintf(&b, "\nCollected at: %s\n", snap.Timestamp)

	_, err := io.WriteString(w, b.String())
	return err
}

func formatFreq(mhz *float64) string {
	if mhz == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*mhz, 'f', 2, 64) + " MHz"
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// WriteFile renders snap into path atomically, creating its directory.
func WriteFile(fs afero.Fs, path string, snap Snapshot, format Format) error {
	return fsutil.WriteAtomic(fs, path, func(w io.Writer) error {
		return Render(w, snap, format)
	})
}
