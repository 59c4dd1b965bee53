package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot describes the host at a single point in time.
type Snapshot struct {
	OSName        string `json:"os_name"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`
	CPUCount      int    `json:"cpu_count"`
	TotalMemoryMB uint64 `json:"total_memory_mb"`
	UsedMemoryMB  uint64 `json:"used_memory_mb"`

	// Raw byte counts kept for metrics exposition.
	TotalMemoryBytes uint64 `json:"-"`
	UsedMemoryBytes  uint64 `json:"-"`
}

// Collect gathers a snapshot. Fields whose source is unavailable stay zero.
func Collect() Snapshot {
	var s Snapshot

	if info, err := host.Info(); err == nil {
		s.OSName = info.Platform
		s.OSVersion = info.PlatformVersion
		s.KernelVersion = info.KernelVersion
	}

	s.CPUCount = runtime.NumCPU()
	if count, err := cpu.Counts(true); err == nil && count > 0 {
		s.CPUCount = count
	}

	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.TotalMemoryBytes = vm.Total
		s.UsedMemoryBytes = vm.Used
		s.TotalMemoryMB = vm.Total / 1024 / 1024
		s.UsedMemoryMB = vm.Used / 1024 / 1024
	}

	return s
}
