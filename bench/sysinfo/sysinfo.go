// Package sysinfo collects the platform metadata attached to result files
// so runs from different machines can be told apart when aggregated.
package sysinfo

import (
	"os"
	"runtime"
)

// Info describes the machine and toolchain a run was produced on.
type Info struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	GoVersion     string `json:"go_version"`
	CPUs          int    `json:"cpus"`
	PageSizeBytes int    `json:"page_size_bytes"`
	TotalMemBytes uint64 `json:"total_mem_bytes"` // 0 when the platform does not expose it
}

// Collect gathers platform metadata. Never fails; fields a platform cannot
// provide are zero.
func Collect() Info {
	return Info{
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		GoVersion:     runtime.Version(),
		CPUs:          runtime.NumCPU(),
		PageSizeBytes: os.Getpagesize(),
		TotalMemBytes: totalMemBytes(),
	}
}
