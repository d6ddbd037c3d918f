//go:build linux

package sysinfo

import "golang.org/x/sys/unix"

func totalMemBytes() uint64 {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0
	}
	return uint64(si.Totalram) * uint64(si.Unit)
}
