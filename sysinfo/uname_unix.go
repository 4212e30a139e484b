//go:build !windows
// +build !windows

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// hostname returns the node name reported by the kernel, as raw bytes.
func hostname() ([]byte, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return nil, err
	}
	return []byte(unix.ByteSliceToString(u.Nodename[:])), nil
}

// uname calls uname(2). If the call fails the Go runtime's view of the
// platform is used instead.
func uname() Uname {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{
			Sysname: runtime.GOOS,
			Release: "unknown",
			Version: "unknown",
			Machine: runtime.GOARCH,
		}
	}

	return Uname{
		Sysname:  unix.ByteSliceToString(u.Sysname[:]),
		Nodename: unix.ByteSliceToString(u.Nodename[:]),
		Release:  unix.ByteSliceToString(u.Release[:]),
		Version:  unix.ByteSliceToString(u.Version[:]),
		Machine:  unix.ByteSliceToString(u.Machine[:]),
	}
}
