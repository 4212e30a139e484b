//go:build windows
// +build windows

package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// hostname returns the NetBIOS computer name.
func hostname() ([]byte, error) {
	name, err := windows.ComputerName()
	if err != nil {
		return nil, err
	}
	return []byte(name), nil
}

// uname builds a uname-like record. Release is "major.minor.build" from
// RtlGetVersion, which unlike GetVersionEx is not subject to manifest
// compatibility shims.
func uname() Uname {
	u := Uname{
		Sysname: "Windows",
		Release: "unknown",
		Version: productName(),
		Machine: runtime.GOARCH,
	}
	if name, err := windows.ComputerName(); err == nil {
		u.Nodename = name
	}

	v := windows.RtlGetVersion()
	if v != nil && v.MajorVersion != 0 {
		u.Release = fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)

		// Windows 11 still reports "Windows 10" in ProductName.
		if v.BuildNumber >= 22000 && strings.Contains(u.Version, "Windows 10") {
			u.Version = strings.Replace(u.Version, "Windows 10", "Windows 11", 1)
		}
	}
	return u
}

// productName reads the edition name (e.g. "Windows 10 Pro") from the registry.
func productName() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "Windows"
	}
	defer func() { _ = k.Close() }()

	name, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "Windows"
	}
	return name
}
