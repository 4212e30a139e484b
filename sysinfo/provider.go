package sysinfo

import (
	"errors"
	"os"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// ErrNoBattery is returned by the live provider when the host has no battery.
var ErrNoBattery = errors.New("no battery found")

// OSProvider reads facts from the running system.
type OSProvider struct{}

// NewOSProvider returns a Provider backed by the running system.
func NewOSProvider() *OSProvider {
	return &OSProvider{}
}

// LookupEnv reads the process environment.
func (OSProvider) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ReadFile reads a file from the local filesystem.
func (OSProvider) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Hostname returns the kernel host name.
func (OSProvider) Hostname() ([]byte, error) {
	return hostname()
}

// Uname returns kernel identification, falling back to the Go runtime's view.
func (OSProvider) Uname() Uname {
	return uname()
}

// Uptime returns the time since boot.
func (OSProvider) Uptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// Memory returns physical memory totals.
func (OSProvider) Memory() (Memory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Memory{}, err
	}
	return memoryFrom(vm), nil
}

// memoryFrom counts reclaimable memory (buffers, page cache) as free by using
// the kernel's available estimate rather than MemFree.
func memoryFrom(vm *mem.VirtualMemoryStat) Memory {
	return Memory{Total: vm.Total, Free: vm.Available}
}

// Battery reports the first battery.
func (OSProvider) Battery() (Battery, error) {
	return batteryFrom(battery.GetAll())
}

// batteryFrom converts the result of battery.GetAll. Errors on fields other
// than the current and full charge are tolerated; Remaining is only set while
// discharging with a known rate.
func batteryFrom(bats []*battery.Battery, err error) (Battery, error) {
	if len(bats) == 0 {
		if err != nil {
			return Battery{}, err
		}
		return Battery{}, ErrNoBattery
	}

	if err != nil {
		var multi battery.Errors
		if errors.As(err, &multi) && len(multi) > 0 {
			err = multi[0]
		}
	}
	if err != nil {
		var partial battery.ErrPartial
		if !errors.As(err, &partial) || partial.Current != nil || partial.Full != nil {
			return Battery{}, err
		}
	}

	b := bats[0]
	if b == nil || b.Full <= 0 {
		return Battery{}, ErrNoBattery
	}

	out := Battery{Capacity: b.Current / b.Full}
	if b.State.Raw == battery.Discharging && b.ChargeRate > 0 {
		hours := b.Current / b.ChargeRate
		out.Remaining = time.Duration(hours * float64(time.Hour))
	}
	return out, nil
}
