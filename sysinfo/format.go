// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// labelWidth is the display width labels are padded to so values line up.
const labelWidth = 7

// Formatter renders label/value pairs as single styled lines.
type Formatter struct {
	Palette Palette
}

// Format renders one fact.
//
// Parameters:
//   - label: Short name of the fact, padded to labelWidth columns
//   - value: The fact itself, written verbatim
//
// Example: Format("os", "Arch Linux") with PlainPalette returns "▪ os      Arch Linux"
func (f Formatter) Format(label, value string) string {
	p := f.Palette
	return fmt.Sprintf("%s▪%s %s%s %s%s",
		p.Bullet, p.Bold, PadRight(label, labelWidth), p.Reset, p.Value, value)
}

// FormatBytes converts a byte count to a human-readable string using binary
// (1024-based) units.
//
// Example: FormatBytes(1536) returns "1.5 KiB"
func FormatBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// PadRight pads a string with spaces to reach a minimum display width.
// Wide runes count as two columns.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// BatteryMinutes selects how the minutes part of the remaining battery time
// is derived from its total seconds.
type BatteryMinutes int

const (
	// MinutesLegacy takes total seconds modulo 60. This is what earlier
	// releases printed; it is the seconds field, not minutes.
	MinutesLegacy BatteryMinutes = iota

	// MinutesOfHour takes the whole minutes left over after full hours.
	MinutesOfHour
)

// ParseBatteryMinutes maps a config value ("legacy" or "hour") to a rule.
func ParseBatteryMinutes(s string) (BatteryMinutes, error) {
	switch s {
	case "legacy", "":
		return MinutesLegacy, nil
	case "hour":
		return MinutesOfHour, nil
	}
	return MinutesLegacy, fmt.Errorf("unknown battery minutes rule %q", s)
}

func (m BatteryMinutes) String() string {
	if m == MinutesOfHour {
		return "hour"
	}
	return "legacy"
}

func (m BatteryMinutes) minutes(secs uint64) uint64 {
	if m == MinutesOfHour {
		return (secs % 3600) / 60
	}
	return secs % 60
}

// FormatUptime renders an uptime as whole hours and minutes; seconds are dropped.
func (f Formatter) FormatUptime(uptime time.Duration) string {
	secs := wholeSeconds(uptime)
	return f.Format("uptime", fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60))
}

// FormatMemory renders used over total memory. Used saturates at zero when
// free exceeds total.
func (f Formatter) FormatMemory(mem Memory) string {
	var used uint64
	if mem.Total > mem.Free {
		used = mem.Total - mem.Free
	}
	return f.Format("memory", fmt.Sprintf("%s / %s", FormatBytes(used), FormatBytes(mem.Total)))
}

// FormatBattery renders the charge percentage, truncated toward zero, and the
// remaining time split by rule.
func (f Formatter) FormatBattery(bat Battery, rule BatteryMinutes) string {
	secs := wholeSeconds(bat.Remaining)
	percent := int64(bat.Capacity * 100)
	return f.Format("battery", fmt.Sprintf("%d%%, %dh %dm remaining",
		percent, secs/3600, rule.minutes(secs)))
}

func wholeSeconds(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d / time.Second)
}
