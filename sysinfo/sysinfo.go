// Package sysinfo gathers host and runtime facts and renders each one as a
// styled display line. Every probe reads its data through a Provider, so the
// same probes run against the live system or a fake in tests.
package sysinfo

import (
	"errors"
	"time"
)

// ANSI escape codes used by the default palette.
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Palette is the set of style tokens concatenated into rendered lines.
// Tokens are opaque: they are never parsed, only written out.
type Palette struct {
	// Bullet colors the marker glyph and the user/host names.
	Bullet string

	// Bold is applied to labels and the identity line.
	Bold string

	// Value colors values, the '@' and the separator.
	Value string

	// Reset ends any active styling.
	Reset string
}

// ANSIPalette is the default terminal palette.
var ANSIPalette = Palette{
	Bullet: ColorYellow,
	Bold:   ColorBold,
	Value:  ColorCyan,
	Reset:  ColorReset,
}

// PlainPalette renders without any escape sequences.
var PlainPalette = Palette{}

// Uname holds the fields reported by uname(2).
type Uname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// Memory holds physical memory totals in bytes.
type Memory struct {
	Total uint64

	// Free is memory available to new allocations, including buffers and
	// page cache the kernel can reclaim.
	Free uint64
}

// Battery holds the state of the primary battery.
type Battery struct {
	// Capacity is the remaining charge as a fraction between 0 and 1.
	Capacity float64

	// Remaining is the estimated time until the battery is empty.
	Remaining time.Duration
}

// Provider supplies raw system facts to the probes.
type Provider interface {
	// LookupEnv reports the value of an environment variable and whether it is set.
	LookupEnv(key string) (string, bool)

	// Hostname returns the raw kernel host name.
	Hostname() ([]byte, error)

	// Uname returns kernel identification. It never fails; unknown fields are
	// filled with best-effort values.
	Uname() Uname

	// ReadFile returns the contents of a file. A missing file must produce an
	// error matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)

	// Uptime returns the time since boot.
	Uptime() (time.Duration, error)

	// Memory returns physical memory totals; Free includes reclaimable cache.
	Memory() (Memory, error)

	// Battery returns the primary battery state.
	Battery() (Battery, error)
}

var (
	// ErrSourceUnavailable means the data source does not exist: a missing
	// file, an unset variable or an undecodable host name.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoMatch means the source exists but holds no recognizable value.
	ErrNoMatch = errors.New("no match")

	// ErrRead means the source exists but could not be read.
	ErrRead = errors.New("read failed")
)
