package sysinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"
)

// Release descriptor files consulted by Distro, in order.
const (
	LSBReleasePath = "/etc/lsb-release"
	OSReleasePath  = "/etc/os-release"
)

var (
	lsbDescription = MustCompile(`DISTRIB_DESCRIPTION="?(?P<value>[^\n"]+)"?\n`)
	osReleaseName  = MustCompile(`(?m)^NAME="?(?P<value>[^\n"]+)"?\n`)
	pathBase       = MustCompile(`(?P<value>[^/]+)$`)
)

var identityStrip = strings.NewReplacer(" ", "", "\n", "")

// IdentityPair is the "user@host" line and the dashed line drawn under it.
type IdentityPair struct {
	Line      string
	Separator string
}

// Prober runs the individual probes against a Provider and renders their
// results with a Formatter.
type Prober struct {
	Provider  Provider
	Formatter Formatter

	// BatteryMinutes selects how Battery splits the remaining time.
	BatteryMinutes BatteryMinutes
}

// NewProber returns a Prober that reads from provider and styles with palette.
func NewProber(provider Provider, palette Palette) *Prober {
	return &Prober{
		Provider:  provider,
		Formatter: Formatter{Palette: palette},
	}
}

// Identity renders the "user@host" line and its separator. An unset USER is
// shown as an empty name; a host name that cannot be read or is not valid
// UTF-8 is an error.
func (p *Prober) Identity() (IdentityPair, error) {
	user, _ := p.Provider.LookupEnv("USER")

	raw, err := p.Provider.Hostname()
	if err != nil {
		return IdentityPair{}, fmt.Errorf("hostname: %w: %w", ErrSourceUnavailable, err)
	}
	if !utf8.Valid(raw) {
		return IdentityPair{}, fmt.Errorf("hostname is not valid UTF-8: %w", ErrSourceUnavailable)
	}
	host := string(raw)

	c := p.Formatter.Palette
	line := identityStrip.Replace(fmt.Sprintf("%s%s%s%s%s%s@%s%s%s%s%s",
		c.Bullet, c.Bold, user, c.Reset,
		c.Bold, c.Value, c.Reset,
		c.Bold, c.Bullet, host, c.Reset))

	// Measured before stripping, so the underline tracks the raw names.
	width := len(user) + 1 + len(host)
	separator := c.Value + strings.Repeat("-", width) + c.Reset

	return IdentityPair{Line: line, Separator: separator}, nil
}

// Distro renders the distribution name found by DistroName.
func (p *Prober) Distro() (string, error) {
	name, err := p.DistroName()
	if err != nil {
		return "", err
	}
	return p.Formatter.Format("os", name), nil
}

// DistroName returns the unstyled distribution name. The LSB descriptor is
// tried first and the os-release NAME second. A descriptor that exists but
// cannot be read stops the search.
func (p *Prober) DistroName() (string, error) {
	name, lsbErr := p.readRelease(LSBReleasePath, lsbDescription)
	if lsbErr == nil {
		return name, nil
	}
	if errors.Is(lsbErr, ErrRead) {
		return "", lsbErr
	}

	name, osErr := p.readRelease(OSReleasePath, osReleaseName)
	if osErr == nil {
		return name, nil
	}
	if errors.Is(osErr, ErrRead) {
		return "", osErr
	}

	return "", fmt.Errorf("distribution name: %w", errors.Join(lsbErr, osErr))
}

func (p *Prober) readRelease(path string, pattern Pattern) (string, error) {
	data, err := p.Provider.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", path, ErrSourceUnavailable)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", path, ErrRead, err)
	}

	value, ok := pattern.Extract(string(data))
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrNoMatch)
	}
	return value, nil
}

// Kernel renders "sysname/machine" when showName is set and the kernel
// release otherwise.
func (p *Prober) Kernel(showName bool) string {
	u := p.Provider.Uname()
	value := u.Release
	if showName {
		value = u.Sysname + "/" + u.Machine
	}
	return p.Formatter.Format("kernel", value)
}

// Shell renders the base name of $SHELL.
func (p *Prober) Shell() (string, error) {
	shell, ok := p.Provider.LookupEnv("SHELL")
	if !ok {
		return "", fmt.Errorf("SHELL: %w", ErrSourceUnavailable)
	}

	name, ok := pathBase.Extract(shell)
	if !ok {
		return "", fmt.Errorf("SHELL %q: %w", shell, ErrNoMatch)
	}
	return p.Formatter.Format("shell", name), nil
}

// Uptime renders the system uptime.
func (p *Prober) Uptime() (string, error) {
	d, err := p.Provider.Uptime()
	if err != nil {
		return "", fmt.Errorf("uptime: %w: %w", ErrSourceUnavailable, err)
	}
	return p.Formatter.FormatUptime(d), nil
}

// Memory renders used and total physical memory.
func (p *Prober) Memory() (string, error) {
	m, err := p.Provider.Memory()
	if err != nil {
		return "", fmt.Errorf("memory: %w: %w", ErrSourceUnavailable, err)
	}
	return p.Formatter.FormatMemory(m), nil
}

// Battery renders the primary battery charge and remaining time.
func (p *Prober) Battery() (string, error) {
	b, err := p.Provider.Battery()
	if err != nil {
		return "", fmt.Errorf("battery: %w: %w", ErrSourceUnavailable, err)
	}
	return p.Formatter.FormatBattery(b, p.BatteryMinutes), nil
}
