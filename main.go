// Package main provides the tfetch command-line tool for displaying host
// information next to a distribution logo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"tfetch/ascii"
	"tfetch/config"
	"tfetch/logging"
	"tfetch/sysinfo"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.PrintUsage(os.Stderr)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tfetch: %v\n", err)
		config.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	log := logging.New(level, cfg.LogFormat, os.Stderr)
	log.WithField("config", cfg.Path).Debug("configuration loaded")

	plain := cfg.NoColor || !isTerminal(os.Stdout)
	palette := sysinfo.ANSIPalette
	if plain {
		palette = sysinfo.PlainPalette
	}

	prober := sysinfo.NewProber(sysinfo.NewOSProvider(), palette)
	prober.BatteryMinutes = cfg.BatteryMinutes

	s := collect(prober, cfg.KernelName, log)
	logo := ascii.GetLogo(s.distro, cfg.Compact, plain)
	displayInfo(os.Stdout, logo, s.infoLines(plain), cfg.Gap)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// summary holds the rendered probe results. Failed probes leave their slot
// empty and are omitted from the output.
type summary struct {
	identity sysinfo.IdentityPair
	distro   string
	lines    []string
}

// Order of the fact lines under the identity.
const (
	slotOS = iota
	slotKernel
	slotShell
	slotUptime
	slotMemory
	slotBattery
	slotCount
)

// collect runs every probe. Probes are independent, so they run
// concurrently; each writes only its own slot.
func collect(p *sysinfo.Prober, kernelName bool, log logrus.FieldLogger) summary {
	s := summary{lines: make([]string, slotCount)}

	run := func(wg *sync.WaitGroup, name string, slot int, probe func() (string, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			line, err := probe()
			if err != nil {
				log.WithError(err).WithField("probe", name).Debug("probe failed, line omitted")
				return
			}
			s.lines[slot] = line
		}()
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		id, err := p.Identity()
		if err != nil {
			log.WithError(err).WithField("probe", "identity").Debug("probe failed, line omitted")
			return
		}
		s.identity = id
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		name, err := p.DistroName()
		if err != nil {
			log.WithError(err).WithField("probe", "os").Debug("probe failed, line omitted")
			return
		}
		s.distro = name
		s.lines[slotOS] = p.Formatter.Format("os", name)
	}()

	s.lines[slotKernel] = p.Kernel(kernelName)
	run(&wg, "shell", slotShell, p.Shell)
	run(&wg, "uptime", slotUptime, p.Uptime)
	run(&wg, "memory", slotMemory, p.Memory)
	run(&wg, "battery", slotBattery, p.Battery)

	wg.Wait()
	return s
}

// infoLines lays out the summary: identity, separator, facts, and a color bar
// unless plain output was requested.
func (s summary) infoLines(plain bool) []string {
	lines := []string{""}
	if s.identity.Line != "" {
		lines = append(lines, s.identity.Line, s.identity.Separator)
	}
	for _, l := range s.lines {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if !plain {
		lines = append(lines, "", colorBar())
	}
	return append(lines, "")
}

// displayInfo renders the ASCII art logo and information lines side-by-side,
// top-aligned, with gap spaces between them.
func displayInfo(w io.Writer, logo, infoLines []string, gap int) {
	// Calculate logo width for proper spacing (excluding ANSI codes)
	logoWidth := 0
	for _, line := range logo {
		if visible := getVisibleWidth(line); visible > logoWidth {
			logoWidth = visible
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	spacer := strings.Repeat(" ", gap)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if pad := logoWidth - getVisibleWidth(logoLine); pad > 0 {
				logoLine += strings.Repeat(" ", pad)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Fprintln(w, strings.TrimRight(logoLine+spacer+infoLine, " "))
	}
}

// getVisibleWidth calculates the display width of a string excluding ANSI
// escape codes. Wide runes count as two columns.
func getVisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// colorBar returns blocks of the 16 basic terminal background colors.
func colorBar() string {
	var b strings.Builder
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	b.WriteString(sysinfo.ColorReset)
	return b.String()
}
