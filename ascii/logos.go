// Package ascii provides ASCII art logos for common Linux distributions.
// Logos are color-coded using ANSI escape sequences for terminal display.
package ascii

import (
	"strings"

	"tfetch/sysinfo"
)

// logo is a template whose lines use "$1" and "$2" as primary and secondary
// color markers and "$0" as a reset.
type logo struct {
	match  []string
	colors [2]string
	lines  []string
}

var logos = []logo{
	{
		match:  []string{"arch", "manjaro", "endeavour"},
		colors: [2]string{sysinfo.ColorCyan, sysinfo.ColorBlue},
		lines: []string{
			"$1       /\\$0",
			"$1      /  \\$0",
			"$1     /\\   \\$0",
			"$1    /      \\$0",
			"$1   /   ,,   \\$0",
			"$1  /   |  |  -\\$0",
			"$1 /_-''    ''-_\\$0",
		},
	},
	{
		match:  []string{"debian"},
		colors: [2]string{sysinfo.ColorRed, sysinfo.ColorWhite},
		lines: []string{
			"$1  _____$0",
			"$1 /  __ \\$0",
			"$1|  /    |$0",
			"$1|  \\___-$0",
			"$1-_$0",
			"$1  --_$0",
		},
	},
	{
		match:  []string{"ubuntu", "mint", "pop!_os"},
		colors: [2]string{sysinfo.ColorRed, sysinfo.ColorYellow},
		lines: []string{
			"$1         _$0",
			"$1     ---(_)$0",
			"$1 _/  ---  \\$0",
			"$1(_) |   |$0",
			"$1  \\  --- _/$0",
			"$1     ---(_)$0",
		},
	},
	{
		match:  []string{"fedora", "red hat", "centos", "rocky", "alma"},
		colors: [2]string{sysinfo.ColorBlue, sysinfo.ColorWhite},
		lines: []string{
			"$1      _____$0",
			"$1     /   __)$2\\$0",
			"$1     |  /  $2\\ \\$0",
			"$2  ___$1|  |__$2/ /$0",
			"$2 / $1(_    _)$2_/$0",
			"$2/ /  $1|  |$0",
			"$2\\ \\$1__/  |$0",
			"$2 \\$1(_____/$0",
		},
	},
	{
		match:  []string{"alpine"},
		colors: [2]string{sysinfo.ColorBlue, sysinfo.ColorWhite},
		lines: []string{
			"$1   /\\ /\\$0",
			"$1  /$2/ $1\\  \\$0",
			"$1 /$2/   $1\\  \\$0",
			"$1/$2//    $1\\  \\$0",
			"$2//      $1\\  \\$0",
			"$1         \\$0",
		},
	},
}

// tux is used when no distribution logo matches.
var tux = logo{
	colors: [2]string{sysinfo.ColorWhite, sysinfo.ColorYellow},
	lines: []string{
		"$1    .--.$0",
		"$1   |o$2_$1o |$0",
		"$1   |$2\\_/$1 |$0",
		"$1  //   \\ \\$0",
		"$1 (|     | )$0",
		"$1/'\\_   _/`\\$0",
		"$1\\___)=(___/$0",
	},
}

var compactTux = logo{
	colors: [2]string{sysinfo.ColorWhite, sysinfo.ColorYellow},
	lines: []string{
		"$1 .~.$0",
		"$1 /V\\$0",
		"$1// \\\\$0",
		"$1/(   )\\$0",
		"$2 ^`~'^$0",
	},
}

// GetLogo returns the ASCII art for a distribution name as reported by the
// os probe.
//
// Parameters:
//   - distro: Distribution name, e.g. "Arch Linux"; may be empty
//   - compact: Return the small generic logo regardless of distro
//   - plain: Omit all color codes
//
// Returns:
//   - A slice of strings, where each string represents one line of ASCII art
//   - Tux if no distribution logo matches
func GetLogo(distro string, compact, plain bool) []string {
	if compact {
		return compactTux.render(plain)
	}

	name := strings.ToLower(distro)
	for _, l := range logos {
		for _, m := range l.match {
			if strings.Contains(name, m) {
				return l.render(plain)
			}
		}
	}
	return tux.render(plain)
}

// render substitutes color markers, or strips them when plain is set.
func (l logo) render(plain bool) []string {
	c1, c2, reset := l.colors[0], l.colors[1], sysinfo.ColorReset
	if plain {
		c1, c2, reset = "", "", ""
	}
	r := strings.NewReplacer("$1", c1, "$2", c2, "$0", reset)

	out := make([]string, len(l.lines))
	for i, line := range l.lines {
		out[i] = r.Replace(line)
	}
	return out
}
