package sysinfo

import (
	"fmt"
	"regexp"
)

// captureName is the only named group an extraction pattern may declare.
const captureName = "value"

// Pattern is a regular expression with exactly one named capture group,
// "value", used to pull a single substring out of unstructured text.
type Pattern struct {
	re    *regexp.Regexp
	index int
}

// MustCompile compiles expr into a Pattern. It panics if expr is invalid or
// does not declare exactly one named group called "value". Patterns are
// package-level constants, so a panic here is a programming error.
func MustCompile(expr string) Pattern {
	re := regexp.MustCompile(expr)

	index := -1
	for i, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		if name != captureName || index != -1 {
			panic(fmt.Sprintf("sysinfo: pattern %q must have exactly one named group %q", expr, captureName))
		}
		index = i
	}
	if index == -1 {
		panic(fmt.Sprintf("sysinfo: pattern %q has no named group %q", expr, captureName))
	}

	return Pattern{re: re, index: index}
}

// Extract returns the captured text of the first match in text.
func (p Pattern) Extract(text string) (string, bool) {
	m := p.re.FindStringSubmatchIndex(text)
	if m == nil || m[2*p.index] < 0 {
		return "", false
	}
	return text[m[2*p.index]:m[2*p.index+1]], true
}

func (p Pattern) String() string {
	return p.re.String()
}
