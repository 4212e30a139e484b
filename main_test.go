package main

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfetch/sysinfo"
)

type stubProvider struct {
	env   map[string]string
	files map[string]string
}

func (s stubProvider) LookupEnv(key string) (string, bool) {
	v, ok := s.env[key]
	return v, ok
}

func (s stubProvider) Hostname() ([]byte, error) { return []byte("box"), nil }

func (s stubProvider) Uname() sysinfo.Uname {
	return sysinfo.Uname{Sysname: "Linux", Release: "6.6.1", Machine: "x86_64"}
}

func (s stubProvider) ReadFile(path string) ([]byte, error) {
	if data, ok := s.files[path]; ok {
		return []byte(data), nil
	}
	return nil, fs.ErrNotExist
}

func (s stubProvider) Uptime() (time.Duration, error) { return 90 * time.Minute, nil }

func (s stubProvider) Memory() (sysinfo.Memory, error) {
	return sysinfo.Memory{Total: 2048, Free: 1024}, nil
}

func (s stubProvider) Battery() (sysinfo.Battery, error) {
	return sysinfo.Battery{}, errors.New("no battery")
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCollect(t *testing.T) {
	p := sysinfo.NewProber(stubProvider{
		env:   map[string]string{"USER": "ann"},
		files: map[string]string{sysinfo.OSReleasePath: "NAME=\"Arch Linux\"\n"},
	}, sysinfo.PlainPalette)

	s := collect(p, false, quietLogger())
	assert.Equal(t, "Arch Linux", s.distro)
	assert.Equal(t, "ann@box", s.identity.Line)

	f := p.Formatter
	assert.Equal(t, []string{
		"",
		"ann@box",
		"-------",
		f.Format("os", "Arch Linux"),
		f.Format("kernel", "6.6.1"),
		f.Format("uptime", "1h 30m"),
		f.Format("memory", "1.0 KiB / 2.0 KiB"),
		"",
	}, s.infoLines(true), "shell and battery fail and are omitted")
}

func TestCollectLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	p := sysinfo.NewProber(stubProvider{}, sysinfo.PlainPalette)
	s := collect(p, true, log)

	assert.Empty(t, s.distro)
	assert.Contains(t, buf.String(), "probe=battery")
	assert.Contains(t, buf.String(), "probe=shell")
	assert.Contains(t, buf.String(), "probe=os")
	assert.Contains(t, s.lines[slotKernel], "Linux/x86_64")
}

func TestInfoLinesColorBar(t *testing.T) {
	lines := summary{lines: make([]string, slotCount)}.infoLines(false)
	require.Len(t, lines, 4)
	assert.Equal(t, colorBar(), lines[2])
}

func TestDisplayInfo(t *testing.T) {
	var buf bytes.Buffer
	logo := []string{"\033[36m/\\\033[0m", "\033[36m/__\\\033[0m"}
	displayInfo(&buf, logo, []string{"a", "b", "c"}, 2)

	want := []string{
		"\033[36m/\\\033[0m    a",
		"\033[36m/__\\\033[0m  b",
		"      c",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", buf.String())
}

func TestGetVisibleWidth(t *testing.T) {
	assert.Equal(t, 5, getVisibleWidth("\033[1mhello\033[0m"))
	assert.Equal(t, 4, getVisibleWidth("日本"))
	assert.Equal(t, 0, getVisibleWidth(sysinfo.ColorReset))
}
