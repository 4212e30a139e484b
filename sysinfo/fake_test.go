package sysinfo

import (
	"errors"
	"io/fs"
	"time"
)

// fakeProvider serves canned facts. Files missing from files report
// fs.ErrNotExist; paths in readErrs fail with that error instead.
type fakeProvider struct {
	env      map[string]string
	host     []byte
	hostErr  error
	uname    Uname
	files    map[string]string
	readErrs map[string]error
	uptime   time.Duration
	memory   Memory
	battery  Battery
	statErr  error
}

func (f *fakeProvider) LookupEnv(key string) (string, bool) {
	v, ok := f.env[key]
	return v, ok
}

func (f *fakeProvider) Hostname() ([]byte, error) {
	return f.host, f.hostErr
}

func (f *fakeProvider) Uname() Uname {
	return f.uname
}

func (f *fakeProvider) ReadFile(path string) ([]byte, error) {
	if err, ok := f.readErrs[path]; ok {
		return nil, err
	}
	data, ok := f.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}

func (f *fakeProvider) Uptime() (time.Duration, error) {
	return f.uptime, f.statErr
}

func (f *fakeProvider) Memory() (Memory, error) {
	return f.memory, f.statErr
}

func (f *fakeProvider) Battery() (Battery, error) {
	return f.battery, f.statErr
}

var errIO = errors.New("input/output error")

func plainProber(p *fakeProvider) *Prober {
	return NewProber(p, PlainPalette)
}
