// Package config resolves tfetch settings from defaults, an optional dotenv
// file, TFETCH_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"tfetch/sysinfo"
)

// Environment variables read by Load.
const (
	EnvConfig         = "TFETCH_CONFIG"
	EnvGap            = "TFETCH_GAP"
	EnvCompact        = "TFETCH_COMPACT"
	EnvKernelName     = "TFETCH_KERNEL_NAME"
	EnvNoColor        = "TFETCH_NO_COLOR"
	EnvBatteryMinutes = "TFETCH_BATTERY_MINUTES"
	EnvLogLevel       = "TFETCH_LOG_LEVEL"
	EnvLogFormat      = "TFETCH_LOG_FORMAT"
	EnvDebug          = "TFETCH_DEBUG"
)

type Config struct {
	// Path is the dotenv file that was consulted, whether or not it existed.
	Path string

	Gap            int
	Compact        bool
	KernelName     bool
	NoColor        bool
	BatteryMinutes sysinfo.BatteryMinutes
	LogLevel       string
	LogFormat      string
	Debug          bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Gap:            4,
		BatteryMinutes: sysinfo.MinutesLegacy,
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// Load resolves settings for args (without the program name) against the
// process environment.
func Load(args []string) (*Config, error) {
	return LoadEnv(args, os.LookupEnv)
}

// LoadEnv is Load with an explicit environment lookup.
func LoadEnv(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	fset, fv := newFlagSet(cfg)
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg.Path = *fv.path
	if !set["config"] {
		cfg.Path = defaultPath(lookupEnv)
	}

	file, err := readFile(cfg.Path)
	if err != nil {
		return nil, err
	}

	env := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}

	if set["gap"] {
		cfg.Gap = *fv.gap
	}
	if set["compact"] {
		cfg.Compact = *fv.compact
	}
	if set["kernel-name"] {
		cfg.KernelName = *fv.kernelName
	}
	if set["no-color"] {
		cfg.NoColor = *fv.noColor
	}
	if set["battery-minutes"] {
		if cfg.BatteryMinutes, err = sysinfo.ParseBatteryMinutes(*fv.minutes); err != nil {
			return nil, err
		}
	}
	if set["log-level"] {
		cfg.LogLevel = *fv.logLevel
	}
	if set["log-format"] {
		cfg.LogFormat = *fv.logFormat
	}
	if set["debug"] {
		cfg.Debug = *fv.debug
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type flagValues struct {
	path       *string
	gap        *int
	compact    *bool
	kernelName *bool
	noColor    *bool
	minutes    *string
	logLevel   *string
	logFormat  *string
	debug      *bool
}

func newFlagSet(cfg *Config) (*flag.FlagSet, *flagValues) {
	fset := flag.NewFlagSet("tfetch", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	return fset, &flagValues{
		path:       fset.String("config", "", "path to a dotenv config file"),
		gap:        fset.Int("gap", cfg.Gap, "number of spaces between logo and info"),
		compact:    fset.Bool("compact", false, "use the compact logo"),
		kernelName: fset.Bool("kernel-name", false, "show kernel name/architecture instead of release"),
		noColor:    fset.Bool("no-color", false, "disable colored output"),
		minutes:    fset.String("battery-minutes", cfg.BatteryMinutes.String(), "battery minutes rule: legacy or hour"),
		logLevel:   fset.String("log-level", cfg.LogLevel, "log level"),
		logFormat:  fset.String("log-format", cfg.LogFormat, "log format: text or json"),
		debug:      fset.Bool("debug", false, "enable debug logging"),
	}
}

// PrintUsage writes the flag summary to w.
func PrintUsage(w io.Writer) {
	fset, _ := newFlagSet(Default())
	fset.SetOutput(w)
	fmt.Fprintln(w, "Usage: tfetch [flags]")
	fset.PrintDefaults()
}

func (c *Config) applyEnv(env func(string) (string, bool)) error {
	var err error
	if v, ok := env(EnvGap); ok {
		if c.Gap, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvGap, err)
		}
	}

	for key, dst := range map[string]*bool{
		EnvCompact:    &c.Compact,
		EnvKernelName: &c.KernelName,
		EnvNoColor:    &c.NoColor,
		EnvDebug:      &c.Debug,
	} {
		v, ok := env(key)
		if !ok {
			continue
		}
		if *dst, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if v, ok := env(EnvBatteryMinutes); ok {
		if c.BatteryMinutes, err = sysinfo.ParseBatteryMinutes(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvBatteryMinutes, err)
		}
	}
	if v, ok := env(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := env(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", c.Gap)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// defaultPath is $TFETCH_CONFIG, or config.env under the user config
// directory.
func defaultPath(lookupEnv func(string) (string, bool)) string {
	if v, ok := lookupEnv(EnvConfig); ok && v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tfetch", "config.env")
}

// readFile parses a dotenv file. A missing file yields no values.
func readFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return values, nil
}
