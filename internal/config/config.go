package config

import (
	"fmt"
	"os"
)

// Config is the fully validated input for one run.
type Config struct {
	Target    string // host to probe, required
	Count     int    // probes to send; 0 means run until interrupted
	Delay     int    // seconds between probes
	Verbose   bool
	Debug     bool
	LogFile   string // optional log file path
	Overwrite bool
	Append    bool
	ServeAddr string // status API bind address; empty disables it
	DBPath    string // sqlite history path; empty means in-memory only
}

// Defaults returns a Config with CLI defaults and env fallbacks for
// the optional surfaces. Flags win when set.
func Defaults() Config {
	cfg := Config{Count: 3, Delay: 1}
	if v := os.Getenv("PINGWATCH_SERVE_ADDR"); v != "" {
		cfg.ServeAddr = v
	}
	if v := os.Getenv("PINGWATCH_DB"); v != "" {
		cfg.DBPath = v
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target must not be empty")
	}
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative")
	}
	if c.Delay < 0 {
		return fmt.Errorf("sleep must be non-negative")
	}
	if c.Overwrite && c.Append {
		return fmt.Errorf("overwrite and append are mutually exclusive")
	}
	if (c.Overwrite || c.Append) && c.LogFile == "" {
		return fmt.Errorf("overwrite/append require a log file")
	}
	return nil
}
