package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	ModeRelease = "release"
	ModeDebug   = "debug"
)

type Config struct {
	Addr       string // API bind address, e.g., "127.0.0.1:8080" (local) or ":8080" (Docker)
	LogDir     string // logs directory
	Mode       string // "release" requires the proxy/secret headers, "debug" bypasses them
	SecretKey  string // shared secret the frontend proxy must present
	DefaultRPM int    // default per-(IP,route) requests per minute; <=0 disables limiting
}

func FromEnv() Config {
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	mode := strings.TrimSpace(os.Getenv("APP_MODE"))
	if mode != ModeDebug {
		mode = ModeRelease
	}

	defaultRPM := 60
	if v := os.Getenv("DEFAULT_RATE_LIMIT_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			defaultRPM = n
		}
	}

	return Config{
		Addr:       addr,
		LogDir:     logDir,
		Mode:       mode,
		SecretKey:  strings.TrimSpace(os.Getenv("API_SECRET_KEY")),
		DefaultRPM: defaultRPM,
	}
}

// IsDebug reports whether the engine runs with the development bypass enabled.
func (c Config) IsDebug() bool { return c.Mode == ModeDebug }
