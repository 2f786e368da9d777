package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Transform defaults.
	MaxIterations int
	RootType      string

	// Resolver defaults.
	MaxDepth      int
	BaseDir       string
	LocalEnabled  bool
	RemoteEnabled bool

	// Input limits.
	MaxInlineSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SPECFOLD_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxIterations: envInt("SPECFOLD_MAX_ITERATIONS", 0),
		RootType:      os.Getenv("SPECFOLD_ROOT_TYPE"),
		MaxDepth:      envInt("SPECFOLD_MAX_DEPTH", 0),
		BaseDir:       os.Getenv("SPECFOLD_BASE_DIR"),
		LocalEnabled:  envBool("SPECFOLD_LOCAL_ENABLED", true),
		RemoteEnabled: envBool("SPECFOLD_REMOTE_ENABLED", false),
		MaxInlineSize: envInt("SPECFOLD_MAX_INLINE_SIZE", 2*1024*1024),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

// envInt reads a positive integer env var. Zero means "use the library
// default" for the transform and resolver settings, so the fallback for
// those is 0.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
