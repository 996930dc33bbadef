package mcpserver

import (
	"os"
	"strconv"
)

// config holds server settings sourced from OASGUARD_* environment
// variables. The Go MCP SDK does not support initializationOptions, so
// env vars set in the MCP client config are the configuration surface.
type config struct {
	// MaxInlineSize caps inline spec content in bytes.
	MaxInlineSize int64
}

var cfg = loadConfig()

func loadConfig() config {
	c := config{
		MaxInlineSize: 10 << 20, // 10 MiB
	}
	if v := os.Getenv("OASGUARD_MAX_INLINE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.MaxInlineSize = n
		}
	}
	return c
}
