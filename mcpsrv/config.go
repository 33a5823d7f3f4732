package mcpsrv

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Config is the MCP server configuration read from the environment.
type Config struct {
	Port           string
	CatalogSource  string
	AllowedOrigins []string
	Stateless      bool
	EnableAdmin    bool
	APIKey         string
	RPS            float64
	Burst          int
	SessionTimeout time.Duration
	// SweepInterval is how often idle gallery sessions are evicted; zero
	// disables the sweeper.
	SweepInterval time.Duration
}

func LoadConfig() Config {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Port:           port,
		CatalogSource:  strings.TrimSpace(os.Getenv("BITES_CATALOG")),
		AllowedOrigins: parseCSV(os.Getenv("BITES_MCP_ALLOWED_ORIGINS")),
		Stateless:      parseBool(os.Getenv("BITES_MCP_STATELESS"), false),
		EnableAdmin:    parseBool(os.Getenv("BITES_MCP_ENABLE_ADMIN"), false),
		APIKey:         strings.TrimSpace(os.Getenv("BITES_MCP_API_KEY")),
		RPS:            parseFloat(os.Getenv("BITES_MCP_RPS"), 10),
		Burst:          parseInt(os.Getenv("BITES_MCP_BURST"), 20),
		SessionTimeout: parseDuration(os.Getenv("BITES_MCP_SESSION_TIMEOUT"), 15*time.Minute),
		SweepInterval:  parseDuration(os.Getenv("BITES_MCP_SESSION_SWEEP_INTERVAL"), 5*time.Minute),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.SweepInterval < 0 {
		cfg.SweepInterval = 0
	}

	return cfg
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}

func parseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBool(raw string, fallback bool) bool {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func parseInt(raw string, fallback int) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseFloat(raw string, fallback float64) float64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
