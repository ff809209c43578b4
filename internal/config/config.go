package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxUploadMB  int

	// comparison + export defaults
	OutputDir          string
	MatchThreshold     float64 // minimum fuzzy name score (0..100)
	HighlightThreshold float64 // street similarity that triggers row highlighting
	KeyMarker          string  // display escape prepended to customer keys
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8084"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	match, _ := strconv.ParseFloat(getenv("MATCH_THRESHOLD", "85"), 64)
	highlight, _ := strconv.ParseFloat(getenv("HIGHLIGHT_THRESHOLD", "80"), 64)
	return Config{
		Host:               getenv("HOST", "127.0.0.1"),
		Port:               port,
		AllowOrigins:       origins,
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFile:            getenv("LOG_FILE", "logs/res-vpp-compare.log"),
		MaxUploadMB:        mb,
		OutputDir:          getenv("OUTPUT_DIR", "out"),
		MatchThreshold:     match,
		HighlightThreshold: highlight,
		KeyMarker:          getenv("KEY_MARKER", `\c`),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
