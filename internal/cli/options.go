package cli

import "time"

// EngineOptions configures the engine built by the CLI.
type EngineOptions struct {
	Color         string // auto, none, ansi, ansi256 or truecolor
	Measure       string // uniseg, runewidth or eastasian
	MarkdownStyle string // glamour style; empty follows the terminal
	CacheSize     int    // entries of the in-memory cache; 0 disables it
	RedisAddr     string // when set, the cache and lock live in Redis
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	Debug         bool
}

// RenderOptions contains the configuration for the render command.
type RenderOptions struct {
	EngineOptions
	Path     string // file to render; "" or "-" reads stdin
	Format   string // yaml or json; empty guesses from Path
	Watch    bool
	Interval time.Duration
}
