package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/vktec/leafseed"
)

// Config holds the search configuration.
type Config struct {
	Workers          int    `json:"workers"` // 0 = GOMAXPROCS
	From             int32  `json:"from"`
	To               int32  `json:"to"`
	ChunkX           int32  `json:"chunk_x"` // block coordinates of the chunk's minimum corner
	ChunkZ           int32  `json:"chunk_z"`
	Step             int    `json:"decoration_step"`
	Index            int    `json:"feature_index"`
	MaxAttempts      int    `json:"max_attempts"`
	Remaining        int    `json:"remaining"`
	ProgressInterval int64  `json:"progress_interval"`
	Table            string `json:"table"`     // path to a table file, "" = built-in
	TableURL         string `json:"table_url"` // go-getter source, overrides Table
	Format           string `json:"format"`    // "human", "csv" or "json"
}

// DefaultConfig returns a Config that sweeps every 32-bit seed against the
// built-in table.
func DefaultConfig() *Config {
	p := leafseed.DefaultParams()
	return &Config{
		From:             math.MinInt32,
		To:               math.MaxInt32,
		ChunkX:           p.ChunkX,
		ChunkZ:           p.ChunkZ,
		Step:             p.Step,
		Index:            p.Index,
		MaxAttempts:      p.MaxAttempts,
		Remaining:        p.Remaining,
		ProgressInterval: 10_000_000,
		Format:           "human",
	}
}

// Load reads a JSON config file. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["j"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["from"] {
		cfg.From = fromFile.From
	}
	if !explicitFlags["to"] {
		cfg.To = fromFile.To
	}
	if !explicitFlags["chunk-x"] {
		cfg.ChunkX = fromFile.ChunkX
	}
	if !explicitFlags["chunk-z"] {
		cfg.ChunkZ = fromFile.ChunkZ
	}
	if !explicitFlags["step"] {
		cfg.Step = fromFile.Step
	}
	if !explicitFlags["index"] {
		cfg.Index = fromFile.Index
	}
	if !explicitFlags["attempts"] {
		cfg.MaxAttempts = fromFile.MaxAttempts
	}
	if !explicitFlags["remaining"] {
		cfg.Remaining = fromFile.Remaining
	}
	if !explicitFlags["progress"] {
		cfg.ProgressInterval = fromFile.ProgressInterval
	}
	if !explicitFlags["table"] {
		cfg.Table = fromFile.Table
	}
	if !explicitFlags["table-url"] {
		cfg.TableURL = fromFile.TableURL
	}
	if !explicitFlags["f"] {
		cfg.Format = fromFile.Format
	}
}

// Validate rejects settings the search cannot run with.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.Remaining < 0 {
		return fmt.Errorf("remaining must not be negative, got %d", c.Remaining)
	}
	if c.ProgressInterval <= 0 {
		return fmt.Errorf("progress_interval must be positive, got %d", c.ProgressInterval)
	}
	switch c.Format {
	case "human", "csv", "json":
	default:
		return fmt.Errorf("format must be one of: csv, json, human, got %q", c.Format)
	}
	return nil
}

func (c *Config) Params() leafseed.Params {
	return leafseed.Params{
		ChunkX:      c.ChunkX,
		ChunkZ:      c.ChunkZ,
		Step:        c.Step,
		Index:       c.Index,
		MaxAttempts: c.MaxAttempts,
		Remaining:   c.Remaining,
	}
}
