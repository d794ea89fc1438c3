// Package config loads the gateway/indexer service's runtime
// configuration: TOML on disk, a generated default written out on first
// run.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration for the gateway binary: where to
// listen, where ledger state lives, and how to reach the collaborators
// observability wires in.
type Config struct {
	ListenAddress   string `toml:"ListenAddress"`
	DataDir         string `toml:"DataDir"`
	StorageBackend  string `toml:"StorageBackend"` // "memory" or "leveldb"
	GenesisFile     string `toml:"GenesisFile"`
	LogFile         string `toml:"LogFile"` // empty means log to stdout
	AuthEnabled     bool   `toml:"AuthEnabled"`
	JWTSigningKey   string `toml:"JWTSigningKey"`
	JWTIssuer       string `toml:"JWTIssuer"`
	RateLimitRPS    int    `toml:"RateLimitRPS"`
	RateLimitBurst  int    `toml:"RateLimitBurst"`
	OTelEndpoint    string `toml:"OTelEndpoint"`
	OTelInsecure    bool   `toml:"OTelInsecure"`
	MetricsAddress  string `toml:"MetricsAddress"`
	IndexerDSN      string `toml:"IndexerDSN"`
	IndexerDriver   string `toml:"IndexerDriver"` // "sqlite" or "postgres"
}

// Load reads cfg from path, writing a generated default file first if
// none exists yet.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

func createDefault(path string) (*Config, error) {
	cfg := &Config{
		ListenAddress:  ":8080",
		DataDir:        "./tokencore-data",
		StorageBackend: "memory",
		GenesisFile:    "./genesis.yaml",
		RateLimitRPS:   50,
		RateLimitBurst: 100,
		MetricsAddress: ":9090",
		IndexerDriver:  "sqlite",
		IndexerDSN:     "./tokencore-data/index.db",
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("config: create default %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: write default %s: %w", path, err)
	}
	return cfg, nil
}
