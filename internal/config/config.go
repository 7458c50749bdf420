package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DataDir is the directory holding the default dataset files.
	DataDir string
	// Sources maps each dataset key to its candidate locations, tried in order.
	Sources            map[string][]string
	RemoteFetchTimeout time.Duration

	KafkaBrokers    []string
	KafkaSitesTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("REMOTE_FETCH_TIMEOUT", "10s"))
	if err != nil || fetchTimeout <= 0 {
		return nil, errors.New("invalid REMOTE_FETCH_TIMEOUT")
	}

	cfg := &Config{
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "json")),
		ShutdownTimeout:    shutdownTimeout,
		DataDir:            sharedcfg.EnvOrDefault("SITES_DATA_DIR", "data"),
		RemoteFetchTimeout: fetchTimeout,
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSitesTopic:    sharedcfg.EnvOrDefault("KAFKA_SITES_TOPIC", "aquaculture-sites"),
	}
	cfg.Sources = loadSources(cfg.DataDir)

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSitesTopic == "" {
		return nil, errors.New("KAFKA_SITES_TOPIC is required")
	}

	return cfg, nil
}

// SourceEnvVar returns the variable that overrides a dataset's locations,
// e.g. NOVASCOTIA_SITES_PATH.
func SourceEnvVar(dataset string) string {
	return strings.ToUpper(dataset) + "_SITES_PATH"
}

// DefaultFileName is the file a dataset is read from when no override is set.
func DefaultFileName(dataset string) string {
	return dataset + "_sites.csv"
}

func loadSources(dataDir string) map[string][]string {
	sources := make(map[string][]string)
	for _, ds := range region.DatasetKeys() {
		v := os.Getenv(SourceEnvVar(ds))
		if strings.TrimSpace(v) == "" {
			sources[ds] = []string{filepath.Join(dataDir, DefaultFileName(ds))}
			continue
		}
		var locs []string
		for _, loc := range strings.Split(v, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				locs = append(locs, loc)
			}
		}
		sources[ds] = locs
	}
	return sources
}
