// Package config loads engine options from a YAML file.
package config

import (
	"os"

	"go.heftrun.dev/heft/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ErrConfigReadFailed is returned when the configuration file cannot be read.
var ErrConfigReadFailed = zerr.New("config: failed to read file")

// ErrConfigParseFailed is returned when the configuration file is not valid
// YAML for the File schema.
var ErrConfigParseFailed = zerr.New("config: failed to parse file")

// DefaultWorkerCount is used when Load is given an empty path, or the file
// does not set worker_count.
const DefaultWorkerCount = 1

// Loader implements ports.ConfigLoader by reading a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads path and returns the EngineOptions it describes. An empty path
// returns the zero options with WorkerCount defaulted to 1.
func (l *Loader) Load(path string) (ports.EngineOptions, error) {
	if path == "" {
		return ports.EngineOptions{WorkerCount: DefaultWorkerCount}, nil
	}

	// #nosec G304 -- path is provided by the caller of this module, not by
	// an untrusted network input.
	raw, err := os.ReadFile(path)
	if err != nil {
		return ports.EngineOptions{}, zerr.Wrap(err, ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return ports.EngineOptions{}, zerr.With(zerr.Wrap(err, ErrConfigParseFailed.Error()), "path", path)
	}

	opts := ports.EngineOptions{
		WorkerCount:       file.WorkerCount,
		PerReadTimeoutMS:  file.PerReadTimeoutMS,
		CollectionTimeout: file.CollectionTimeout,
		Costs:             file.Costs,
		Inflate:           file.Inflate,
	}
	if opts.WorkerCount <= 0 {
		l.Logger.Warn("worker_count missing or non-positive, defaulting to 1")
		opts.WorkerCount = DefaultWorkerCount
	}
	return opts, nil
}
