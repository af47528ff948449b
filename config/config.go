// Package config loads intcode run files.
//
// A run file names a program and the inputs, phases and topology used to
// drive it:
//
//	program: day7.txt
//	phases: [9, 8, 7, 6, 5]
//	seed: 0
//	feedback: true
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/intcode/cpu"
)

// Config is a parsed run file.
type Config struct {
	// Program is the path of the program text, relative to the run file.
	Program string `yaml:"program"`

	// Inputs are queued before a single processor runs.
	Inputs []int64 `yaml:"inputs,omitempty"`

	// Phases select one pipeline stage each, in order.
	Phases []int64 `yaml:"phases,omitempty"`

	// Seed is the value handed to the first pipeline stage.
	Seed int64 `yaml:"seed,omitempty"`

	// Feedback loops the last stage back to the first.
	Feedback bool `yaml:"feedback,omitempty"`

	// Search tries every ordering of Phases.
	Search bool `yaml:"search,omitempty"`

	// MemoryLimit bounds processor memory, in words. Zero is unbounded.
	MemoryLimit int `yaml:"memory_limit,omitempty"`

	dir string
}

// Load reads and parses a run file.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	return Parse(data, path)
}

// Parse parses run file content. The path is used to resolve the program
// location, and for error messages.
func Parse(data []byte, path string) (cfg *Config, err error) {
	cfg = &Config{}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = nil
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	err = cfg.validate()
	if err != nil {
		cfg = nil
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	cfg.dir = filepath.Dir(path)

	return
}

func (cfg *Config) validate() (err error) {
	switch {
	case len(cfg.Program) == 0:
		err = ErrProgramMissing
	case (cfg.Feedback || cfg.Search) && len(cfg.Phases) == 0:
		err = ErrPhasesMissing
	case cfg.MemoryLimit < 0:
		err = ErrMemoryLimit
	}

	return
}

// ProgramPath returns the program location resolved against the run file.
func (cfg *Config) ProgramPath() string {
	if filepath.IsAbs(cfg.Program) || len(cfg.dir) == 0 {
		return cfg.Program
	}
	return filepath.Join(cfg.dir, cfg.Program)
}

// LoadProgram reads and parses the program named by the run file.
func (cfg *Config) LoadProgram() (prog cpu.Program, err error) {
	path := cfg.ProgramPath()

	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	prog, err = cpu.ParseProgram(string(data))
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	return
}
