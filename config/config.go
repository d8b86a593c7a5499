// Package config loads the generation manifest: where the registry lives,
// where generated files land, and how their banners are stamped.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kearwood/Vulkan-ValidationLayers/cpp"
	"github.com/kearwood/Vulkan-ValidationLayers/vkxml"
)

// Config is the top-level generation manifest.
type Config struct {
	// Registry is the path to the vk.xml registry document.
	Registry string `yaml:"registry"`

	// API selects which api= variants of the registry to keep.
	API string `yaml:"api,omitempty"`

	// OutDir is the directory generated files are written to.
	OutDir string `yaml:"out_dir,omitempty"`

	// Generator is the name stamped into the generated banner.
	Generator string `yaml:"generator,omitempty"`

	// Copyright configures the license stamp of generated files.
	Copyright CopyrightConfig `yaml:"copyright,omitempty"`

	// Targets lists the generated file names to render.
	Targets []string `yaml:"targets,omitempty"`
}

// CopyrightConfig is the copyright stamp for generated files. Zero fields
// fall back to the backend defaults.
type CopyrightConfig struct {
	Years   string   `yaml:"years,omitempty"`
	Holders []string `yaml:"holders,omitempty"`
}

// Default returns the manifest the generator runs with when no file is
// given: both helper files, rendered next to the working directory.
func Default() *Config {
	return &Config{
		Registry:  "vk.xml",
		API:       vkxml.DefaultAPI,
		OutDir:    ".",
		Generator: cpp.DefaultGeneratorName,
		Targets:   []string{cpp.HeaderFileName, cpp.SourceFileName},
	}
}

// Load reads and parses a manifest file. Fields absent from the file keep
// their Default values. The parsed manifest is validated before return.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the manifest for holes the generator would otherwise
// trip over at render time.
func (c *Config) Validate() error {
	if c.Registry == "" {
		return fmt.Errorf("registry path is required")
	}
	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets configured")
	}
	for _, name := range c.Targets {
		if _, ok := cpp.TargetForFilename(name); !ok {
			return fmt.Errorf("unknown target %q (want %q or %q)",
				name, cpp.HeaderFileName, cpp.SourceFileName)
		}
	}
	return nil
}

// TargetList resolves the configured file names to backend targets.
func (c *Config) TargetList() ([]cpp.Target, error) {
	targets := make([]cpp.Target, 0, len(c.Targets))
	for _, name := range c.Targets {
		target, ok := cpp.TargetForFilename(name)
		if !ok {
			return nil, fmt.Errorf("unknown target %q", name)
		}
		targets = append(targets, target)
	}
	return targets, nil
}

// BackendOptions builds the backend options for one target, applying the
// manifest's stamp overrides on top of the backend defaults.
func (c *Config) BackendOptions(target cpp.Target) cpp.Options {
	opts := cpp.DefaultOptions()
	opts.Target = target
	if c.Generator != "" {
		opts.GeneratorName = c.Generator
	}
	if c.Copyright.Years != "" {
		opts.CopyrightYears = c.Copyright.Years
	}
	if len(c.Copyright.Holders) > 0 {
		opts.CopyrightHolders = c.Copyright.Holders
	}
	return opts
}

// RegistryOptions builds the parser options for the manifest.
func (c *Config) RegistryOptions() vkxml.Options {
	opts := vkxml.DefaultOptions()
	if c.API != "" {
		opts.API = c.API
	}
	return opts
}
