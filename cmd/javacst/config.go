package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/javacst/java/parser"
)

// Config mirrors the parser options that can be set from a YAML file, so
// batch runs do not need to repeat flags.
type Config struct {
	LanguageLevel   int  `yaml:"language_level"`
	NodeCapacity    int  `yaml:"node_capacity"`
	IncludeComments bool `yaml:"include_comments"`
	Metrics         bool `yaml:"metrics"`
}

func defaultConfig() Config {
	return Config{
		LanguageLevel: int(parser.MaxLevel),
		NodeCapacity:  parser.DefaultNodeCapacity,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) parserOptions(file string) []parser.Option {
	opts := []parser.Option{
		parser.WithFile(file),
		parser.WithLanguageLevel(parser.LanguageLevel(c.LanguageLevel)),
		parser.WithNodeCapacity(c.NodeCapacity),
	}
	if c.IncludeComments {
		opts = append(opts, parser.WithComments())
	}
	return opts
}
