package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML configuration. Flags given on the command
// line take precedence over it.
type fileConfig struct {
	Store         string `yaml:"store"`
	MaxSteps      int    `yaml:"max_steps"`
	Plain         bool   `yaml:"plain"`
	ShowVariables bool   `yaml:"show_variables"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return fc, fmt.Errorf("decode %s: %w", path, err)
	}
	return fc, nil
}

// applyFileConfig copies values from fc into cfg unless the matching flag
// was set explicitly.
func applyFileConfig(cfg *appConfig, fc fileConfig, fs *flag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if !set["store"] && strings.TrimSpace(fc.Store) != "" {
		cfg.storePath = fc.Store
	}
	if !set["max-steps"] && fc.MaxSteps != 0 {
		cfg.maxSteps = fc.MaxSteps
	}
	if !set["plain"] && fc.Plain {
		cfg.plain = true
	}
	if !set["vars"] && fc.ShowVariables {
		cfg.showVars = true
	}
}

func splitInputs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
