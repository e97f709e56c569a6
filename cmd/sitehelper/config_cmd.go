package main

import (
	"fmt"

	"github.com/literallytheone/site-helper/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	f, err := parseConfigFlags(args, env.Stdout)
	if err != nil {
		if isHelp(err) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
