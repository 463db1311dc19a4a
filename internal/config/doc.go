// Package config provides configuration management for the agentlint CLI.
//
// Settings resolve in this order, highest first: command-line flags bound
// by the root command, AGENTLINT_* environment variables, an agentlint.yaml
// file, and built-in defaults. The file is looked up in the current
// directory and then in the per-user config directory
// (~/.config/agentlint on Linux):
//
//	agents_dir: .github/agents
//	pattern: "*.yaml"
//	format: text   # or json
//
// Every loaded configuration passes through [Validate], which applies the
// struct tags with github.com/go-playground/validator/v10 and checks the
// directory and glob syntax.
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return errors.NewConfigError(err)
//	}
package config
