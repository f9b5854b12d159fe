package config

import (
	"fmt"

	"github.com/imdario/mergo"
)

type Config struct {
	RepoPath       string        `json:"repo_path,omitempty"`
	LogTimeout     Duration      `json:"log_timeout,omitempty"`
	RewriteTimeout Duration      `json:"rewrite_timeout,omitempty"`
	ListTemplate   string        `json:"list_template,omitempty"`
	Dryrun         bool          `json:"dryrun,omitempty"`
	Debug          bool          `json:"debug,omitempty"`
	Quiet          bool          `json:"quiet,omitempty"`
	Term           TerminalIO    `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func (c Config) Validate() error {
	if c.LogTimeout <= 0 {
		return fmt.Errorf("config: log_timeout must be positive, got %s", c.LogTimeout)
	}
	if c.RewriteTimeout <= 0 {
		return fmt.Errorf("config: rewrite_timeout must be positive, got %s", c.RewriteTimeout)
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Debug {
		return
	}
	c.Printf(msg, args...)
}
