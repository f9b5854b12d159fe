package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/redate/redate/config"
	"github.com/redate/redate/runner"
	"github.com/redate/redate/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version = "dev"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	var list bool
	var printConfig bool
	flags := pflag.NewFlagSet("redate", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVarP(&cfg.RepoPath, "repo", "r", cfg.RepoPath, "`path` to the git repository")
	flags.Var(&cfg.LogTimeout, "timeout", "bound for reading the log")
	flags.Var(&cfg.RewriteTimeout, "rewrite-timeout", "bound for history rewriting")
	flags.BoolVarP(&cfg.Dryrun, "dry-run", "n", false, "print rewrite commands instead of running them")
	flags.BoolVarP(&list, "list", "l", false, "print the commit log and exit")
	flags.StringVar(&cfg.ListTemplate, "list-template", "", "go text/template `format` for --list")
	flags.BoolVarP(&cfg.Debug, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "print configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	redateYAML, err := readRedateYAML(cfgFile)
	if err != nil {
		return err
	}
	if redateYAML != nil {
		if err := mergo.Merge(&cfg, redateYAML, mergo.WithOverride); err != nil {
			return err
		}
	}
	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	ctx := context.Background()
	git := gitcli.New(cfg, cfg.RepoPath)
	if err := git.IsRepo(ctx); err != nil {
		return err
	}
	rnr := runner.New(cfg, git, nil)

	if list {
		return rnr.List(ctx, cfg.Term.Stdout)
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New("stdin is not a terminal; use --list for non-interactive output")
	}
	return rnr.Run(ctx)
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [flags]

Interactively rewrite the dates of commits in a local git repository.

FLAGS
%s
EXAMPLES

# browse and edit commit dates in the current repository
$ redate

# same, for another repository
$ redate -r ~/src/myproject

# print the commit log without prompting
$ redate --list

# show what would run, without rewriting anything
$ redate --dry-run
`, os.Args[0], flags.FlagUsages())
}

func readRedateYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "redate.yaml")
		b, err := os.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}
