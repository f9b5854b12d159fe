// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redate/redate/config"
	"github.com/redate/redate/gitlog"
	"github.com/redate/redate/model"
	"github.com/redate/redate/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) dir() string {
	if g.wd == "" {
		return "."
	}
	return g.wd
}

func (g *Git) IsRepo(ctx context.Context) error {
	if _, err := g.call(ctx, time.Duration(g.cfg.LogTimeout), nil, []string{"rev-parse", "--git-dir"}); err != nil {
		g.cfg.Debugf("rev-parse: %v", err)
		return vcs.NotARepoError{Dir: g.dir()}
	}
	return nil
}

func (g *Git) ReadCommits(ctx context.Context) ([]*model.Commit, error) {
	args := []string{"log", "--pretty"}
	b, err := g.call(ctx, time.Duration(g.cfg.LogTimeout), nil, args)
	if err != nil {
		// a repository with no commits yet reads as an empty log
		var xerr *ExitError
		if errors.As(err, &xerr) && strings.Contains(xerr.Stderr, "does not have any commits") {
			return nil, nil
		}
		return nil, err
	}
	return gitlog.Parse(strings.Split(string(b), "\n")), nil
}

// envFilter is substituted into git filter-branch. The date is in
// datefmt.CommitLayout, which contains no shell metacharacters.
func envFilter(hash, date string) string {
	return fmt.Sprintf(`if [ $GIT_COMMIT = %s ]; then export GIT_COMMITTER_DATE="%s"; export GIT_AUTHOR_DATE="%s"; fi`,
		hash, date, date)
}

func (g *Git) RewriteDate(ctx context.Context, hash, date string) error {
	args := []string{"filter-branch", "-f", "--env-filter", envFilter(hash, date), "HEAD"}
	if g.cfg.Dryrun {
		g.cfg.Printf("+ git %s (dryrun)", argsString(args))
		return nil
	}
	env := []string{"FILTER_BRANCH_SQUELCH_WARNING=1"}
	_, err := g.call(ctx, time.Duration(g.cfg.RewriteTimeout), env, args)
	return err
}
