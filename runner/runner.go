// Package runner drives the interactive date-edit loop.
package runner

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/redate/redate/config"
	"github.com/redate/redate/datefmt"
	"github.com/redate/redate/vcs"
)

type Runner struct {
	cfg      config.Config
	vcs      vcs.Interface
	prompter Prompter
}

func New(cfg config.Config, vcs vcs.Interface, prompter Prompter) *Runner {
	if prompter == nil {
		prompter = NewTermPrompter()
	}
	return &Runner{
		cfg:      cfg,
		vcs:      vcs,
		prompter: prompter,
	}
}

// Run loops until the user quits: pick a commit, edit its date, confirm,
// rewrite. Commits are re-read on every iteration because a rewrite
// changes the hashes of the edited commit and its descendants, so no
// commit pointer survives a write.
func (r *Runner) Run(ctx context.Context) error {
	for {
		again, err := r.editOne(ctx)
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}
	r.cfg.Printf("%s", color.GreenString("Thank you!"))
	return nil
}

func (r *Runner) editOne(ctx context.Context) (bool, error) {
	commits, err := r.vcs.ReadCommits(ctx)
	if err != nil {
		return false, err
	}
	if len(commits) == 0 {
		r.cfg.Printf("No commits found")
		return false, nil
	}
	r.cfg.Debugf("read %d commits", len(commits))

	commit, err := r.prompter.SelectCommit(commits)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return false, nil
		}
		return false, err
	}

	editable, err := datefmt.ToEditable(commit.Date)
	if err != nil {
		// degraded log entry, nothing sane to pre-fill
		r.cfg.Errorf("cannot edit %s: %v", commit.ShortHash(), err)
		return true, nil
	}

	edited, err := r.prompter.EditDate(commit.Date, editable)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return true, nil
		}
		return false, err
	}

	newDate, err := datefmt.ToCommitFormat(edited)
	if err != nil {
		var derr *datefmt.DateFormatError
		if errors.As(err, &derr) {
			// report and skip the rewrite; never hand git an unencoded date
			r.cfg.Errorf("invalid date: %v", derr)
			return true, nil
		}
		return false, err
	}

	r.cfg.Printf("%s -> %s", commit.Date, newDate)

	save, err := r.prompter.Confirm("Save changes?", false)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return false, nil
		}
		return false, err
	}
	if save {
		if err := r.vcs.RewriteDate(ctx, commit.Hash, newDate); err != nil {
			return false, err
		}
		r.cfg.Printf("%s", color.YellowString("New date saved"))
	}

	again, err := r.prompter.Confirm("Continue?", true)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return false, nil
		}
		return false, err
	}
	return again, nil
}
