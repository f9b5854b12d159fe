// Package vcs abstracts the version control boundary. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/redate/redate/model"
)

type NotARepoError struct {
	Dir string
}

func (e NotARepoError) Error() string {
	return fmt.Sprintf("vcs: %q is not a git repository", e.Dir)
}

type Interface interface {
	// IsRepo reports whether the working directory is a git repository.
	IsRepo(ctx context.Context) error
	// ReadCommits reads the full commit log, most recent first. An empty
	// history is not an error.
	ReadCommits(ctx context.Context) ([]*model.Commit, error)
	// RewriteDate rewrites the author and committer date of the commit
	// with the given hash. The date must already be in
	// datefmt.CommitLayout; hashes of the commit and its descendants
	// change as a result.
	RewriteDate(ctx context.Context, hash, date string) error
}
