package vcs

import (
	"context"

	"github.com/redate/redate/model"
)

type RewriteCall struct {
	Hash string
	Date string
}

type Mock struct {
	commits    []*model.Commit
	readErr    error
	rewriteErr error
	Rewrites   []RewriteCall
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

func (m *Mock) SetReadError(err error) *Mock {
	m.readErr = err
	return m
}

func (m *Mock) SetRewriteError(err error) *Mock {
	m.rewriteErr = err
	return m
}

func (m *Mock) IsRepo(ctx context.Context) error { return nil }

func (m *Mock) ReadCommits(ctx context.Context) ([]*model.Commit, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.commits, nil
}

func (m *Mock) RewriteDate(ctx context.Context, hash, date string) error {
	if m.rewriteErr != nil {
		return m.rewriteErr
	}
	m.Rewrites = append(m.Rewrites, RewriteCall{Hash: hash, Date: date})
	return nil
}
