package runner

import (
	"context"
	"io"
	"text/template"

	"github.com/redate/redate/model"
)

const defaultListTemplate = `{{ range $commit := .Commits }}{{ $commit.ShortHash }}  {{ $commit.Date }}  {{ $commit.Subject }}
{{ end }}`

type listData struct {
	Commits []*model.Commit
}

// List renders the commit log non-interactively, for pipes and scripts.
func (r *Runner) List(ctx context.Context, w io.Writer) error {
	commits, err := r.vcs.ReadCommits(ctx)
	if err != nil {
		return err
	}
	tmpl := defaultListTemplate
	if r.cfg.ListTemplate != "" {
		tmpl = r.cfg.ListTemplate
	}
	t, err := template.New("list").Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(w, listData{Commits: commits})
}
