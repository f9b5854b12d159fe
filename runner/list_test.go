package runner

import (
	"bytes"
	"context"
	"testing"

	"github.com/redate/redate/config"
	"github.com/redate/redate/vcs"
)

func TestList(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := config.NewWithTerminalIO(nil, &tio)
	m := vcs.NewMock().SetCommits(testCommits...)
	rnr := New(cfg, m, &scriptedPrompter{})

	b := &bytes.Buffer{}
	if err := rnr.List(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	expect := `abc123  Tue Oct 8 11:59:23 2024 +0300  Fix bug
def456  Mon Oct 7 10:00:00 2024 +0300  Add feature
`
	if b.String() != expect {
		t.Fatalf("expected:\n%q\ngot:\n%q", expect, b.String())
	}
}

func TestListTemplate(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := config.NewWithTerminalIO(&config.Config{
		ListTemplate: `{{ range .Commits }}{{ .Hash }} {{ .Author }}
{{ end }}`,
	}, &tio)
	m := vcs.NewMock().SetCommits(testCommits...)
	rnr := New(cfg, m, &scriptedPrompter{})

	b := &bytes.Buffer{}
	if err := rnr.List(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	expect := `abc123 Jane Doe
def456 John Roe
`
	if b.String() != expect {
		t.Fatalf("expected:\n%q\ngot:\n%q", expect, b.String())
	}
}

func TestListEmpty(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := config.NewWithTerminalIO(nil, &tio)
	rnr := New(cfg, vcs.NewMock(), &scriptedPrompter{})

	b := &bytes.Buffer{}
	if err := rnr.List(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected no output, got %q", b.String())
	}
}
