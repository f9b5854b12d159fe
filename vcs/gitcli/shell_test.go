package gitcli

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/redate/redate/config"
)

func TestArgsString(t *testing.T) {
	args := []string{"filter-branch", "-f", "--env-filter", "if [ x ]; then y; fi"}
	expect := `filter-branch -f --env-filter "if [ x ]; then y; fi"`
	if got := argsString(args); got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestEnvFilter(t *testing.T) {
	got := envFilter("abc123", "Tue Oct 8 11:59:23 2024 +0300")
	expect := `if [ $GIT_COMMIT = abc123 ]; then export GIT_COMMITTER_DATE="Tue Oct 8 11:59:23 2024 +0300"; export GIT_AUTHOR_DATE="Tue Oct 8 11:59:23 2024 +0300"; fi`
	if got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

// A command running past the bound is killed and surfaces as a
// TimeoutError, not a generic exec failure.
func TestCallTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows not supported (no sleep command)")
	}
	defer func() { CommandContext = exec.CommandContext }()
	CommandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sleep", "10")
	}

	g := New(config.New(nil), "")
	timeout := 50 * time.Millisecond
	args := []string{"log", "--pretty"}
	start := time.Now()
	_, err := g.call(context.Background(), timeout, nil, args)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var terr *TimeoutError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TimeoutError, got %T: %v", err, err)
	}
	if terr.Timeout != timeout {
		t.Fatal("expected 50ms bound in error, got", terr.Timeout)
	}
	if len(terr.Args) == 0 || terr.Args[0] != "log" {
		t.Fatalf("expected original args in error, got %v", terr.Args)
	}
	if elapsed := time.Since(start); elapsed > 8*time.Second {
		t.Fatal("command was not killed at the bound, took", elapsed)
	}
}
