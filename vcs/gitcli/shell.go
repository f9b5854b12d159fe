package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

var CommandContext = exec.CommandContext

// ExitError is returned when git exits non-zero.
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exec: git %q exited %d: %s", e.Args, e.Code, strings.TrimSpace(e.Stderr))
}

// TimeoutError is returned when git does not finish within the bound.
type TimeoutError struct {
	Args    []string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("exec: git %q killed after %s", e.Args, e.Timeout)
}

func (g *Git) call(ctx context.Context, timeout time.Duration, env []string, args []string) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cmd := CommandContext(ctx, "git", args...)
	cmd.Dir = g.wd
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	setupProcessGroup(cmd)

	eb := &bytes.Buffer{}
	ob := &bytes.Buffer{}
	cmd.Stderr = eb
	cmd.Stdout = ob

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Args: args, Timeout: timeout}
		}
		var xerr *exec.ExitError
		if errors.As(err, &xerr) {
			return nil, &ExitError{Args: args, Code: xerr.ExitCode(), Stderr: eb.String()}
		}
		return nil, fmt.Errorf("exec: git %q failed: %s (%w)", args, eb.String(), err)
	}
	return ob.Bytes(), nil
}

// argsString returns a string suitable for copy/paste into the terminal.
func argsString(args []string) string {
	b := &bytes.Buffer{}

	for i, arg := range args {
		if strings.Contains(arg, " ") {
			b.WriteString(`"`)
			b.WriteString(arg)
			b.WriteString(`"`)
		} else {
			b.WriteString(arg)
		}

		if i < len(args)-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}
