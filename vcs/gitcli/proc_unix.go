//go:build unix

package gitcli

import (
	"os/exec"
	"syscall"
	"time"
)

// setupProcessGroup runs git in its own process group and tears the
// whole group down when the context expires, so the shell children
// spawned by filter-branch don't outlive a timeout.
func setupProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = 5 * time.Second
}
