//go:build !unix

package gitcli

import "os/exec"

// setupProcessGroup is a no-op outside unix; CommandContext's default
// kill applies.
func setupProcessGroup(cmd *exec.Cmd) {}
