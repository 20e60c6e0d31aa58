package main

import (
	"context"
	"os/exec"
	"time"
)

// runCmdTimeout executes a command with a timeout and returns its stdout.
func runCmdTimeout(timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	return string(out), err
}

// findExecutable returns the full path of an executable, or empty string.
func findExecutable(name string) string {
	p, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return p
}
