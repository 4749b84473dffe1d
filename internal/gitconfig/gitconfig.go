// Package gitconfig reads author defaults from the user's git configuration.
package gitconfig

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Keys read for author defaults.
const (
	KeyUserName  = "user.name"
	KeyUserEmail = "user.email"
)

// Reader looks up git configuration values.
type Reader struct {
	// Dir is the working directory git runs in; empty means the current one.
	Dir string
}

// Get returns the value for key, or "" if git is missing or the key is unset.
func (r Reader) Get(ctx context.Context, key string) string {
	v, err := r.lookup(ctx, key)
	if err != nil {
		return ""
	}
	return v
}

func (r Reader) lookup(ctx context.Context, key string) (string, error) {
	if err := ensureGit(); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "git", "config", "--get", key)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		// Exit status 1 means the key is not set.
		return "", fmt.Errorf("git config --get %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
