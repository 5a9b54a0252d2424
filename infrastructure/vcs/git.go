// Package vcs commits rewritten manifests in the enclosing Git repository.
package vcs

import (
	"fmt"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Committer stages and commits files using the repository that encloses the
// given directory.
type Committer struct{}

// NewCommitter creates a Git committer.
func NewCommitter() *Committer {
	return &Committer{}
}

// CommitFiles stages the given paths and creates a single commit with the
// given message. Paths may be absolute or relative to the working directory;
// they are resolved against the repository worktree root.
func (c *Committer) CommitFiles(dir string, paths []string, message string) error {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	for _, p := range paths {
		abs, absErr := filepath.Abs(p)
		if absErr != nil {
			return fmt.Errorf("failed to resolve path %q: %w", p, absErr)
		}
		rel, relErr := filepath.Rel(root, abs)
		if relErr != nil {
			return fmt.Errorf("file %q is outside the repository %q: %w", p, root, relErr)
		}
		if _, addErr := wt.Add(filepath.ToSlash(rel)); addErr != nil {
			return fmt.Errorf("failed to stage %q: %w", rel, addErr)
		}
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "watchdog",
			Email: "watchdog@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}
