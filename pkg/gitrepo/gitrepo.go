// Package gitrepo locates the git repository around a path and answers
// ignore-status questions about paths in its working tree.
package gitrepo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
)

var (
	// ErrRepositoryNotFound is returned when no repository contains the path.
	ErrRepositoryNotFound = errors.New("could not find repository")
	// ErrNoWorktree is returned for bare repositories.
	ErrNoWorktree = errors.New("could not find repository working directory")
)

// Repository is an opened repository with a working tree.
type Repository struct {
	repo *git.Repository
	root string
	fs   billy.Filesystem
}

// Discover opens the repository containing path, searching parent
// directories for ".git". An empty path means the current directory.
// Symbolic links in path are resolved, so Root is always a real directory.
func Discover(path string) (*Repository, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = wd
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path of %s: %w", path, err)
	}
	// The working tree root is walked without following links, so it must
	// not itself be one.
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w at or above %s", ErrRepositoryNotFound, absPath)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", absPath, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, fmt.Errorf("%w: %s is bare", ErrNoWorktree, absPath)
		}
		return nil, fmt.Errorf("failed to open working tree at %s: %w", absPath, err)
	}

	return &Repository{repo: repo, root: wt.Filesystem.Root(), fs: wt.Filesystem}, nil
}

// Root returns the absolute path of the working tree.
func (r *Repository) Root() string {
	return r.root
}
