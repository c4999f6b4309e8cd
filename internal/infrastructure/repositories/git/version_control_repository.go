package git

import (
	"context"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// VersionControlRepository commits the WordPress working tree with go-git.
type VersionControlRepository struct {
	settings *entities.Settings
}

var _ repositories.VersionControlRepository = (*VersionControlRepository)(nil)

// NewVersionControlRepository creates a new VersionControlRepository.
func NewVersionControlRepository(settings *entities.Settings) *VersionControlRepository {
	return &VersionControlRepository{settings: settings}
}

// Commit stages every modified or deleted tracked file and commits it, the
// equivalent of `git commit -am message`. Untracked files are left alone.
func (it *VersionControlRepository) Commit(_ context.Context, message string) error {
	repo, err := gogit.PlainOpenWithOptions(it.settings.Path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("failed to open git repository at %q: %w", it.settings.Path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	//nolint:exhaustruct // Author falls back to the git config when unset
	opts := &gogit.CommitOptions{All: true}
	if it.settings.Git.AuthorName != "" && it.settings.Git.AuthorEmail != "" {
		opts.Author = &object.Signature{
			Name:  it.settings.Git.AuthorName,
			Email: it.settings.Git.AuthorEmail,
			When:  time.Now(),
		}
	}

	hash, err := worktree.Commit(message, opts)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logger.Debugf("[git] created commit %s", hash.String())
	return nil
}
