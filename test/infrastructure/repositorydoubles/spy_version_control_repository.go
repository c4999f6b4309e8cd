//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// SpyVersionControlRepository records commit messages.
type SpyVersionControlRepository struct {
	Messages  []string
	CommitErr error
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

func (s *SpyVersionControlRepository) Commit(_ context.Context, message string) error {
	s.Messages = append(s.Messages, message)
	return s.CommitErr
}
