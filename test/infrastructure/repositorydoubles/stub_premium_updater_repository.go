//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// StubPremiumUpdaterRepository claims UpdaterName and any extension
// containing Pattern, and hands every update to the recorder.
type StubPremiumUpdaterRepository struct {
	UpdaterName string
	Pattern     string
	UpdateErr   error
	Updated     []string
}

var _ repositories.PremiumUpdaterRepository = (*StubPremiumUpdaterRepository)(nil)

func (s *StubPremiumUpdaterRepository) Name() string { return s.UpdaterName }

func (s *StubPremiumUpdaterRepository) Matches(extension string) bool {
	return extension == s.UpdaterName || (s.Pattern != "" && strings.Contains(extension, s.Pattern))
}

func (s *StubPremiumUpdaterRepository) Update(
	ctx context.Context,
	candidate entities.UpdateCandidate,
	run entities.RunContext,
	recorder repositories.ChangeRecorder,
) (entities.UpdateOutcome, error) {
	s.Updated = append(s.Updated, candidate.Name)
	if s.UpdateErr != nil {
		return entities.UpdateOutcome{}, s.UpdateErr
	}
	return recorder.AfterUpdate(ctx, candidate.Name, candidate.CurrentVersion, run), nil
}
