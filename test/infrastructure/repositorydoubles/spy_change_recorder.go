//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// AfterUpdateCall records a single invocation of AfterUpdate.
type AfterUpdateCall struct {
	Name           string
	CurrentVersion string
	Run            entities.RunContext
}

// SpyChangeRecorder records AfterUpdate calls and reports NewVersion as the
// re-probed version.
type SpyChangeRecorder struct {
	NewVersion string
	Calls      []AfterUpdateCall
}

var _ repositories.ChangeRecorder = (*SpyChangeRecorder)(nil)

func (s *SpyChangeRecorder) AfterUpdate(
	_ context.Context,
	name, currentVersion string,
	run entities.RunContext,
) entities.UpdateOutcome {
	s.Calls = append(s.Calls, AfterUpdateCall{Name: name, CurrentVersion: currentVersion, Run: run})
	return entities.UpdateOutcome{Name: name, Old: currentVersion, New: s.NewVersion}
}
