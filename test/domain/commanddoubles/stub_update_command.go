//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/wpupdate/internal/domain/commands"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// StubUpdateCommand is a stub implementation of every update command
// interface. It records the run it was given and returns the configured
// outcomes and error.
type StubUpdateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Outcomes         []entities.UpdateOutcome
	LastRun          entities.RunContext
}

var (
	_ commands.UpdateCore    = (*StubUpdateCommand)(nil)
	_ commands.UpdatePlugins = (*StubUpdateCommand)(nil)
	_ commands.UpdateAll     = (*StubUpdateCommand)(nil)
)

func (s *StubUpdateCommand) Execute(
	_ context.Context,
	run entities.RunContext,
) ([]entities.UpdateOutcome, error) {
	s.ExecuteCallCount++
	s.LastRun = run
	return s.Outcomes, s.ExecuteErr
}
