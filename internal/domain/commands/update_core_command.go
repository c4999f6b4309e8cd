package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

const coreScope = "wordpress"

// UpdateCore is the interface for the core update command.
type UpdateCore interface {
	Execute(ctx context.Context, run entities.RunContext) ([]entities.UpdateOutcome, error)
}

// UpdateCoreCommand updates WordPress core to the most urgent offered release.
type UpdateCoreCommand struct {
	probe    *VersionProbe
	commands repositories.CommandRepository
	prompt   repositories.PromptRepository
	recorder *ChangeRecorder
}

// NewUpdateCoreCommand creates a new UpdateCoreCommand.
func NewUpdateCoreCommand(
	probe *VersionProbe,
	commands repositories.CommandRepository,
	prompt repositories.PromptRepository,
	recorder *ChangeRecorder,
) *UpdateCoreCommand {
	return &UpdateCoreCommand{
		probe:    probe,
		commands: commands,
		prompt:   prompt,
		recorder: recorder,
	}
}

// Execute probes the core and applies the update.
func (it *UpdateCoreCommand) Execute(
	ctx context.Context,
	run entities.RunContext,
) ([]entities.UpdateOutcome, error) {
	enterPhase(coreScope, phaseProbing)

	snapshot, err := it.probe.ProbeCore(ctx)
	if err != nil {
		logger.Errorf("Could not determine the installed WordPress version: %v", err)
		return nil, nil
	}
	return it.Apply(ctx, snapshot, run)
}

// Apply updates the core described by snapshot. It returns
// entities.ErrUpdateDeclined when the operator declines.
func (it *UpdateCoreCommand) Apply(
	ctx context.Context,
	snapshot entities.VersionSnapshot,
	run entities.RunContext,
) ([]entities.UpdateOutcome, error) {
	nextVersion, ok := entities.ClassifyCoreUpdate(snapshot.CoreVersion, snapshot.CoreReleases)
	if !ok {
		logger.Info("No new update for WordPress at this time")
		enterPhase(coreScope, phaseDone)
		return nil, nil
	}

	candidate := entities.NewCoreCandidate(snapshot.CoreVersion, nextVersion)
	logger.Infof(
		"Update available, WordPress will be updated from %s to %s",
		candidate.CurrentVersion, candidate.NewVersion,
	)
	if err := confirmUpdate(coreScope, it.prompt, run); err != nil {
		return nil, err
	}

	enterPhase(coreScope, phaseUpdating)
	logger.Debugf("[%s] %s (%s)", coreScope, candidate.Name, candidate.Tag())
	if _, err := it.commands.RunCommand(ctx, "core", "update", "--version="+candidate.NewVersion); err != nil {
		logger.Errorf("Failed to update WordPress to %s: %v", candidate.NewVersion, err)
		return nil, nil
	}

	outcome := it.recorder.AfterUpdate(ctx, candidate.Name, candidate.CurrentVersion, run)
	enterPhase(coreScope, phaseDone)
	return []entities.UpdateOutcome{outcome}, nil
}
