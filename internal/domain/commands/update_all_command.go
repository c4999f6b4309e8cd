package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// UpdateAll is the interface for the combined update command.
type UpdateAll interface {
	Execute(ctx context.Context, run entities.RunContext) ([]entities.UpdateOutcome, error)
}

// UpdateAllCommand updates the core first, then the plugins, then
// (optionally) the translations, strictly in that order.
type UpdateAllCommand struct {
	probe        *VersionProbe
	core         *UpdateCoreCommand
	plugins      *UpdatePluginsCommand
	translations *UpdateTranslationsCommand
}

// NewUpdateAllCommand creates a new UpdateAllCommand.
func NewUpdateAllCommand(
	probe *VersionProbe,
	core *UpdateCoreCommand,
	plugins *UpdatePluginsCommand,
	translations *UpdateTranslationsCommand,
) *UpdateAllCommand {
	return &UpdateAllCommand{
		probe:        probe,
		core:         core,
		plugins:      plugins,
		translations: translations,
	}
}

// Execute takes one snapshot and runs every phase against it. Declining a
// prompt stops the run before the declined phase mutates anything.
func (it *UpdateAllCommand) Execute(
	ctx context.Context,
	run entities.RunContext,
) ([]entities.UpdateOutcome, error) {
	enterPhase("all", phaseProbing)
	snapshot := it.probe.Snapshot(ctx)
	logger.Infof("%d updates pending", snapshot.PendingUpdates())

	var outcomes []entities.UpdateOutcome

	coreOutcomes, err := it.core.Apply(ctx, snapshot, run)
	if err != nil {
		return outcomes, err
	}
	outcomes = append(outcomes, coreOutcomes...)

	pluginOutcomes, err := it.plugins.Apply(ctx, snapshot, run)
	if err != nil {
		return outcomes, err
	}
	outcomes = append(outcomes, pluginOutcomes...)

	if run.Translations {
		translationOutcomes, translationsErr := it.translations.Execute(ctx, run)
		if translationsErr != nil {
			return outcomes, translationsErr
		}
		outcomes = append(outcomes, translationOutcomes...)
	}

	enterPhase("all", phaseDone)
	return outcomes, nil
}
