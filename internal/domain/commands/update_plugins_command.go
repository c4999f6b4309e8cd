package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/wpupdate/internal/infrastructure/repositories"
)

const pluginsScope = "plugins"

// UpdatePlugins is the interface for the plugin update command.
type UpdatePlugins interface {
	Execute(ctx context.Context, run entities.RunContext) ([]entities.UpdateOutcome, error)
}

// UpdatePluginsCommand updates every plugin with an available update,
// free plugins first, then premium ones, one at a time.
type UpdatePluginsCommand struct {
	probe    *VersionProbe
	commands repositories.CommandRepository
	prompt   repositories.PromptRepository
	recorder *ChangeRecorder
	premium  *infraRepos.PremiumUpdaterRegistry
	report   *ReportRenderer
}

// NewUpdatePluginsCommand creates a new UpdatePluginsCommand.
func NewUpdatePluginsCommand(
	probe *VersionProbe,
	commands repositories.CommandRepository,
	prompt repositories.PromptRepository,
	recorder *ChangeRecorder,
	premium *infraRepos.PremiumUpdaterRegistry,
	report *ReportRenderer,
) *UpdatePluginsCommand {
	return &UpdatePluginsCommand{
		probe:    probe,
		commands: commands,
		prompt:   prompt,
		recorder: recorder,
		premium:  premium,
		report:   report,
	}
}

// Execute probes the installed plugins and applies their updates.
func (it *UpdatePluginsCommand) Execute(
	ctx context.Context,
	run entities.RunContext,
) ([]entities.UpdateOutcome, error) {
	enterPhase(pluginsScope, phaseProbing)
	return it.Apply(ctx, it.probe.ProbeExtensions(ctx), run)
}

// Apply updates the plugins flagged in snapshot and renders the report.
// It returns entities.ErrUpdateDeclined when the operator declines.
func (it *UpdatePluginsCommand) Apply(
	ctx context.Context,
	snapshot entities.VersionSnapshot,
	run entities.RunContext,
) ([]entities.UpdateOutcome, error) {
	candidates := snapshot.Candidates()
	if len(candidates) == 0 {
		logger.Info("No plugins to update at this time")
		enterPhase(pluginsScope, phaseDone)
		return nil, nil
	}

	logger.Infof("%d plugins to update", len(candidates))
	if err := confirmUpdate(pluginsScope, it.prompt, run); err != nil {
		return nil, err
	}

	free, premium := entities.RouteExtensions(candidates, it.premium.Matcher())
	logger.Debugf("[%s] %d free, %d premium", pluginsScope, len(free), len(premium))

	enterPhase(pluginsScope, phaseUpdating)
	outcomes := make([]entities.UpdateOutcome, 0, len(candidates))
	outcomes = append(outcomes, it.updateFree(ctx, free, run)...)
	outcomes = append(outcomes, it.updatePremium(ctx, premium, run)...)

	it.report.Render(ctx, outcomes)
	enterPhase(pluginsScope, phaseDone)
	return outcomes, nil
}

func (it *UpdatePluginsCommand) updateFree(
	ctx context.Context,
	candidates []entities.UpdateCandidate,
	run entities.RunContext,
) []entities.UpdateOutcome {
	outcomes := make([]entities.UpdateOutcome, 0, len(candidates))
	for _, candidate := range candidates {
		logger.Debugf(
			"[%s] %s %s -> %s (%s)",
			pluginsScope, candidate.Name, candidate.CurrentVersion, candidate.NewVersion, candidate.Tag(),
		)
		if _, err := it.commands.RunCommand(ctx, "plugin", "update", candidate.Name); err != nil {
			logger.Errorf("Failed to update %s: %v", candidate.Name, err)
			continue
		}
		outcomes = append(outcomes, it.recorder.AfterUpdate(ctx, candidate.Name, candidate.CurrentVersion, run))
	}
	return outcomes
}

func (it *UpdatePluginsCommand) updatePremium(
	ctx context.Context,
	candidates []entities.UpdateCandidate,
	run entities.RunContext,
) []entities.UpdateOutcome {
	outcomes := make([]entities.UpdateOutcome, 0, len(candidates))
	for _, candidate := range candidates {
		logger.Debugf("[%s] %s (%s)", pluginsScope, candidate.Name, candidate.Tag())
		handler := it.premium.Get(candidate.Handler)
		if handler == nil {
			logger.Errorf("No premium updater registered for %s", candidate.Name)
			continue
		}

		outcome, err := handler.Update(ctx, candidate, run, it.recorder)
		if err != nil {
			logger.Errorf("Failed to update %s: %v", candidate.Name, err)
			continue
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
