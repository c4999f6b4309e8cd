package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// ChangeRecorder compares before/after versions and turns every observed
// change into one commit.
type ChangeRecorder struct {
	probe *VersionProbe
	vcs   repositories.VersionControlRepository
}

var _ repositories.ChangeRecorder = (*ChangeRecorder)(nil)

// NewChangeRecorder creates a new ChangeRecorder.
func NewChangeRecorder(probe *VersionProbe, vcs repositories.VersionControlRepository) *ChangeRecorder {
	return &ChangeRecorder{probe: probe, vcs: vcs}
}

// AfterUpdate re-probes name and records the transition from currentVersion.
// An unchanged version is a warning, not an error, and is never committed.
func (it *ChangeRecorder) AfterUpdate(
	ctx context.Context,
	name, currentVersion string,
	run entities.RunContext,
) entities.UpdateOutcome {
	enterPhase(name, phaseRecording)

	newVersion, _ := it.probe.InstalledVersion(ctx, name)
	outcome := entities.UpdateOutcome{Name: name, Old: currentVersion, New: newVersion}

	if !outcome.Changed() {
		logger.Warnf(
			"%s not updated. This is probably due to restricted access to its files. "+
				"At this time you will have to update it manually.",
			name,
		)
		return outcome
	}

	logger.Infof("%s %s (%s -> %s).", name, outcome.Kind(), currentVersion, newVersion)
	it.Commit(ctx, name, currentVersion, newVersion, run)
	return outcome
}

// Commit commits every pending change of the working tree for one component.
// A failed commit is logged and otherwise ignored: the update itself already
// happened and nothing downstream depends on the commit.
func (it *ChangeRecorder) Commit(ctx context.Context, name, oldVersion, newVersion string, run entities.RunContext) {
	message := entities.CommitMessage(name, oldVersion, newVersion, run)
	if err := it.vcs.Commit(ctx, message); err != nil {
		logger.Warnf("Failed to commit %q: %v", message, err)
		return
	}
	logger.Infof("%s", message)
}
