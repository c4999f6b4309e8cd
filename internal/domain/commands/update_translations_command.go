package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

const (
	translationsOld = "0"
	translationsNew = "1"
)

// UpdateTranslations is the interface for the translations pass.
type UpdateTranslations interface {
	Execute(ctx context.Context, run entities.RunContext) ([]entities.UpdateOutcome, error)
}

// UpdateTranslationsCommand runs the core language update and commits the
// result. Translations carry no version numbers, so the commit records 0 -> 1.
type UpdateTranslationsCommand struct {
	commands repositories.CommandRepository
	recorder *ChangeRecorder
}

// NewUpdateTranslationsCommand creates a new UpdateTranslationsCommand.
func NewUpdateTranslationsCommand(
	commands repositories.CommandRepository,
	recorder *ChangeRecorder,
) *UpdateTranslationsCommand {
	return &UpdateTranslationsCommand{commands: commands, recorder: recorder}
}

// Execute runs `language core update` and commits.
func (it *UpdateTranslationsCommand) Execute(
	ctx context.Context,
	run entities.RunContext,
) ([]entities.UpdateOutcome, error) {
	if _, err := it.commands.RunCommand(ctx, "language", "core", "update"); err != nil {
		logger.Errorf("Failed to update translations: %v", err)
		return nil, nil
	}

	it.recorder.Commit(ctx, entities.TranslationsComponentName, translationsOld, translationsNew, run)
	return []entities.UpdateOutcome{{
		Name: entities.TranslationsComponentName,
		Old:  translationsOld,
		New:  translationsNew,
	}}, nil
}
