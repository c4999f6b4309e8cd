package commands

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// phase is a step of one update invocation.
type phase string

const (
	phaseProbing              phase = "probing"
	phaseAwaitingConfirmation phase = "awaiting confirmation"
	phaseUpdating             phase = "updating"
	phaseRecording            phase = "recording"
	phaseDone                 phase = "done"
)

const confirmTitle = "Ok to continue?"

func enterPhase(scope string, p phase) {
	logger.Debugf("[%s] %s", scope, p)
}

// confirmUpdate asks the operator unless the run is forced.
func confirmUpdate(scope string, prompt repositories.PromptRepository, run entities.RunContext) error {
	if run.Force {
		return nil
	}
	enterPhase(scope, phaseAwaitingConfirmation)

	ok, err := prompt.Confirm(confirmTitle)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		return entities.ErrUpdateDeclined
	}
	return nil
}

// IsDeclined reports whether err stems from the operator declining a prompt.
func IsDeclined(err error) bool {
	return errors.Is(err, entities.ErrUpdateDeclined)
}
