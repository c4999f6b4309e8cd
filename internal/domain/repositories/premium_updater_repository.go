package repositories

import (
	"context"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// ChangeRecorder is the shared post-update step every updater hands off to.
type ChangeRecorder interface {
	// AfterUpdate re-probes the installed version, logs, commits when the
	// version moved and returns the outcome.
	AfterUpdate(ctx context.Context, name, currentVersion string, run entities.RunContext) entities.UpdateOutcome
}

// PremiumUpdaterRepository updates one license-gated vendor's extensions.
// Each implementation owns its license lookup and install command; result
// handling is delegated to the ChangeRecorder.
type PremiumUpdaterRepository interface {
	// Name returns the handler key (e.g. "advanced-custom-fields-pro").
	Name() string

	// Matches reports whether this handler owns the given extension.
	Matches(extension string) bool

	// Update installs the latest licensed release of candidate.
	Update(
		ctx context.Context,
		candidate entities.UpdateCandidate,
		run entities.RunContext,
		recorder ChangeRecorder,
	) (entities.UpdateOutcome, error)
}
