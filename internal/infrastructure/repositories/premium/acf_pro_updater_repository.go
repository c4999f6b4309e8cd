package premium

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

const (
	acfProName        = "advanced-custom-fields-pro"
	acfProLicenseEnv  = "ACFPRO_KEY"
	acfProDownloadURL = "https://connect.advancedcustomfields.com/index.php?p=pro&a=download&k="
)

// ACFProUpdaterRepository reinstalls Advanced Custom Fields Pro from the
// vendor's licensed download URL.
type ACFProUpdaterRepository struct {
	settings *entities.Settings
	commands repositories.CommandRepository
	licenses repositories.LicenseRepository
}

var _ repositories.PremiumUpdaterRepository = (*ACFProUpdaterRepository)(nil)

// NewACFProUpdaterRepository creates a new ACFProUpdaterRepository.
func NewACFProUpdaterRepository(
	settings *entities.Settings,
	commands repositories.CommandRepository,
	licenses repositories.LicenseRepository,
) *ACFProUpdaterRepository {
	return &ACFProUpdaterRepository{settings: settings, commands: commands, licenses: licenses}
}

func (it *ACFProUpdaterRepository) Name() string { return acfProName }

func (it *ACFProUpdaterRepository) Matches(extension string) bool {
	return extension == acfProName
}

// Update installs the latest ACF Pro release over the current one.
func (it *ACFProUpdaterRepository) Update(
	ctx context.Context,
	candidate entities.UpdateCandidate,
	run entities.RunContext,
	recorder repositories.ChangeRecorder,
) (entities.UpdateOutcome, error) {
	envVar := it.settings.LicenseEnv(acfProName, acfProLicenseEnv)
	key, ok := it.licenses.LicenseKey(envVar)
	if !ok {
		return entities.UpdateOutcome{}, fmt.Errorf(
			"%w: Advanced Custom Fields Pro (set %s)", entities.ErrMissingLicense, envVar,
		)
	}

	if _, err := it.commands.RunCommand(ctx, "plugin", "install", DownloadURL(key), "--force"); err != nil {
		return entities.UpdateOutcome{}, err
	}

	return recorder.AfterUpdate(ctx, candidate.Name, candidate.CurrentVersion, run), nil
}

// DownloadURL builds the licensed ACF Pro download URL.
func DownloadURL(key string) string {
	return acfProDownloadURL + url.QueryEscape(key)
}
