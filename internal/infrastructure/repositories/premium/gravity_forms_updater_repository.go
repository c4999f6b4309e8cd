package premium

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

const (
	gravityFormsName       = "gravityforms"
	gravityFormsCLIName    = "gravityformscli"
	gravityFormsLicenseEnv = "GF_KEY"
)

// ErrGravityFormsCLIMissing is returned when the Gravity Forms CLI plugin is not installed.
var ErrGravityFormsCLIMissing = errors.New("gravity forms CLI is not installed")

// GravityFormsUpdaterRepository updates Gravity Forms and its add-ons with
// the `wp gf` command shipped by the gravityformscli plugin.
type GravityFormsUpdaterRepository struct {
	settings *entities.Settings
	commands repositories.CommandRepository
	licenses repositories.LicenseRepository
	registry repositories.RegistryRepository
}

var _ repositories.PremiumUpdaterRepository = (*GravityFormsUpdaterRepository)(nil)

// NewGravityFormsUpdaterRepository creates a new GravityFormsUpdaterRepository.
func NewGravityFormsUpdaterRepository(
	settings *entities.Settings,
	commands repositories.CommandRepository,
	licenses repositories.LicenseRepository,
	registry repositories.RegistryRepository,
) *GravityFormsUpdaterRepository {
	return &GravityFormsUpdaterRepository{
		settings: settings,
		commands: commands,
		licenses: licenses,
		registry: registry,
	}
}

func (it *GravityFormsUpdaterRepository) Name() string { return gravityFormsName }

// Matches claims gravityforms and every slug containing it, add-ons and the
// CLI plugin included.
func (it *GravityFormsUpdaterRepository) Matches(extension string) bool {
	return strings.Contains(strings.ToLower(extension), gravityFormsName)
}

// Update runs `gf update [slug] --key=<key>`.
func (it *GravityFormsUpdaterRepository) Update(
	ctx context.Context,
	candidate entities.UpdateCandidate,
	run entities.RunContext,
	recorder repositories.ChangeRecorder,
) (entities.UpdateOutcome, error) {
	if !it.cliInstalled(ctx) {
		return entities.UpdateOutcome{}, ErrGravityFormsCLIMissing
	}

	envVar := it.settings.LicenseEnv(gravityFormsName, gravityFormsLicenseEnv)
	key, ok := it.licenses.LicenseKey(envVar)
	if !ok {
		return entities.UpdateOutcome{}, fmt.Errorf(
			"%w: Gravity Forms (set %s)", entities.ErrMissingLicense, envVar,
		)
	}

	if _, err := it.commands.RunCommand(ctx, UpdateArgs(candidate.Name, key)...); err != nil {
		return entities.UpdateOutcome{}, err
	}

	return recorder.AfterUpdate(ctx, candidate.Name, candidate.CurrentVersion, run), nil
}

func (it *GravityFormsUpdaterRepository) cliInstalled(ctx context.Context) bool {
	extensions, err := it.registry.ListInstalledExtensions(ctx)
	if err != nil {
		return false
	}
	found := 0
	for _, ext := range extensions {
		if ext.Name == gravityFormsCLIName {
			found++
		}
	}
	return found == 1
}

// UpdateArgs builds the gf update arguments; the core plugin takes no slug.
func UpdateArgs(extension, key string) []string {
	if extension == gravityFormsName {
		return []string{"gf", "update", "--key=" + key}
	}
	return []string{"gf", "update", extension, "--key=" + key}
}
