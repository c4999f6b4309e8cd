package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/wpupdate/internal/domain/repositories"
	envRepo "github.com/rios0rios0/wpupdate/internal/infrastructure/repositories/environment"
	gitRepo "github.com/rios0rios0/wpupdate/internal/infrastructure/repositories/git"
	premiumRepo "github.com/rios0rios0/wpupdate/internal/infrastructure/repositories/premium"
	termRepo "github.com/rios0rios0/wpupdate/internal/infrastructure/repositories/terminal"
	wpcliRepo "github.com/rios0rios0/wpupdate/internal/infrastructure/repositories/wpcli"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Bind every domain repository to its implementation
	bindings := []interface{}{
		func(settings *entities.Settings, licenses domainRepos.LicenseRepository) domainRepos.CommandRepository {
			return wpcliRepo.NewCommandRepository(settings, licenses)
		},
		func(commands domainRepos.CommandRepository) domainRepos.RegistryRepository {
			return wpcliRepo.NewRegistryRepository(commands)
		},
		func(settings *entities.Settings) domainRepos.CoreVersionRepository {
			return wpcliRepo.NewCoreVersionRepository(settings)
		},
		func(settings *entities.Settings) domainRepos.VersionControlRepository {
			return gitRepo.NewVersionControlRepository(settings)
		},
		func() domainRepos.PromptRepository {
			return termRepo.NewPromptRepository()
		},
		func() domainRepos.ReportWriter {
			return termRepo.NewReportWriter()
		},
		func() domainRepos.LicenseRepository {
			return envRepo.NewLicenseRepository()
		},
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	// Register premium updater registry with all vendor implementations
	if err := container.Provide(func(
		settings *entities.Settings,
		commands domainRepos.CommandRepository,
		licenses domainRepos.LicenseRepository,
		registry domainRepos.RegistryRepository,
	) *PremiumUpdaterRegistry {
		reg := NewPremiumUpdaterRegistry()
		reg.Register(premiumRepo.NewACFProUpdaterRepository(settings, commands, licenses))
		reg.Register(premiumRepo.NewGravityFormsUpdaterRepository(settings, commands, licenses, registry))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
