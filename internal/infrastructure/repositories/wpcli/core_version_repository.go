package wpcli

import (
	"context"
	"fmt"
	"os"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// CoreVersionRepository reads wp-includes/version.php of the configured installation.
type CoreVersionRepository struct {
	settings *entities.Settings
}

var _ repositories.CoreVersionRepository = (*CoreVersionRepository)(nil)

// NewCoreVersionRepository creates a new CoreVersionRepository.
func NewCoreVersionRepository(settings *entities.Settings) *CoreVersionRepository {
	return &CoreVersionRepository{settings: settings}
}

// ReadCoreDetails parses the version file on every call, so a re-probe after
// an update sees the new version.
func (it *CoreVersionRepository) ReadCoreDetails(_ context.Context) (entities.CoreDetails, error) {
	path := it.settings.VersionFilePath()
	content, err := os.ReadFile(path)
	if err != nil {
		return entities.CoreDetails{}, fmt.Errorf(
			"this does not seem to be a WordPress installation (%w); pass --path=path/to/wordpress", err,
		)
	}

	details, parseErr := entities.ParseCoreDetails(string(content))
	if parseErr != nil {
		return entities.CoreDetails{}, fmt.Errorf("%s: %w", path, parseErr)
	}
	return details, nil
}
