package repositories

import (
	"context"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// CoreVersionRepository reads the installed core version details from disk.
type CoreVersionRepository interface {
	ReadCoreDetails(ctx context.Context) (entities.CoreDetails, error)
}
