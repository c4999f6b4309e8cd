package environment

import (
	"os"
	"sync"

	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// LicenseRepository reads license keys from the process environment and
// caches them for the rest of the run.
type LicenseRepository struct {
	mu    sync.Mutex
	cache map[string]string
}

var _ repositories.LicenseRepository = (*LicenseRepository)(nil)

// NewLicenseRepository creates a new LicenseRepository.
func NewLicenseRepository() *LicenseRepository {
	return &LicenseRepository{cache: make(map[string]string)}
}

// LicenseKey returns the value of envVar, or false when it is unset or empty.
func (it *LicenseRepository) LicenseKey(envVar string) (string, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()

	key, cached := it.cache[envVar]
	if !cached {
		key = os.Getenv(envVar)
		it.cache[envVar] = key
	}
	return key, key != ""
}

// KnownKeys returns the non-empty keys read so far.
func (it *LicenseRepository) KnownKeys() []string {
	it.mu.Lock()
	defer it.mu.Unlock()

	keys := make([]string, 0, len(it.cache))
	for _, key := range it.cache {
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
