//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import "github.com/rios0rios0/wpupdate/internal/domain/repositories"

// StubLicenseRepository serves license keys from a map.
type StubLicenseRepository struct {
	Keys      map[string]string
	Requested []string
}

var _ repositories.LicenseRepository = (*StubLicenseRepository)(nil)

func (s *StubLicenseRepository) LicenseKey(envVar string) (string, bool) {
	s.Requested = append(s.Requested, envVar)
	key := s.Keys[envVar]
	return key, key != ""
}

func (s *StubLicenseRepository) KnownKeys() []string {
	keys := make([]string, 0, len(s.Keys))
	for _, key := range s.Keys {
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
