//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import "github.com/rios0rios0/wpupdate/internal/domain/repositories"

// StubPromptRepository answers every prompt with Answer.
type StubPromptRepository struct {
	Answer     bool
	ConfirmErr error
	Titles     []string
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) Confirm(title string) (bool, error) {
	s.Titles = append(s.Titles, title)
	return s.Answer, s.ConfirmErr
}
