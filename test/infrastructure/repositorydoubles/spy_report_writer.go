//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// SpyReportWriter records the last rendered report.
type SpyReportWriter struct {
	Calls      int
	Changed    []entities.UpdateOutcome
	NotUpdated []string
	WriteErr   error
}

var _ repositories.ReportWriter = (*SpyReportWriter)(nil)

func (s *SpyReportWriter) WriteReport(changed []entities.UpdateOutcome, notUpdated []string) error {
	s.Calls++
	s.Changed = changed
	s.NotUpdated = notUpdated
	return s.WriteErr
}
