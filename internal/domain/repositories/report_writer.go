package repositories

import "github.com/rios0rios0/wpupdate/internal/domain/entities"

// ReportWriter renders the end-of-batch summary.
type ReportWriter interface {
	WriteReport(changed []entities.UpdateOutcome, notUpdated []string) error
}
