package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// ReportRenderer summarises an extension batch: what changed, and which
// installed extensions were left untouched. The inventory is re-queried so
// extensions that appeared or disappeared during the run are reflected.
type ReportRenderer struct {
	probe  *VersionProbe
	writer repositories.ReportWriter
}

// NewReportRenderer creates a new ReportRenderer.
func NewReportRenderer(probe *VersionProbe, writer repositories.ReportWriter) *ReportRenderer {
	return &ReportRenderer{probe: probe, writer: writer}
}

// Render writes the summary of outcomes.
func (it *ReportRenderer) Render(ctx context.Context, outcomes []entities.UpdateOutcome) {
	changed, _ := entities.SplitOutcomes(outcomes)

	inventory, err := it.probe.InstalledExtensions(ctx)
	if err != nil {
		logger.Warnf("Could not list plugins for the report: %v", err)
	}

	if writeErr := it.writer.WriteReport(changed, entities.NotUpdatedNames(changed, inventory)); writeErr != nil {
		logger.Warnf("Failed to render the update report: %v", writeErr)
	}
}
