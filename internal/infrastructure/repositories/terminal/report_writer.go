package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ReportWriter renders the batch summary as two tables.
type ReportWriter struct {
	out io.Writer
}

var _ repositories.ReportWriter = (*ReportWriter)(nil)

// NewReportWriter creates a ReportWriter printing to stdout.
func NewReportWriter() *ReportWriter {
	return NewReportWriterTo(os.Stdout)
}

// NewReportWriterTo creates a ReportWriter printing to out.
func NewReportWriterTo(out io.Writer) *ReportWriter {
	return &ReportWriter{out: out}
}

// WriteReport prints the changed plugins (name/old/new) followed by the
// names of plugins that were not updated.
func (it *ReportWriter) WriteReport(changed []entities.UpdateOutcome, notUpdated []string) error {
	updatedTable := newTable("name", "old", "new")
	for _, outcome := range changed {
		updatedTable.Row(outcome.Name, outcome.Old, outcome.New)
	}

	notUpdatedTable := newTable("name")
	for _, name := range notUpdated {
		notUpdatedTable.Row(name)
	}

	if _, err := fmt.Fprintln(it.out, updatedTable.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(it.out, notUpdatedTable.Render())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
