package controllers

import (
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/wpupdate/internal/domain/commands"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// addRunFlags adds the flags shared by every mutating update subcommand.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("ticket", "", "Ticket reference embedded in every commit message (required)")
	cmd.Flags().String("date", "", "Date embedded in every commit message, DD-MM-YYYY (default: today)")
	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}

// parseRunContext builds the RunContext from the parsed flags. A missing
// ticket aborts the run before anything is probed.
func parseRunContext(cmd *cobra.Command) (entities.RunContext, error) {
	ticket, _ := cmd.Flags().GetString("ticket")
	date, _ := cmd.Flags().GetString("date")
	force, _ := cmd.Flags().GetBool("force")

	return entities.NewRunContext(ticket, date, force, time.Now())
}

// finishRun turns a declined prompt into a clean exit.
func finishRun(err error) error {
	if commands.IsDeclined(err) {
		logger.Info("Update aborted, nothing was changed")
		return nil
	}
	return err
}
