package main

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/wpupdate/internal"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

func buildRootCommand(settings *entities.Settings) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "wpupdate",
		Short: "Automated WordPress core and plugin updates",
		Long: `Detects available updates for WordPress core and installed plugins,
applies them through WP-CLI and records each successful update as a Git
commit annotated with a ticket reference and date.

Run it from a WordPress installation that is also a Git working tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			return configure(command, settings)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("path", "",
		"Path to the WordPress installation (default: current directory)")
	cmd.PersistentFlags().String("wp-cli", "",
		"WP-CLI binary to run (default: wp)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

// configure loads the optional config file into settings and applies flag overrides.
func configure(command *cobra.Command, settings *entities.Settings) error {
	if verbose, _ := command.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := command.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
		if err := settings.Load(configPath); err != nil {
			return err
		}
	}

	if path, _ := command.Flags().GetString("path"); path != "" {
		settings.Path = path
	}
	if wpCLI, _ := command.Flags().GetString("wp-cli"); wpCLI != "" {
		settings.WPCLI = wpCLI
	}
	return nil
}

func buildUpdateCommand(appContext *internal.AppInternal) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update WordPress core, plugins, themes or translations",
	}

	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		updateCmd.AddCommand(subCmd)
	}

	return updateCmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetSettings())
	cobraRoot.AddCommand(buildUpdateCommand(appContext))

	if err := cobraRoot.ExecuteContext(context.Background()); err != nil {
		logger.Fatalf("Error executing 'wpupdate': %s", err)
	}
}
