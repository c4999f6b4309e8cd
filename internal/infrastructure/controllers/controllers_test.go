//go:build unit

package controllers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/infrastructure/controllers"
	"github.com/rios0rios0/wpupdate/test/domain/commanddoubles"
)

// newCommand builds a cobra command for controller and applies flags.
func newCommand(t *testing.T, controller entities.Controller, flags map[string]string) *cobra.Command {
	t.Helper()
	//nolint:exhaustruct // test command
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	controller.AddFlags(cmd)
	for name, value := range flags {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	cmd.SetContext(context.Background())
	return cmd
}

func TestUpdatePluginsControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the parsed run context to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdatePluginsController(stub)
		cmd := newCommand(t, controller, map[string]string{
			"ticket": "EMS-100",
			"date":   "01-02-2024",
			"force":  "true",
		})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, entities.RunContext{Ticket: "EMS-100", Date: "01-02-2024", Force: true}, stub.LastRun)
	})

	t.Run("should refuse to run without a ticket", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdatePluginsController(stub)
		cmd := newCommand(t, controller, nil)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrMissingTicket)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should exit cleanly when the operator declines", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdateCommand{ExecuteErr: entities.ErrUpdateDeclined}
		controller := controllers.NewUpdatePluginsController(stub)
		cmd := newCommand(t, controller, map[string]string{"ticket": "EMS-100"})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
	})

	t.Run("should propagate other failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdateCommand{ExecuteErr: errors.New("prompt crashed")}
		controller := controllers.NewUpdatePluginsController(stub)
		cmd := newCommand(t, controller, map[string]string{"ticket": "EMS-100"})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
	})
}

func TestUpdateCoreControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should default the date to today", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdateCoreController(stub)
		cmd := newCommand(t, controller, map[string]string{"ticket": "EMS-100"})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Regexp(t, `^\d{2}-\d{2}-\d{4}$`, stub.LastRun.Date)
		assert.False(t, stub.LastRun.Force)
	})
}

func TestUpdateAllControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should forward the translations switch", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdateAllController(stub)
		cmd := newCommand(t, controller, map[string]string{"ticket": "EMS-100", "translations": "true"})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.True(t, stub.LastRun.Translations)
	})
}

func TestComingSoonControllers(t *testing.T) {
	t.Parallel()

	t.Run("should succeed without flags", func(t *testing.T) {
		t.Parallel()

		// given
		themes := controllers.NewUpdateThemesController()
		translations := controllers.NewUpdateTranslationsController()

		// when
		themesErr := themes.Execute(newCommand(t, themes, nil), nil)
		translationsErr := translations.Execute(newCommand(t, translations, nil), nil)

		// then
		require.NoError(t, themesErr)
		require.NoError(t, translationsErr)
		assert.Equal(t, "themes", themes.GetBind().Use)
		assert.Equal(t, "translations", translations.GetBind().Use)
	})
}
