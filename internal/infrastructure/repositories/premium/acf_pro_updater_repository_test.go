//go:build unit

package premium_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/infrastructure/repositories/premium"
	doubles "github.com/rios0rios0/wpupdate/test/infrastructure/repositorydoubles"
)

func acfCandidate() entities.UpdateCandidate {
	return entities.UpdateCandidate{
		ComponentVersion: entities.ComponentVersion{Name: "advanced-custom-fields-pro", CurrentVersion: "6.2.4"},
		Category:         entities.CategoryPremium,
		Handler:          "advanced-custom-fields-pro",
	}
}

func TestACFProUpdaterRepositoryUpdate(t *testing.T) {
	t.Parallel()

	run := entities.RunContext{Ticket: "EMS-100", Date: "01-02-2024", Force: true}

	t.Run("should reinstall from the licensed URL and delegate recording", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{}
		licenses := &doubles.StubLicenseRepository{Keys: map[string]string{"ACFPRO_KEY": "abc123"}}
		recorder := &doubles.SpyChangeRecorder{NewVersion: "6.2.5"}
		updater := premium.NewACFProUpdaterRepository(entities.NewSettings(), wp, licenses)

		// when
		outcome, err := updater.Update(context.Background(), acfCandidate(), run, recorder)

		// then
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"plugin", "install", premium.DownloadURL("abc123"), "--force"}}, wp.Commands)
		assert.Equal(t, entities.UpdateOutcome{Name: "advanced-custom-fields-pro", Old: "6.2.4", New: "6.2.5"}, outcome)
		require.Len(t, recorder.Calls, 1)
		assert.Equal(t, "6.2.4", recorder.Calls[0].CurrentVersion)
	})

	t.Run("should fail without touching WordPress when the key is missing", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{}
		recorder := &doubles.SpyChangeRecorder{}
		updater := premium.NewACFProUpdaterRepository(
			entities.NewSettings(), wp, &doubles.StubLicenseRepository{},
		)

		// when
		_, err := updater.Update(context.Background(), acfCandidate(), run, recorder)

		// then
		require.ErrorIs(t, err, entities.ErrMissingLicense)
		assert.Contains(t, err.Error(), "ACFPRO_KEY")
		assert.Empty(t, wp.Commands)
		assert.Empty(t, recorder.Calls)
	})

	t.Run("should read the key from a configured variable", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.NewSettings()
		settings.Licenses["advanced-custom-fields-pro"] = "SITE_ACF_KEY"
		licenses := &doubles.StubLicenseRepository{Keys: map[string]string{"SITE_ACF_KEY": "k"}}
		updater := premium.NewACFProUpdaterRepository(settings, &doubles.FakeWordPress{}, licenses)

		// when
		_, err := updater.Update(context.Background(), acfCandidate(), run, &doubles.SpyChangeRecorder{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"SITE_ACF_KEY"}, licenses.Requested)
	})

	t.Run("should return the command failure", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{CommandErrs: map[string]error{"plugin install": errors.New("403")}}
		licenses := &doubles.StubLicenseRepository{Keys: map[string]string{"ACFPRO_KEY": "abc123"}}
		recorder := &doubles.SpyChangeRecorder{}
		updater := premium.NewACFProUpdaterRepository(entities.NewSettings(), wp, licenses)

		// when
		_, err := updater.Update(context.Background(), acfCandidate(), run, recorder)

		// then
		require.Error(t, err)
		assert.Empty(t, recorder.Calls)
	})
}

func TestDownloadURL(t *testing.T) {
	t.Parallel()

	t.Run("should escape the key", func(t *testing.T) {
		t.Parallel()

		// given / when
		url := premium.DownloadURL("a&b=c")

		// then
		assert.Equal(t, "https://connect.advancedcustomfields.com/index.php?p=pro&a=download&k=a%26b%3Dc", url)
	})
}
