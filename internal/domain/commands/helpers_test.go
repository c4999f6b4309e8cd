//go:build unit

package commands_test

import (
	"testing"

	logger "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/rios0rios0/wpupdate/internal/domain/commands"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	infraRepos "github.com/rios0rios0/wpupdate/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/wpupdate/test/infrastructure/repositorydoubles"
)

const testDate = "01-02-2024"

// fixture wires the real commands around in-memory doubles.
type fixture struct {
	wp       *doubles.FakeWordPress
	vcs      *doubles.SpyVersionControlRepository
	prompt   *doubles.StubPromptRepository
	licenses *doubles.StubLicenseRepository
	writer   *doubles.SpyReportWriter
	settings *entities.Settings
	registry *infraRepos.PremiumUpdaterRegistry

	probe    *commands.VersionProbe
	recorder *commands.ChangeRecorder
}

func newFixture(wp *doubles.FakeWordPress) *fixture {
	f := &fixture{
		wp:       wp,
		vcs:      &doubles.SpyVersionControlRepository{},
		prompt:   &doubles.StubPromptRepository{Answer: true},
		licenses: &doubles.StubLicenseRepository{Keys: map[string]string{}},
		writer:   &doubles.SpyReportWriter{},
		settings: entities.NewSettings(),
		registry: infraRepos.NewPremiumUpdaterRegistry(),
	}
	f.probe = commands.NewVersionProbe(wp, wp)
	f.recorder = commands.NewChangeRecorder(f.probe, f.vcs)
	return f
}

func (f *fixture) coreCommand() *commands.UpdateCoreCommand {
	return commands.NewUpdateCoreCommand(f.probe, f.wp, f.prompt, f.recorder)
}

func (f *fixture) pluginsCommand() *commands.UpdatePluginsCommand {
	return commands.NewUpdatePluginsCommand(
		f.probe, f.wp, f.prompt, f.recorder, f.registry,
		commands.NewReportRenderer(f.probe, f.writer),
	)
}

func (f *fixture) translationsCommand() *commands.UpdateTranslationsCommand {
	return commands.NewUpdateTranslationsCommand(f.wp, f.recorder)
}

func (f *fixture) allCommand() *commands.UpdateAllCommand {
	return commands.NewUpdateAllCommand(f.probe, f.coreCommand(), f.pluginsCommand(), f.translationsCommand())
}

func forcedRun() entities.RunContext {
	return entities.RunContext{Ticket: "EMS-100", Date: testDate, Force: true}
}

func interactiveRun() entities.RunContext {
	return entities.RunContext{Ticket: "EMS-100", Date: testDate}
}

// captureLogs records entries of the standard logger until the test ends.
// Callers must not run in parallel.
func captureLogs(t *testing.T) *logtest.Hook {
	t.Helper()
	hook := logtest.NewGlobal()
	t.Cleanup(func() {
		logger.StandardLogger().ReplaceHooks(make(logger.LevelHooks))
	})
	return hook
}

// entriesAt returns the captured entries logged at level.
func entriesAt(hook *logtest.Hook, level logger.Level) []*logger.Entry {
	var result []*logger.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == level {
			result = append(result, entry)
		}
	}
	return result
}
