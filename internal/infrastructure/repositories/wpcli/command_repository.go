package wpcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// CommandRepository runs WP-CLI sub-commands against the configured
// WordPress installation. Commands run one at a time and block until the
// process exits; no timeout is applied.
type CommandRepository struct {
	settings *entities.Settings
	licenses repositories.LicenseRepository
}

var _ repositories.CommandRepository = (*CommandRepository)(nil)

// NewCommandRepository creates a new CommandRepository.
func NewCommandRepository(
	settings *entities.Settings,
	licenses repositories.LicenseRepository,
) *CommandRepository {
	return &CommandRepository{settings: settings, licenses: licenses}
}

// RunCommand runs `wp <args...> --path=<path>` and returns its stdout when it
// is JSON. Errors only name the sub-command, and license keys are masked in
// the captured stderr.
func (it *CommandRepository) RunCommand(ctx context.Context, args ...string) (json.RawMessage, error) {
	fullArgs := append(append([]string{}, args...), "--path="+it.settings.Path)

	cmd := exec.CommandContext(ctx, it.settings.WPCLI, fullArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("[wp-cli] running %s", subCommand(args))
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wp %s: %w: %s", subCommand(args), err, it.redact(stderr.String()))
	}

	if warnings := it.redact(stderr.String()); warnings != "" {
		logger.Debugf("[wp-cli] %s", warnings)
	}

	output := bytes.TrimSpace(stdout.Bytes())
	if len(output) == 0 || !json.Valid(output) {
		return nil, nil
	}
	return json.RawMessage(output), nil
}

// subCommand returns the leading non-flag words of args, e.g. "plugin update".
func subCommand(args []string) string {
	const maxWords = 2
	words := make([]string, 0, maxWords)
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") || strings.Contains(arg, "://") || len(words) == maxWords {
			break
		}
		words = append(words, arg)
	}
	return strings.Join(words, " ")
}

const redacted = "[REDACTED]"

// redact trims output and masks every known license key, raw or URL-escaped.
func (it *CommandRepository) redact(output string) string {
	output = strings.TrimSpace(output)
	if it.licenses == nil {
		return output
	}
	for _, key := range it.licenses.KnownKeys() {
		output = strings.ReplaceAll(output, key, redacted)
		if escaped := url.QueryEscape(key); escaped != key {
			output = strings.ReplaceAll(output, escaped, redacted)
		}
	}
	return output
}
