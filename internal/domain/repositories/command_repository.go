package repositories

import (
	"context"
	"encoding/json"
)

// CommandRepository executes platform management commands (WP-CLI).
// A failing command returns an error; the caller decides what happens next.
type CommandRepository interface {
	// RunCommand runs the command and returns its JSON output, or nil when
	// the output is not JSON.
	RunCommand(ctx context.Context, args ...string) (json.RawMessage, error)
}
