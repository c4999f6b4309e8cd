package repositories

import "context"

// VersionControlRepository records work as commits. Commit stages every
// modified tracked file and commits it with message, like `git commit -am`.
// Callers log and otherwise ignore its error.
type VersionControlRepository interface {
	Commit(ctx context.Context, message string) error
}
