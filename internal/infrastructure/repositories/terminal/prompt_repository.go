package terminal

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// PromptRepository asks yes/no questions with huh. Without a terminal on
// stdin it falls back to huh's accessible (line-based) mode so answers can
// be piped in.
type PromptRepository struct{}

var _ repositories.PromptRepository = (*PromptRepository)(nil)

// NewPromptRepository creates a new PromptRepository.
func NewPromptRepository() *PromptRepository {
	return &PromptRepository{}
}

// Confirm renders a yes/no prompt. Aborting the form (Ctrl+C, Esc) counts as "no".
func (it *PromptRepository) Confirm(title string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).
		WithOutput(os.Stderr).
		WithAccessible(!isatty.IsTerminal(os.Stdin.Fd()))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
