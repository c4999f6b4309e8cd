package repositories

// PromptRepository asks the operator for confirmation.
type PromptRepository interface {
	Confirm(title string) (bool, error)
}
