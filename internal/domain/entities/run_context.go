package entities

import (
	"strings"
	"time"
)

// DateLayout is the DD-MM-YYYY layout used in commit messages.
const DateLayout = "02-01-2006"

// RunContext is the process-wide state of one invocation. It is built once
// from the command-line arguments and only read afterwards.
type RunContext struct {
	Ticket       string
	Date         string
	Force        bool
	Translations bool
}

// NewRunContext validates the ticket and defaults the date to now.
func NewRunContext(ticket, date string, force bool, now time.Time) (RunContext, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return RunContext{}, ErrMissingTicket
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = now.Format(DateLayout)
	}

	return RunContext{
		Ticket: ticket,
		Date:   date,
		Force:  force,
	}, nil
}
