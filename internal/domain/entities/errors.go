package entities

import "errors"

var (
	// ErrMissingTicket aborts a run before any probing.
	ErrMissingTicket = errors.New(`please add "--ticket=EMS-1234" to your command`)
	// ErrUpdateDeclined is returned when the operator declines the confirmation prompt.
	ErrUpdateDeclined = errors.New("update declined by operator")
	// ErrMissingLicense marks a premium extension whose license key is not set.
	ErrMissingLicense = errors.New("missing license key")
	// ErrUnparsableVersionFile is returned when the core version file does not follow the expected grammar.
	ErrUnparsableVersionFile = errors.New("unparsable version file")
)
