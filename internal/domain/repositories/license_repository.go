package repositories

// LicenseRepository resolves premium license keys.
type LicenseRepository interface {
	// LicenseKey returns the key stored in envVar, or false when it is unset.
	LicenseKey(envVar string) (string, bool)

	// KnownKeys returns every non-empty key handed out so far in this run.
	KnownKeys() []string
}
