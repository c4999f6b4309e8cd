package entities

// CoreComponentName is the component name used for the WordPress core in
// outcomes, probes and commit messages.
const CoreComponentName = "WordPress"

// TranslationsComponentName is the component name used for the translations pass.
const TranslationsComponentName = "Translations"

// Category tags how an updatable component is handled.
type Category string

const (
	CategoryCore    Category = "core"
	CategoryFree    Category = "free"
	CategoryPremium Category = "premium"
)

// ComponentVersion identifies one updatable unit. An empty version means
// "absent": not previously present, or not found after the update.
type ComponentVersion struct {
	Name           string
	CurrentVersion string
	NewVersion     string
}

// Extension is one installed plugin as reported by the registry.
type Extension struct {
	Name             string
	Status           string
	Version          string
	UpdateAvailable  bool
	AvailableVersion string
}

// UpdateCandidate is a component known to have an update available.
type UpdateCandidate struct {
	ComponentVersion
	Category Category
	Handler  string // premium handler key, empty otherwise
}

// Tag returns the category tag, e.g. "free" or "premium:gravityforms".
func (c UpdateCandidate) Tag() string {
	if c.Category == CategoryPremium && c.Handler != "" {
		return string(c.Category) + ":" + c.Handler
	}
	return string(c.Category)
}

// NewExtensionCandidates returns a free candidate for every extension flagged
// with an available update, preserving input order.
func NewExtensionCandidates(extensions []Extension) []UpdateCandidate {
	candidates := make([]UpdateCandidate, 0, len(extensions))
	for _, ext := range extensions {
		if !ext.UpdateAvailable {
			continue
		}
		candidates = append(candidates, UpdateCandidate{
			ComponentVersion: ComponentVersion{
				Name:           ext.Name,
				CurrentVersion: ext.Version,
				NewVersion:     ext.AvailableVersion,
			},
			Category: CategoryFree,
		})
	}
	return candidates
}

// NewCoreCandidate returns the core update from installed to release.
func NewCoreCandidate(installed, release string) UpdateCandidate {
	return UpdateCandidate{
		ComponentVersion: ComponentVersion{
			Name:           CoreComponentName,
			CurrentVersion: installed,
			NewVersion:     release,
		},
		Category: CategoryCore,
	}
}

// CoreRelease is one release offered by the core update check.
type CoreRelease struct {
	Version string
}

// VersionSnapshot is the read-only view of installed versions taken at the
// start of a command.
type VersionSnapshot struct {
	CoreVersion  string
	CoreReleases []CoreRelease
	Extensions   []Extension
}

// Candidates returns the extensions with an update available.
func (s VersionSnapshot) Candidates() []UpdateCandidate {
	return NewExtensionCandidates(s.Extensions)
}
