package repositories

import (
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// PremiumUpdaterRegistry manages all registered premium updater implementations.
// Registration order is kept so that pattern matches resolve deterministically.
type PremiumUpdaterRegistry struct {
	updaters map[string]domainRepos.PremiumUpdaterRepository
	order    []string
}

// NewPremiumUpdaterRegistry creates an empty premium updater registry.
func NewPremiumUpdaterRegistry() *PremiumUpdaterRegistry {
	return &PremiumUpdaterRegistry{
		updaters: make(map[string]domainRepos.PremiumUpdaterRepository),
	}
}

// Register adds an updater under its name.
func (r *PremiumUpdaterRegistry) Register(u domainRepos.PremiumUpdaterRepository) {
	if _, exists := r.updaters[u.Name()]; !exists {
		r.order = append(r.order, u.Name())
	}
	r.updaters[u.Name()] = u
}

// Get returns the updater with the given name, or nil if not registered.
func (r *PremiumUpdaterRegistry) Get(name string) domainRepos.PremiumUpdaterRepository {
	return r.updaters[name]
}

// All returns every registered updater in registration order.
func (r *PremiumUpdaterRegistry) All() []domainRepos.PremiumUpdaterRepository {
	result := make([]domainRepos.PremiumUpdaterRepository, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.updaters[name])
	}
	return result
}

// Names returns the list of registered updater names.
func (r *PremiumUpdaterRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Resolve returns the updater owning extension: an exact name match first,
// then the first updater whose pattern matches. Nil means the extension is free.
func (r *PremiumUpdaterRegistry) Resolve(extension string) domainRepos.PremiumUpdaterRepository {
	if u, ok := r.updaters[extension]; ok {
		return u
	}
	for _, name := range r.order {
		if u := r.updaters[name]; u.Matches(extension) {
			return u
		}
	}
	return nil
}

// Matcher adapts the registry to the extension router.
func (r *PremiumUpdaterRegistry) Matcher() entities.PremiumMatcher {
	return func(extension string) (string, bool) {
		if u := r.Resolve(extension); u != nil {
			return u.Name(), true
		}
		return "", false
	}
}
