package entities

// PremiumMatcher resolves the premium handler key for an extension name.
// It returns false for extensions handled by the generic free path.
type PremiumMatcher func(extension string) (string, bool)

// RouteExtensions partitions candidates into free and premium. Every input
// candidate lands in exactly one partition, order preserved.
func RouteExtensions(
	candidates []UpdateCandidate,
	matcher PremiumMatcher,
) ([]UpdateCandidate, []UpdateCandidate) {
	free := make([]UpdateCandidate, 0, len(candidates))
	premium := make([]UpdateCandidate, 0)

	for _, candidate := range candidates {
		if matcher != nil {
			if handler, ok := matcher(candidate.Name); ok {
				candidate.Category = CategoryPremium
				candidate.Handler = handler
				premium = append(premium, candidate)
				continue
			}
		}
		candidate.Category = CategoryFree
		candidate.Handler = ""
		free = append(free, candidate)
	}

	return free, premium
}
