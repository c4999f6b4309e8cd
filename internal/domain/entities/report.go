package entities

// NotUpdatedNames lists inventory extensions whose name is not among the
// changed outcomes, in inventory order.
func NotUpdatedNames(changed []UpdateOutcome, inventory []Extension) []string {
	updated := make(map[string]struct{}, len(changed))
	for _, o := range changed {
		updated[o.Name] = struct{}{}
	}

	names := make([]string, 0, len(inventory))
	for _, ext := range inventory {
		if _, ok := updated[ext.Name]; ok {
			continue
		}
		names = append(names, ext.Name)
	}
	return names
}

// PendingUpdates counts the core (when a newer release is offered) plus every
// extension flagged with an available update.
func (s VersionSnapshot) PendingUpdates() int {
	count := len(s.Candidates())
	if _, ok := ClassifyCoreUpdate(s.CoreVersion, s.CoreReleases); ok {
		count++
	}
	return count
}
