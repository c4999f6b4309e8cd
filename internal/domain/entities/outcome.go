package entities

// ChangeKind classifies an UpdateOutcome.
type ChangeKind string

const (
	ChangeNoop       ChangeKind = "no-op"
	ChangeUpgraded   ChangeKind = "upgraded"
	ChangeDowngraded ChangeKind = "downgraded"
	ChangeAdded      ChangeKind = "added"
	ChangeRemoved    ChangeKind = "removed"
)

// UpdateOutcome is the result of attempting one update.
type UpdateOutcome struct {
	Name string
	Old  string
	New  string
}

// Changed reports whether the observed version moved.
func (o UpdateOutcome) Changed() bool {
	return o.Old != o.New
}

// Kind classifies the transition from Old to New.
func (o UpdateOutcome) Kind() ChangeKind {
	switch {
	case o.Old == o.New:
		return ChangeNoop
	case o.Old == "":
		return ChangeAdded
	case o.New == "":
		return ChangeRemoved
	case CompareVersions(o.New, o.Old) < 0:
		return ChangeDowngraded
	default:
		// semver-equal spellings such as 1.0 -> 1.0.0
		return ChangeUpgraded
	}
}

// SplitOutcomes separates outcomes into changed and unchanged, keeping order.
func SplitOutcomes(outcomes []UpdateOutcome) ([]UpdateOutcome, []UpdateOutcome) {
	var changed, unchanged []UpdateOutcome
	for _, o := range outcomes {
		if o.Changed() {
			changed = append(changed, o)
		} else {
			unchanged = append(unchanged, o)
		}
	}
	return changed, unchanged
}
