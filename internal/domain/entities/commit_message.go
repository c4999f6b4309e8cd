package entities

import "fmt"

const (
	packageIcon      = ":package:"
	indicatorAdded   = ":heavy_plus_sign:"
	indicatorRemoved = ":heavy_minus_sign:"
	indicatorUp      = ":arrow_up:"
	indicatorDown    = ":arrow_down:"
	placeholderOld   = "0"
	placeholderNew   = "1"
)

// ChangeIndicator maps an old/new version pair to its commit-message marker.
// Equal versions and old > new both map to the "up" marker.
func ChangeIndicator(oldVersion, newVersion string) string {
	switch {
	case oldVersion == "":
		return indicatorAdded
	case newVersion == "":
		return indicatorRemoved
	case CompareVersions(oldVersion, newVersion) >= 0:
		return indicatorUp
	default:
		return indicatorDown
	}
}

// CommitMessage builds "{ticket}: :package: {indicator}{name} {version text}({date})".
// The version text is only present for the placeholder 0 -> 1 transition
// used by passes that have no real version numbers.
func CommitMessage(name, oldVersion, newVersion string, run RunContext) string {
	indicator := ChangeIndicator(oldVersion, newVersion) + " "

	versionText := ""
	if oldVersion == placeholderOld && newVersion == placeholderNew {
		versionText = fmt.Sprintf("%s -> %s ", oldVersion, newVersion)
	}

	return fmt.Sprintf("%s: %s %s%s %s(%s)", run.Ticket, packageIcon, indicator, name, versionText, run.Date)
}
