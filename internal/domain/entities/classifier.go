package entities

import "strings"

// Severity is the urgency bucket of an available core update.
type Severity string

const (
	SeverityMajor Severity = "major"
	SeverityMinor Severity = "minor"
)

// RemapSeverity shifts a semantic relation one notch: WordPress ships
// feature releases as semver "minor" and maintenance releases as "patch".
func RemapSeverity(relation SemVerRelation) (Severity, bool) {
	switch relation {
	case RelationMajor, RelationMinor:
		return SeverityMajor, true
	case RelationPatch:
		return SeverityMinor, true
	default:
		return "", false
	}
}

// ClassifyCoreUpdates returns the highest release per severity bucket.
// Empty buckets are absent from the map.
func ClassifyCoreUpdates(installed string, releases []CoreRelease) map[Severity]string {
	installed = strings.TrimSuffix(installed, "-src")
	buckets := make(map[Severity]string, 2) //nolint:mnd // major and minor

	for _, release := range releases {
		severity, ok := RemapSeverity(NamedSemVer(release.Version, installed))
		if !ok {
			continue
		}
		if current, exists := buckets[severity]; exists && CompareVersions(release.Version, current) <= 0 {
			continue
		}
		buckets[severity] = release.Version
	}

	return buckets
}

// ClassifyCoreUpdate picks the single most urgent release: the major bucket
// when present, otherwise the minor bucket. The second return value is false
// when no release is newer than installed.
func ClassifyCoreUpdate(installed string, releases []CoreRelease) (string, bool) {
	buckets := ClassifyCoreUpdates(installed, releases)
	if version, ok := buckets[SeverityMajor]; ok {
		return version, true
	}
	if version, ok := buckets[SeverityMinor]; ok {
		return version, true
	}
	return "", false
}
