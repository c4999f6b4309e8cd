package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// SemVerRelation is the named semantic-version distance between two versions.
type SemVerRelation string

const (
	RelationNone  SemVerRelation = ""
	RelationPatch SemVerRelation = "patch"
	RelationMinor SemVerRelation = "minor"
	RelationMajor SemVerRelation = "major"
)

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// CompareVersions returns -1, 0 or 1 comparing a to b. Semantic ordering is
// used when both are valid semver (WordPress "6.4" style shorthands included),
// plain string ordering otherwise.
func CompareVersions(a, b string) int {
	na, nb := normalizeVersion(a), normalizeVersion(b)
	if semver.IsValid(na) && semver.IsValid(nb) {
		return semver.Compare(na, nb)
	}
	return strings.Compare(a, b)
}

// NamedSemVer returns how far candidate is ahead of installed. Candidates that
// are not strictly greater, or not valid versions, yield RelationNone.
func NamedSemVer(candidate, installed string) SemVerRelation {
	nc, ni := normalizeVersion(candidate), normalizeVersion(installed)
	if !semver.IsValid(nc) || !semver.IsValid(ni) {
		return RelationNone
	}
	if semver.Compare(nc, ni) <= 0 {
		return RelationNone
	}
	if semver.MajorMinor(nc) == semver.MajorMinor(ni) {
		return RelationPatch
	}
	if semver.Major(nc) == semver.Major(ni) {
		return RelationMinor
	}
	return RelationMajor
}
