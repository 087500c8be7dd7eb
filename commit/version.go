package commit

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/blang/semver/v4"
)

// Version is the result of analyzing the commits since the last release:
// the next version, how it was reached, and the classified commits behind
// it.
type Version struct {
	semver.Version
	Prev    semver.Version `json:"prev"`
	Bump    ReleaseType    `json:"-"`
	LastTag string         `json:"last_tag"`
	Groups  Grouped        `json:"groups"`
}

func (v *Version) String() string { return v.V() }

// V renders the bare version string ("1.2.3"), dropping any prerelease or
// build parts.
func (v *Version) V() string {
	ver := v.Version
	ver.Pre = nil
	ver.Build = nil
	return ver.String()
}

// Tag renders the default tag name ("v1.2.3").
func (v *Version) Tag() string { return "v" + v.V() }

// tagVersionRE extracts the three version components from a tag name. The
// "v" prefix is optional; trailing content (prerelease, build metadata) is
// ignored.
var tagVersionRE = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)`)

// ParseTag parses a version from a tag name like "v1.2.3".
func ParseTag(tag string) (semver.Version, error) {
	m := tagVersionRE.FindStringSubmatch(tag)
	if m == nil {
		return semver.Version{}, fmt.Errorf("commit: tag %q is not in a recognized version format", tag)
	}
	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return semver.Version{}, err
	}
	minor, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return semver.Version{}, err
	}
	patch, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return semver.Version{}, err
	}
	return semver.Version{Major: major, Minor: minor, Patch: patch}, nil
}

// NextVersion applies a bump to a version. Exactly one component is
// incremented; the components to its right reset to zero.
func NextVersion(v semver.Version, t ReleaseType) semver.Version {
	switch t {
	case ReleaseMajor:
		return semver.Version{Major: v.Major + 1}
	case ReleaseMinor:
		return semver.Version{Major: v.Major, Minor: v.Minor + 1}
	case ReleasePatch:
		return semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
	panic("invalid release type: " + t.String())
}
