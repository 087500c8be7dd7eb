// Package commit contains code for reading and processing commits.
package commit

// ReleaseType is the severity of a version bump. The variants are ordered:
// a major release outranks a minor one, which outranks a patch.
type ReleaseType int

const (
	_ ReleaseType = iota

	ReleasePatch
	ReleaseMinor
	ReleaseMajor
)

func (t ReleaseType) String() string {
	switch t {
	case ReleasePatch:
		return "PATCH"
	case ReleaseMinor:
		return "MINOR"
	case ReleaseMajor:
		return "MAJOR"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}
