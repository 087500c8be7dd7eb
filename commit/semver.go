package commit

import (
	"errors"
	"sort"
	"strings"

	"github.com/blang/semver/v4"
	modsemver "golang.org/x/mod/semver"
)

var ErrNoTags = errors.New("commit: no release tags found")

// LatestRelease picks the highest release version from a list of tag names.
// Tags that aren't valid semver and prerelease tags are skipped. It returns
// the parsed version along with the tag it came from.
func LatestRelease(tags []string) (semver.Version, string, error) {
	type candidate struct {
		canonical string
		tag       string
	}
	var candidates []candidate
	for _, tag := range tags {
		canonical := tag
		if !strings.HasPrefix(canonical, "v") {
			canonical = "v" + canonical
		}
		if !modsemver.IsValid(canonical) {
			continue
		}
		if modsemver.Prerelease(canonical) != "" {
			continue
		}
		candidates = append(candidates, candidate{canonical: canonical, tag: tag})
	}
	if len(candidates) == 0 {
		return semver.Version{}, "", ErrNoTags
	}

	sort.Slice(candidates, func(i, j int) bool {
		return modsemver.Compare(candidates[i].canonical, candidates[j].canonical) < 0
	})
	latest := candidates[len(candidates)-1]

	v, err := ParseTag(latest.tag)
	if err != nil {
		return semver.Version{}, "", err
	}
	return v, latest.tag, nil
}
