package commit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tinysemver/tinysemver/config"
	"github.com/tinysemver/tinysemver/model"
	"github.com/tinysemver/tinysemver/vcs"
)

// ErrNoNewCommits is returned when the history between the last release tag
// and HEAD is empty. Callers treat it as a clean termination, not a failure.
var ErrNoNewCommits = errors.New("commit: no new commits since the last tag")

// ErrNoReleaseCommits is returned when commits exist but none of them is led
// by a configured verb. No default severity is guessed.
var ErrNoReleaseCommits = errors.New("commit: no commits matched a configured verb")

// VerbSets holds the configured keywords for each bump severity.
type VerbSets struct {
	Major []string
	Minor []string
	Patch []string
}

// Grouped buckets commits by the severity of the verbs leading them. The
// buckets are not exclusive: a commit matching verbs from two severities
// appears in both. Input ordering is preserved within each bucket.
type Grouped struct {
	Major []*model.Commit `json:"major,omitempty"`
	Minor []*model.Commit `json:"minor,omitempty"`
	Patch []*model.Commit `json:"patch,omitempty"`
}

func (g Grouped) Empty() bool {
	return len(g.Major)+len(g.Minor)+len(g.Patch) == 0
}

// ReleaseType resolves the overall bump severity with major > minor > patch
// precedence. Callers must check Empty first.
func (g Grouped) ReleaseType() ReleaseType {
	if len(g.Major) > 0 {
		return ReleaseMajor
	}
	if len(g.Minor) > 0 {
		return ReleaseMinor
	}
	return ReleasePatch
}

// Classify partitions commits into severity buckets by testing each subject
// against each verb set independently.
func Classify(commits []*model.Commit, verbs VerbSets) Grouped {
	groups := Grouped{}
	for _, c := range commits {
		if startsWithAny(c.Subject, verbs.Major) {
			groups.Major = append(groups.Major, c)
		}
		if startsWithAny(c.Subject, verbs.Minor) {
			groups.Minor = append(groups.Minor, c)
		}
		if startsWithAny(c.Subject, verbs.Patch) {
			groups.Patch = append(groups.Patch, c)
		}
	}
	return groups
}

// Analyzer reads repository state and computes the next release version.
type Analyzer struct {
	cfg config.Config
	vcs vcs.Interface
}

func NewAnalyzer(cfg config.Config, vcs vcs.Interface) *Analyzer {
	return &Analyzer{
		cfg: cfg,
		vcs: vcs,
	}
}

// Analyze resolves the last release tag, classifies the commits since it,
// and returns the resulting next version.
func (a *Analyzer) Analyze(ctx context.Context) (*Version, error) {
	tags, err := a.vcs.ReadTags(ctx, "")
	if err != nil {
		return nil, err
	}
	prev, lastTag, err := LatestRelease(tags)
	if err != nil {
		return nil, err
	}
	a.cfg.Debugf("Current version: %s (tag %q)", prev, lastTag)

	commits, err := a.vcs.ReadCommits(ctx, lastTag+"..HEAD")
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoNewCommits, lastTag)
	}
	a.cfg.Debugf("? Commits since last tag: %d", len(commits))
	for _, c := range commits {
		a.cfg.Debugf("# %s: %s", c.ShortID(), c.Subject)
	}

	major, minor, patch := a.cfg.NormalizedVerbs()
	groups := Classify(commits, VerbSets{Major: major, Minor: minor, Patch: patch})
	if groups.Empty() {
		subjects := make([]string, len(commits))
		for i, c := range commits {
			subjects[i] = c.Subject
		}
		return nil, fmt.Errorf("%w: %s", ErrNoReleaseCommits, strings.Join(subjects, ", "))
	}

	bump := groups.ReleaseType()
	next := NextVersion(prev, bump)
	a.cfg.Debugf("Next version: %d.%d.%d (type: %s)", next.Major, next.Minor, next.Patch, bump)

	return &Version{
		Version: next,
		Prev:    prev,
		Bump:    bump,
		LastTag: lastTag,
		Groups:  groups,
	}, nil
}
