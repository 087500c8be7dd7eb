package commit

import (
	"context"
	"errors"
	"testing"

	"github.com/tinysemver/tinysemver/config"
	"github.com/tinysemver/tinysemver/model"
	"github.com/tinysemver/tinysemver/vcs"
)

var fixCommit = &model.Commit{ID: "deadbeefdeadbeef", Subject: "Fix: null check"}
var addCommit = &model.Commit{ID: "abcd1234abcd1234", Subject: "Add: retry logic"}
var majorCommit = &model.Commit{ID: "feedfacefeedface", Subject: "Major: new api"}
var choreCommit = &model.Commit{ID: "0123456701234567", Subject: "chore: cleanup"}

func commitWithID(commit *model.Commit, id string) *model.Commit {
	c := *commit
	c.ID = id
	return &c
}

func defaultVerbSets() VerbSets {
	return VerbSets{
		Major: config.DefaultMajorVerbs,
		Minor: config.DefaultMinorVerbs,
		Patch: config.DefaultPatchVerbs,
	}
}

func TestAnalyzeNoTags(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := newTestConfig(nil, &tio)
	m := vcs.NewMock()
	a := NewAnalyzer(cfg, m)

	_, err := a.Analyze(context.Background())
	if !errors.Is(err, ErrNoTags) {
		t.Fatalf("expected no tags error, got %v", err)
	}
}

func TestAnalyzeNoCommits(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := newTestConfig(nil, &tio)
	m := vcs.NewMock().SetTags("v0.1.0")
	a := NewAnalyzer(cfg, m)

	_, err := a.Analyze(context.Background())
	if !errors.Is(err, ErrNoNewCommits) {
		t.Fatalf("expected no new commits error, got %v", err)
	}
}

func TestAnalyzeNoVerbMatch(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := newTestConfig(nil, &tio)
	m := vcs.NewMock().SetTags("v0.9.0").SetCommits(choreCommit)
	a := NewAnalyzer(cfg, m)

	_, err := a.Analyze(context.Background())
	if !errors.Is(err, ErrNoReleaseCommits) {
		t.Fatalf("expected no release commits error, got %v", err)
	}
}

func TestAnalyzeBump(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := newTestConfig(&config.Config{Verbose: true}, &tio)
	tcs := []struct {
		name       string
		tags       []string
		commits    []*model.Commit
		expect     string
		expectBump ReleaseType
	}{
		{
			name:       "patch",
			tags:       []string{"v1.2.3"},
			commits:    []*model.Commit{fixCommit},
			expect:     "1.2.4",
			expectBump: ReleasePatch,
		},
		{
			name:       "minor",
			tags:       []string{"v1.2.3"},
			commits:    []*model.Commit{fixCommit, addCommit},
			expect:     "1.3.0",
			expectBump: ReleaseMinor,
		},
		{
			name:       "major",
			tags:       []string{"v0.9.0"},
			commits:    []*model.Commit{majorCommit},
			expect:     "1.0.0",
			expectBump: ReleaseMajor,
		},
		{
			name:       "major-precedence",
			tags:       []string{"v0.9.0"},
			commits:    []*model.Commit{commitWithID(majorCommit, "11111111"), &model.Commit{ID: "2222", Subject: "Minor: y"}},
			expect:     "1.0.0",
			expectBump: ReleaseMajor,
		},
		{
			name:       "prerelease-tags-skipped",
			tags:       []string{"v1.2.3", "v1.3.0-rc.1"},
			commits:    []*model.Commit{fixCommit},
			expect:     "1.2.4",
			expectBump: ReleasePatch,
		},
		{
			name:       "unmatched-commits-ignored",
			tags:       []string{"v1.2.3"},
			commits:    []*model.Commit{choreCommit, fixCommit},
			expect:     "1.2.4",
			expectBump: ReleasePatch,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := vcs.NewMock().SetTags(tc.tags...).SetCommits(tc.commits...)
			a := NewAnalyzer(cfg, m)

			ver, err := a.Analyze(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if got := ver.V(); got != tc.expect {
				t.Errorf("expected version %s, got %s", tc.expect, got)
			}
			if ver.Bump != tc.expectBump {
				t.Errorf("expected bump %s, got %s", tc.expectBump, ver.Bump)
			}
		})
	}
}

func TestClassifyOverlap(t *testing.T) {
	// "make" is a patch verb by default; a commit led by a verb from two
	// sets lands in both buckets.
	verbs := defaultVerbSets()
	verbs.Minor = append([]string{}, verbs.Minor...)
	verbs.Minor = append(verbs.Minor, "make")

	c := &model.Commit{ID: "deadbeef", Subject: "Make: it configurable"}
	groups := Classify([]*model.Commit{c}, verbs)

	if len(groups.Minor) != 1 || len(groups.Patch) != 1 {
		t.Fatalf("expected commit in both minor and patch buckets, got %d/%d", len(groups.Minor), len(groups.Patch))
	}
	if len(groups.Major) != 0 {
		t.Fatalf("expected empty major bucket, got %d", len(groups.Major))
	}
	if groups.ReleaseType() != ReleaseMinor {
		t.Errorf("expected minor release, got %s", groups.ReleaseType())
	}
}

func TestClassifyOrdering(t *testing.T) {
	commits := []*model.Commit{
		{ID: "1", Subject: "fix: first"},
		{ID: "2", Subject: "add: a feature"},
		{ID: "3", Subject: "fix: second"},
	}
	groups := Classify(commits, defaultVerbSets())

	if len(groups.Patch) != 2 {
		t.Fatalf("expected 2 patch commits, got %d", len(groups.Patch))
	}
	if groups.Patch[0].ID != "1" || groups.Patch[1].ID != "3" {
		t.Errorf("expected input ordering preserved, got %s, %s", groups.Patch[0].ID, groups.Patch[1].ID)
	}
}
