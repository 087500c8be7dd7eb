package runner

import (
	"bytes"
	"testing"
	"time"

	"github.com/blang/semver/v4"

	"github.com/tinysemver/tinysemver/commit"
	"github.com/tinysemver/tinysemver/model"
)

func TestRenderChangelog(t *testing.T) {
	ver := &commit.Version{
		Version: semver.Version{Major: 2, Minor: 0, Patch: 0},
		Bump:    commit.ReleaseMajor,
		Groups: commit.Grouped{
			Major: []*model.Commit{
				{ID: "cccc3333cccc3333", Subject: "Break: drop the v1 wire format"},
			},
			Patch: []*model.Commit{
				{ID: "aaaa1111aaaa1111", Subject: "Fix: stop leaking file handles"},
				{ID: "eeee5555eeee5555", Subject: "Docs: expand the readme"},
			},
		},
	}

	b := &bytes.Buffer{}
	now := time.Date(2024, time.August, 5, 12, 0, 0, 0, time.UTC)
	if err := RenderChangelog(b, now, ver); err != nil {
		t.Fatal(err)
	}

	expect := `
## August 05, 2024: v2.0.0

### Major

- Break: drop the v1 wire format (cccc3333)

### Patch

- Fix: stop leaking file handles (aaaa1111)
- Docs: expand the readme (eeee5555)
`
	if b.String() != expect {
		t.Errorf("expected changelog block:\n%q\ngot:\n%q", expect, b.String())
	}
}

func TestRenderChangelogSkipsEmptySections(t *testing.T) {
	ver := &commit.Version{
		Version: semver.Version{Major: 0, Minor: 5, Patch: 0},
		Bump:    commit.ReleaseMinor,
		Groups: commit.Grouped{
			Minor: []*model.Commit{
				{ID: "bbbb2222bbbb2222", Subject: "Add: config file support"},
			},
		},
	}

	b := &bytes.Buffer{}
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	if err := RenderChangelog(b, now, ver); err != nil {
		t.Fatal(err)
	}

	expect := `
## January 02, 2025: v0.5.0

### Minor

- Add: config file support (bbbb2222)
`
	if b.String() != expect {
		t.Errorf("expected changelog block:\n%q\ngot:\n%q", expect, b.String())
	}
}
