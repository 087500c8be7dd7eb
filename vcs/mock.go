package vcs

import (
	"context"
	"strings"
	"time"

	"github.com/tinysemver/tinysemver/model"
)

// Mock implements Interface in memory and records mutations for tests.
type Mock struct {
	t        time.Time
	tags     []string
	commits  []*model.Commit
	diffs    map[string]string
	repoErr  error
	head     string
	Commits  []CommitOpts
	Tags     []CreatedTag
	Pushes   []PushedRef
	Releases []CreatedRelease
}

type CreatedTag struct {
	Commit string
	Tag    string
	Opts   TagOpts
}

type PushedRef struct {
	Upstream string
	Ref      string
	Opts     PushOpts
}

type CreatedRelease struct {
	Tag  string
	Opts ReleaseOpts
}

func NewMock() *Mock {
	return &Mock{
		t:     time.Now(),
		diffs: make(map[string]string),
		head:  "deadbeefdeadbeef",
	}
}

func (m *Mock) SetTags(tags ...string) *Mock {
	m.tags = tags
	return m
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.AuthorDate.IsZero() {
			c.AuthorDate = m.t
			m.t = m.t.Add(-time.Minute)
		}
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

func (m *Mock) SetDiff(commit, diff string) *Mock {
	m.diffs[commit] = diff
	return m
}

func (m *Mock) SetRepoErr(err error) *Mock {
	m.repoErr = err
	return m
}

func (m *Mock) IsRepo(ctx context.Context) error {
	return m.repoErr
}

func (m *Mock) ReadTags(ctx context.Context, query string) ([]string, error) {
	var tags []string
	for _, t := range m.tags {
		if globMatches(t, query) {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func (m *Mock) ReadCommits(ctx context.Context, query string) ([]*model.Commit, error) {
	return m.commits, nil
}

func (m *Mock) ReadDiff(ctx context.Context, commit string) (string, error) {
	if diff, ok := m.diffs[commit]; ok {
		return diff, nil
	}
	return "", NotFoundError{Ref: commit}
}

func (m *Mock) Commit(ctx context.Context, opts CommitOpts) error {
	m.Commits = append(m.Commits, opts)
	return nil
}

func (m *Mock) CurrentCommit(ctx context.Context) (string, error) {
	return m.head, nil
}

func (m *Mock) CreateTag(ctx context.Context, commit, tag string, opts TagOpts) error {
	m.Tags = append(m.Tags, CreatedTag{Commit: commit, Tag: tag, Opts: opts})
	return nil
}

func (m *Mock) Push(ctx context.Context, upstream, ref string, opts PushOpts) error {
	m.Pushes = append(m.Pushes, PushedRef{Upstream: upstream, Ref: ref, Opts: opts})
	return nil
}

func (m *Mock) CreateRelease(ctx context.Context, tag string, opts ReleaseOpts) error {
	m.Releases = append(m.Releases, CreatedRelease{Tag: tag, Opts: opts})
	return nil
}

func globMatches(s string, glob string) bool {
	if glob == "" {
		return true
	}
	parts := strings.Split(glob, "*")
	remaining := s
	for {
		if len(parts) == 0 {
			break
		}
		part := parts[0]
		parts = parts[1:]

		if !strings.HasPrefix(remaining, part) {
			return false
		}
		remaining = strings.TrimPrefix(remaining, part)
	}
	if len(glob) > 0 && glob[len(glob)-1] == '*' {
		return true
	}
	return remaining == ""
}
