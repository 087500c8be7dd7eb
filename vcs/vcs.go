// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/tinysemver/tinysemver/model"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	IsRepo(ctx context.Context) error
	ReadTags(ctx context.Context, query string) ([]string, error)
	ReadCommits(ctx context.Context, query string) ([]*model.Commit, error)
	ReadDiff(ctx context.Context, commit string) (string, error)
	Commit(ctx context.Context, opts CommitOpts) error
	CurrentCommit(ctx context.Context) (string, error)
	CreateTag(ctx context.Context, commit, tag string, opts TagOpts) error
	Push(ctx context.Context, upstream, ref string, opts PushOpts) error
}

// ReleaseCreator is implemented by hosting collaborators that can turn an
// existing tag into a release.
type ReleaseCreator interface {
	CreateRelease(ctx context.Context, tag string, opts ReleaseOpts) error
}

type CommitOpts struct {
	Message     string
	All         bool
	Author      string
	AuthorEmail string
}

type TagOpts struct {
	Message     string
	Author      string
	AuthorEmail string
}

type PushOpts struct {
	Tags       bool
	FollowTags bool
}

type ReleaseOpts struct {
	Title string
	Notes string
	Repo  string
}
