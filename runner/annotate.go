package runner

import (
	"context"

	"github.com/tinysemver/tinysemver/commit"
	"github.com/tinysemver/tinysemver/model"
)

// annotate prints an advisory risk note next to each classified commit.
// Annotation failures are logged and skipped; they never block the release.
func (r *Runner) annotate(ctx context.Context, ver *commit.Version) {
	if r.notes == nil {
		return
	}

	seen := make(map[string]bool)
	for _, c := range classifiedCommits(ver) {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true

		diff, err := r.vcs.ReadDiff(ctx, c.ID)
		if err != nil {
			r.cfg.Warning("annotation skipped for %s: %v", c.ShortID(), err)
			continue
		}
		note, err := r.notes.Review(ctx, c.Subject, diff)
		if err != nil {
			r.cfg.Warning("annotation skipped for %s: %v", c.ShortID(), err)
			continue
		}
		r.cfg.Printf("~ %s: %s", c.ShortID(), note)
	}
}

func classifiedCommits(ver *commit.Version) []*model.Commit {
	var commits []*model.Commit
	commits = append(commits, ver.Groups.Major...)
	commits = append(commits, ver.Groups.Minor...)
	commits = append(commits, ver.Groups.Patch...)
	return commits
}
