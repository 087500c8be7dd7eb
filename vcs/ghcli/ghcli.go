// Package ghcli implements vcs.ReleaseCreator using the GitHub commandline
// tool.
package ghcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/tinysemver/tinysemver/config"
	"github.com/tinysemver/tinysemver/vcs"
)

var CommandContext = exec.CommandContext

// GH creates hosting releases by shelling out to gh.
type GH struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *GH {
	return &GH{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *GH) CreateRelease(ctx context.Context, tag string, opts vcs.ReleaseOpts) error {
	args := []string{
		"release", "create", tag,
		"--title", opts.Title,
		"--notes", opts.Notes,
	}
	if opts.Repo != "" {
		args = append(args, "--repo", opts.Repo)
	}

	if g.cfg.Dryrun {
		g.cfg.Printf("+ gh %v (dryrun)", args)
		return nil
	}
	_, err := g.call(ctx, args)
	return err
}

func (g *GH) call(ctx context.Context, args []string) ([]byte, error) {
	cmd := CommandContext(ctx, "gh", args...)
	cmd.Dir = g.wd

	eb := &bytes.Buffer{}
	ob := &bytes.Buffer{}
	cmd.Stderr = eb
	cmd.Stdout = ob

	err := cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("exec: gh %q failed: %s (%w)", args, eb.String(), err)
	}
	return ob.Bytes(), err
}
