// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tinysemver/tinysemver/config"
	"github.com/tinysemver/tinysemver/model"
	"github.com/tinysemver/tinysemver/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) IsRepo(ctx context.Context) error {
	if _, err := g.call(ctx, []string{"rev-parse", "--git-dir"}); err != nil {
		wd := g.wd
		if wd == "" {
			wd, _ = os.Getwd()
		}
		return fmt.Errorf("gitcli: not a git repository: %s (%w)", wd, err)
	}
	return nil
}

func (g *Git) ReadTags(ctx context.Context, query string) ([]string, error) {
	args := []string{
		"tag",
	}
	if query != "" {
		args = append(args, "-l", query)
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	var tags []string
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		s := scanner.Text()
		tags = append(tags, s)
	}
	return tags, nil
}

const EXPECTED_LOG_PARTS = 6

func (g *Git) ReadCommits(ctx context.Context, query string) ([]*model.Commit, error) {
	args := []string{
		"log", "--no-merges", "--pretty=tformat:_START_%H_SEP_%aN_SEP_%ae_SEP_%ai_SEP_%s_SEP_%b_END_", query,
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}

	var commits []*model.Commit
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		s := scanner.Text()
		parts := strings.Split(s, "_SEP_")
		if len(parts) != EXPECTED_LOG_PARTS {
			return nil, fmt.Errorf("gitcli: expected %d parts from git log, got %d", EXPECTED_LOG_PARTS, len(parts))
		}

		commitID := parts[0]
		if !strings.HasPrefix(commitID, "_START_") {
			return nil, fmt.Errorf("gitcli: unexpected git log line: %q", s)
		}
		commitID = strings.TrimPrefix(commitID, "_START_")

		// body can be multiple lines.
		var body string
		bodypart := parts[len(parts)-1]
		if strings.HasSuffix(bodypart, "_END_") {
			body = strings.TrimSuffix(bodypart, "_END_")
		} else {
			var bodyb strings.Builder
			bodyb.WriteString(bodypart)
			bodyb.WriteString("\n")
			for scanner.Scan() {
				bodyline := scanner.Text()
				if strings.HasSuffix(bodyline, "_END_") {
					if trimmed := strings.TrimSpace(strings.TrimSuffix(bodyline, "_END_")); trimmed != "" {
						bodyb.WriteString(trimmed)
					}
					break
				}
				bodyb.WriteString(bodyline)
				bodyb.WriteString("\n")
			}
			body = bodyb.String()
		}

		authorDateStr := parts[3]
		authorDate, err := parseGitDate(authorDateStr)
		if err != nil {
			return nil, err
		}

		commits = append(commits, &model.Commit{
			ID:          commitID,
			Author:      parts[1],
			AuthorEmail: parts[2],
			AuthorDate:  authorDate,
			Subject:     parts[4],
			Body:        body,
		})
	}
	return commits, nil
}

func (g *Git) ReadDiff(ctx context.Context, commit string) (string, error) {
	args := []string{"show", commit, "--pretty=format:", "--patch"}
	b, err := g.call(ctx, args)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (g *Git) Commit(ctx context.Context, opts vcs.CommitOpts) error {
	if opts.Message == "" {
		return errors.New("gitcli: message is required")
	}
	addArgs := []string{"add", "-A"}
	commitArgs := []string{"commit", "-m", opts.Message}

	if g.cfg.Dryrun {
		if opts.All {
			g.cfg.Printf("+ git %s (dryrun)", argsString(addArgs))
		}
		g.cfg.Printf("+ git %s (dryrun)", argsString(commitArgs))
		return nil
	}
	if opts.All {
		if _, err := g.call(ctx, addArgs); err != nil {
			return err
		}
	}
	_, err := g.callEnv(ctx, commitArgs, identityEnv(opts.Author, opts.AuthorEmail))
	return err
}

func (g *Git) CurrentCommit(ctx context.Context) (string, error) {
	b, err := g.call(ctx, []string{"rev-parse", "HEAD"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (g *Git) CreateTag(ctx context.Context, commit, tag string, opts vcs.TagOpts) error {
	if opts.Message == "" {
		return errors.New("gitcli: message is required")
	}

	args := []string{
		"tag", "-a", tag,
	}
	if commit != "" {
		args = append(args, commit)
	}
	args = append(args, "-m", opts.Message)

	if g.cfg.Dryrun {
		g.cfg.Printf("+ git %s (dryrun)", argsString(args))
		return nil
	}
	_, err := g.callEnv(ctx, args, identityEnv(opts.Author, opts.AuthorEmail))
	return err
}

func (g *Git) Push(ctx context.Context, upstream, ref string, opts vcs.PushOpts) error {
	args := []string{"push"}
	if opts.FollowTags {
		args = append(args, "--follow-tags")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	if upstream == "" {
		upstream = "origin"
	}
	args = append(args, upstream)
	if ref != "" {
		args = append(args, ref)
	}

	if g.cfg.Dryrun {
		g.cfg.Printf("+ git %s (dryrun)", argsString(scrubArgs(args)))
		return nil
	}
	_, err := g.call(ctx, args)
	return err
}

// identityEnv extends the process environment with a git author/committer
// identity, when one is configured.
func identityEnv(author, email string) []string {
	if author == "" && email == "" {
		return nil
	}
	env := os.Environ()
	if author != "" {
		env = append(env,
			"GIT_AUTHOR_NAME="+author,
			"GIT_COMMITTER_NAME="+author,
		)
	}
	if email != "" {
		env = append(env,
			"GIT_AUTHOR_EMAIL="+email,
			"GIT_COMMITTER_EMAIL="+email,
		)
	}
	return env
}

// scrubArgs hides credentials embedded in remote URLs before they reach the
// console.
func scrubArgs(args []string) []string {
	res := make([]string, len(args))
	for i, arg := range args {
		res[i] = scrubURL(arg)
	}
	return res
}

func scrubURL(s string) string {
	if !strings.HasPrefix(s, "https://") {
		return s
	}
	rest := strings.TrimPrefix(s, "https://")
	at := strings.IndexByte(rest, '@')
	if at < 0 {
		return s
	}
	creds := rest[:at]
	colon := strings.IndexByte(creds, ':')
	if colon < 0 {
		return s
	}
	return "https://" + creds[:colon] + ":xxxxxx@" + rest[at+1:]
}
