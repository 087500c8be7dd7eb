package config

import (
	"fmt"
	"regexp"

	"github.com/imdario/mergo"
)

type Config struct {
	Verbose          bool          `json:"verbose,omitempty"`
	Quiet            bool          `json:"quiet,omitempty"`
	Dryrun           bool          `json:"dryrun,omitempty"`
	InCI             bool          `json:"ci,omitempty"`
	Push             bool          `json:"push,omitempty"`
	CreateRelease    bool          `json:"create_release,omitempty"`
	RepoPath         string        `json:"repo_path,omitempty"`
	VersionFile      string        `json:"version_file,omitempty"`
	ChangelogFile    string        `json:"changelog_file,omitempty"`
	MajorVerbs       []string      `json:"major_verbs,omitempty"`
	MinorVerbs       []string      `json:"minor_verbs,omitempty"`
	PatchVerbs       []string      `json:"patch_verbs,omitempty"`
	UpdateVersionIn  []PatchTarget `json:"update_version_in,omitempty"`
	UpdateMajorIn    []PatchTarget `json:"update_major_version_in,omitempty"`
	UpdateMinorIn    []PatchTarget `json:"update_minor_version_in,omitempty"`
	UpdatePatchIn    []PatchTarget `json:"update_patch_version_in,omitempty"`
	TagTemplate      string        `json:"tag_template,omitempty"`
	GitUserName      string        `json:"git_user_name,omitempty"`
	GitUserEmail     string        `json:"git_user_email,omitempty"`
	DefaultBranch    string        `json:"default_branch,omitempty"`
	GithubToken      string        `json:"-"`
	GithubRepository string        `json:"github_repository,omitempty"`
	Model            string        `json:"model,omitempty"`
	Term             TerminalIO    `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func GetDefault() Config {
	return Config{
		MajorVerbs:    DefaultMajorVerbs,
		MinorVerbs:    DefaultMinorVerbs,
		PatchVerbs:    DefaultPatchVerbs,
		GitUserName:   "TinySemVer",
		GitUserEmail:  "tinysemver@example.com",
		DefaultBranch: "main",
	}
}

// githubRepoRE matches repository identifiers in the "owner/repo" format.
var githubRepoRE = regexp.MustCompile(`^[\w-]+/[\w.-]+$`)

func (c Config) Validate() error {
	if c.GithubRepository != "" && !githubRepoRE.MatchString(c.GithubRepository) {
		return fmt.Errorf("config: github repository %q must be in the 'owner/repo' format", c.GithubRepository)
	}
	for _, target := range c.Targets() {
		if target.Path == "" || target.Pattern == "" {
			return fmt.Errorf("config: patch target requires both a file path and a pattern, got %q:%q", target.Path, target.Pattern)
		}
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Warning(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, "warning: "+msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}
