package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/tinysemver/tinysemver/commit"
	"github.com/tinysemver/tinysemver/config"
	"github.com/tinysemver/tinysemver/llm"
	"github.com/tinysemver/tinysemver/runner"
	"github.com/tinysemver/tinysemver/vcs/ghcli"
	"github.com/tinysemver/tinysemver/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version string
)

func main() {
	if err := run(os.Args); err != nil {
		if errors.Is(err, commit.ErrNoNewCommits) {
			fmt.Printf("! %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	var help bool
	var version bool
	var printLatest bool
	var cfgFile string
	var updateVersionIn []string
	var updateMajorIn []string
	var updateMinorIn []string
	var updatePatchIn []string

	flagCfg := config.Config{}
	flags := pflag.NewFlagSet("tinysemver", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.BoolVarP(&flagCfg.Dryrun, "dry-run", "n", false, "do not write files or create a tag")
	flags.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&flagCfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.BoolVar(&flagCfg.Push, "push", false, "push the release commit and tag")
	flags.BoolVar(&flagCfg.CreateRelease, "create-release", false, "create a hosting release for the new tag")
	flags.BoolVar(&flagCfg.InCI, "ci", false, "run in CI mode")
	flags.StringArrayVar(&flagCfg.MajorVerbs, "major-verbs", nil, "comma-separated `verbs` for major bumps, like 'breaking,break,major'")
	flags.StringArrayVar(&flagCfg.MinorVerbs, "minor-verbs", nil, "comma-separated `verbs` for minor bumps, like 'feature,minor,add,new'")
	flags.StringArrayVar(&flagCfg.PatchVerbs, "patch-verbs", nil, "comma-separated `verbs` for patch bumps, like 'fix,patch,bug'")
	flags.StringVar(&flagCfg.ChangelogFile, "changelog-file", "", "`path` to the changelog file, like 'CHANGELOG.md'")
	flags.StringVar(&flagCfg.VersionFile, "version-file", "", "`path` to the version file, like 'VERSION'")
	flags.StringArrayVar(&updateVersionIn, "update-version-in", nil, "'path:pattern' `pair` whose capture group gets the full version")
	flags.StringArrayVar(&updateMajorIn, "update-major-version-in", nil, "'path:pattern' `pair` whose capture group gets the major component")
	flags.StringArrayVar(&updateMinorIn, "update-minor-version-in", nil, "'path:pattern' `pair` whose capture group gets the minor component")
	flags.StringArrayVar(&updatePatchIn, "update-patch-version-in", nil, "'path:pattern' `pair` whose capture group gets the patch component")
	flags.StringVar(&flagCfg.RepoPath, "path", "", "`path` to the git repository")
	flags.StringVar(&flagCfg.TagTemplate, "template", "", "go text/template for tag `format`")
	flags.StringVar(&flagCfg.GitUserName, "git-user-name", "", "git user `name` for the release commit")
	flags.StringVar(&flagCfg.GitUserEmail, "git-user-email", "", "git user `email` for the release commit")
	flags.StringVar(&flagCfg.GithubToken, "github-token", "", "github access `token`, defaults to the GH_TOKEN env var")
	flags.StringVar(&flagCfg.GithubRepository, "github-repository", "", "github repository in the 'owner/repo' format, defaults to GH_REPOSITORY")
	flags.StringVar(&flagCfg.DefaultBranch, "default-branch", "", "default branch `name` of the repo")
	flags.StringVar(&flagCfg.Model, "model", "", "chat-completions `model` for advisory commit annotations")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printLatest, "latest", false, "print the latest release tag and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}

	var cfg config.Config
	if os.Getenv("GITHUB_ACTIONS") != "" {
		envCfg, err := environConfig()
		if err != nil {
			return err
		}
		cfg = config.New(envCfg)
	} else {
		fileCfg, err := readConfigYAML(cfgFile)
		if err != nil {
			return err
		}
		cfg = config.New(fileCfg)
		for _, s := range updateVersionIn {
			t, err := config.ParsePatchTarget(s)
			if err != nil {
				return err
			}
			flagCfg.UpdateVersionIn = append(flagCfg.UpdateVersionIn, t)
		}
		for _, s := range updateMajorIn {
			t, err := config.ParsePatchTarget(s)
			if err != nil {
				return err
			}
			flagCfg.UpdateMajorIn = append(flagCfg.UpdateMajorIn, t)
		}
		for _, s := range updateMinorIn {
			t, err := config.ParsePatchTarget(s)
			if err != nil {
				return err
			}
			flagCfg.UpdateMinorIn = append(flagCfg.UpdateMinorIn, t)
		}
		for _, s := range updatePatchIn {
			t, err := config.ParsePatchTarget(s)
			if err != nil {
				return err
			}
			flagCfg.UpdatePatchIn = append(flagCfg.UpdatePatchIn, t)
		}
		if err := mergo.Merge(&cfg, flagCfg, mergo.WithOverride); err != nil {
			return err
		}
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}
	if !cfg.InCI {
		if env := os.Getenv("CI"); env == "true" || env == "1" || env == "yes" {
			cfg.InCI = true
		}
	}
	if cfg.GithubToken == "" {
		cfg.GithubToken = os.Getenv("GH_TOKEN")
	}
	if cfg.GithubRepository == "" {
		cfg.GithubRepository = os.Getenv("GH_REPOSITORY")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	git := gitcli.New(cfg, cfg.RepoPath)
	rnr, err := runner.New(cfg, git)
	if err != nil {
		return err
	}
	rnr.SetReleaseCreator(ghcli.New(cfg, cfg.RepoPath))
	if cfg.Model != "" {
		notes, err := llm.NewClientFromEnv(cfg.Model)
		if err != nil {
			cfg.Warning("commit annotations disabled: %v", err)
		} else {
			rnr.SetNoteService(notes)
		}
	}
	ctx := context.Background()

	stdoutfd := os.Stdout.Fd()
	istty := isatty.IsTerminal(stdoutfd)

	if printLatest {
		latest, err := rnr.Latest(ctx)
		if err != nil {
			return err
		}
		if cfg.Quiet || !istty {
			fmt.Fprintf(cfg.Term.Stdout, "%s", latest)
		} else {
			fmt.Fprintln(cfg.Term.Stdout, latest)
		}
		return nil
	}

	ver, err := rnr.Run(ctx)
	if err != nil {
		return err
	}

	tagTmpl, err := commit.NewTag(cfg.TagTemplate)
	if err != nil {
		return err
	}
	tag, err := tagTmpl.ExecuteString(commit.TagData{Version: ver})
	if err != nil {
		return err
	}
	if cfg.Quiet {
		if istty {
			fmt.Fprintln(cfg.Term.Stdout, tag)
		} else {
			fmt.Fprintf(cfg.Term.Stdout, "%s", tag)
		}
	} else {
		cfg.Printf("-> %s (%s)", tag, ver.Bump)
	}
	return nil
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s

A utility for bumping Semantic Versions from commit history.

FLAGS
%s

EXAMPLES

# preview the next version without writing anything
$ tinysemver --dry-run --verbose

# bump the version, updating the version file and changelog
$ tinysemver --version-file VERSION --changelog-file CHANGELOG.md

# keep version markers in other files up to date
$ tinysemver --update-version-in 'package.json:"version": "(.*)"'

# push the release commit and tag, and create a hosting release
$ tinysemver --push --create-release --github-repository owner/repo
`, os.Args[0], flags.FlagUsages())
}

// readConfigYAML loads a tinysemver.yaml, either from an explicit path or by
// walking up from the working directory.
func readConfigYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := ioutil.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "tinysemver.yaml")
		b, err := ioutil.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}

// environConfig reads configuration from TINYSEMVER_* environment variables,
// used when running as a GitHub Action.
func environConfig() (*config.Config, error) {
	cfg := &config.Config{
		Dryrun:           envBool("TINYSEMVER_DRY_RUN"),
		Verbose:          envBool("TINYSEMVER_VERBOSE"),
		Push:             envBool("TINYSEMVER_PUSH"),
		CreateRelease:    envBool("TINYSEMVER_CREATE_RELEASE"),
		MajorVerbs:       envList("TINYSEMVER_MAJOR_VERBS"),
		MinorVerbs:       envList("TINYSEMVER_MINOR_VERBS"),
		PatchVerbs:       envList("TINYSEMVER_PATCH_VERBS"),
		ChangelogFile:    os.Getenv("TINYSEMVER_CHANGELOG_FILE"),
		VersionFile:      os.Getenv("TINYSEMVER_VERSION_FILE"),
		RepoPath:         os.Getenv("TINYSEMVER_REPO_PATH"),
		DefaultBranch:    os.Getenv("TINYSEMVER_DEFAULT_BRANCH"),
		GitUserName:      os.Getenv("TINYSEMVER_GIT_USER_NAME"),
		GitUserEmail:     os.Getenv("TINYSEMVER_GIT_USER_EMAIL"),
		GithubToken:      os.Getenv("GITHUB_TOKEN"),
		GithubRepository: os.Getenv("GITHUB_REPOSITORY"),
		Model:            os.Getenv("TINYSEMVER_MODEL"),
	}

	var err error
	if cfg.UpdateVersionIn, err = envTargets("TINYSEMVER_UPDATE_VERSION_IN"); err != nil {
		return nil, err
	}
	if cfg.UpdateMajorIn, err = envTargets("TINYSEMVER_UPDATE_MAJOR_VERSION_IN"); err != nil {
		return nil, err
	}
	if cfg.UpdateMinorIn, err = envTargets("TINYSEMVER_UPDATE_MINOR_VERSION_IN"); err != nil {
		return nil, err
	}
	if cfg.UpdatePatchIn, err = envTargets("TINYSEMVER_UPDATE_PATCH_VERSION_IN"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envBool(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return []string{v}
}

// envTargets parses newline-separated "path:pattern" pairs.
func envTargets(key string) ([]config.PatchTarget, error) {
	var targets []config.PatchTarget
	for _, item := range strings.Split(os.Getenv(key), "\n") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		t, err := config.ParsePatchTarget(item)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
