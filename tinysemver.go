// Package tinysemver bumps semantic versions from commit history. It
// classifies commits since the last release tag by their leading verb,
// resolves the next version, patches version markers across configured files
// using single-capture-group regular expressions, appends a changelog entry,
// and creates an annotated release tag.
//
// Related packages: config, commit, patch, runner, model, vcs, vcs/gitcli,
// vcs/ghcli, llm
package tinysemver

import "github.com/tinysemver/tinysemver/config"

// Config holds most of the configuration variables for tinysemver. This
// struct is intended for command-line use, so not all of its attributes are
// applicable to every operation.
//
// See "go doc github.com/tinysemver/tinysemver/config Config" for more
// information.
type Config = config.Config
