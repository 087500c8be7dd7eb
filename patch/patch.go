// Package patch rewrites version markers in files using single-capture-group
// regular expressions. Only the captured span of the first match is
// replaced; the rest of the match, and the rest of the file, are left
// byte-identical.
package patch

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"regexp"
	"strings"

	"github.com/tinysemver/tinysemver/config"
)

// ErrNoMatches is returned when a pattern matches nothing but blank text.
// A pattern that only matches blank lines almost certainly means the version
// marker it was written for is gone.
var ErrNoMatches = errors.New("patch: no matches found")

// GroupCountError reports a pattern that does not contain exactly one
// capturing group.
type GroupCountError struct {
	Pattern string
	Groups  int
}

func (e GroupCountError) Error() string {
	return fmt.Sprintf("patch: pattern %q must contain exactly one capturing group, got %d", e.Pattern, e.Groups)
}

// Match describes one occurrence of a pattern in a file, rendered before and
// after the substitution.
type Match struct {
	Line int    `json:"line"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

// Report lists every non-empty match of a pattern, including the ones that
// were not substituted.
type Report struct {
	Path    string  `json:"file"`
	Matches []Match `json:"matches"`
}

// Patcher applies substitutions to files, honoring dry-run and verbosity
// settings.
type Patcher struct {
	cfg config.Config
}

func New(cfg config.Config) *Patcher {
	return &Patcher{cfg: cfg}
}

// Apply runs the substitution against the contents of path and, unless in
// dry-run mode, writes the result back.
func (p *Patcher) Apply(path, pattern, replacement string) (*Report, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}

	newContent, report, err := Run(string(b), pattern, replacement)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", path, err)
	}
	report.Path = path

	for _, m := range report.Matches {
		p.cfg.Debugf("Will update file: %s:%d", path, m.Line)
		p.cfg.Debugf("- %s", m.Old)
		p.cfg.Debugf("+ %s", m.New)
	}

	if p.cfg.Dryrun {
		return report, nil
	}
	mode := os.FileMode(0644)
	if info, serr := os.Stat(path); serr == nil {
		mode = info.Mode()
	}
	if err := ioutil.WriteFile(path, []byte(newContent), mode); err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return report, nil
}

// Run applies pattern to content, substituting replacement into the captured
// span of the first match only. The pattern is compiled with multiline
// anchors. All matches whose full text is non-blank are reported with their
// 1-based line numbers; zero such matches is an error even though the regex
// engine may technically have matched.
func Run(content, pattern, replacement string) (string, *Report, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return "", nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	if n := re.NumSubexp(); n != 1 {
		return "", nil, GroupCountError{Pattern: pattern, Groups: n}
	}

	matches := re.FindAllStringSubmatchIndex(content, -1)

	newContent := content
	if len(matches) > 0 {
		first := matches[0]
		if first[2] < 0 {
			return "", nil, fmt.Errorf("capture group of pattern %q did not participate in the match", pattern)
		}
		newContent = content[:first[2]] + replacement + content[first[3]:]
	}

	report := &Report{}
	for _, m := range matches {
		full := content[m[0]:m[1]]
		if strings.TrimSpace(full) == "" {
			continue
		}
		if m[2] < 0 {
			return "", nil, fmt.Errorf("capture group of pattern %q did not participate in the match", pattern)
		}
		line := strings.Count(content[:m[0]], "\n") + 1
		report.Matches = append(report.Matches, Match{
			Line: line,
			Old:  full,
			New:  full[:m[2]-m[0]] + replacement + full[m[3]-m[0]:],
		})
	}
	if len(report.Matches) == 0 {
		return "", nil, fmt.Errorf("%w for pattern %q", ErrNoMatches, pattern)
	}
	return newContent, report, nil
}
