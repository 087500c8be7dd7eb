package runner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tinysemver/tinysemver/commit"
	"github.com/tinysemver/tinysemver/model"
)

// changelogDate matches the "August 05, 2024" style headings the changelog
// uses.
const changelogDate = "January 02, 2006"

var sectionTitle = cases.Title(language.English)

// RenderChangelog writes one release block: a dated heading followed by a
// subsection per non-empty severity bucket, in Major/Minor/Patch order.
// The block starts with a newline so it can be appended directly.
func RenderChangelog(w io.Writer, now time.Time, ver *commit.Version) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\n## %s: v%s\n", now.Format(changelogDate), ver.V())
	writeSection(bw, commit.ReleaseMajor, ver.Groups.Major)
	writeSection(bw, commit.ReleaseMinor, ver.Groups.Minor)
	writeSection(bw, commit.ReleasePatch, ver.Groups.Patch)

	return bw.Flush()
}

func writeSection(bw *bufio.Writer, t commit.ReleaseType, commits []*model.Commit) {
	if len(commits) == 0 {
		return
	}
	fmt.Fprintf(bw, "\n### %s\n\n", sectionTitle.String(strings.ToLower(t.String())))
	for _, c := range commits {
		fmt.Fprintf(bw, "- %s (%s)\n", c.Subject, c.ShortID())
	}
}

// appendChangelog renders the release block and appends it to the
// configured changelog file. Existing content is never rewritten.
func (r *Runner) appendChangelog(ver *commit.Version) error {
	if r.cfg.ChangelogFile == "" {
		return nil
	}
	path := r.resolvePath(r.cfg.ChangelogFile)

	b := &bytes.Buffer{}
	if err := RenderChangelog(b, time.Now(), ver); err != nil {
		return err
	}

	r.cfg.Printf("Will update file: %s", path)
	r.cfg.Debugf("? Appending %d lines", bytes.Count(b.Bytes(), []byte("\n"))+1)

	if r.cfg.Dryrun {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	if _, err := f.Write(b.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("runner: %w", err)
	}
	return f.Close()
}
