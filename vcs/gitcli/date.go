package gitcli

import (
	"time"
)

// gitISO8601 is the author date layout produced by git log's %ai
// placeholder: 2024-08-05 16:26:10 -0700
const gitISO8601 = "2006-01-02 15:04:05 -0700"

func parseGitDate(s string) (time.Time, error) {
	return time.Parse(gitISO8601, s)
}
