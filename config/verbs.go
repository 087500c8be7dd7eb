package config

import "strings"

var (
	DefaultMajorVerbs = []string{"major", "breaking", "break"}
	DefaultMinorVerbs = []string{"minor", "feature", "add", "new"}
	DefaultPatchVerbs = []string{"patch", "fix", "bug", "improve", "docs", "make"}
)

// NormalizeVerbs cleans up a configured verb list. Entries may themselves be
// comma-separated ("fix,patch,bug"), quoted, or mixed case; the result is a
// flat list of lowercase verbs. A nil input yields the defaults.
func NormalizeVerbs(verbs, defaults []string) []string {
	if verbs == nil {
		return defaults
	}
	var res []string
	for _, entry := range verbs {
		for _, verb := range strings.Split(entry, ",") {
			verb = strings.Trim(strings.TrimSpace(verb), `"'`)
			if verb == "" {
				continue
			}
			res = append(res, strings.ToLower(verb))
		}
	}
	return res
}

// NormalizedVerbs returns the three verb severity sets with defaults applied.
func (c Config) NormalizedVerbs() (major, minor, patch []string) {
	major = NormalizeVerbs(c.MajorVerbs, DefaultMajorVerbs)
	minor = NormalizeVerbs(c.MinorVerbs, DefaultMinorVerbs)
	patch = NormalizeVerbs(c.PatchVerbs, DefaultPatchVerbs)
	return major, minor, patch
}
