package commit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StartsWithVerb reports whether a commit subject is led by verb, ignoring
// capitalization. The character following the verb must be whitespace, a
// colon, or the end of the subject, so "fixture: ..." does not match "fix".
func StartsWithVerb(subject, verb string) bool {
	if verb == "" || len(subject) < len(verb) {
		return false
	}
	if !strings.EqualFold(subject[:len(verb)], verb) {
		return false
	}
	if len(subject) == len(verb) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(subject[len(verb):])
	return unicode.IsSpace(r) || r == ':'
}

func startsWithAny(subject string, verbs []string) bool {
	for _, verb := range verbs {
		if StartsWithVerb(subject, verb) {
			return true
		}
	}
	return false
}
