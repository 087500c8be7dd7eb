package commit

import "testing"

func TestStartsWithVerb(t *testing.T) {
	tcs := []struct {
		name    string
		subject string
		verb    string
		expect  bool
	}{
		{name: "colon", subject: "Fix: bug", verb: "fix", expect: true},
		{name: "space", subject: "fix the bug", verb: "fix", expect: true},
		{name: "exact-length", subject: "fix", verb: "fix", expect: true},
		{name: "case-insensitive", subject: "FIX: bug", verb: "fix", expect: true},
		{name: "prefix-of-word", subject: "fixture issue", verb: "fix", expect: false},
		{name: "mid-message", subject: "one fix later", verb: "fix", expect: false},
		{name: "punctuation", subject: "fix(scope): bug", verb: "fix", expect: false},
		{name: "shorter-subject", subject: "fi", verb: "fix", expect: false},
		{name: "empty-verb", subject: "fix: bug", verb: "", expect: false},
		{name: "tab", subject: "fix\tthe bug", verb: "fix", expect: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := StartsWithVerb(tc.subject, tc.verb); got != tc.expect {
				t.Errorf("StartsWithVerb(%q, %q) = %v, expected %v", tc.subject, tc.verb, got, tc.expect)
			}
		})
	}
}
