package commit

import (
	"errors"
	"testing"
)

func TestLatestRelease(t *testing.T) {
	tcs := []struct {
		name      string
		tags      []string
		expectTag string
		expectErr error
	}{
		{
			name:      "basic",
			tags:      []string{"v0.1.0", "v0.2.0", "v0.1.1"},
			expectTag: "v0.2.0",
		},
		{
			name:      "unordered",
			tags:      []string{"v1.10.0", "v1.9.0", "v1.2.0"},
			expectTag: "v1.10.0",
		},
		{
			name:      "no-v-prefix",
			tags:      []string{"0.1.0", "0.2.0"},
			expectTag: "0.2.0",
		},
		{
			name:      "skips-prereleases",
			tags:      []string{"v1.2.3", "v1.3.0-rc.1"},
			expectTag: "v1.2.3",
		},
		{
			name:      "skips-invalid",
			tags:      []string{"nightly", "v1.0.0", "v1.x.2"},
			expectTag: "v1.0.0",
		},
		{
			name:      "none",
			tags:      nil,
			expectErr: ErrNoTags,
		},
		{
			name:      "only-invalid",
			tags:      []string{"nightly", "deploy-2020"},
			expectErr: ErrNoTags,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			v, tag, err := LatestRelease(tc.tags)
			if tc.expectErr != nil {
				if !errors.Is(err, tc.expectErr) {
					t.Fatalf("expected error %v, got %v", tc.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if tag != tc.expectTag {
				t.Errorf("expected tag %q, got %q", tc.expectTag, tag)
			}
			parsed, err := ParseTag(tc.expectTag)
			if err != nil {
				t.Fatal(err)
			}
			if !v.EQ(parsed) {
				t.Errorf("expected version %s, got %s", parsed, v)
			}
		})
	}
}
