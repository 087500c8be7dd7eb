package config

import (
	"fmt"
	"strings"
)

// PatchTarget is a file path plus a regular expression containing exactly
// one capturing group. The captured span is replaced with a version
// component when a release is cut.
type PatchTarget struct {
	Path    string `json:"file"`
	Pattern string `json:"pattern"`
}

// ParsePatchTarget splits a "path:pattern" pair, as accepted on the command
// line and in TINYSEMVER_UPDATE_*_IN environment variables. Only the first
// colon separates; the pattern may contain colons.
func ParsePatchTarget(s string) (PatchTarget, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return PatchTarget{}, fmt.Errorf(`config: patch target %q must be in the "path:pattern" format`, s)
	}
	return PatchTarget{Path: parts[0], Pattern: parts[1]}, nil
}

// Component selects which part of the resolved version is written into a
// patch target, and doubles as the severity threshold gating it: the full
// version is written on any bump, individual components only when the bump
// reaches their severity.
type Component int

const (
	ComponentFull Component = iota
	ComponentMajor
	ComponentMinor
	ComponentPatch
)

func (c Component) String() string {
	switch c {
	case ComponentFull:
		return "version"
	case ComponentMajor:
		return "major"
	case ComponentMinor:
		return "minor"
	case ComponentPatch:
		return "patch"
	}
	return "<unknown>"
}

// VersionTarget is a PatchTarget bound to the version component it writes.
type VersionTarget struct {
	PatchTarget
	Component Component
}

// Targets flattens the four configured target lists into one ordered list of
// component-bound targets, so callers apply a single severity filter instead
// of four parallel code paths.
func (c Config) Targets() []VersionTarget {
	var targets []VersionTarget
	for _, t := range c.UpdateVersionIn {
		targets = append(targets, VersionTarget{PatchTarget: t, Component: ComponentFull})
	}
	for _, t := range c.UpdateMajorIn {
		targets = append(targets, VersionTarget{PatchTarget: t, Component: ComponentMajor})
	}
	for _, t := range c.UpdateMinorIn {
		targets = append(targets, VersionTarget{PatchTarget: t, Component: ComponentMinor})
	}
	for _, t := range c.UpdatePatchIn {
		targets = append(targets, VersionTarget{PatchTarget: t, Component: ComponentPatch})
	}
	return targets
}
