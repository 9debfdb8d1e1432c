/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidFormat is returned when a version string does not start with a
// numeric major component.
var ErrInvalidFormat = errors.New("invalid version format")

// versionPattern matches "major", "major.minor", or "major.minor.patch" at
// the start of a string. Trailing text after the matched components is
// ignored, so values like "3.9.7rc1" still parse.
var versionPattern = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Version represents a three-part version number with Major, Minor, and
// Patch components. Missing components default to zero, so "3.9" and
// "3.9.0" parse to the same value. The zero value is a valid Version.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// New creates a new Version with the specified major, minor, and patch values.
func New(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// Parse parses a version string into a Version.
// Supported formats: "3", "3.9", "3.9.7". Components that are not present
// default to zero. Returns ErrInvalidFormat if the string does not start
// with a numeric major component.
func Parse(s string) (Version, error) {
	match := versionPattern.FindStringSubmatch(s)
	if match == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var v Version
	for i, target := range []*int{&v.Major, &v.Minor, &v.Patch} {
		group := match[i+1]
		if group == "" {
			continue
		}
		num, err := strconv.Atoi(group)
		if err != nil {
			// Unreachable with the current pattern since every group is \d+,
			// kept as a guard against pattern edits.
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		*target = num
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String returns the canonical "major.minor.patch" representation with all
// three components rendered, including zero-valued ones. This exact form is
// what compatibility tables are keyed on, so "3.9" stringifies to "3.9.0".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Equals returns true if v equals other in all components.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}

// Compare returns an integer comparing two versions lexicographically by
// (Major, Minor, Patch): -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return sign(v.Major - other.Major)
	}
	if v.Minor != other.Minor {
		return sign(v.Minor - other.Minor)
	}
	return sign(v.Patch - other.Patch)
}

// Less returns true if v orders strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Distance returns the componentwise absolute difference between two
// versions, as a Version rather than a scalar. Because distances are
// themselves compared lexicographically, a major-component difference
// always dominates any minor difference, and minor dominates patch.
func Distance(a, b Version) Version {
	return Version{
		Major: abs(a.Major - b.Major),
		Minor: abs(a.Minor - b.Minor),
		Patch: abs(a.Patch - b.Patch),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
