/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Version
		expectedError bool
	}{
		{
			name:     "major only",
			input:    "3",
			expected: Version{Major: 3},
		},
		{
			name:     "major.minor",
			input:    "3.9",
			expected: Version{Major: 3, Minor: 9},
		},
		{
			name:     "full version",
			input:    "3.9.7",
			expected: Version{Major: 3, Minor: 9, Patch: 7},
		},
		{
			name:     "all zeros",
			input:    "0.0.0",
			expected: Version{},
		},
		{
			name:     "python two line",
			input:    "2.7.18",
			expected: Version{Major: 2, Minor: 7, Patch: 18},
		},
		{
			name:     "trailing text after components",
			input:    "3.9.7rc1",
			expected: Version{Major: 3, Minor: 9, Patch: 7},
		},
		{
			name:     "extra components ignored",
			input:    "1.2.3.4",
			expected: Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:          "empty string",
			input:         "",
			expectedError: true,
		},
		{
			name:          "no leading integer",
			input:         "abc",
			expectedError: true,
		},
		{
			name:          "v prefix not supported",
			input:         "v3.9.7",
			expectedError: true,
		},
		{
			name:          "leading whitespace",
			input:         " 3.9.7",
			expectedError: true,
		},
		{
			name:          "negative major",
			input:         "-3",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.expectedError {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %+v", tt.input, v)
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !v.Equals(tt.expected) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, v, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  Version
		expected string
	}{
		{"full", New(3, 9, 7), "3.9.7"},
		{"zero patch rendered", New(3, 9, 0), "3.9.0"},
		{"zero value", Version{}, "0.0.0"},
		{"large components", New(2023, 12, 31), "2023.12.31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	versions := []Version{
		{},
		New(1, 0, 0),
		New(2, 7, 18),
		New(3, 9, 7),
		New(2023, 0, 1),
	}

	for _, v := range versions {
		parsed, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", v.String(), err)
		}
		if !parsed.Equals(v) {
			t.Errorf("round trip mismatch: Parse(%q) = %+v, want %+v", v.String(), parsed, v)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Version
		expected int
	}{
		{"equal", New(3, 9, 7), New(3, 9, 7), 0},
		{"major dominates", New(2, 99, 99), New(3, 0, 0), -1},
		{"minor dominates patch", New(3, 7, 99), New(3, 9, 0), -1},
		{"patch breaks tie", New(3, 9, 7), New(3, 9, 2), 1},
		{"zero value smallest", Version{}, New(0, 0, 1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expected {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			// Compare must be antisymmetric.
			if got := tt.b.Compare(tt.a); got != -tt.expected {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Version
		expected Version
	}{
		{"identical", New(3, 9, 7), New(3, 9, 7), Version{}},
		{"patch only", New(3, 9, 7), New(3, 9, 2), New(0, 0, 5)},
		{"cross major", New(2, 7, 18), New(3, 9, 7), New(1, 2, 11)},
		{"componentwise not borrowed", New(3, 0, 0), New(2, 9, 9), New(1, 9, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); !got.Equals(tt.expected) {
				t.Errorf("Distance(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDistanceProperties(t *testing.T) {
	versions := []Version{
		{},
		New(1, 2, 3),
		New(3, 9, 7),
		New(2, 7, 18),
		New(10, 0, 1),
	}

	for _, a := range versions {
		// Distance to self is zero.
		if d := Distance(a, a); !d.Equals(Version{}) {
			t.Errorf("Distance(%s, %s) = %s, want 0.0.0", a, a, d)
		}

		// Distance is symmetric.
		for _, b := range versions {
			ab, ba := Distance(a, b), Distance(b, a)
			if !ab.Equals(ba) {
				t.Errorf("Distance not symmetric: Distance(%s, %s) = %s, Distance(%s, %s) = %s",
					a, b, ab, b, a, ba)
			}
		}
	}
}

func TestDistanceOrderingDominance(t *testing.T) {
	base := New(3, 9, 7)

	// A huge patch difference must still be closer than any minor difference,
	// and any minor difference closer than a major one.
	patchFar := Distance(base, New(3, 9, 99))
	minorNear := Distance(base, New(3, 8, 7))
	majorNear := Distance(base, New(4, 9, 7))

	if !patchFar.Less(minorNear) {
		t.Errorf("patch distance %s should order before minor distance %s", patchFar, minorNear)
	}
	if !minorNear.Less(majorNear) {
		t.Errorf("minor distance %s should order before major distance %s", minorNear, majorNear)
	}
}
