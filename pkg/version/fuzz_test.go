/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package version

import (
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("3")
	f.Add("3.9")
	f.Add("3.9.7")
	f.Add("2.7.18")
	f.Add("0")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v1.2.3")
	f.Add("-1")
	f.Add("1.-2")
	f.Add("a.b.c")
	f.Add("1.2.3.4")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("3.9.7rc1")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)

		if err != nil {
			return
		}

		// All components should be non-negative
		if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
			t.Errorf("Parse(%q) returned negative component: %+v", input, v)
		}

		// The canonical string must round-trip exactly
		v2, err2 := Parse(v.String())
		if err2 != nil {
			t.Errorf("re-parsing %q (from %q) failed: %v", v.String(), input, err2)
		} else if !v.Equals(v2) {
			t.Errorf("round-trip mismatch for %q: %+v != %+v", input, v, v2)
		}

		// Distance and comparison must not panic and must be consistent
		d := Distance(v, v2)
		if !d.Equals(Version{}) {
			t.Errorf("Distance(%s, %s) = %s, want 0.0.0", v, v2, d)
		}
		if v.Compare(v2) != 0 {
			t.Errorf("Compare(%s, %s) != 0", v, v2)
		}
	})
}
