/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package version provides parsing, comparison, and distance computation for
// three-part version numbers.
//
// # Overview
//
// Versions are ordered triples (Major, Minor, Patch) of non-negative
// integers. Parsing accepts one to three dot-separated components and
// defaults missing components to zero:
//
//	v, err := version.Parse("3.9")
//	fmt.Println(v) // Output: 3.9.0
//
// The canonical string form always renders all three components, because the
// compatibility table in pkg/compat is keyed on that exact form.
//
// # Distance
//
// Distance between two versions is the componentwise absolute difference,
// returned as a Version rather than a scalar:
//
//	d := version.Distance(version.New(3, 9, 7), version.New(3, 7, 9))
//	fmt.Println(d) // Output: 0.2.2
//
// Distances are compared with the same lexicographic order as versions, so a
// one-major difference is always "farther" than any minor or patch
// difference. Nearest-match selection in pkg/compat depends on this
// dominance ordering.
package version
