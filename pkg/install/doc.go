/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

// Package install locates Autodesk Maya installations on the local machine.
//
// The Store interface is the narrow seam between the version-resolution
// algorithm and the environment: it answers which Maya releases are
// installed and where a given release's mayapy interpreter lives. Keeping
// the seam narrow makes the resolution logic in pkg/compat and pkg/probe
// testable with fakes.
//
// FSStore is the production implementation. It scans the conventional
// Autodesk install roots for the current platform:
//
//	windows  C:\Program Files\Autodesk\Maya<year>
//	darwin   /Applications/Autodesk/maya<year>
//	linux    /usr/autodesk/maya<year>
//
// The MAYAPY_INSTALL_ROOT environment variable replaces the conventional
// roots when set.
package install
