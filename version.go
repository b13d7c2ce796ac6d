// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

import "fmt"

// Semantic version of the wire format and public API. See https://semver.org/.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Version is the MAJOR.MINOR.PATCH string for VersionMajor/Minor/Patch.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
