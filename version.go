// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package consolekit

// SemVersion is the semantic version of the consolekit module.
const SemVersion = "1.0.0"
