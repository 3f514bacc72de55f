// Package version provides centralized version information for gns3util.
// All versions follow semantic versioning (semver) conventions.

package version

// Gns3utilVersion holds the current gns3util CLI version. It is reported by
// --version and sent in the User-Agent header of every API request.
// Format: major.minor.patch[-prerelease][+build]
const Gns3utilVersion = "0.1.0-dev"
