// Package version exposes the build version string.
package version

// version is overridable at build time via
// -ldflags "-X github.com/skdeore/rtopulse/pkg/version.version=v1.2.3".
var version = "0.1.0-dev"

// Version returns the current build version.
func Version() string {
	return version
}
