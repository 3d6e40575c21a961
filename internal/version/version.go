// Package version exposes build version information.
package version

// Version is the application version. Overridden at build time via
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "1.2.0"
