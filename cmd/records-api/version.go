package main

import "runtime/debug"

// version is stamped by release builds with -ldflags "-X main.version=...".
var version = ""

// getVersion reports the stamped version, falling back to the module
// version recorded in build info, then to "dev" for local builds.
func getVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return "dev"
}
