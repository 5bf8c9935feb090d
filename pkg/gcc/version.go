package gcc

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// versionString is the package version embedded in go.mod's leading
// comment; kept as a parsed semver.Version so callers can compare
// compatibility without reaching for string splitting.
const versionString = "0.1.0"

// Version is the parsed package version. Parsing a constant at init time
// means a malformed versionString fails fast at program startup rather
// than surfacing as a confusing error deep inside a propagator.
var Version = mustParseVersion(versionString)

func mustParseVersion(s string) semver.Version {
	v, err := semver.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("gcc: invalid embedded version %q: %v", s, err))
	}
	return v
}

// CompatibleWith reports whether a Config produced by a different build
// of this package (same major version) can be decoded by this one.
func CompatibleWith(other semver.Version) bool {
	return other.Major == Version.Major
}
