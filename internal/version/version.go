// Package version reports the launcher's own build version, the way the
// host would report package metadata.
package version

import (
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// DevVersion is the version string for development builds.
const DevVersion = "dev"

// BuildVersion is set at build time with -ldflags "-X ...version.BuildVersion=1.2.3".
var BuildVersion = DevVersion

// Source looks up the application version.
type Source struct {
	raw string
}

func New() *Source { return &Source{raw: BuildVersion} }

// Fixed returns a Source reporting raw instead of the build version.
func Fixed(raw string) *Source { return &Source{raw: raw} }

// Version returns the normalized version name ("1.2.3", no leading v).
// Development and unparsable builds have no version metadata.
func (s *Source) Version() (string, error) {
	if s.raw == "" || s.raw == DevVersion {
		return "", errors.New("no version metadata for development build")
	}
	sv, err := semver.NewVersion(s.raw)
	if err != nil {
		return "", errors.Wrapf(err, "parse version %q", s.raw)
	}
	return sv.String(), nil
}

// Notes renders the home screen banner for a version lookup result.
func Notes(v string, err error) string {
	if err != nil {
		v = "error"
	}
	return fmt.Sprintf("Version %s!\nTap for Patch Notes", v)
}
