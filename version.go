// Package fuzzytable carries module-level metadata. The grid itself lives in
// the grid, table, tui and editors packages.
package fuzzytable

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Semver is a parsed SemVer 2.0.0 version.
type Semver struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (v Semver) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseSemver parses v without a leading `v`.
func ParseSemver(v string) (Semver, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, fmt.Errorf("fuzzytable: invalid semver %q", v)
	}
	var out Semver
	var err error
	if out.Major, err = strconv.Atoi(m[1]); err != nil {
		return Semver{}, err
	}
	if out.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Semver{}, err
	}
	if out.Patch, err = strconv.Atoi(m[3]); err != nil {
		return Semver{}, err
	}
	out.Pre, out.Build = m[4], m[5]
	return out, nil
}

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseSemver(v)
	return err == nil
}
