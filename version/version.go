/*
File    : libretto/version/version.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package version exposes Libretto's own version and a compatibility gate a
// host can use to check a script's declared version requirement against the
// running core, grounded in the domain-stack's use of
// github.com/Masterminds/semver/v3. The --version flag surfaced by
// cmd/libretto (VERSION/showVersion()) is grounded in
// akashmaji946-go-mix/main/main.go's version-printing precedent.
package version

import "github.com/Masterminds/semver/v3"

// Number is the module's own release version.
const Number = "0.1.0"

// Current is the parsed form of Number, computed once at init time.
var Current = semver.MustParse(Number)

// Compatible reports whether Current satisfies constraint, a semver
// constraint string such as ">=0.1.0, <0.5.0". A host embedding Libretto can
// use this to gate a script against a version range declared in the outer
// dialogue layer's frontmatter before calling Compile.
func Compatible(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	return c.Check(Current), nil
}
