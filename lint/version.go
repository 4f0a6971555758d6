package lint

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version is a version in the form of a (major, minor, patch) triple,
// used for checking lint applicability against kernel releases.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// ParseVersion parses a version string of the shape "major.minor.patch"
// with each part a decimal integer in 0..=255.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf(
			"version must be in format 'major.minor.patch' (e.g., '5.4.0'), got '%s'", s,
		)
	}

	names := [3]string{"major", "minor", "patch"}
	var nums [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Version{}, fmt.Errorf(
				"invalid %s version: '%s' (must be an integer in range 0..255): %w",
				names[i], part, err,
			)
		}
		nums[i] = uint8(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Cmp orders versions lexicographically on (major, minor, patch).
func (v Version) Cmp(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}

// String renders the version in its canonical dotted form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
