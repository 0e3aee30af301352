package outdir

import (
	"fmt"
	"strings"
)

const schemeSeparator = "://"

var dirnameReplacer = strings.NewReplacer(
	".", "_",
	"/", "",
	":", "_",
)

// TargetToDirname turns a target URL into a name usable as a single path segment.
// The text between the first "://" and the next one (or the end) is kept; dots
// and colons become underscores and slashes are dropped, so
// "http://example.com/a/b" yields "example_comab".
//
// A target with nothing usable after the separator is rejected: an empty name
// would put the date directory straight under the root.
func TargetToDirname(target string) (string, error) {
	_, rest, found := strings.Cut(target, schemeSeparator)
	if !found {
		return "", fmt.Errorf("%w: %q has no %q separator", ErrInvalidTargetFormat, target, schemeSeparator)
	}

	// "http://a.b/?to=https://c.d" keeps "a.b/?to=https"
	authority, _, _ := strings.Cut(rest, schemeSeparator)

	name := dirnameReplacer.Replace(authority)
	if name == "" {
		return "", fmt.Errorf("%w: %q has no host after %q", ErrInvalidTargetFormat, target, schemeSeparator)
	}
	return name, nil
}
