// Package skillname provides formatting and validation for hyphen-delimited
// skill identifiers.
package skillname

import (
	"strings"
	"unicode"

	"github.com/spetersoncode/skillinit/internal/errors"
)

// MaxLength is the maximum allowed identifier length.
const MaxLength = 40

// Title converts a hyphenated skill identifier to a human-readable title:
// each hyphen-delimited segment gets its first letter capitalized and the
// segments are joined with single spaces ("my-api-helper" -> "My Api Helper").
//
// This is a one-way display transform, not a normalization. Any input
// produces a defined output; an identifier without hyphens is returned with
// its first letter capitalized.
func Title(identifier string) string {
	segments := strings.Split(identifier, "-")
	for i, seg := range segments {
		segments[i] = capitalize(seg)
	}
	return strings.Join(segments, " ")
}

// capitalize upper-cases the first rune of s, leaving the rest as-is.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Validate checks an identifier against the skill naming rules: non-empty,
// lowercase letters, digits, and hyphens only, no leading/trailing or doubled
// hyphens, and at most MaxLength characters. The returned error names the
// violated rule.
func Validate(identifier string) error {
	if identifier == "" {
		return errors.InvalidArgs("skill name must not be empty")
	}
	if len(identifier) > MaxLength {
		return errors.InvalidArgs("skill name %q is %d characters long (maximum is %d)",
			identifier, len(identifier), MaxLength)
	}
	for _, r := range identifier {
		if !isNameRune(r) {
			return errors.InvalidArgs("skill name %q contains invalid character %q (use lowercase letters, digits, and hyphens)",
				identifier, r)
		}
	}
	if strings.HasPrefix(identifier, "-") || strings.HasSuffix(identifier, "-") {
		return errors.InvalidArgs("skill name %q must not start or end with a hyphen", identifier)
	}
	if strings.Contains(identifier, "--") {
		return errors.InvalidArgs("skill name %q must not contain consecutive hyphens", identifier)
	}
	return nil
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
