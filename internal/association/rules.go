package association

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// extensionPattern accepts a dot followed by 1-6 ASCII letters or digits.
var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,6}$`)

// ValidateExtension checks that ext is a file extension such as ".png" or ".fspy".
// Case is preserved; ".PNG" and ".png" are both valid and distinct.
func ValidateExtension(ext string) error {
	if extensionPattern.MatchString(ext) {
		return nil
	}
	return &ValidationError{
		Rule:    RuleBadExtension,
		Field:   "extension",
		Value:   ext,
		Message: "file extension must be a dot followed by 1-6 letters or digits, e.g. .png, .sni",
	}
}

// IconTypes matches icon file paths against the allowed image suffixes.
type IconTypes struct {
	suffixes []string
	globs    []glob.Glob
}

// NewIconTypes compiles the given suffixes (".png", ".ICO", ...) into
// case-insensitive matchers.
func NewIconTypes(suffixes []string) (*IconTypes, error) {
	if len(suffixes) == 0 {
		return nil, fmt.Errorf("association: no icon types configured")
	}

	t := &IconTypes{
		suffixes: make([]string, 0, len(suffixes)),
		globs:    make([]glob.Glob, 0, len(suffixes)),
	}
	for _, s := range suffixes {
		lower := strings.ToLower(s)
		g, err := glob.Compile("*" + glob.QuoteMeta(lower))
		if err != nil {
			return nil, fmt.Errorf("association: compile icon type %q: %w", s, err)
		}
		t.suffixes = append(t.suffixes, lower)
		t.globs = append(t.globs, g)
	}
	return t, nil
}

// Match reports whether path ends with one of the allowed suffixes, ignoring case.
func (t *IconTypes) Match(path string) bool {
	lower := strings.ToLower(path)
	for _, g := range t.globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

// Validate returns a bad-icon-type ValidationError when path does not match.
func (t *IconTypes) Validate(path string) error {
	if t.Match(path) {
		return nil
	}
	return &ValidationError{
		Rule:    RuleBadIconType,
		Field:   "icon",
		Value:   path,
		Message: "icon must be an image file with one of the following extensions: " + strings.Join(t.suffixes, ", "),
	}
}

// Suffixes returns the normalized suffix list.
func (t *IconTypes) Suffixes() []string {
	out := make([]string, len(t.suffixes))
	copy(out, t.suffixes)
	return out
}
