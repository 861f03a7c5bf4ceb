package registry

import (
	"fmt"
	"strings"
	"unicode"
)

// ReservedPrefix marks helper definitions that are never registered as
// plugins. Discovery skips files carrying it and Register rejects names
// starting with it.
const ReservedPrefix = "_"

// ValidateName checks that name can identify a plugin: it must be
// non-empty, must not start with ReservedPrefix and may only contain
// letters, digits, '_' and '-'.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.HasPrefix(name, ReservedPrefix) {
		return fmt.Errorf("%w: %q starts with the reserved prefix %q", ErrInvalidName, name, ReservedPrefix)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			continue
		}
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, r)
	}
	return nil
}
