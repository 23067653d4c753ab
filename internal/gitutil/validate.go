package gitutil

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateRefName validates a branch or remote name for common illegal patterns
// before it is passed to push --set-upstream.
func ValidateRefName(name string) error {
	if name == "" {
		return errors.New("ref name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("ref name cannot start with '-': %s", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("ref name cannot contain '..': %s", name)
	}
	for _, ch := range []string{" ", "~", "^", ":", "?", "*", "["} {
		if strings.Contains(name, ch) {
			return fmt.Errorf("ref name contains invalid character %q: %s", ch, name)
		}
	}
	return nil
}
