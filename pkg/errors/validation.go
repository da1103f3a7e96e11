package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// presetNameRegex matches preset names: lowercase letters, digits, dash and underscore.
var presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidatePresetName validates a preset name.
//
// Names are used as TOML table keys, URL path segments and CLI arguments,
// so the rules are conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Lowercase ASCII letters, digits, '-' and '_' only
//   - Must start with a letter or digit
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}

	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}

	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
