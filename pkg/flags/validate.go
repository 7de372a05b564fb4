package flags

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidationError lists every schema problem found in a flags file.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid flags config: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid flags config (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) add(problem string) {
	e.Problems = append(e.Problems, problem)
}

// Validate checks the semantic rules a loaded config must satisfy. Flags
// without colors are rejected here so the renderer never divides a width by
// zero stripes.
func (c *Config) Validate() error {
	verr := &ValidationError{}

	if c.RotationDelaySeconds < 0 {
		verr.add(fmt.Sprintf("rotation_delay_seconds = %d must not be negative", c.RotationDelaySeconds))
	}

	switch c.LabelCase {
	case "", CaseAsIs, CaseTitle, CaseUpper:
	default:
		verr.add(fmt.Sprintf("label_case %q is not one of %s, %s, %s", c.LabelCase, CaseAsIs, CaseTitle, CaseUpper))
	}

	for i, f := range c.Flags {
		if strings.TrimSpace(f.Name) == "" {
			verr.add(fmt.Sprintf("flags[%d] has no name", i))
		} else if strings.ContainsFunc(f.Name, unicode.IsControl) {
			verr.add(fmt.Sprintf("flags[%d] name %q contains control characters", i, f.Name))
		}
		if len(f.Colors) == 0 {
			verr.add(fmt.Sprintf("flags[%d] (%s) has no colors", i, f.Name))
		}
		for j, col := range f.Colors {
			if strings.TrimSpace(col.Name) == "" {
				verr.add(fmt.Sprintf("flags[%d].colors[%d] has no name", i, j))
			} else if strings.ContainsFunc(col.Name, unicode.IsControl) {
				verr.add(fmt.Sprintf("flags[%d].colors[%d] name %q contains control characters", i, j, col.Name))
			}
		}
	}

	seen := make(map[string]bool, len(c.JumpKeys))
	for i, k := range c.JumpKeys {
		switch {
		case utf8.RuneCountInString(k) != 1 || !printable(k):
			verr.add(fmt.Sprintf("jump_keys[%d] %q must be a single printable key", i, k))
		case slices.Contains(ReservedKeys, k):
			verr.add(fmt.Sprintf("jump_keys[%d] %q is reserved for a command", i, k))
		case seen[k]:
			verr.add(fmt.Sprintf("jump_keys[%d] %q is bound twice", i, k))
		}
		seen[k] = true
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

func printable(k string) bool {
	r, _ := utf8.DecodeRuneInString(k)
	return unicode.IsGraphic(r) && !unicode.IsSpace(r)
}
