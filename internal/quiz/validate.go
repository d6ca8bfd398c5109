package quiz

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateModules checks ids and task shapes. Modules without tasks are
// allowed; the engine serves a placeholder for them.
func validateModules(modules []Module) error {
	var errs []string

	seen := make(map[string]bool, len(modules))
	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("module %q has an empty id", m.Title))
			continue
		}
		if seen[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module id: %q", m.ID))
		}
		seen[m.ID] = true

		for i, t := range m.Tasks {
			prefix := fmt.Sprintf("module %q task %d", m.ID, i)
			if len(t.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(t.Options)))
			}
			if t.CorrectIndex < 0 || t.CorrectIndex >= len(t.Options) {
				errs = append(errs, fmt.Sprintf("%s: correct index %d out of range", prefix, t.CorrectIndex))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
