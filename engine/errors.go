package engine

import (
	"errors"
	"fmt"
)

// ErrMissingDependency is wrapped by constructors handed a nil collaborator
var ErrMissingDependency = errors.New("missing dependency")

// RequireDependency returns a descriptive error when a collaborator is absent
func RequireDependency(owner, name string, present bool) error {
	if present {
		return nil
	}
	return fmt.Errorf("%s: %s not set: %w", owner, name, ErrMissingDependency)
}
