package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration problems.
var (
	// ErrNoStartingStack indicates the top-level stack has no routes and
	// does not name an initial child stack to start from.
	ErrNoStartingStack = errors.New("stack has no routes and no initial stack")

	// ErrInitialStackNotFound indicates the configured initial stack is not
	// a child of the root stack.
	ErrInitialStackNotFound = errors.New("initial stack not found")

	// ErrNoInitialRoute indicates the starting stack has no route whose key
	// matches its initial route.
	ErrNoInitialRoute = errors.New("starting stack has no initial route")

	// ErrRoutesAndStacks is reported by strict validation for a stack that
	// declares both routes and child stacks.
	ErrRoutesAndStacks = errors.New("stack declares both routes and stacks")

	// ErrUnknownInitialRoute is reported by strict validation when a stack
	// names an initial route it does not contain.
	ErrUnknownInitialRoute = errors.New("initial route not found")

	// ErrDuplicateKey is reported by strict validation when two routes or
	// two sibling stacks share a name.
	ErrDuplicateKey = errors.New("duplicate name")

	// ErrScreenMissing indicates a route was rendered without a screen bound to it.
	ErrScreenMissing = errors.New("route has no screen")
)

// ConfigError describes a configuration problem found while building or
// validating a navigation tree.
type ConfigError struct {
	Op    string // Operation that failed (e.g., "build", "validate", "load")
	Stack string // Name of the stack the problem was found in
	Name  string // Offending route key or stack name, if any
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("navstack: %s: stack %q: %q: %v", e.Op, e.Stack, e.Name, e.Err)
	case e.Stack != "":
		return fmt.Sprintf("navstack: %s: stack %q: %v", e.Op, e.Stack, e.Err)
	default:
		return fmt.Sprintf("navstack: %s: %v", e.Op, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is (or wraps) a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
