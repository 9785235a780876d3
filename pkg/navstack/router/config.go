package router

import (
	"errors"
	"os"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BurntSushi/toml"
)

// RouteConfig declares one screen of a stack.
type RouteConfig struct {
	Key    string     `toml:"key"`
	Screen ScreenFunc `toml:"-"`
}

// StackConfig declares a stack and, recursively, its children.
// A stack is expected to carry either Routes or Stacks.
type StackConfig struct {
	Name         string        `toml:"name"`
	InitialRoute string        `toml:"initial_route"`
	InitialStack string        `toml:"initial_stack"`
	Routes       []RouteConfig `toml:"routes"`
	Stacks       []StackConfig `toml:"stacks"`
}

// LoadConfig reads a navigation tree from a TOML file.
//
//	name = "root"
//	initial_stack = "Main"
//
//	[[stacks]]
//	name = "Main"
//	initial_route = "Home"
//	routes = [{ key = "Home" }, { key = "Details" }]
func LoadConfig(path string) (StackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StackConfig{}, &ConfigError{Op: "load", Name: path, Err: err}
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML navigation tree. Unknown keys are logged and ignored.
func ParseConfig(data []byte) (StackConfig, error) {
	var cfg StackConfig

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return StackConfig{}, &ConfigError{Op: "load", Err: err}
	}

	for _, key := range md.Undecoded() {
		internal.GetInternalLogger().Warn("Ignoring unknown navigation config key", "key", key.String())
	}

	return cfg, nil
}

// Bind attaches screen factories to routes by key, throughout the tree.
// Routes that already have a screen are left alone. Every route left
// without a screen is reported in the returned error.
func (c *StackConfig) Bind(screens map[string]ScreenFunc) error {
	var errs []error

	for i := range c.Routes {
		r := &c.Routes[i]
		if r.Screen != nil {
			continue
		}
		if fn, ok := screens[r.Key]; ok {
			r.Screen = fn
			continue
		}
		errs = append(errs, &ConfigError{Op: "bind", Stack: c.Name, Name: r.Key, Err: ErrScreenMissing})
	}

	for i := range c.Stacks {
		if err := c.Stacks[i].Bind(screens); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Validate checks a configuration more strictly than the builder does.
// It reports stacks with both routes and stacks, initial routes that are
// not declared, and duplicate route keys or sibling stack names. All
// problems found are returned joined.
func Validate(cfg StackConfig) error {
	return errors.Join(validateStack(cfg)...)
}

func validateStack(cfg StackConfig) []error {
	var errs []error

	if len(cfg.Routes) > 0 && len(cfg.Stacks) > 0 {
		errs = append(errs, &ConfigError{Op: "validate", Stack: cfg.Name, Err: ErrRoutesAndStacks})
	}

	if len(cfg.Routes) > 0 {
		keys := make(map[string]bool, len(cfg.Routes))
		for _, r := range cfg.Routes {
			if keys[r.Key] {
				errs = append(errs, &ConfigError{Op: "validate", Stack: cfg.Name, Name: r.Key, Err: ErrDuplicateKey})
			}
			keys[r.Key] = true
		}
		if !keys[cfg.InitialRoute] {
			errs = append(errs, &ConfigError{Op: "validate", Stack: cfg.Name, Name: cfg.InitialRoute, Err: ErrUnknownInitialRoute})
		}
	}

	names := make(map[string]bool, len(cfg.Stacks))
	for _, child := range cfg.Stacks {
		if names[child.Name] {
			errs = append(errs, &ConfigError{Op: "validate", Stack: cfg.Name, Name: child.Name, Err: ErrDuplicateKey})
		}
		names[child.Name] = true
		errs = append(errs, validateStack(child)...)
	}

	return errs
}
