package router

import "strings"

// Route is one screen definition inside a Stack.
//
// Route nodes are shared across navigations. The previous link is stored
// on the node itself, so each route remembers only the single position it
// was most recently entered from.
type Route struct {
	Key    string
	Screen ScreenFunc

	parent        *Stack
	previous      *Route
	previousProps any
}

// Stack is a named group of routes or of child stacks.
type Stack struct {
	Name    string
	Routes  []*Route
	Stacks  []*Stack
	Initial *Route // nil when no route matches the configured initial route

	parent *Stack
}

// ParentStack returns the stack that owns the route.
func (r *Route) ParentStack() *Stack {
	return r.parent
}

// Previous returns the route this one was last entered from, and the props
// that route was showing, or nil if it has never been navigated to.
func (r *Route) Previous() (*Route, any) {
	return r.previous, r.previousProps
}

// ParentStack returns the enclosing stack, or nil for the root.
func (s *Stack) ParentStack() *Stack {
	return s.parent
}

// BuildStack builds the navigation tree rooted at cfg.
//
// Routes and child stacks are built whenever they are present, even if a
// stack declares both. Initial is left nil when no route matches
// cfg.InitialRoute; use Validate to reject such trees up front.
func BuildStack(cfg StackConfig, parent *Stack) *Stack {
	stack := &Stack{Name: cfg.Name}

	if cfg.Routes != nil {
		stack.Routes = make([]*Route, 0, len(cfg.Routes))
		for _, rc := range cfg.Routes {
			stack.Routes = append(stack.Routes, BuildRoute(rc, stack))
		}
		stack.Initial = stack.route(cfg.InitialRoute)
	}

	if cfg.Stacks != nil {
		stack.Stacks = make([]*Stack, 0, len(cfg.Stacks))
		for _, sc := range cfg.Stacks {
			stack.Stacks = append(stack.Stacks, BuildStack(sc, stack))
		}
	}

	stack.parent = parent

	return stack
}

// BuildRoute wraps a route declaration into a node owned by stack.
func BuildRoute(cfg RouteConfig, stack *Stack) *Route {
	return &Route{
		Key:    cfg.Key,
		Screen: cfg.Screen,
		parent: stack,
	}
}

// route returns the first route with the given key.
func (s *Stack) route(key string) *Route {
	for _, r := range s.Routes {
		if r.Key == key {
			return r
		}
	}
	return nil
}

// uniqueRoute returns the route with the given key only if exactly one matches.
func (s *Stack) uniqueRoute(key string) *Route {
	var found *Route
	for _, r := range s.Routes {
		if r.Key != key {
			continue
		}
		if found != nil {
			return nil
		}
		found = r
	}
	return found
}

// uniqueStack returns the child stack with the given name only if exactly one matches.
func (s *Stack) uniqueStack(name string) *Stack {
	var found *Stack
	for _, child := range s.Stacks {
		if child.Name != name {
			continue
		}
		if found != nil {
			return nil
		}
		found = child
	}
	return found
}

// child returns the first child stack with the given name.
func (s *Stack) child(name string) *Stack {
	for _, child := range s.Stacks {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// StackNames lists the names of the leaf stacks below s, depth first,
// joined with commas. A stack with children contributes only its
// children's names, never its own.
func (s *Stack) StackNames() string {
	if len(s.Stacks) == 0 {
		return s.Name
	}

	names := make([]string, 0, len(s.Stacks))
	for _, child := range s.Stacks {
		names = append(names, child.StackNames())
	}
	return strings.Join(names, ",")
}

// RouteKeys lists the route keys of the leaf stacks below s, depth first,
// joined with commas. Routes declared on a stack that also has children
// are not listed.
func (s *Stack) RouteKeys() string {
	if len(s.Stacks) == 0 {
		keys := make([]string, 0, len(s.Routes))
		for _, r := range s.Routes {
			keys = append(keys, r.Key)
		}
		return strings.Join(keys, ",")
	}

	keys := make([]string, 0, len(s.Stacks))
	for _, child := range s.Stacks {
		keys = append(keys, child.RouteKeys())
	}
	return strings.Join(keys, ",")
}
