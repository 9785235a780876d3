package router

import (
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack/backbutton"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// ScreenFunc renders a screen.
// It receives the props the route was navigated to with, and the
// navigation handle the screen can use to move elsewhere.
type ScreenFunc func(props any, nav Navigation) (result any, err error)

// Navigation is the handle passed to every rendered screen.
type Navigation interface {
	Stacks() string
	Routes() string
	CurrentStack() string
	CurrentRoute() string
	GoBack() bool
	GoHome() bool
	Navigate(key string, props any) bool
	NavigateFromRoot(path []string, key string, props any) bool
	RootStack() *Stack
	InitialStack() *Stack
	InitialRoute() *Route
}

// Options configures a Navigator.
type Options struct {
	Strict bool                   // Run Validate before building and fail on any problem
	Back   *backbutton.Dispatcher // If set, HandleBack is subscribed until Close
	Logger *slog.Logger           // Defaults to the internal navstack logger
}

// Position is the stack, route and props currently displayed.
type Position struct {
	Stack *Stack
	Route *Route
	Props any
}

// Navigator holds the current position in a navigation tree and moves it.
//
// A Navigator is not safe for concurrent use. All calls are expected to
// come from the goroutine running the UI event loop.
type Navigator struct {
	root         *Stack
	initialStack *Stack
	initialRoute *Route

	current Position

	back   *backbutton.Subscription
	logger *slog.Logger
}

// New builds the tree described by cfg and positions a Navigator at its
// initial route.
//
// If cfg has routes of its own, the root is the starting stack. Otherwise
// cfg.InitialStack must name a child of the root. The starting stack must
// have an initial route.
func New(cfg StackConfig, opts Options) (*Navigator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	if opts.Strict {
		if err := Validate(cfg); err != nil {
			logger.Error("Navigation config failed validation", "error", err)
			return nil, err
		}
	}

	root := BuildStack(cfg, nil)

	initialStack := root
	if len(cfg.Routes) == 0 {
		if cfg.InitialStack == "" {
			err := &ConfigError{Op: "build", Stack: cfg.Name, Err: ErrNoStartingStack}
			logger.Error("Unable to resolve initial stack", "error", err)
			return nil, err
		}

		initialStack = root.child(cfg.InitialStack)
		if initialStack == nil {
			err := &ConfigError{Op: "build", Stack: cfg.Name, Name: cfg.InitialStack, Err: ErrInitialStackNotFound}
			logger.Error("Unable to resolve initial stack", "error", err)
			return nil, err
		}
	}

	if initialStack.Initial == nil {
		var name string
		if initialStack == root {
			name = cfg.InitialRoute
		} else if sc := childConfig(cfg, cfg.InitialStack); sc != nil {
			name = sc.InitialRoute
		}
		err := &ConfigError{Op: "build", Stack: initialStack.Name, Name: name, Err: ErrNoInitialRoute}
		logger.Error("Unable to resolve initial route", "error", err)
		return nil, err
	}

	n := &Navigator{
		root:         root,
		initialStack: initialStack,
		initialRoute: initialStack.Initial,
		current:      Position{Stack: initialStack, Route: initialStack.Initial},
		logger:       logger,
	}

	if opts.Back != nil {
		n.back = opts.Back.Subscribe(n.HandleBack)
	}

	logger.Debug("Navigator ready", "stack", initialStack.Name, "route", n.initialRoute.Key)

	return n, nil
}

func childConfig(cfg StackConfig, name string) *StackConfig {
	for i := range cfg.Stacks {
		if cfg.Stacks[i].Name == name {
			return &cfg.Stacks[i]
		}
	}
	return nil
}

// Close detaches the navigator from its back button dispatcher, if any.
func (n *Navigator) Close() {
	if n.back != nil {
		n.back.Remove()
	}
}

func (n *Navigator) RootStack() *Stack    { return n.root }
func (n *Navigator) InitialStack() *Stack { return n.initialStack }
func (n *Navigator) InitialRoute() *Route { return n.initialRoute }

// Position returns a snapshot of the current position.
func (n *Navigator) Position() Position {
	return n.current
}

// Stacks lists the leaf stack names of the whole tree. See Stack.StackNames.
func (n *Navigator) Stacks() string {
	return n.root.StackNames()
}

// Routes lists the leaf route keys of the whole tree. See Stack.RouteKeys.
func (n *Navigator) Routes() string {
	return n.root.RouteKeys()
}

func (n *Navigator) CurrentStack() string {
	return n.current.Stack.Name
}

func (n *Navigator) CurrentRoute() string {
	return n.current.Route.Key
}

// enter moves to route, leaving a link on it back to the current position.
func (n *Navigator) enter(stack *Stack, route *Route, props any) {
	route.previous = n.current.Route
	route.previousProps = n.current.Props
	n.current = Position{Stack: stack, Route: route, Props: props}

	n.logger.Debug("Navigated", "stack", stack.Name, "route", route.Key)
}

// Navigate moves to the route with the given key in the current stack.
// It reports false, leaving the position untouched, unless exactly one
// route in the current stack has that key.
func (n *Navigator) Navigate(key string, props any) bool {
	route := n.current.Stack.uniqueRoute(key)
	if route == nil {
		n.logger.Debug("Navigate missed", "stack", n.current.Stack.Name, "route", key)
		return false
	}

	n.enter(n.current.Stack, route, props)
	return true
}

// NavigateFromRoot walks path from the root, one stack name per step.
//
// At each step, if the stack reached so far is named by the path entry and
// has exactly one route with the given key, that route is entered.
// Otherwise the walk descends into the child named by the next path entry.
// It reports false if no child matches or the path runs out.
func (n *Navigator) NavigateFromRoot(path []string, key string, props any) bool {
	stack := n.root

	for i, name := range path {
		if stack.Name == name {
			if route := stack.uniqueRoute(key); route != nil {
				n.enter(stack, route, props)
				return true
			}
		}

		if i+1 >= len(path) {
			break
		}

		next := stack.uniqueStack(path[i+1])
		if next == nil {
			break
		}
		stack = next
	}

	n.logger.Debug("NavigateFromRoot missed", "path", path, "route", key)
	return false
}

// GoBack returns to the position the current route was entered from.
// It reports false if the current route has no previous link.
func (n *Navigator) GoBack() bool {
	prev, props := n.current.Route.Previous()
	if prev == nil {
		return false
	}

	n.current = Position{Stack: prev.parent, Route: prev, Props: props}

	n.logger.Debug("Went back", "stack", prev.parent.Name, "route", prev.Key)
	return true
}

// GoHome moves to the initial route of the current stack, keeping the
// current props. It reports false if already there, or if the current
// stack has no initial route.
func (n *Navigator) GoHome() bool {
	home := n.current.Stack.Initial
	if home == nil || n.current.Route == home {
		return false
	}

	n.current.Route = home

	n.logger.Debug("Went home", "stack", n.current.Stack.Name, "route", home.Key)
	return true
}

// HandleBack answers a platform back request.
// At the root stack's initial route it reports false so the platform can
// apply its default behavior. Anywhere else it goes back and reports true,
// whether or not there was anything to go back to.
func (n *Navigator) HandleBack() bool {
	if n.current.Stack == n.root && n.current.Route == n.initialRoute {
		return false
	}

	n.GoBack()
	return true
}

// Render invokes the current route's screen with the current props.
func (n *Navigator) Render() (any, error) {
	route := n.current.Route
	if route.Screen == nil {
		return nil, &ConfigError{Op: "render", Stack: n.current.Stack.Name, Name: route.Key, Err: ErrScreenMissing}
	}
	return route.Screen(n.current.Props, n)
}
