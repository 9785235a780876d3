package router_test

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/navstack/pkg/navstack/backbutton"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

func routes(keys ...string) []router.RouteConfig {
	out := make([]router.RouteConfig, 0, len(keys))
	for _, k := range keys {
		out = append(out, router.RouteConfig{Key: k})
	}
	return out
}

func mustNew(t *testing.T, cfg router.StackConfig) *router.Navigator {
	t.Helper()
	nav, err := router.New(cfg, router.Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return nav
}

func assertAt(t *testing.T, nav *router.Navigator, stack, route string) {
	t.Helper()
	if nav.CurrentStack() != stack || nav.CurrentRoute() != route {
		t.Fatalf("position = (%s, %s), want (%s, %s)", nav.CurrentStack(), nav.CurrentRoute(), stack, route)
	}
}

func TestNewRootWithRoutes(t *testing.T) {
	nav := mustNew(t, router.StackConfig{
		Name:         "root",
		InitialRoute: "Home",
		Routes:       routes("Home", "Details"),
	})

	assertAt(t, nav, "root", "Home")
	if nav.InitialStack() != nav.RootStack() {
		t.Error("initial stack should be the root when it has routes")
	}
	if nav.InitialRoute().Key != "Home" {
		t.Errorf("InitialRoute().Key = %q, want Home", nav.InitialRoute().Key)
	}
	if nav.Position().Props != nil {
		t.Errorf("initial props = %v, want nil", nav.Position().Props)
	}
}

func TestNewInitialChildStack(t *testing.T) {
	nav := mustNew(t, exampleConfig())

	assertAt(t, nav, "Main", "Home")
	if nav.InitialStack().ParentStack() != nav.RootStack() {
		t.Error("initial stack should be a child of the root")
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  router.StackConfig
		want error
	}{
		{
			name: "no routes and no initial stack",
			cfg:  router.StackConfig{Name: "root", Stacks: []router.StackConfig{{Name: "Main"}}},
			want: router.ErrNoStartingStack,
		},
		{
			name: "empty routes and no initial stack",
			cfg:  router.StackConfig{Name: "root", Routes: []router.RouteConfig{}},
			want: router.ErrNoStartingStack,
		},
		{
			name: "initial stack not a child",
			cfg: router.StackConfig{
				Name:         "root",
				InitialStack: "Missing",
				Stacks:       []router.StackConfig{{Name: "Main", InitialRoute: "Home", Routes: routes("Home")}},
			},
			want: router.ErrInitialStackNotFound,
		},
		{
			name: "root initial route missing",
			cfg:  router.StackConfig{Name: "root", InitialRoute: "Nope", Routes: routes("Home")},
			want: router.ErrNoInitialRoute,
		},
		{
			name: "child initial route missing",
			cfg: router.StackConfig{
				Name:         "root",
				InitialStack: "Main",
				Stacks:       []router.StackConfig{{Name: "Main", InitialRoute: "Nope", Routes: routes("Home")}},
			},
			want: router.ErrNoInitialRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := router.New(tt.cfg, router.Options{})
			if nav != nil {
				t.Error("New() returned a navigator alongside an error")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if !router.IsConfigError(err) {
				t.Errorf("IsConfigError(%v) = false", err)
			}
		})
	}
}

func TestNewStrict(t *testing.T) {
	cfg := exampleConfig()
	cfg.Stacks[1].InitialRoute = "Nope"

	// Permissive by default: Settings is simply left without an initial route
	nav := mustNew(t, cfg)
	if nav.RootStack().Stacks[1].Initial != nil {
		t.Error("Settings.Initial should be nil")
	}

	_, err := router.New(cfg, router.Options{Strict: true})
	if !errors.Is(err, router.ErrUnknownInitialRoute) {
		t.Fatalf("strict New() error = %v, want ErrUnknownInitialRoute", err)
	}
}

func TestNavigateRoundTrip(t *testing.T) {
	nav := mustNew(t, exampleConfig())
	before := nav.Position()

	if !nav.Navigate("Details", DetailProps{ID: 1}) {
		t.Fatal("Navigate(Details) = false")
	}
	assertAt(t, nav, "Main", "Details")
	if got := nav.Position().Props; got != (DetailProps{ID: 1}) {
		t.Errorf("props = %v, want {1}", got)
	}

	if !nav.GoBack() {
		t.Fatal("GoBack() = false")
	}
	if nav.Position() != before {
		t.Errorf("position after GoBack = %+v, want %+v", nav.Position(), before)
	}
}

func TestNavigateMiss(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "absent", key: "Nope"},
		{name: "duplicated", key: "Twice"},
		{name: "in sibling stack", key: "About"},
	}

	cfg := exampleConfig()
	cfg.Stacks[0].Routes = append(cfg.Stacks[0].Routes, routes("Twice", "Twice")...)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := mustNew(t, cfg)
			nav.Navigate("Details", "props")
			before := nav.Position()

			if nav.Navigate(tt.key, 42) {
				t.Fatalf("Navigate(%q) = true", tt.key)
			}
			if nav.Position() != before {
				t.Errorf("position changed to %+v", nav.Position())
			}
		})
	}
}

func TestGoBackAtStart(t *testing.T) {
	nav := mustNew(t, exampleConfig())
	before := nav.Position()

	if nav.GoBack() {
		t.Fatal("GoBack() at start = true")
	}
	if nav.Position() != before {
		t.Errorf("position changed to %+v", nav.Position())
	}
}

func TestGoHome(t *testing.T) {
	nav := mustNew(t, exampleConfig())

	if nav.GoHome() {
		t.Fatal("GoHome() at initial route = true")
	}

	nav.Navigate("Details", DetailProps{ID: 3})
	if !nav.GoHome() {
		t.Fatal("GoHome() = false")
	}
	assertAt(t, nav, "Main", "Home")
	if got := nav.Position().Props; got != (DetailProps{ID: 3}) {
		t.Errorf("GoHome() props = %v, want props kept from Details", got)
	}
}

func TestGoHomeWithoutInitial(t *testing.T) {
	cfg := exampleConfig()
	cfg.Stacks[1].InitialRoute = ""
	nav := mustNew(t, cfg)

	nav.NavigateFromRoot([]string{"root", "Settings"}, "About", nil)
	if nav.GoHome() {
		t.Fatal("GoHome() without an initial route = true")
	}
	assertAt(t, nav, "Settings", "About")
}

func TestNavigateFromRoot(t *testing.T) {
	cfg := router.StackConfig{
		Name:         "root",
		InitialStack: "Start",
		Stacks: []router.StackConfig{
			{Name: "Start", InitialRoute: "Home", Routes: routes("Home")},
			{
				Name: "A",
				Stacks: []router.StackConfig{
					{Name: "B", InitialRoute: "One", Routes: routes("One", "Two")},
					{Name: "C", InitialRoute: "Three", Routes: routes("Three")},
					{Name: "C", InitialRoute: "Four", Routes: routes("Four")},
				},
			},
		},
	}

	tests := []struct {
		name      string
		path      []string
		key       string
		want      bool
		wantStack string
	}{
		{name: "full path", path: []string{"root", "A", "B"}, key: "Two", want: true, wantStack: "B"},
		{name: "missing route", path: []string{"root", "A", "B"}, key: "Nope"},
		{name: "missing child", path: []string{"root", "A", "X"}, key: "One"},
		{name: "ambiguous child", path: []string{"root", "A", "C"}, key: "Three"},
		{name: "path stops short", path: []string{"root", "A"}, key: "One"},
		{name: "empty path", path: nil, key: "One"},
		{name: "does not search", path: []string{"root", "B"}, key: "One"},
		// Names are only compared to decide whether to look for the route;
		// descent always follows the next entry.
		{name: "wrong root name", path: []string{"other", "A", "B"}, key: "One", want: true, wantStack: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := mustNew(t, cfg)
			before := nav.Position()

			got := nav.NavigateFromRoot(tt.path, tt.key, "p")
			if got != tt.want {
				t.Fatalf("NavigateFromRoot(%v, %q) = %v, want %v", tt.path, tt.key, got, tt.want)
			}
			if !tt.want {
				if nav.Position() != before {
					t.Errorf("position changed to %+v", nav.Position())
				}
				return
			}
			assertAt(t, nav, tt.wantStack, tt.key)
			if nav.Position().Props != "p" {
				t.Errorf("props = %v, want p", nav.Position().Props)
			}

			if !nav.GoBack() {
				t.Fatal("GoBack() = false")
			}
			if nav.Position() != before {
				t.Errorf("position after GoBack = %+v, want %+v", nav.Position(), before)
			}
		})
	}
}

func TestHistoryIsOneLinkPerRoute(t *testing.T) {
	nav := mustNew(t, router.StackConfig{
		Name:         "root",
		InitialRoute: "A",
		Routes:       routes("A", "B", "C"),
	})

	nav.Navigate("B", 1)
	nav.Navigate("C", 2)
	nav.Navigate("B", 3) // B now links back to C, replacing its link to A

	nav.GoBack()
	assertAt(t, nav, "root", "C")
	if nav.Position().Props != 2 {
		t.Errorf("props = %v, want 2", nav.Position().Props)
	}

	nav.GoBack()
	assertAt(t, nav, "root", "B")
	if nav.Position().Props != 1 {
		t.Errorf("props = %v, want 1", nav.Position().Props)
	}

	// B's link still points at C, so A is no longer reachable by going back
	nav.GoBack()
	assertAt(t, nav, "root", "C")
}

func TestRoutesAndStacksOnOneStack(t *testing.T) {
	nav := mustNew(t, router.StackConfig{
		Name:         "root",
		InitialRoute: "Home",
		Routes:       routes("Home", "Local"),
		Stacks: []router.StackConfig{
			{Name: "Sub", InitialRoute: "X", Routes: routes("X")},
		},
	})

	if got := nav.Stacks(); got != "Sub" {
		t.Errorf("Stacks() = %q, want Sub", got)
	}
	if got := nav.Routes(); got != "X" {
		t.Errorf("Routes() = %q, want X", got)
	}

	if !nav.Navigate("Local", nil) {
		t.Fatal("Navigate(Local) = false")
	}
	if nav.Navigate("X", nil) {
		t.Fatal("Navigate(X) from root = true")
	}
	if !nav.NavigateFromRoot([]string{"root", "Sub"}, "X", nil) {
		t.Fatal("NavigateFromRoot(root/Sub, X) = false")
	}
	assertAt(t, nav, "Sub", "X")
}

func TestHandleBack(t *testing.T) {
	d := backbutton.NewDispatcher()
	nav, err := router.New(router.StackConfig{
		Name:         "root",
		InitialRoute: "Home",
		Routes:       routes("Home", "Details"),
	}, router.Options{Back: d})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if d.Dispatch() {
		t.Fatal("Dispatch() at root initial route = true")
	}

	nav.Navigate("Details", nil)
	if !d.Dispatch() {
		t.Fatal("Dispatch() after Navigate = false")
	}
	assertAt(t, nav, "root", "Home")

	nav.Close()
	if d.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", d.Len())
	}
	nav.Navigate("Details", nil)
	if d.Dispatch() {
		t.Error("Dispatch() after Close = true")
	}
}

func TestHandleBackFromChildStack(t *testing.T) {
	nav := mustNew(t, exampleConfig())

	// The initial position is not on the root stack, so back is always
	// claimed, even with nothing to go back to.
	if !nav.HandleBack() {
		t.Fatal("HandleBack() = false")
	}
	assertAt(t, nav, "Main", "Home")
}

func TestRenderMissingScreen(t *testing.T) {
	nav := mustNew(t, exampleConfig())

	_, err := nav.Render()
	if !errors.Is(err, router.ErrScreenMissing) {
		t.Fatalf("Render() error = %v, want ErrScreenMissing", err)
	}
}

func TestRenderPassesProps(t *testing.T) {
	cfg := exampleConfig()
	cfg.Stacks[0].Routes[1].Screen = func(props any, nav router.Navigation) (any, error) {
		return props.(DetailProps).ID * 2, nil
	}
	nav := mustNew(t, cfg)
	nav.Navigate("Details", DetailProps{ID: 21})

	got, err := nav.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Render() = %v, want 42", got)
	}
}
