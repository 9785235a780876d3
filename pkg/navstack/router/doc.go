// Package router keeps the current position in a tree of screen stacks.
//
// A tree is declared as nested StackConfig values. Each stack holds either
// routes (screens) or child stacks. New builds the tree and returns a
// Navigator positioned at the initial route of the starting stack.
//
// # Basic Usage
//
//	cfg := router.StackConfig{
//	    Name:         "root",
//	    InitialStack: "Main",
//	    Stacks: []router.StackConfig{{
//	        Name:         "Main",
//	        InitialRoute: "Home",
//	        Routes: []router.RouteConfig{
//	            {Key: "Home", Screen: homeScreen},
//	            {Key: "Details", Screen: detailScreen},
//	        },
//	    }},
//	}
//
//	nav, err := router.New(cfg, router.Options{})
//	if err != nil {
//	    return err
//	}
//
//	nav.Navigate("Details", DetailProps{ID: 1}) // Main › Details
//	nav.GoBack()                                // Main › Home
//
// Navigate only looks at the current stack. NavigateFromRoot takes the
// full chain of stack names from the root to the target stack:
//
//	nav.NavigateFromRoot([]string{"root", "Settings"}, "About", nil)
//
// # History
//
// History is one link per route, not a stack. Entering a route records
// where it was entered from on the route itself, replacing whatever it
// recorded before. GoBack follows the current route's link. Returning to a
// route later does not restore the older trail.
//
// # Rendering
//
// Render calls the current route's ScreenFunc with the props it was
// navigated to and the Navigator itself, as a Navigation handle.
package router
