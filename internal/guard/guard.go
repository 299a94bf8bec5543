// Package guard decides which navigation root the client shell presents for
// a given session snapshot.
package guard

import "github.com/carebridge/carebridge-go/internal/session"

// Root is the navigation root to render.
type Root int

const (
	// RootLoading is shown while the startup rehydration has not finished.
	RootLoading Root = iota
	// RootApp is the authenticated application.
	RootApp
	// RootAuth is the unauthenticated flow: role selection, signup, login.
	RootAuth
)

func (r Root) String() string {
	switch r {
	case RootLoading:
		return "loading"
	case RootApp:
		return "app"
	case RootAuth:
		return "auth"
	}
	return "unknown"
}

// Route is a pure function of the session snapshot: nothing is cached, so it
// can be re-evaluated on every transition. Until initialization completes
// only the loading placeholder is rendered; afterwards the app root is shown
// iff both user and token are present.
func Route(s session.Snapshot) Root {
	if !s.Initialized {
		return RootLoading
	}
	if s.Authenticated() {
		return RootApp
	}
	return RootAuth
}
