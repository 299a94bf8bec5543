package guard

import (
	"testing"

	"github.com/carebridge/carebridge-go/internal/model"
	"github.com/carebridge/carebridge-go/internal/session"
)

func TestRouteBeforeInitialization(t *testing.T) {
	for _, phase := range []session.Phase{session.PhaseUninitialized, session.PhaseInitializing} {
		snap := session.Snapshot{Phase: phase}
		if got := Route(snap); got != RootLoading {
			t.Errorf("Route(%v) = %v, want loading", phase, got)
		}
	}
}

func TestRouteAuthenticated(t *testing.T) {
	snap := session.Snapshot{
		Phase:       session.PhaseAuthenticated,
		User:        &model.User{ID: "u1", Role: model.RolePatient},
		Token:       "t1",
		Initialized: true,
	}
	if got := Route(snap); got != RootApp {
		t.Errorf("Route() = %v, want app", got)
	}
}

func TestRouteUnauthenticated(t *testing.T) {
	snap := session.Snapshot{Phase: session.PhaseUnauthenticated, Initialized: true}
	if got := Route(snap); got != RootAuth {
		t.Errorf("Route() = %v, want auth", got)
	}
}

// A snapshot with only half a credential pair must not reach the app root.
func TestRoutePartialCredentials(t *testing.T) {
	userOnly := session.Snapshot{
		Phase:       session.PhaseAuthenticated,
		User:        &model.User{ID: "u1"},
		Initialized: true,
	}
	if got := Route(userOnly); got != RootAuth {
		t.Errorf("Route(user only) = %v, want auth", got)
	}

	tokenOnly := session.Snapshot{
		Phase:       session.PhaseAuthenticated,
		Token:       "t1",
		Initialized: true,
	}
	if got := Route(tokenOnly); got != RootAuth {
		t.Errorf("Route(token only) = %v, want auth", got)
	}
}

func TestRouteDuringLoginAttempt(t *testing.T) {
	pending := session.Snapshot{Phase: session.PhaseAuthPending, Loading: true, Initialized: true}
	if got := Route(pending); got != RootAuth {
		t.Errorf("Route(pending) = %v, want auth", got)
	}

	failed := session.Snapshot{Phase: session.PhaseAuthFailed, Error: "invalid email or password", Initialized: true}
	if got := Route(failed); got != RootAuth {
		t.Errorf("Route(failed) = %v, want auth", got)
	}
}
